package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aulavirtual_backend/internals/features/lms/submissions/dto"
	"aulavirtual_backend/internals/features/lms/submissions/model"
	"aulavirtual_backend/internals/gateway/inmem"
	helper "aulavirtual_backend/internals/helpers"
)

func seedSubmission(t *testing.T, db *inmem.DB, taskID uuid.UUID, content string, submittedAt time.Time) model.SubmissionModel {
	t.Helper()
	sub := model.SubmissionModel{
		SubmissionID:          uuid.New(),
		SubmissionTaskID:      taskID,
		SubmissionStudentID:   uuid.New(),
		SubmissionContent:     &content,
		SubmissionSubmittedAt: submittedAt,
	}
	db.Seed("submissions", sub)
	return sub
}

func TestListSubmissionsScopedToTask(t *testing.T) {
	db := inmem.New()
	svc := NewSubmissionService(db)
	task := uuid.New()
	base := time.Date(2026, 4, 10, 9, 0, 0, 0, time.UTC)

	first := seedSubmission(t, db, task, "respuesta temprana", base)
	last := seedSubmission(t, db, task, "respuesta tardía", base.Add(time.Hour))
	seedSubmission(t, db, uuid.New(), "de otra tarea", base)

	rows, total, err := svc.List(context.Background(), dto.ListSubmissionsQuery{TaskID: task, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	// entrega más reciente primero
	assert.Equal(t, last.SubmissionID, rows[0].SubmissionID)
	assert.Equal(t, first.SubmissionID, rows[1].SubmissionID)
}

func TestListSubmissionsSearchOnContent(t *testing.T) {
	db := inmem.New()
	svc := NewSubmissionService(db)
	task := uuid.New()
	now := time.Now().UTC()

	seedSubmission(t, db, task, "Análisis del Quijote", now)
	seedSubmission(t, db, task, "resumen breve", now.Add(time.Minute))

	rows, total, err := svc.List(context.Background(), dto.ListSubmissionsQuery{
		TaskID: task,
		Search: "QUIJOTE",
		Limit:  10,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Contains(t, *rows[0].SubmissionContent, "Quijote")
}

func TestListSubmissionsRequiresTask(t *testing.T) {
	svc := NewSubmissionService(inmem.New())

	_, _, err := svc.List(context.Background(), dto.ListSubmissionsQuery{Limit: 10})
	require.Error(t, err)
	assert.IsType(t, &helper.ValidationError{}, err)
}

func TestGetSubmissionByIDNullable(t *testing.T) {
	db := inmem.New()
	svc := NewSubmissionService(db)

	got, err := svc.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)

	sub := seedSubmission(t, db, uuid.New(), "hola", time.Now().UTC())
	got, err = svc.GetByID(context.Background(), sub.SubmissionID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sub.SubmissionID, got.SubmissionID)
}

func TestDeleteSubmission(t *testing.T) {
	db := inmem.New()
	svc := NewSubmissionService(db)
	sub := seedSubmission(t, db, uuid.New(), "borrar", time.Now().UTC())

	require.NoError(t, svc.Delete(context.Background(), sub.SubmissionID))
	assert.Empty(t, db.Rows("submissions"))
}
