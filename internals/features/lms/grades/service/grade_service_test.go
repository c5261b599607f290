package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aulavirtual_backend/internals/features/lms/grades/dto"
	submodel "aulavirtual_backend/internals/features/lms/submissions/model"
	"aulavirtual_backend/internals/gateway"
	"aulavirtual_backend/internals/gateway/inmem"
	helper "aulavirtual_backend/internals/helpers"
)

func setup(t *testing.T) (*GradeService, *inmem.DB, uuid.UUID, uuid.UUID) {
	t.Helper()
	db := inmem.New()
	task, student := uuid.New(), uuid.New()
	db.Seed("submissions", submodel.SubmissionModel{
		SubmissionID:          uuid.New(),
		SubmissionTaskID:      task,
		SubmissionStudentID:   student,
		SubmissionSubmittedAt: time.Now().UTC().Add(-time.Hour),
	})
	return NewGradeService(db), db, task, student
}

func submissionGradedAt(t *testing.T, db *inmem.DB) any {
	t.Helper()
	rows := db.Rows("submissions")
	require.Len(t, rows, 1)
	return rows[0]["submission_graded_at"]
}

func TestUpsertInsertsAndMarksSubmission(t *testing.T) {
	svc, db, task, student := setup(t)
	feedback := "muy bien"

	grade, err := svc.UpsertTaskGrade(context.Background(), dto.UpsertTaskGradeRequest{
		TaskID:    task,
		StudentID: student,
		Score:     85,
		Feedback:  &feedback,
	})
	require.NoError(t, err)
	assert.EqualValues(t, 85, grade.GradeScore)
	require.NotNil(t, grade.GradeFeedback)
	assert.Equal(t, "muy bien", *grade.GradeFeedback)

	assert.Len(t, db.Rows("grades"), 1)
	assert.NotNil(t, submissionGradedAt(t, db), "la entrega debe quedar marcada como calificada")
}

func TestUpsertTwiceKeepsSingleGradeWithLastScore(t *testing.T) {
	svc, db, task, student := setup(t)
	ctx := context.Background()
	feedback := "primer intento"

	_, err := svc.UpsertTaskGrade(ctx, dto.UpsertTaskGradeRequest{
		TaskID: task, StudentID: student, Score: 60, Feedback: &feedback,
	})
	require.NoError(t, err)

	// segunda llamada sin feedback: pisa el score y LIMPIA el feedback
	grade, err := svc.UpsertTaskGrade(ctx, dto.UpsertTaskGradeRequest{
		TaskID: task, StudentID: student, Score: 90,
	})
	require.NoError(t, err)

	rows := db.Rows("grades")
	require.Len(t, rows, 1, "a lo sumo una calificación por (tarea, alumno)")
	assert.EqualValues(t, 90, rows[0]["grade_score"])
	assert.Nil(t, rows[0]["grade_feedback"], "feedback omitido limpia el anterior")
	assert.Nil(t, grade.GradeFeedback)
	assert.NotNil(t, submissionGradedAt(t, db))
}

func TestUpsertMarksSubmissionOnBothBranches(t *testing.T) {
	svc, db, task, student := setup(t)
	ctx := context.Background()

	_, err := svc.UpsertTaskGrade(ctx, dto.UpsertTaskGradeRequest{TaskID: task, StudentID: student, Score: 50})
	require.NoError(t, err)
	first := submissionGradedAt(t, db)
	require.NotNil(t, first)

	// rama update
	_, err = svc.UpsertTaskGrade(ctx, dto.UpsertTaskGradeRequest{TaskID: task, StudentID: student, Score: 70})
	require.NoError(t, err)
	assert.NotNil(t, submissionGradedAt(t, db))
}

// Si la marca de la entrega (paso 3) falla, la transacción revierte la
// mutación de la nota: no queda estado a medio camino.
func TestUpsertRollsBackGradeWhenSubmissionMarkFails(t *testing.T) {
	svc, db, task, student := setup(t)
	db.FailNext("update", "submissions", gateway.NewError(gateway.ErrCodeInternal, "timeout upstream"))

	_, err := svc.UpsertTaskGrade(context.Background(), dto.UpsertTaskGradeRequest{
		TaskID: task, StudentID: student, Score: 95,
	})
	require.Error(t, err)
	assert.Empty(t, db.Rows("grades"), "la nota insertada debe revertirse")
	assert.Nil(t, submissionGradedAt(t, db))
}

func TestUpsertValidation(t *testing.T) {
	svc, _, task, student := setup(t)
	ctx := context.Background()

	_, err := svc.UpsertTaskGrade(ctx, dto.UpsertTaskGradeRequest{StudentID: student, Score: 10})
	assert.IsType(t, &helper.ValidationError{}, err)

	_, err = svc.UpsertTaskGrade(ctx, dto.UpsertTaskGradeRequest{TaskID: task, Score: 10})
	assert.IsType(t, &helper.ValidationError{}, err)

	_, err = svc.UpsertTaskGrade(ctx, dto.UpsertTaskGradeRequest{TaskID: task, StudentID: student, Score: -1})
	assert.IsType(t, &helper.ValidationError{}, err)
}

func TestListByTaskAndDelete(t *testing.T) {
	svc, db, task, student := setup(t)
	ctx := context.Background()

	created, err := svc.UpsertTaskGrade(ctx, dto.UpsertTaskGradeRequest{TaskID: task, StudentID: student, Score: 80})
	require.NoError(t, err)

	rows, total, err := svc.ListByTask(ctx, dto.ListGradesQuery{TaskID: task, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, created.GradeID, rows[0].GradeID)

	require.NoError(t, svc.Delete(ctx, created.GradeID))
	assert.Empty(t, db.Rows("grades"))
}
