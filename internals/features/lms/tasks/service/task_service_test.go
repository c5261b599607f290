package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aulavirtual_backend/internals/features/lms/tasks/dto"
	"aulavirtual_backend/internals/features/lms/tasks/model"
	helper "aulavirtual_backend/internals/helpers"
	"aulavirtual_backend/internals/gateway/inmem"
)

func setup(t *testing.T) (*TaskService, *inmem.DB) {
	t.Helper()
	db := inmem.New()
	db.AddForeignKey("submissions", "submission_task_id", "tasks", "task_id")
	db.AddForeignKey("grades", "grade_task_id", "tasks", "task_id")
	return NewTaskService(db), db
}

func seedTask(t *testing.T, db *inmem.DB, title string, courseID uuid.UUID, published bool, createdAt time.Time) model.TaskModel {
	t.Helper()
	task := model.TaskModel{
		TaskID:          uuid.New(),
		TaskCourseID:    courseID,
		TaskTitle:       title,
		TaskMaxScore:    model.TaskDefaultMaxScore,
		TaskIsPublished: published,
		TaskCreatedAt:   createdAt,
		TaskUpdatedAt:   createdAt,
	}
	db.Seed("tasks", task)
	return task
}

func TestCreateTaskValidation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, dto.CreateTaskRequest{TaskTitle: "ab", TaskCourseID: uuid.New()})
	require.Error(t, err)
	assert.IsType(t, &helper.ValidationError{}, err)

	_, err = svc.Create(ctx, dto.CreateTaskRequest{TaskTitle: "Tarea A"})
	require.Error(t, err)
	assert.IsType(t, &helper.ValidationError{}, err)
}

func TestCreateTaskDefaults(t *testing.T) {
	svc, db := setup(t)

	task, err := svc.Create(context.Background(), dto.CreateTaskRequest{
		TaskTitle:    "Tarea A",
		TaskCourseID: uuid.New(),
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, task.TaskID)
	assert.EqualValues(t, 100, task.TaskMaxScore)
	assert.False(t, task.TaskIsPublished)
	assert.Len(t, db.Rows("tasks"), 1)
}

func TestListTasksPaginationAndOrder(t *testing.T) {
	svc, db := setup(t)
	course := uuid.New()
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		seedTask(t, db, fmt.Sprintf("Tarea %02d", i), course, false, base.Add(time.Duration(i)*time.Minute))
	}

	rows, total, err := svc.List(context.Background(), dto.ListTasksQuery{Offset: 0, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	require.Len(t, rows, 10)
	// creación descendente: la más nueva primero
	assert.Equal(t, "Tarea 11", rows[0].TaskTitle)
	assert.Equal(t, "Tarea 02", rows[9].TaskTitle)

	rows, total, err = svc.List(context.Background(), dto.ListTasksQuery{Offset: 10, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 12, total)
	assert.Len(t, rows, 2)
}

func TestListTasksSearchAndFilters(t *testing.T) {
	svc, db := setup(t)
	c1, c2 := uuid.New(), uuid.New()
	now := time.Now().UTC()
	seedTask(t, db, "Ensayo de Historia", c1, true, now)
	seedTask(t, db, "ensayo de química", c1, false, now.Add(time.Minute))
	seedTask(t, db, "Parcial de Historia", c2, true, now.Add(2*time.Minute))

	rows, total, err := svc.List(context.Background(), dto.ListTasksQuery{Search: "ENSAYO", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, rows, 2)

	published := true
	rows, total, err = svc.List(context.Background(), dto.ListTasksQuery{CourseID: &c1, IsPublished: &published, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ensayo de Historia", rows[0].TaskTitle)
}

func TestUpdateTaskPartialSemantics(t *testing.T) {
	svc, db := setup(t)
	desc := "descripción vieja"
	task := seedTask(t, db, "Tarea original", uuid.New(), false, time.Now().UTC())
	require.NoError(t, db.Update(context.Background(), "tasks",
		map[string]any{"task_description": desc}, map[string]any{"task_id": task.TaskID}))

	// campo ausente = no tocar
	title := "Tarea renombrada"
	updated, err := svc.Update(context.Background(), task.TaskID, dto.UpdateTaskRequest{
		TaskTitle: &helper.PatchField[string]{Present: true, Value: &title},
	})
	require.NoError(t, err)
	assert.Equal(t, "Tarea renombrada", updated.TaskTitle)
	require.NotNil(t, updated.TaskDescription)
	assert.Equal(t, desc, *updated.TaskDescription)

	// null explícito = limpiar
	updated, err = svc.Update(context.Background(), task.TaskID, dto.UpdateTaskRequest{
		TaskDescription: &helper.PatchField[string]{Present: true, Value: nil},
	})
	require.NoError(t, err)
	assert.Nil(t, updated.TaskDescription)
	assert.Equal(t, "Tarea renombrada", updated.TaskTitle)

	// id vacío
	_, err = svc.Update(context.Background(), uuid.Nil, dto.UpdateTaskRequest{})
	require.Error(t, err)
	assert.IsType(t, &helper.ValidationError{}, err)
}

func TestPublishTaskOnlyFlipsFlag(t *testing.T) {
	svc, db := setup(t)
	task := seedTask(t, db, "Tarea publicable", uuid.New(), false, time.Now().UTC())

	require.NoError(t, svc.Publish(context.Background(), task.TaskID, true))

	got, err := svc.GetByID(context.Background(), task.TaskID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.TaskIsPublished)
	assert.Equal(t, "Tarea publicable", got.TaskTitle)
}

func TestDeleteTaskConflictWithDependents(t *testing.T) {
	svc, db := setup(t)
	task := seedTask(t, db, "Tarea con entregas", uuid.New(), true, time.Now().UTC())
	db.Seed("submissions", map[string]any{
		"submission_id":      uuid.New().String(),
		"submission_task_id": task.TaskID.String(),
	})

	err := svc.Delete(context.Background(), task.TaskID)
	require.Error(t, err)
	var ce *helper.ConflictError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, ce.Message, "entregas o calificaciones")
	assert.Len(t, db.Rows("tasks"), 1)

	// sin dependencias borra sin drama
	free := seedTask(t, db, "Tarea libre", uuid.New(), false, time.Now().UTC())
	require.NoError(t, svc.Delete(context.Background(), free.TaskID))
}

func TestGetTaskByIDAbsenceIsNotAnError(t *testing.T) {
	svc, _ := setup(t)

	got, err := svc.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetTasksByCourse(t *testing.T) {
	svc, db := setup(t)
	course := uuid.New()
	now := time.Now().UTC()
	seedTask(t, db, "Del curso", course, true, now)
	seedTask(t, db, "De otro curso", uuid.New(), true, now)

	rows, err := svc.GetByCourse(context.Background(), course)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Del curso", rows[0].TaskTitle)
}
