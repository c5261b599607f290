// file: internals/features/lms/tasks/service/task_service.go
package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"aulavirtual_backend/internals/features/lms/tasks/dto"
	"aulavirtual_backend/internals/features/lms/tasks/model"
	"aulavirtual_backend/internals/gateway"
	helper "aulavirtual_backend/internals/helpers"
)

const tasksTable = "tasks"

// TaskService: CRUD + publicación del catálogo de tareas. El Store se inyecta
// para poder sustituirlo en tests.
type TaskService struct {
	store gateway.Store
}

func NewTaskService(store gateway.Store) *TaskService {
	return &TaskService{store: store}
}

// List devuelve una página de tareas (creación descendente) y el total que
// matchea los filtros. La búsqueda es substring case-insensitive sobre el
// título.
func (s *TaskService) List(ctx context.Context, q dto.ListTasksQuery) ([]model.TaskModel, int64, error) {
	filters := gateway.Filter{}
	if q.CourseID != nil {
		filters["task_course_id"] = *q.CourseID
	}
	if q.IsPublished != nil {
		filters["task_is_published"] = *q.IsPublished
	}

	query := gateway.Query{
		Table:   tasksTable,
		Filters: filters,
		OrderBy: "task_created_at",
		Desc:    true,
		Offset:  q.Offset,
		Limit:   q.Limit,
	}
	if strings.TrimSpace(q.Search) != "" {
		query.Search = &gateway.Search{Column: "task_title", Term: strings.TrimSpace(q.Search)}
	}

	var rows []model.TaskModel
	total, err := s.store.Select(ctx, query, &rows)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *TaskService) Create(ctx context.Context, req dto.CreateTaskRequest) (*model.TaskModel, error) {
	title := strings.TrimSpace(req.TaskTitle)
	if len([]rune(title)) < 3 {
		return nil, helper.NewValidationError("El título debe tener al menos 3 caracteres")
	}
	if req.TaskCourseID == uuid.Nil {
		return nil, helper.NewValidationError("El curso es obligatorio")
	}

	maxScore := float64(model.TaskDefaultMaxScore)
	if req.TaskMaxScore != nil {
		maxScore = *req.TaskMaxScore
	}

	now := time.Now().UTC()
	task := model.TaskModel{
		TaskID:            uuid.New(),
		TaskInstitutionID: req.TaskInstitutionID,
		TaskCourseID:      req.TaskCourseID,
		TaskTitle:         title,
		TaskDescription:   req.TaskDescription,
		TaskDueDate:       req.TaskDueDate,
		TaskMaxScore:      maxScore,
		TaskIsPublished:   false,
		TaskCreatedAt:     now,
		TaskUpdatedAt:     now,
	}

	if err := s.store.Insert(ctx, tasksTable, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update aplica sólo los campos presentes en el request (ausente = no tocar,
// null = limpiar).
func (s *TaskService) Update(ctx context.Context, id uuid.UUID, req dto.UpdateTaskRequest) (*model.TaskModel, error) {
	if id == uuid.Nil {
		return nil, helper.NewValidationError("El id de la tarea es obligatorio")
	}
	if req.TaskTitle != nil && req.TaskTitle.ShouldUpdate() {
		if req.TaskTitle.IsNull() {
			return nil, helper.NewValidationError("El título no puede ser null")
		}
		if len([]rune(strings.TrimSpace(*req.TaskTitle.Value))) < 3 {
			return nil, helper.NewValidationError("El título debe tener al menos 3 caracteres")
		}
	}
	if req.TaskCourseID != nil && req.TaskCourseID.IsNull() {
		return nil, helper.NewValidationError("El curso no puede ser null")
	}

	updates := req.ToUpdates()
	if len(updates) == 0 {
		return s.GetByID(ctx, id)
	}
	updates["task_updated_at"] = time.Now().UTC()

	if err := s.store.Update(ctx, tasksTable, updates, gateway.Filter{"task_id": id}); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Publish sólo cambia el flag de publicación.
func (s *TaskService) Publish(ctx context.Context, id uuid.UUID, published bool) error {
	if id == uuid.Nil {
		return helper.NewValidationError("El id de la tarea es obligatorio")
	}
	return s.store.Update(ctx, tasksTable, map[string]any{
		"task_is_published": published,
		"task_updated_at":   time.Now().UTC(),
	}, gateway.Filter{"task_id": id})
}

// Delete rechaza con ConflictError cuando la tarea tiene entregas o
// calificaciones que la referencian (FK violation del gateway).
func (s *TaskService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return helper.NewValidationError("El id de la tarea es obligatorio")
	}
	if err := s.store.Delete(ctx, tasksTable, gateway.Filter{"task_id": id}); err != nil {
		if gateway.IsForeignKey(err) {
			return helper.NewConflictError("No se puede eliminar: la tarea tiene entregas o calificaciones asociadas")
		}
		return err
	}
	return nil
}

// GetByID devuelve (nil, nil) cuando no existe; la ausencia no es un error.
func (s *TaskService) GetByID(ctx context.Context, id uuid.UUID) (*model.TaskModel, error) {
	var rows []model.TaskModel
	_, err := s.store.Select(ctx, gateway.Query{
		Table:   tasksTable,
		Filters: gateway.Filter{"task_id": id},
		Limit:   1,
	}, &rows)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *TaskService) GetByCourse(ctx context.Context, courseID uuid.UUID) ([]model.TaskModel, error) {
	var rows []model.TaskModel
	_, err := s.store.Select(ctx, gateway.Query{
		Table:   tasksTable,
		Filters: gateway.Filter{"task_course_id": courseID},
		OrderBy: "task_created_at",
		Desc:    true,
	}, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
