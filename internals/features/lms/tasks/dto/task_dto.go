// file: internals/features/lms/tasks/dto/task_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	helper "aulavirtual_backend/internals/helpers"
)

type CreateTaskRequest struct {
	TaskInstitutionID uuid.UUID `json:"task_institution_id"`
	TaskCourseID      uuid.UUID `json:"task_course_id" validate:"required"`

	TaskTitle       string     `json:"task_title" validate:"required,min=3,max=200"`
	TaskDescription *string    `json:"task_description,omitempty"`
	TaskDueDate     *time.Time `json:"task_due_date,omitempty"`
	TaskMaxScore    *float64   `json:"task_max_score,omitempty" validate:"omitempty,gt=0"`
}

// PATCH parcial: campo ausente = no tocar, null = limpiar.
type UpdateTaskRequest struct {
	TaskTitle       *helper.PatchField[string]    `json:"task_title,omitempty"`
	TaskDescription *helper.PatchField[string]    `json:"task_description,omitempty"`
	TaskDueDate     *helper.PatchField[time.Time] `json:"task_due_date,omitempty"`
	TaskMaxScore    *helper.PatchField[float64]   `json:"task_max_score,omitempty"`
	TaskCourseID    *helper.PatchField[uuid.UUID] `json:"task_course_id,omitempty"`
}

func (r *UpdateTaskRequest) ToUpdates() map[string]any {
	upd := map[string]any{}
	helper.Set(upd, "task_title", r.TaskTitle)
	helper.Set(upd, "task_description", r.TaskDescription)
	helper.Set(upd, "task_due_date", r.TaskDueDate)
	helper.Set(upd, "task_max_score", r.TaskMaxScore)
	helper.Set(upd, "task_course_id", r.TaskCourseID)
	return upd
}

type PublishTaskRequest struct {
	TaskIsPublished bool `json:"task_is_published"`
}

type ListTasksQuery struct {
	Search      string
	CourseID    *uuid.UUID
	IsPublished *bool
	Offset      int
	Limit       int
}
