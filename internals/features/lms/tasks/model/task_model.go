// file: internals/features/lms/tasks/model/task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

const TaskDefaultMaxScore = 100

type TaskModel struct {
	TaskID            uuid.UUID  `gorm:"type:uuid;primaryKey;column:task_id" json:"task_id"`
	TaskInstitutionID uuid.UUID  `gorm:"type:uuid;not null;column:task_institution_id" json:"task_institution_id"`
	TaskCourseID      uuid.UUID  `gorm:"type:uuid;not null;column:task_course_id" json:"task_course_id"`

	TaskTitle       string     `gorm:"type:varchar(200);not null;column:task_title" json:"task_title"`
	TaskDescription *string    `gorm:"type:text;column:task_description" json:"task_description,omitempty"`
	TaskDueDate     *time.Time `gorm:"type:timestamptz;column:task_due_date" json:"task_due_date,omitempty"`

	TaskMaxScore    float64 `gorm:"type:numeric(6,2);not null;default:100;column:task_max_score" json:"task_max_score"`
	TaskIsPublished bool    `gorm:"not null;default:false;column:task_is_published" json:"task_is_published"`

	TaskCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:task_created_at" json:"task_created_at"`
	TaskUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:task_updated_at" json:"task_updated_at"`
}

func (TaskModel) TableName() string { return "tasks" }
