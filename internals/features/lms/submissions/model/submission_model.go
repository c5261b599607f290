// file: internals/features/lms/submissions/model/submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type SubmissionModel struct {
	SubmissionID        uuid.UUID `gorm:"type:uuid;primaryKey;column:submission_id" json:"submission_id"`
	SubmissionTaskID    uuid.UUID `gorm:"type:uuid;not null;column:submission_task_id" json:"submission_task_id"`
	SubmissionStudentID uuid.UUID `gorm:"type:uuid;not null;column:submission_student_id" json:"submission_student_id"`

	SubmissionContent *string `gorm:"type:text;column:submission_content" json:"submission_content,omitempty"`
	SubmissionFileURL *string `gorm:"type:varchar(500);column:submission_file_url" json:"submission_file_url,omitempty"`

	SubmissionSubmittedAt time.Time  `gorm:"type:timestamptz;not null;default:now();column:submission_submitted_at" json:"submission_submitted_at"`
	// null hasta que el Grading Workflow la marca como calificada
	SubmissionGradedAt    *time.Time `gorm:"type:timestamptz;column:submission_graded_at" json:"submission_graded_at,omitempty"`
}

func (SubmissionModel) TableName() string { return "submissions" }
