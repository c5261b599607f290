// file: internals/features/lms/grades/model/grade_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Invariante: a lo sumo una calificación por (tarea, alumno). La garantiza el
// upsert del GradeService, no una unique constraint visible en esta capa.
type GradeModel struct {
	GradeID            uuid.UUID  `gorm:"type:uuid;primaryKey;column:grade_id" json:"grade_id"`
	GradeInstitutionID *uuid.UUID `gorm:"type:uuid;column:grade_institution_id" json:"grade_institution_id,omitempty"`
	GradeEvaluationID  *uuid.UUID `gorm:"type:uuid;column:grade_evaluation_id" json:"grade_evaluation_id,omitempty"`

	GradeStudentID uuid.UUID `gorm:"type:uuid;not null;column:grade_student_id" json:"grade_student_id"`
	GradeTaskID    uuid.UUID `gorm:"type:uuid;not null;column:grade_task_id" json:"grade_task_id"`

	GradeScore    float64 `gorm:"type:numeric(6,2);not null;column:grade_score" json:"grade_score"`
	GradeFeedback *string `gorm:"type:text;column:grade_feedback" json:"grade_feedback,omitempty"`

	GradeGradedBy *uuid.UUID `gorm:"type:uuid;column:grade_graded_by" json:"grade_graded_by,omitempty"`

	GradeCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:grade_created_at" json:"grade_created_at"`
	GradeUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:grade_updated_at" json:"grade_updated_at"`
}

func (GradeModel) TableName() string { return "grades" }
