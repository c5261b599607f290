// file: internals/features/lms/grades/dto/grade_dto.go
package dto

import "github.com/google/uuid"

type UpsertTaskGradeRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	TaskID    uuid.UUID `json:"task_id" validate:"required"`
	Score     float64   `json:"score" validate:"gte=0"`

	// feedback omitido limpia el anterior (queda en null), nunca se conserva
	Feedback *string `json:"feedback,omitempty"`

	GradedBy      *uuid.UUID `json:"graded_by,omitempty"`
	InstitutionID *uuid.UUID `json:"institution_id,omitempty"`
	EvaluationID  *uuid.UUID `json:"evaluation_id,omitempty"`
}

type ListGradesQuery struct {
	TaskID uuid.UUID
	Offset int
	Limit  int
}
