// file: internals/features/lms/grades/service/grade_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"aulavirtual_backend/internals/features/lms/grades/dto"
	"aulavirtual_backend/internals/features/lms/grades/model"
	"aulavirtual_backend/internals/gateway"
	helper "aulavirtual_backend/internals/helpers"
)

const (
	gradesTable      = "grades"
	submissionsTable = "submissions"
)

// GradeService coordina el flujo de calificación: upsert de la nota por
// (tarea, alumno) + marca de calificada en la entrega.
type GradeService struct {
	store gateway.Store
}

func NewGradeService(store gateway.Store) *GradeService {
	return &GradeService{store: store}
}

// UpsertTaskGrade:
//  1. busca la calificación por (task_id, student_id);
//  2. si existe actualiza score y feedback (feedback omitido limpia a null;
//     nunca queda el valor anterior), si no inserta la fila completa;
//  3. marca la entrega correspondiente con submission_graded_at = now.
//
// Ambas escrituras corren dentro de una transacción: si la marca de la
// entrega falla, la mutación de la nota se revierte en lugar de quedar a
// medio camino.
func (s *GradeService) UpsertTaskGrade(ctx context.Context, req dto.UpsertTaskGradeRequest) (*model.GradeModel, error) {
	if req.TaskID == uuid.Nil {
		return nil, helper.NewValidationError("El id de la tarea es obligatorio")
	}
	if req.StudentID == uuid.Nil {
		return nil, helper.NewValidationError("El id del alumno es obligatorio")
	}
	if req.Score < 0 {
		return nil, helper.NewValidationError("La calificación no puede ser negativa")
	}

	var out model.GradeModel
	err := s.store.Transaction(ctx, func(tx gateway.Store) error {
		pair := gateway.Filter{
			"grade_task_id":    req.TaskID,
			"grade_student_id": req.StudentID,
		}

		var existing []model.GradeModel
		if _, err := tx.Select(ctx, gateway.Query{
			Table:   gradesTable,
			Filters: pair,
			Limit:   1,
		}, &existing); err != nil {
			return err
		}

		now := time.Now().UTC()
		if len(existing) > 0 {
			grade := existing[0]
			patch := map[string]any{
				"grade_score":      req.Score,
				"grade_updated_at": now,
			}
			// feedback es escritura incondicional: omitido ⇒ NULL
			if req.Feedback != nil {
				patch["grade_feedback"] = *req.Feedback
			} else {
				patch["grade_feedback"] = nil
			}
			if req.GradedBy != nil {
				patch["grade_graded_by"] = *req.GradedBy
			}
			if err := tx.Update(ctx, gradesTable, patch, gateway.Filter{"grade_id": grade.GradeID}); err != nil {
				return err
			}
			grade.GradeScore = req.Score
			grade.GradeFeedback = req.Feedback
			if req.GradedBy != nil {
				grade.GradeGradedBy = req.GradedBy
			}
			grade.GradeUpdatedAt = now
			out = grade
		} else {
			grade := model.GradeModel{
				GradeID:            uuid.New(),
				GradeInstitutionID: req.InstitutionID,
				GradeEvaluationID:  req.EvaluationID,
				GradeStudentID:     req.StudentID,
				GradeTaskID:        req.TaskID,
				GradeScore:         req.Score,
				GradeFeedback:      req.Feedback,
				GradeGradedBy:      req.GradedBy,
				GradeCreatedAt:     now,
				GradeUpdatedAt:     now,
			}
			if err := tx.Insert(ctx, gradesTable, &grade); err != nil {
				return err
			}
			out = grade
		}

		// Paso 3, incondicional para ambas ramas
		return tx.Update(ctx, submissionsTable, map[string]any{
			"submission_graded_at": now,
		}, gateway.Filter{
			"submission_task_id":    req.TaskID,
			"submission_student_id": req.StudentID,
		})
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByTask devuelve las calificaciones de una tarea (últimas primero).
func (s *GradeService) ListByTask(ctx context.Context, q dto.ListGradesQuery) ([]model.GradeModel, int64, error) {
	if q.TaskID == uuid.Nil {
		return nil, 0, helper.NewValidationError("El id de la tarea es obligatorio")
	}
	var rows []model.GradeModel
	total, err := s.store.Select(ctx, gateway.Query{
		Table:   gradesTable,
		Filters: gateway.Filter{"grade_task_id": q.TaskID},
		OrderBy: "grade_updated_at",
		Desc:    true,
		Offset:  q.Offset,
		Limit:   q.Limit,
	}, &rows)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (s *GradeService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return helper.NewValidationError("El id de la calificación es obligatorio")
	}
	return s.store.Delete(ctx, gradesTable, gateway.Filter{"grade_id": id})
}
