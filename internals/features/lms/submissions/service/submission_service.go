// file: internals/features/lms/submissions/service/submission_service.go
package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"aulavirtual_backend/internals/features/lms/submissions/dto"
	"aulavirtual_backend/internals/features/lms/submissions/model"
	"aulavirtual_backend/internals/gateway"
	helper "aulavirtual_backend/internals/helpers"
)

const submissionsTable = "submissions"

// SubmissionService: lectura paginada de entregas de una tarea. Las entregas
// se crean desde el flujo del alumno (fuera de este servicio); acá sólo se
// listan, consultan y borran.
type SubmissionService struct {
	store gateway.Store
}

func NewSubmissionService(store gateway.Store) *SubmissionService {
	return &SubmissionService{store: store}
}

// List devuelve las entregas de una tarea, ordenadas por fecha de entrega
// descendente, con búsqueda substring case-insensitive sobre el contenido.
func (s *SubmissionService) List(ctx context.Context, q dto.ListSubmissionsQuery) ([]model.SubmissionModel, int64, error) {
	if q.TaskID == uuid.Nil {
		return nil, 0, helper.NewValidationError("El id de la tarea es obligatorio")
	}

	query := gateway.Query{
		Table:   submissionsTable,
		Filters: gateway.Filter{"submission_task_id": q.TaskID},
		OrderBy: "submission_submitted_at",
		Desc:    true,
		Offset:  q.Offset,
		Limit:   q.Limit,
	}
	if strings.TrimSpace(q.Search) != "" {
		query.Search = &gateway.Search{Column: "submission_content", Term: strings.TrimSpace(q.Search)}
	}

	var rows []model.SubmissionModel
	total, err := s.store.Select(ctx, query, &rows)
	if err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

// GetByID devuelve (nil, nil) cuando no existe.
func (s *SubmissionService) GetByID(ctx context.Context, id uuid.UUID) (*model.SubmissionModel, error) {
	var rows []model.SubmissionModel
	_, err := s.store.Select(ctx, gateway.Query{
		Table:   submissionsTable,
		Filters: gateway.Filter{"submission_id": id},
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

func (s *SubmissionService) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return helper.NewValidationError("El id de la entrega es obligatorio")
	}
	return s.store.Delete(ctx, submissionsTable, gateway.Filter{"submission_id": id})
}
