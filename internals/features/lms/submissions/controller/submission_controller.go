// file: internals/features/lms/submissions/controller/submission_controller.go
package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aulavirtual_backend/internals/features/lms/submissions/dto"
	"aulavirtual_backend/internals/features/lms/submissions/service"
	"aulavirtual_backend/internals/gateway"
	helper "aulavirtual_backend/internals/helpers"
)

type SubmissionController struct {
	Service *service.SubmissionService
}

func NewSubmissionController(store gateway.Store) *SubmissionController {
	return &SubmissionController{Service: service.NewSubmissionService(store)}
}

// GET / ?task_id=&q=&page=&per_page=
func (ctrl *SubmissionController) List(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(strings.TrimSpace(c.Query("task_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "task_id inválido")
	}

	paging := helper.ResolvePaging(c, 20, 200)
	rows, total, err := ctrl.Service.List(c.UserContext(), dto.ListSubmissionsQuery{
		TaskID: taskID,
		Search: strings.TrimSpace(c.Query("q")),
		Offset: paging.Offset,
		Limit:  paging.Limit,
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Entregas obtenidas", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// GET /:id
func (ctrl *SubmissionController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	sub, err := ctrl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if sub == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Entrega no encontrada")
	}
	return helper.JsonOK(c, "Entrega obtenida", sub)
}

// DELETE /:id
func (ctrl *SubmissionController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Entrega eliminada", fiber.Map{"submission_id": id})
}
