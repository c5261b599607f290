// file: internals/features/lms/grades/controller/grade_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aulavirtual_backend/internals/features/lms/grades/dto"
	"aulavirtual_backend/internals/features/lms/grades/service"
	"aulavirtual_backend/internals/gateway"
	helper "aulavirtual_backend/internals/helpers"
	helperAuth "aulavirtual_backend/internals/helpers/auth"
)

type GradeController struct {
	Service   *service.GradeService
	Validator *validator.Validate
}

func NewGradeController(store gateway.Store) *GradeController {
	return &GradeController{
		Service:   service.NewGradeService(store),
		Validator: validator.New(),
	}
}

// PUT /task-grade
func (ctrl *GradeController) UpsertTaskGrade(c *fiber.Ctx) error {
	var body dto.UpsertTaskGradeRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// graded_by e institución por defecto desde el token del caller
	if body.GradedBy == nil {
		if uid, err := helperAuth.GetUserIDFromLocals(c); err == nil {
			body.GradedBy = &uid
		}
	}
	if body.InstitutionID == nil {
		body.InstitutionID = helperAuth.GetInstitutionIDFromLocals(c)
	}

	grade, err := ctrl.Service.UpsertTaskGrade(c.UserContext(), body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Calificación registrada", grade)
}

// GET / ?task_id=&page=&per_page=
func (ctrl *GradeController) List(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(strings.TrimSpace(c.Query("task_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "task_id inválido")
	}

	paging := helper.ResolvePaging(c, 20, 200)
	rows, total, err := ctrl.Service.ListByTask(c.UserContext(), dto.ListGradesQuery{
		TaskID: taskID,
		Offset: paging.Offset,
		Limit:  paging.Limit,
	})
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Calificaciones obtenidas", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// DELETE /:id
func (ctrl *GradeController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Calificación eliminada", fiber.Map{"grade_id": id})
}
