// file: internals/features/lms/tasks/controller/task_controller.go
package controller

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"aulavirtual_backend/internals/features/lms/tasks/dto"
	"aulavirtual_backend/internals/features/lms/tasks/service"
	"aulavirtual_backend/internals/gateway"
	helper "aulavirtual_backend/internals/helpers"
	helperAuth "aulavirtual_backend/internals/helpers/auth"
)

type TaskController struct {
	Service   *service.TaskService
	Validator *validator.Validate
}

func NewTaskController(store gateway.Store) *TaskController {
	return &TaskController{
		Service:   service.NewTaskService(store),
		Validator: validator.New(),
	}
}

// GET / ?q=&course_id=&is_published=&page=&per_page=
func (ctrl *TaskController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := dto.ListTasksQuery{
		Search: strings.TrimSpace(c.Query("q")),
		Offset: paging.Offset,
		Limit:  paging.Limit,
	}
	if raw := strings.TrimSpace(c.Query("course_id")); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "course_id inválido")
		}
		q.CourseID = &id
	}
	if raw := strings.TrimSpace(c.Query("is_published")); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "is_published inválido")
		}
		q.IsPublished = &v
	}

	rows, total, err := ctrl.Service.List(c.UserContext(), q)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonList(c, "Tareas obtenidas", rows,
		helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage))
}

// POST /
func (ctrl *TaskController) Create(c *fiber.Ctx) error {
	var body dto.CreateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := ctrl.Validator.Struct(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// La institución sale del token del caller; el body no puede pisarla.
	if inst := helperAuth.GetInstitutionIDFromLocals(c); inst != nil {
		body.TaskInstitutionID = *inst
	}

	task, err := ctrl.Service.Create(c.UserContext(), body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonCreated(c, "Tarea creada", task)
}

// PATCH /:id
func (ctrl *TaskController) Patch(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var body dto.UpdateTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	task, err := ctrl.Service.Update(c.UserContext(), id, body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if task == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tarea no encontrada")
	}
	return helper.JsonUpdated(c, "Tarea actualizada", task)
}

// PATCH /:id/publish
func (ctrl *TaskController) Publish(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var body dto.PublishTaskRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	if err := ctrl.Service.Publish(c.UserContext(), id, body.TaskIsPublished); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonUpdated(c, "Estado de publicación actualizado", fiber.Map{
		"task_id":           id,
		"task_is_published": body.TaskIsPublished,
	})
}

// DELETE /:id
func (ctrl *TaskController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonDeleted(c, "Tarea eliminada", fiber.Map{"task_id": id})
}

// GET /:id
func (ctrl *TaskController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	task, err := ctrl.Service.GetByID(c.UserContext(), id)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	if task == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Tarea no encontrada")
	}
	return helper.JsonOK(c, "Tarea obtenida", task)
}

// GET /by-course/:course_id
func (ctrl *TaskController) GetByCourse(c *fiber.Ctx) error {
	courseID, err := uuid.Parse(strings.TrimSpace(c.Params("course_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "course_id inválido")
	}

	rows, err := ctrl.Service.GetByCourse(c.UserContext(), courseID)
	if err != nil {
		return helper.JsonFromError(c, err)
	}
	return helper.JsonOK(c, "Tareas del curso obtenidas", rows)
}
