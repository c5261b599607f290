// file: internals/features/lms/grades/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	gradecontroller "aulavirtual_backend/internals/features/lms/grades/controller"
	"aulavirtual_backend/internals/gateway"
)

// RegisterGradeAdminRoutes
// Base: /api/a/grades
func RegisterGradeAdminRoutes(r fiber.Router, store gateway.Store) {
	ctrl := gradecontroller.NewGradeController(store)

	g := r.Group("/grades")
	g.Put("/task-grade", ctrl.UpsertTaskGrade)
	g.Get("/", ctrl.List) // ?task_id=&page=&per_page=
	g.Delete("/:id", ctrl.Delete)
}
