// file: internals/features/lms/tasks/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	taskcontroller "aulavirtual_backend/internals/features/lms/tasks/controller"
	"aulavirtual_backend/internals/gateway"
)

// RegisterTaskAdminRoutes
// Base: /api/a/tasks
func RegisterTaskAdminRoutes(r fiber.Router, store gateway.Store) {
	ctrl := taskcontroller.NewTaskController(store)

	g := r.Group("/tasks")
	g.Get("/", ctrl.List) // ?q=&course_id=&is_published=&page=&per_page=
	g.Post("/", ctrl.Create)
	g.Get("/by-course/:course_id", ctrl.GetByCourse)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id/publish", ctrl.Publish)
	g.Patch("/:id", ctrl.Patch)
	g.Delete("/:id", ctrl.Delete)
}
