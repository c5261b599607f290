// file: internals/features/lms/submissions/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	subcontroller "aulavirtual_backend/internals/features/lms/submissions/controller"
	"aulavirtual_backend/internals/gateway"
)

// RegisterSubmissionAdminRoutes
// Base: /api/a/submissions
func RegisterSubmissionAdminRoutes(r fiber.Router, store gateway.Store) {
	ctrl := subcontroller.NewSubmissionController(store)

	g := r.Group("/submissions")
	g.Get("/", ctrl.List) // ?task_id=&q=&page=&per_page=
	g.Get("/:id", ctrl.GetByID)
	g.Delete("/:id", ctrl.Delete)
}
