// file: internals/features/users/provisioning/route/route.go
package route

import (
	"github.com/gofiber/fiber/v2"

	provcontroller "aulavirtual_backend/internals/features/users/provisioning/controller"
	"aulavirtual_backend/internals/features/users/provisioning/service"
	"aulavirtual_backend/internals/gateway"
)

// RegisterProvisioningRoutes
// El endpoint maneja su propio método/preflight, por eso se registra con All.
func RegisterProvisioningRoutes(app *fiber.App, store gateway.Store, accounts service.AccountsClient) {
	ctrl := provcontroller.NewProvisioningController(
		service.NewProvisioningService(store, accounts))

	app.All("/admin-create-user", ctrl.Handle)
}
