// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"aulavirtual_backend/internals/configs"
	"aulavirtual_backend/internals/constants"
	graderoute "aulavirtual_backend/internals/features/lms/grades/route"
	subroute "aulavirtual_backend/internals/features/lms/submissions/route"
	taskroute "aulavirtual_backend/internals/features/lms/tasks/route"
	provroute "aulavirtual_backend/internals/features/users/provisioning/route"
	provservice "aulavirtual_backend/internals/features/users/provisioning/service"
	"aulavirtual_backend/internals/gateway"
	authmw "aulavirtual_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	store := gateway.NewGormStore(db)

	// ===================== ADMIN / TEACHER =====================
	log.Println("[INFO] Registrando grupo /api/a ...")
	admin := app.Group("/api/a",
		authmw.AuthMiddleware(),
		authmw.RequireRoles(constants.TeacherAndAbove...),
	)
	taskroute.RegisterTaskAdminRoutes(admin, store)
	subroute.RegisterSubmissionAdminRoutes(admin, store)
	graderoute.RegisterGradeAdminRoutes(admin, store)

	// ===================== PROVISIONING =====================
	log.Println("[INFO] Registrando /admin-create-user ...")
	accounts := provservice.NewHTTPAccountsClient(
		configs.AuthBaseURL,
		configs.AuthAnonKey,
		configs.AuthServiceKey,
	)
	provroute.RegisterProvisioningRoutes(app, store, accounts)
}
