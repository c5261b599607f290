// file: internals/features/users/provisioning/controller/provisioning_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"aulavirtual_backend/internals/configs"
	"aulavirtual_backend/internals/features/users/provisioning/dto"
	"aulavirtual_backend/internals/features/users/provisioning/service"
	helper "aulavirtual_backend/internals/helpers"
	helperAuth "aulavirtual_backend/internals/helpers/auth"
)

type ProvisioningController struct {
	Service *service.ProvisioningService
}

func NewProvisioningController(svc *service.ProvisioningService) *ProvisioningController {
	return &ProvisioningController{Service: svc}
}

// El endpoint se consume también desde otros orígenes (panel admin),
// por eso maneja su propio preflight con origen comodín.
func setCORSHeaders(c *fiber.Ctx) {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
	c.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

// Handle atiende ANY /admin-create-user y resuelve la máquina de estados del
// aprovisionamiento: método → preflight → auth → config → autorización →
// validación → creación → alineación.
func (ctrl *ProvisioningController) Handle(c *fiber.Ctx) error {
	setCORSHeaders(c)

	switch c.Method() {
	case fiber.MethodOptions:
		// preflight: sin procesar body
		return c.SendStatus(fiber.StatusOK)
	case fiber.MethodPost:
	default:
		return helper.JsonError(c, fiber.StatusMethodNotAllowed, "Método no permitido")
	}

	tokenString, err := helperAuth.ExtractBearerToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Falta el token de autorización")
	}

	if !configs.ProvisioningReady() || configs.JWTSecret == "" {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Configuración del servidor incompleta")
	}

	claims, err := helperAuth.ParseToken(tokenString, configs.JWTSecret)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token inválido")
	}
	callerID, err := helperAuth.UserIDFromClaims(claims)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token inválido")
	}

	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}

	result, err := ctrl.Service.CreateUser(c.UserContext(), callerID, body)
	if err != nil {
		return helper.JsonFromError(c, err)
	}

	resp := fiber.Map{
		"success": true,
		"user": fiber.Map{
			"id":    result.UserID,
			"email": result.Email,
		},
	}
	if result.Partial {
		resp["partial"] = true
		resp["message"] = result.Warning
	}
	return c.Status(fiber.StatusOK).JSON(resp)
}
