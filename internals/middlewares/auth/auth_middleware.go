// file: internals/middlewares/auth/auth_middleware.go
package auth

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"aulavirtual_backend/internals/configs"
	helperAuth "aulavirtual_backend/internals/helpers/auth"
)

// AuthMiddleware verifica el JWT del caller y guarda user_id, role e
// institution_id en Locals.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := helperAuth.ExtractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		secret := configs.JWTSecret
		if secret == "" {
			log.Println("[ERROR] JWT_SECRET vacío")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims, err := helperAuth.ParseToken(tokenString, secret)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - token inválido")
		}

		userID, err := helperAuth.UserIDFromClaims(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - user id faltante")
		}
		c.Locals("user_id", userID.String())

		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		if inst, ok := claims["institution_id"].(string); ok {
			c.Locals("institution_id", inst)
		}

		return c.Next()
	}
}

// RequireRoles corta con 403 si el rol del caller no está en la lista.
func RequireRoles(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		for _, r := range roles {
			if r == role {
				return c.Next()
			}
		}
		return fiber.NewError(fiber.StatusForbidden, "Rol sin permisos para esta operación")
	}
}
