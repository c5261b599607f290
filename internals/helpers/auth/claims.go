// file: internals/helpers/auth/claims.go
package helperAuth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// ExtractBearerToken toma el token del header Authorization ("Bearer xxx").
func ExtractBearerToken(c *fiber.Ctx) (string, error) {
	h := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if h == "" {
		return "", errors.New("falta el header Authorization")
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("header Authorization inválido")
	}
	return strings.TrimSpace(parts[1]), nil
}

// ParseToken verifica firma HS256 y expiración, y devuelve los claims.
func ParseToken(tokenString, secret string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("método de firma inesperado")
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// UserIDFromClaims: claim "sub" (o "user_id") como UUID.
func UserIDFromClaims(claims jwt.MapClaims) (uuid.UUID, error) {
	for _, key := range []string{"sub", "user_id"} {
		if raw, ok := claims[key].(string); ok && raw != "" {
			return uuid.Parse(raw)
		}
	}
	return uuid.Nil, errors.New("el token no contiene user id")
}

/* =========================
   Lectura desde Locals (seteados por el middleware)
========================= */

func GetUserIDFromLocals(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, errors.New("user_id no presente en el contexto")
	}
	return uuid.Parse(raw)
}

func GetRoleFromLocals(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}

func GetInstitutionIDFromLocals(c *fiber.Ctx) *uuid.UUID {
	raw, ok := c.Locals("institution_id").(string)
	if !ok || raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}
