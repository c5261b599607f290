// file: internals/helpers/errors.go
package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"aulavirtual_backend/internals/gateway"
)

/* ===============================
   Taxonomía de errores de negocio
=================================*/

// ValidationError: input inválido (400).
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

func NewValidationError(msg string) error { return &ValidationError{Message: msg} }

// ConflictError: violación de integridad (409), p.ej. delete con FKs.
type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

func NewConflictError(msg string) error { return &ConflictError{Message: msg} }

// AuthorizationError: caller sin permisos (403).
type AuthorizationError struct{ Message string }

func (e *AuthorizationError) Error() string { return e.Message }

func NewAuthorizationError(msg string) error { return &AuthorizationError{Message: msg} }

// UpstreamError: fallo de un colaborador externo (RPC, API de cuentas).
// El mensaje upstream se pasa tal cual y responde 400.
type UpstreamError struct{ Message string }

func (e *UpstreamError) Error() string { return e.Message }

func NewUpstreamError(msg string) error { return &UpstreamError{Message: msg} }

/* ===============================
   Mapeo error → respuesta JSON
=================================*/

// JsonFromError responde con el status que corresponde al tipo de error.
// Los errores del gateway sin mapeo de negocio salen como 500 con el
// mensaje upstream tal cual.
func JsonFromError(c *fiber.Ctx, err error) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return JsonError(c, fiber.StatusBadRequest, ve.Message)
	}
	var ce *ConflictError
	if errors.As(err, &ce) {
		return JsonError(c, fiber.StatusConflict, ce.Message)
	}
	var ae *AuthorizationError
	if errors.As(err, &ae) {
		return JsonError(c, fiber.StatusForbidden, ae.Message)
	}
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return JsonError(c, fiber.StatusBadRequest, ue.Message)
	}
	var ge *gateway.Error
	if errors.As(err, &ge) {
		switch ge.Code {
		case gateway.ErrCodeForeignKey, gateway.ErrCodeUnique:
			return JsonError(c, fiber.StatusConflict, ge.Message)
		case gateway.ErrCodeNotFound:
			return JsonError(c, fiber.StatusNotFound, ge.Message)
		}
	}
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
