package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/tucontable-api/internal/application/dto"
	"github.com/jhoicas/tucontable-api/internal/domain"
)

// writeError traduce los errores de dominio a status + dto.ErrorResponse.
// Lo que no es de dominio se responde 500 sin exponer el detalle.
func writeError(c *fiber.Ctx, err error) error {
	status, code := fiber.StatusInternalServerError, "INTERNAL"
	msg := "error interno"
	switch {
	case errors.Is(err, domain.ErrInvalidRUT):
		status, code, msg = fiber.StatusBadRequest, "INVALID_RUT", err.Error()
	case errors.Is(err, domain.ErrInvalidPeriod):
		status, code, msg = fiber.StatusBadRequest, "INVALID_PERIOD", err.Error()
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrUnsupportedFormat):
		status, code, msg = fiber.StatusBadRequest, "UNSUPPORTED_FORMAT", err.Error()
	case errors.Is(err, domain.ErrNotFound):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado"
	case errors.Is(err, domain.ErrDuplicate):
		status, code, msg = fiber.StatusConflict, "DUPLICATE", err.Error()
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		status, code, msg = fiber.StatusConflict, "EMAIL_EXISTS", err.Error()
	case errors.Is(err, domain.ErrConflict):
		status, code, msg = fiber.StatusConflict, "CONFLICT", err.Error()
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrUnauthorized):
		status, code, msg = fiber.StatusUnauthorized, "UNAUTHORIZED", "credenciales inválidas"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "cuenta inactiva o suspendida"
	case errors.Is(err, domain.ErrAIUnavailable):
		status, code, msg = fiber.StatusServiceUnavailable, "AI_UNAVAILABLE", "el asistente no está disponible, intente más tarde"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func requireCompany(c *fiber.Ctx) (string, bool) {
	companyID := GetCompanyID(c)
	if companyID == "" {
		_ = c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token"})
		return "", false
	}
	return companyID, true
}
