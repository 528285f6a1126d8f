package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

// Códigos de error expuestos al cliente.
const (
	CodeValidation        = "VALIDATION"
	CodeNotFound          = "NOT_FOUND"
	CodeInsufficientStock = "INSUFFICIENT_STOCK"
	CodeConflict          = "CONFLICT"
	CodeDuplicate         = "DUPLICATE"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeInternal          = "INTERNAL"
)

// ErrorHandler traduce los errores devueltos por los handlers a dto.ErrorResponse.
// En producción el detalle de los errores internos no se expone.
func ErrorHandler(log *logger.Logger, production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := classify(err)
		if status == fiber.StatusInternalServerError {
			log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
			if production {
				body.Message = "internal server error"
			}
		}
		return c.Status(status).JSON(body)
	}
}

func classify(err error) (int, dto.ErrorResponse) {
	var stockErr *domain.InsufficientStockError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &stockErr):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeInsufficientStock, Message: stockErr.Error()}
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeInsufficientStock, Message: message(err, domain.ErrInsufficientStock)}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: message(err, domain.ErrInvalidInput)}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: CodeNotFound, Message: message(err, domain.ErrNotFound)}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeConflict, Message: message(err, domain.ErrConflict)}
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, dto.ErrorResponse{Code: CodeDuplicate, Message: message(err, domain.ErrDuplicate)}
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: CodeUnauthorized, Message: message(err, domain.ErrUnauthorized)}
	case errors.As(err, &fiberErr):
		switch fiberErr.Code {
		case fiber.StatusNotFound:
			return fiberErr.Code, dto.ErrorResponse{Code: CodeNotFound, Message: fiberErr.Message}
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
			return fiber.StatusBadRequest, dto.ErrorResponse{Code: CodeValidation, Message: fiberErr.Message}
		case fiber.StatusMethodNotAllowed:
			return fiberErr.Code, dto.ErrorResponse{Code: CodeNotFound, Message: fiberErr.Message}
		}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: CodeInternal, Message: err.Error()}
}

// message quita el prefijo del sentinel ("invalid input: ...") y deja el texto para el cliente.
func message(err, sentinel error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}
