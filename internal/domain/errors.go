package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias de infraestructura).
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrDuplicate         = errors.New("duplicate resource")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrConflict          = errors.New("conflict with current state")
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Unidades en las que se expresa un faltante de stock.
const (
	StockUnitSqMeter = "sq meters"
	StockUnitPieces  = "pieces"
)

// InsufficientStockError detalla cuánto se pidió retirar y cuánto había disponible.
// errors.Is(err, ErrInsufficientStock) es verdadero.
type InsufficientStockError struct {
	Unit      string
	Requested decimal.Decimal
	Available decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	if e.Unit == StockUnitPieces {
		return fmt.Sprintf("Cannot remove %s pieces. Only %s pieces available.",
			e.Requested.String(), e.Available.String())
	}
	return fmt.Sprintf("Cannot remove %s sq meters. Only %s sq meters available.",
		e.Requested.StringFixed(4), e.Available.StringFixed(4))
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

// Invalid construye un error de validación con mensaje para el cliente.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Duplicate construye un ErrDuplicate con mensaje para el cliente.
func Duplicate(msg string) error {
	return fmt.Errorf("%w: %s", ErrDuplicate, msg)
}

// NotFound construye un ErrNotFound con el recurso indicado.
func NotFound(resource string) error {
	return fmt.Errorf("%w: %s not found", ErrNotFound, resource)
}
