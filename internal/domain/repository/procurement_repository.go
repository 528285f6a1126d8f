package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

// ProcurementFilter filtros del listado de compras.
type ProcurementFilter struct {
	VendorID        *int64
	SupplierInvoice string // coincidencia parcial
	DateReceived    *time.Time
	StoneType       string // filtran por líneas de la compra
	StoneName       string
	StageID         *int64
}

// ProcurementAnalytics totales del tablero de compras.
type ProcurementAnalytics struct {
	TotalProcurements int64
	TotalValue        decimal.Decimal
	UniqueVendors     int64
	TotalStones       int64
}

// ProcurementRepository define el puerto de persistencia de cabeceras de compra.
type ProcurementRepository interface {
	Create(ctx context.Context, p *entity.Procurement) error
	GetByID(ctx context.Context, id int64) (*entity.ProcurementView, error)
	List(ctx context.Context, filter ProcurementFilter, limit, offset int) ([]*entity.ProcurementView, int64, error)
	Analytics(ctx context.Context) (*ProcurementAnalytics, error)
	// VendorName devuelve el nombre del proveedor y si existe.
	VendorName(ctx context.Context, vendorID int64) (string, bool, error)
	// Touch actualiza updated_at (al agregar o quitar líneas).
	Touch(ctx context.Context, id int64) error
}
