package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

// VendorItemFilter filtros del reporte de líneas compradas a un proveedor.
type VendorItemFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	StoneType string
	StoneName string
}

// VendorItemStats totales del reporte por proveedor.
type VendorItemStats struct {
	TotalItems        int64
	TotalAmount       decimal.Decimal
	TotalProcurements int64
}

// ProcurementItemRepository define el puerto de persistencia de líneas de compra.
type ProcurementItemRepository interface {
	Create(ctx context.Context, item *entity.ProcurementItem) error
	GetByID(ctx context.Context, id int64) (*entity.ProcurementItem, error)
	ListByProcurement(ctx context.Context, procurementID int64) ([]*entity.ProcurementItemView, error)
	// CountLinked cuenta las líneas de compra que apuntan a inventoryItemID, excluyendo exceptID.
	CountLinked(ctx context.Context, inventoryItemID, exceptID int64) (int64, error)
	// ListByVendor con limit <= 0 devuelve todas las líneas.
	ListByVendor(ctx context.Context, vendorID int64, filter VendorItemFilter, limit, offset int) ([]*entity.ProcurementItemView, int64, error)
	VendorStats(ctx context.Context, vendorID int64, filter VendorItemFilter) (*VendorItemStats, error)
	Delete(ctx context.Context, id int64) error
}
