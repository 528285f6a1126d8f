package procurement

import (
	"context"
	"time"

	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

// VendorStatement datos del estado de compras de un proveedor (para PDF).
type VendorStatement struct {
	VendorID    int64
	VendorName  string
	StartDate   *time.Time
	EndDate     *time.Time
	Items       []*entity.ProcurementItemView
	Stats       repository.VendorItemStats
	GeneratedAt time.Time
}

// StatementPDFGenerator puerto de salida para renderizar el estado de compras.
type StatementPDFGenerator interface {
	GenerateVendorStatement(ctx context.Context, st *VendorStatement) ([]byte, error)
}
