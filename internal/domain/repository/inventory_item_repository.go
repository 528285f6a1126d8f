package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

// InventoryItemFilter filtros del listado de inventario. Los punteros nil no filtran.
type InventoryItemFilter struct {
	StoneType       string
	StoneName       string // coincidencia parcial
	StageID         *int64
	EdgesTypeID     *int64
	FinishingTypeID *int64
	Source          entity.Source
}

// InventoryAnalytics totales del tablero de inventario.
type InventoryAnalytics struct {
	TotalItems           int64 // líneas con piezas > 0
	RawMaterials         int64 // etapa 1
	PackagingComplete    int64 // etapa 6
	TotalQuantityPieces  int64
	TotalQuantitySqMeter decimal.Decimal
}

// InventoryItemRepository define el puerto de persistencia de líneas de inventario.
type InventoryItemRepository interface {
	// FindOrCreate devuelve la línea con esos atributos y origen, creándola si no existe.
	// Tras la llamada la fila queda bloqueada hasta el fin de la transacción.
	FindOrCreate(ctx context.Context, attrs entity.ItemAttributes, source entity.Source) (id int64, isNew bool, err error)
	GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error)
	// GetForUpdate bloquea la fila (SELECT FOR UPDATE) antes de leer el saldo.
	GetForUpdate(ctx context.Context, id int64) (*entity.InventoryItem, error)
	GetView(ctx context.Context, id int64) (*entity.InventoryItemView, error)
	List(ctx context.Context, filter InventoryItemFilter, limit, offset int) ([]*entity.InventoryItemView, int64, error)
	ListIDs(ctx context.Context) ([]int64, error)
	Analytics(ctx context.Context) (*InventoryAnalytics, error)
	// Delete elimina la línea y, por cascada, su ledger.
	Delete(ctx context.Context, id int64) error
}
