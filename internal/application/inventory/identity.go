package inventory

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/stock"
)

// NormalizeAttributes valida la tupla física y trunca las dimensiones a mm enteros.
// Los ids de catálogo en 0 se tratan como ausentes.
func NormalizeAttributes(in dto.ItemAttributesRequest) (entity.ItemAttributes, error) {
	attrs := entity.ItemAttributes{
		StoneID:         in.StoneID,
		LengthMM:        stock.FloorMM(in.LengthMM),
		WidthMM:         stock.FloorMM(in.WidthMM),
		IsCalibrated:    in.IsCalibrated,
		EdgesTypeID:     optionalID(in.EdgesTypeID),
		FinishingTypeID: optionalID(in.FinishingTypeID),
		StageID:         optionalID(in.StageID),
	}
	if attrs.StoneID <= 0 {
		return attrs, domain.Invalid("stone_id is required")
	}
	if attrs.LengthMM <= 0 || attrs.WidthMM <= 0 {
		return attrs, domain.Invalid("length_mm and width_mm must be at least 1 mm")
	}
	if in.ThicknessMM != nil && !in.ThicknessMM.IsZero() {
		t := stock.FloorMM(*in.ThicknessMM)
		if t <= 0 {
			return attrs, domain.Invalid("thickness_mm must be at least 1 mm")
		}
		attrs.ThicknessMM = &t
	}
	return attrs, nil
}

func optionalID(id *int64) *int64 {
	if id == nil || *id <= 0 {
		return nil
	}
	v := *id
	return &v
}

// ResolveItem busca o crea la línea de inventario para la tupla y origen dados.
// La fila queda bloqueada hasta el fin de la transacción.
func ResolveItem(ctx context.Context, r Repos, attrs entity.ItemAttributes, source entity.Source) (*entity.InventoryItem, bool, error) {
	if !source.Valid() {
		return nil, false, domain.Invalid("unknown inventory source %q", source)
	}
	id, isNew, err := r.Items.FindOrCreate(ctx, attrs, source)
	if err != nil {
		return nil, false, err
	}
	return &entity.InventoryItem{ID: id, ItemAttributes: attrs, Source: source}, isNew, nil
}

// MasterDelta convierte una cantidad expresada en unit a metros cuadrados (con signo),
// redondeada a la escala de almacenamiento.
func MasterDelta(quantity decimal.Decimal, unit entity.Unit, lengthMM, widthMM int64) (decimal.Decimal, error) {
	switch unit {
	case entity.UnitSqMeter:
		return stock.RoundSqMeter(quantity), nil
	case entity.UnitPieces:
		if !quantity.Equal(quantity.Truncate(0)) {
			return decimal.Zero, domain.Invalid("piece quantities must be whole numbers")
		}
		return stock.RoundSqMeter(stock.SignedSqMeterFromPieces(quantity.IntPart(), lengthMM, widthMM)), nil
	}
	return decimal.Zero, domain.Invalid("unit must be 'Pieces' or 'Sq Meter'")
}
