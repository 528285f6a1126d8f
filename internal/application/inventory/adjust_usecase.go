package inventory

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

// DefaultManualPerformer se registra como performed_by cuando la petición no trae usuario.
const DefaultManualPerformer = "System User"

// AdjustUseCase ingresos y ajustes manuales de stock. Cada operación es una sola transacción
// con la fila de inventario bloqueada (SELECT FOR UPDATE) antes de leer el saldo.
type AdjustUseCase struct {
	txRunner  TxRunner
	log       *logger.Logger
	performer string
}

// NewAdjustUseCase construye el caso de uso. performer vacío usa DefaultManualPerformer.
func NewAdjustUseCase(txRunner TxRunner, log *logger.Logger, performer string) *AdjustUseCase {
	if performer == "" {
		performer = DefaultManualPerformer
	}
	return &AdjustUseCase{txRunner: txRunner, log: log, performer: performer}
}

// ManualAdd ingresa stock a la línea manual con esos atributos, creándola si no existe.
func (uc *AdjustUseCase) ManualAdd(ctx context.Context, in dto.ManualAddRequest) (*dto.ManualAddResponse, error) {
	attrs, err := NormalizeAttributes(in.ItemAttributesRequest)
	if err != nil {
		return nil, err
	}
	unit := entity.Unit(in.Unit)
	if !in.Quantity.IsPositive() {
		return nil, domain.Invalid("quantity must be greater than zero")
	}
	delta, err := MasterDelta(in.Quantity, unit, attrs.LengthMM, attrs.WidthMM)
	if err != nil {
		return nil, err
	}

	opID := uuid.New().String()
	var out *dto.ManualAddResponse
	err = uc.txRunner.Run(ctx, func(r Repos) error {
		item, isNew, err := ResolveItem(ctx, r, attrs, entity.SourceManual)
		if err != nil {
			return err
		}
		row, err := AppendEntry(ctx, r, item, Entry{
			OperationID:   opID,
			Type:          entity.TxManualAdd,
			ChangeSqMeter: delta,
			Reason:        in.Reason,
			PerformedBy:   uc.performedBy(in.PerformedBy),
		})
		if err != nil {
			return err
		}
		out = &dto.ManualAddResponse{
			InventoryItemID:   item.ID,
			Created:           isNew,
			OperationID:       opID,
			AddedSqMeter:      row.ChangeInSqMeter,
			AddedPieces:       row.ChangeInPieces,
			NewBalanceSqMeter: row.BalanceAfterSqMeter,
			NewBalancePieces:  row.BalanceAfterPieces,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.log.Debug().Str("operation_id", opID).Int64("inventory_item_id", out.InventoryItemID).
		Str("added_sq_meter", out.AddedSqMeter.String()).Bool("created", out.Created).Msg("manual add")
	return out, nil
}

// Adjust aplica una cantidad con signo a una línea existente. Un retiro que deje cualquiera
// de las dos unidades en negativo se rechaza sin escribir nada.
func (uc *AdjustUseCase) Adjust(ctx context.Context, in dto.ManualAdjustRequest) (*dto.ManualAdjustResponse, error) {
	if in.InventoryItemID <= 0 {
		return nil, domain.Invalid("inventory_item_id is required")
	}
	if in.Quantity.IsZero() {
		return nil, domain.Invalid("quantity must be non-zero")
	}
	unit := entity.Unit(in.Unit)
	if !unit.Valid() {
		return nil, domain.Invalid("unit must be 'Pieces' or 'Sq Meter'")
	}

	opID := uuid.New().String()
	var out *dto.ManualAdjustResponse
	err := uc.txRunner.Run(ctx, func(r Repos) error {
		item, err := r.Items.GetForUpdate(ctx, in.InventoryItemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.NotFound("inventory item")
		}
		delta, err := MasterDelta(in.Quantity, unit, item.LengthMM, item.WidthMM)
		if err != nil {
			return err
		}
		row, err := AppendEntry(ctx, r, item, Entry{
			OperationID:   opID,
			Type:          ManualType(delta),
			ChangeSqMeter: delta,
			Reason:        in.Reason,
			PerformedBy:   uc.performedBy(in.PerformedBy),
		})
		if err != nil {
			return err
		}
		out = &dto.ManualAdjustResponse{
			InventoryItemID:   item.ID,
			OperationID:       opID,
			ChangedSqMeter:    row.ChangeInSqMeter,
			ChangedPieces:     row.ChangeInPieces,
			NewBalanceSqMeter: row.BalanceAfterSqMeter,
			NewBalancePieces:  row.BalanceAfterPieces,
		}
		return nil
	})
	if err != nil {
		var short *domain.InsufficientStockError
		if errors.As(err, &short) {
			uc.log.Warn().Int64("inventory_item_id", in.InventoryItemID).Str("unit", short.Unit).
				Str("requested", short.Requested.String()).Str("available", short.Available.String()).
				Msg("manual removal rejected")
		}
		return nil, err
	}
	uc.log.Debug().Str("operation_id", opID).Int64("inventory_item_id", out.InventoryItemID).
		Str("changed_sq_meter", out.ChangedSqMeter.String()).Msg("manual adjust")
	return out, nil
}

func (uc *AdjustUseCase) performedBy(user string) string {
	if user != "" {
		return user
	}
	return uc.performer
}
