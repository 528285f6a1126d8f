package inventory

import (
	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

// ToItemResponse convierte la vista de una línea a DTO.
func ToItemResponse(v *entity.InventoryItemView) dto.InventoryItemResponse {
	return dto.InventoryItemResponse{
		ID:               v.ID,
		StoneID:          v.StoneID,
		StoneName:        v.StoneName,
		StoneType:        v.StoneType,
		LengthMM:         v.LengthMM,
		WidthMM:          v.WidthMM,
		ThicknessMM:      v.ThicknessMM,
		IsCalibrated:     v.IsCalibrated,
		EdgesTypeID:      v.EdgesTypeID,
		EdgesType:        v.EdgesType,
		FinishingTypeID:  v.FinishingTypeID,
		FinishingType:    v.FinishingType,
		StageID:          v.StageID,
		Stage:            v.Stage,
		Source:           string(v.Source),
		QuantityPieces:   v.QuantityPieces,
		QuantitySqMeter:  v.QuantitySqMeter,
		LastActivityDate: v.LastActivityDate,
		CreatedAt:        v.CreatedAt,
	}
}

// ToTransactionResponse convierte una fila del ledger a DTO.
func ToTransactionResponse(t *entity.InventoryTransaction) dto.InventoryTransactionResponse {
	return dto.InventoryTransactionResponse{
		ID:                  t.ID,
		OperationID:         t.OperationID,
		TransactionType:     string(t.Type),
		TransactionLabel:    t.Type.Label(),
		ChangeInSqMeter:     t.ChangeInSqMeter,
		ChangeInPieces:      t.ChangeInPieces,
		BalanceAfterSqMeter: t.BalanceAfterSqMeter,
		BalanceAfterPieces:  t.BalanceAfterPieces,
		Reason:              t.Reason,
		SourceDetails:       t.SourceDetails,
		PerformedBy:         t.PerformedBy,
		CreatedAt:           t.CreatedAt,
	}
}

// ToLedgerCheckResponse convierte un reporte de verificación a DTO.
func ToLedgerCheckResponse(r *LedgerReport) dto.LedgerCheckResponse {
	out := dto.LedgerCheckResponse{
		InventoryItemID: r.InventoryItemID,
		Transactions:    r.Transactions,
		BalanceSqMeter:  r.Balance.SqMeter,
		BalancePieces:   r.Balance.Pieces,
		Consistent:      r.Consistent(),
		Violations:      make([]dto.LedgerViolationResponse, 0, len(r.Violations)),
	}
	for _, v := range r.Violations {
		out.Violations = append(out.Violations, dto.LedgerViolationResponse{TransactionID: v.TransactionID, Problem: v.Problem})
	}
	return out
}
