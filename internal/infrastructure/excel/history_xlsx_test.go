package excel_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/infrastructure/excel"
)

func TestGenerateHistoryXLSX(t *testing.T) {
	reason := "Breakage"
	source := "Procurement Invoice: INV-1"
	at := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	h := &dto.InventoryHistoryResponse{
		Item: dto.InventoryItemResponse{
			ID: 12, StoneName: "Kota Blue", StoneType: "Limestone",
			LengthMM: 600, WidthMM: 400, Source: "procurement",
			QuantityPieces: 38, QuantitySqMeter: decimal.RequireFromString("9.12"),
		},
		Transactions: []dto.InventoryTransactionResponse{
			{
				ID: 2, OperationID: "op-2", TransactionType: "manual_remove", TransactionLabel: "Manual Remove",
				ChangeInSqMeter: decimal.RequireFromString("-0.88"), ChangeInPieces: -2,
				BalanceAfterSqMeter: decimal.RequireFromString("9.12"), BalanceAfterPieces: 38,
				Reason: &reason, PerformedBy: "System User", CreatedAt: at.Add(time.Hour),
			},
			{
				ID: 1, OperationID: "op-1", TransactionType: "procurement_initial_stock", TransactionLabel: "Initial Stock (Procurement)",
				ChangeInSqMeter: decimal.NewFromInt(10), ChangeInPieces: 42,
				BalanceAfterSqMeter: decimal.NewFromInt(10), BalanceAfterPieces: 42,
				SourceDetails: &source, PerformedBy: "System", CreatedAt: at,
			},
		},
	}

	data, err := excel.NewHistoryGenerator().GenerateHistoryXLSX(context.Background(), h)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(excel.SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 9)

	assert.Equal(t, []string{"Inventory Item", "12", "Stone", "Kota Blue", "Type", "Limestone"}, rows[0])
	assert.Equal(t, "600 x 400 mm", rows[1][1])
	assert.Equal(t, "ID", rows[6][0])
	assert.Equal(t, "Performed By", rows[6][9])

	assert.Equal(t, "2", rows[7][0])
	assert.Equal(t, "Manual Remove", rows[7][2])
	assert.Equal(t, "-0.88", rows[7][3])
	assert.Equal(t, "Breakage", rows[7][7])

	assert.Equal(t, "Initial Stock (Procurement)", rows[8][2])
	assert.Equal(t, "42", rows[8][4])
	assert.Equal(t, source, rows[8][8])
}

func TestGenerateHistoryXLSX_NoTransactions(t *testing.T) {
	h := &dto.InventoryHistoryResponse{Item: dto.InventoryItemResponse{ID: 3, StoneName: "Jaisalmer Yellow"}}

	data, err := excel.NewHistoryGenerator().GenerateHistoryXLSX(context.Background(), h)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(excel.SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 7)
}
