package http_test

import (
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	apphttp "github.com/stoneworks/inventory-api/internal/interfaces/http"
)

func (s *testServer) manualAdd(t *testing.T, qty string, unit string) dto.ManualAddResponse {
	t.Helper()
	resp := s.do(t, http.MethodPost, "/api/inventory/manual-add", map[string]any{
		"stone_id":  s.stone,
		"length_mm": 600,
		"width_mm":  400,
		"stage_id":  1,
		"quantity":  qty,
		"unit":      unit,
		"reason":    "opening stock",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decode[dto.ManualAddResponse](t, resp)
}

func TestManualAdd_CreatesItemAndReturns201(t *testing.T) {
	s := newTestServer(t)

	out := s.manualAdd(t, "10", "Sq Meter")

	assert.True(t, out.Created)
	assert.True(t, out.NewBalanceSqMeter.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, int64(42), out.NewBalancePieces)
	assert.NotEmpty(t, out.OperationID)

	again := s.manualAdd(t, "5", "Pieces")
	assert.False(t, again.Created)
	assert.Equal(t, out.InventoryItemID, again.InventoryItemID)
	assert.Equal(t, int64(47), again.NewBalancePieces)
}

func TestManualAdd_InvalidUnitIs400(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/inventory/manual-add", map[string]any{
		"stone_id": s.stone, "length_mm": 600, "width_mm": 400, "quantity": 1, "unit": "Tons",
	})

	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, body.Code)
	assert.Contains(t, body.Message, "unit")
}

func TestManualAdd_MalformedJSONIs400(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/inventory/manual-add", "not-an-object")

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestManualAdjust_InsufficientStockIs409(t *testing.T) {
	s := newTestServer(t)
	added := s.manualAdd(t, "10", "Sq Meter")

	resp := s.do(t, http.MethodPost, "/api/inventory/manual-adjust", map[string]any{
		"inventory_item_id": added.InventoryItemID,
		"quantity":          "-20",
		"unit":              "Sq Meter",
		"reason":            "breakage",
	})

	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeInsufficientStock, body.Code)
	assert.Contains(t, body.Message, "Only 10.0000 sq meters available")
	assert.Len(t, s.store.Transactions(added.InventoryItemID), 1)
}

func TestManualAdjust_RemovesStock(t *testing.T) {
	s := newTestServer(t)
	added := s.manualAdd(t, "10", "Sq Meter")

	resp := s.do(t, http.MethodPost, "/api/inventory/manual-adjust", map[string]any{
		"inventory_item_id": added.InventoryItemID,
		"quantity":          "-2",
		"unit":              "Pieces",
	})

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ManualAdjustResponse](t, resp)
	assert.Equal(t, int64(-2), out.ChangedPieces)
	assert.True(t, out.NewBalanceSqMeter.Equal(decimal.RequireFromString("9.52")))
	assert.Equal(t, int64(40), out.NewBalancePieces)
}

func TestManualAdjust_UnknownItemIs404(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodPost, "/api/inventory/manual-adjust", map[string]any{
		"inventory_item_id": 999, "quantity": "1", "unit": "Pieces",
	})

	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, decode[dto.ErrorResponse](t, resp).Code)
}

func TestInventoryList_ReturnsBalances(t *testing.T) {
	s := newTestServer(t)
	s.manualAdd(t, "10", "Sq Meter")

	resp := s.do(t, http.MethodGet, "/api/inventory?stone_name=kota&page=1&limit=5", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.InventoryListResponse](t, resp)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Kota Blue", out.Items[0].StoneName)
	assert.Equal(t, int64(42), out.Items[0].QuantityPieces)
	assert.Equal(t, int64(1), out.Pagination.TotalItems)
	assert.Equal(t, 5, out.Pagination.ItemsPerPage)
}

func TestInventoryList_LimitAboveMaxIs400(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/inventory?limit=500", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInventoryAnalytics(t *testing.T) {
	s := newTestServer(t)
	s.manualAdd(t, "10", "Sq Meter")

	resp := s.do(t, http.MethodGet, "/api/inventory/analytics", nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.InventoryAnalyticsResponse](t, resp)
	assert.Equal(t, int64(1), out.TotalItems)
	assert.Equal(t, int64(1), out.RawMaterials)
	assert.Equal(t, int64(42), out.TotalQuantityPieces)
}

func TestHistory_FiltersAndDefaultsPerformer(t *testing.T) {
	s := newTestServer(t)
	added := s.manualAdd(t, "10", "Sq Meter")
	s.do(t, http.MethodPost, "/api/inventory/manual-adjust", map[string]any{
		"inventory_item_id": added.InventoryItemID, "quantity": "-1", "unit": "Pieces",
	})

	resp := s.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/%d/transactions?type=remove", added.InventoryItemID), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.InventoryHistoryResponse](t, resp)
	require.Len(t, out.Transactions, 1)
	assert.Equal(t, int64(-1), out.Transactions[0].ChangeInPieces)
	assert.Equal(t, "System User", out.Transactions[0].PerformedBy)
	assert.Equal(t, added.InventoryItemID, out.Item.ID)
}

func TestHistory_BadDateIs400(t *testing.T) {
	s := newTestServer(t)
	added := s.manualAdd(t, "1", "Pieces")

	resp := s.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/%d/transactions?from=15-01-2026", added.InventoryItemID), nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistory_NonNumericIDIs400(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, http.MethodGet, "/api/inventory/abc/transactions", nil)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExportHistory_ReturnsSpreadsheet(t *testing.T) {
	s := newTestServer(t)
	added := s.manualAdd(t, "10", "Sq Meter")

	resp := s.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/%d/transactions/export", added.InventoryItemID), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"),
		fmt.Sprintf("inventory-%d-transactions.xlsx", added.InventoryItemID))
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "PK", string(data[:2]))
}

func TestLedgerCheck_Consistent(t *testing.T) {
	s := newTestServer(t)
	added := s.manualAdd(t, "10", "Sq Meter")

	resp := s.do(t, http.MethodGet, fmt.Sprintf("/api/inventory/%d/ledger-check", added.InventoryItemID), nil)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.LedgerCheckResponse](t, resp)
	assert.True(t, out.Consistent)
	assert.Equal(t, 1, out.Transactions)
	assert.Empty(t, out.Violations)
}

func TestDeleteInventoryItem(t *testing.T) {
	s := newTestServer(t)
	added := s.manualAdd(t, "10", "Sq Meter")
	path := fmt.Sprintf("/api/inventory/%d", added.InventoryItemID)

	resp := s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, 0, s.store.ItemCount())

	resp = s.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
