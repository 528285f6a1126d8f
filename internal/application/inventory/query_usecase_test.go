package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/application/inventory"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

type fakeSheet struct{ got *dto.InventoryHistoryResponse }

func (s *fakeSheet) GenerateHistoryXLSX(_ context.Context, h *dto.InventoryHistoryResponse) ([]byte, error) {
	s.got = h
	return []byte("xlsx"), nil
}

func newQuery(f *fixture, sheet inventory.HistorySpreadsheet) *inventory.QueryUseCase {
	r := f.store.Repos()
	return inventory.NewQueryUseCase(f.store, r.Items, r.Transactions, sheet, testLogger())
}

func TestList_FiltersAndPaginates(t *testing.T) {
	f := newFixture()
	granite := f.store.AddStone("Black Galaxy", "Granite")
	adj := inventory.NewAdjustUseCase(f.store, testLogger(), "")
	q := newQuery(f, nil)
	ctx := context.Background()

	raw := int64(1)
	a := f.attrs(500, 500)
	a.StageID = &raw
	manualAdd(t, adj, a, "10", "Sq Meter")
	manualAdd(t, adj, f.attrs(600, 600), "3.6", "Sq Meter")
	g := dto.ItemAttributesRequest{StoneID: granite, LengthMM: dec("300"), WidthMM: dec("300")}
	last := manualAdd(t, adj, g, "0.9", "Sq Meter")

	all, err := q.List(ctx, dto.InventoryListQuery{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), all.Pagination.TotalItems)
	assert.Equal(t, 1, all.Pagination.CurrentPage)
	require.Len(t, all.Items, 3)
	assert.Equal(t, last.InventoryItemID, all.Items[0].ID, "most recent activity first")
	assert.Equal(t, "Black Galaxy", all.Items[0].StoneName)
	assert.Equal(t, int64(10), all.Items[0].QuantityPieces)

	byType, err := q.List(ctx, dto.InventoryListQuery{StoneType: "Limestone"})
	require.NoError(t, err)
	assert.Len(t, byType.Items, 2)

	byName, err := q.List(ctx, dto.InventoryListQuery{StoneName: "galax"})
	require.NoError(t, err)
	assert.Len(t, byName.Items, 1)

	byStage, err := q.List(ctx, dto.InventoryListQuery{StageID: 1})
	require.NoError(t, err)
	require.Len(t, byStage.Items, 1)
	assert.Equal(t, "Raw Material", byStage.Items[0].Stage)

	paged, err := q.List(ctx, dto.InventoryListQuery{PageRequest: dto.PageRequest{Page: 2, Limit: 2}})
	require.NoError(t, err)
	assert.Len(t, paged.Items, 1)
	assert.Equal(t, 2, paged.Pagination.TotalPages)

	_, err = q.List(ctx, dto.InventoryListQuery{Source: "imported"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAnalytics_CountsLinesInStock(t *testing.T) {
	f := newFixture()
	adj := inventory.NewAdjustUseCase(f.store, testLogger(), "")
	q := newQuery(f, nil)
	ctx := context.Background()

	raw, packed := entity.StageRawMaterial, entity.StagePackagingComplete
	a := f.attrs(500, 500)
	a.StageID = &raw
	manualAdd(t, adj, a, "10", "Sq Meter")
	b := f.attrs(500, 500)
	b.StageID = &packed
	manualAdd(t, adj, b, "1", "Sq Meter")
	empty := manualAdd(t, adj, f.attrs(400, 400), "1.6", "Sq Meter")
	_, err := adj.Adjust(ctx, dto.ManualAdjustRequest{InventoryItemID: empty.InventoryItemID, Quantity: dec("-1.6"), Unit: "Sq Meter"})
	require.NoError(t, err)

	out, err := q.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.TotalItems)
	assert.Equal(t, int64(1), out.RawMaterials)
	assert.Equal(t, int64(1), out.PackagingComplete)
	assert.Equal(t, int64(44), out.TotalQuantityPieces)
	assertDecimal(t, "11", out.TotalQuantitySqMeter)
}

func TestHistory_NewestFirstWithTypeFilter(t *testing.T) {
	f := newFixture()
	adj := inventory.NewAdjustUseCase(f.store, testLogger(), "")
	sheet := &fakeSheet{}
	q := newQuery(f, sheet)
	ctx := context.Background()

	added := manualAdd(t, adj, f.attrs(500, 500), "10", "Sq Meter")
	_, err := adj.Adjust(ctx, dto.ManualAdjustRequest{InventoryItemID: added.InventoryItemID, Quantity: dec("-1"), Unit: "Sq Meter", Reason: "chipped edge"})
	require.NoError(t, err)

	h, err := q.History(ctx, added.InventoryItemID, dto.HistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Kota Blue", h.Item.StoneName)
	require.Len(t, h.Transactions, 2)
	assert.Equal(t, string(entity.TxManualRemove), h.Transactions[0].TransactionType)
	assert.Equal(t, "Manual Remove", h.Transactions[0].TransactionLabel)
	assert.Greater(t, h.Transactions[0].ID, h.Transactions[1].ID)

	adds, err := q.History(ctx, added.InventoryItemID, dto.HistoryQuery{Type: "add"})
	require.NoError(t, err)
	require.Len(t, adds.Transactions, 1)
	assert.Equal(t, string(entity.TxManualAdd), adds.Transactions[0].TransactionType)

	found, err := q.History(ctx, added.InventoryItemID, dto.HistoryQuery{Search: "CHIPPED"})
	require.NoError(t, err)
	assert.Len(t, found.Transactions, 1)

	_, err = q.History(ctx, added.InventoryItemID, dto.HistoryQuery{From: "15/01/2024"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = q.History(ctx, 777, dto.HistoryQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	data, name, err := q.ExportHistory(ctx, added.InventoryItemID, dto.HistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, []byte("xlsx"), data)
	assert.Contains(t, name, ".xlsx")
	require.NotNil(t, sheet.got)
	assert.Len(t, sheet.got.Transactions, 2)
}

func TestDelete_RemovesLineAndLedger(t *testing.T) {
	f := newFixture()
	adj := inventory.NewAdjustUseCase(f.store, testLogger(), "")
	q := newQuery(f, nil)
	ctx := context.Background()
	added := manualAdd(t, adj, f.attrs(500, 500), "10", "Sq Meter")

	require.NoError(t, q.Delete(ctx, added.InventoryItemID))
	assert.Zero(t, f.store.ItemCount())
	assert.Empty(t, f.store.Transactions(added.InventoryItemID))

	assert.ErrorIs(t, q.Delete(ctx, added.InventoryItemID), domain.ErrNotFound)
}

func TestVerifyAll_ReportsOnlyBrokenLedgers(t *testing.T) {
	f := newFixture()
	adj := inventory.NewAdjustUseCase(f.store, testLogger(), "")
	q := newQuery(f, nil)
	manualAdd(t, adj, f.attrs(500, 500), "10", "Sq Meter")
	manualAdd(t, adj, f.attrs(300, 300), "2", "Sq Meter")

	checked, broken, err := q.VerifyAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, checked)
	assert.Empty(t, broken)
}

func TestLedgerCheck_ReplaysInHistoryOrder(t *testing.T) {
	f := newFixture()
	adj := inventory.NewAdjustUseCase(f.store, testLogger(), "")
	q := newQuery(f, nil)
	ctx := context.Background()

	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := base
	f.store.SetClock(func() time.Time { return clock })

	clock = base.Add(time.Hour)
	added := manualAdd(t, adj, f.attrs(500, 500), "10", "Sq Meter")
	clock = base.Add(2 * time.Hour)
	manualAdd(t, adj, f.attrs(500, 500), "2", "Sq Meter")

	rep, err := q.LedgerCheck(ctx, added.InventoryItemID)
	require.NoError(t, err)
	assert.True(t, rep.Consistent())
	assertDecimal(t, "12", rep.Balance.SqMeter)

	// una fila con id mayor pero created_at anterior rompe el orden (created_at, id)
	clock = base
	manualAdd(t, adj, f.attrs(500, 500), "1", "Sq Meter")

	h, err := q.History(ctx, added.InventoryItemID, dto.HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, h.Transactions, 3)
	assertDecimal(t, "13", h.Transactions[2].BalanceAfterSqMeter)

	rep, err = q.LedgerCheck(ctx, added.InventoryItemID)
	require.NoError(t, err)
	assert.False(t, rep.Consistent())
	assertDecimal(t, "12", rep.Balance.SqMeter)
}
