package procurement_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain"
)

func TestList_Filters(t *testing.T) {
	f := newFixture()
	granite := f.store.AddStone("Black Galaxy", "Granite")
	other := f.store.AddVendor("Deccan Granites", "Hyderabad")
	ctx := context.Background()

	f.create(t, "KB-100", f.item("10", "Sq Meter", 500, 500))
	g := f.item("5", "Sq Meter", 600, 600)
	g.StoneID = granite
	_, err := f.uc.Create(ctx, dto.CreateProcurementRequest{
		VendorID: other, InvoiceDate: "2024-05-02", SupplierInvoice: "DG-7", GrandTotal: dec("5000"),
		Items: []dto.ProcurementItemRequest{g},
	})
	require.NoError(t, err)

	all, err := f.uc.List(ctx, dto.ProcurementListQuery{})
	require.NoError(t, err)
	require.Len(t, all.Procurements, 2)
	assert.Equal(t, "DG-7", all.Procurements[0].SupplierInvoice, "most recently updated first")
	assert.Equal(t, int64(1), all.Procurements[0].TotalItems)

	byVendor, err := f.uc.List(ctx, dto.ProcurementListQuery{VendorID: other})
	require.NoError(t, err)
	assert.Len(t, byVendor.Procurements, 1)

	byInvoice, err := f.uc.List(ctx, dto.ProcurementListQuery{SupplierInvoice: "kb-"})
	require.NoError(t, err)
	assert.Len(t, byInvoice.Procurements, 1)

	byDate, err := f.uc.List(ctx, dto.ProcurementListQuery{DateReceived: "2024-05-02"})
	require.NoError(t, err)
	require.Len(t, byDate.Procurements, 1)
	assert.Equal(t, "DG-7", byDate.Procurements[0].SupplierInvoice)

	byStone, err := f.uc.List(ctx, dto.ProcurementListQuery{StoneType: "Limestone"})
	require.NoError(t, err)
	require.Len(t, byStone.Procurements, 1)
	assert.Equal(t, "KB-100", byStone.Procurements[0].SupplierInvoice)
}

func TestAnalytics(t *testing.T) {
	f := newFixture()
	other := f.store.AddVendor("Deccan Granites", "Hyderabad")
	ctx := context.Background()
	f.create(t, "A-1", f.item("1", "Sq Meter", 500, 500), f.item("2", "Sq Meter", 600, 600))
	_, err := f.uc.Create(ctx, dto.CreateProcurementRequest{VendorID: other, InvoiceDate: "2024-01-01", SupplierInvoice: "B-1", GrandTotal: dec("250.50")})
	require.NoError(t, err)

	a, err := f.uc.Analytics(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), a.TotalProcurements)
	assert.True(t, dec("10250.50").Equal(a.TotalValue))
	assert.Equal(t, int64(2), a.UniqueVendors)
	assert.Equal(t, int64(2), a.TotalStones)
}

func TestVendorItems_DateRangeAndStats(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.create(t, "V-1", f.item("10", "Sq Meter", 500, 500), f.item("2", "Sq Meter", 600, 600))
	_, err := f.uc.Create(ctx, dto.CreateProcurementRequest{
		VendorID: f.vendor, InvoiceDate: "2024-06-30", SupplierInvoice: "V-2", GrandTotal: dec("1"),
		Items: []dto.ProcurementItemRequest{f.item("1", "Sq Meter", 300, 300)},
	})
	require.NoError(t, err)

	all, err := f.uc.VendorItems(ctx, f.vendor, dto.VendorItemsQuery{})
	require.NoError(t, err)
	assert.Len(t, all.Items, 3)
	assert.Equal(t, int64(3), all.Stats.TotalItems)
	assert.Equal(t, int64(2), all.Stats.TotalProcurements)
	assert.True(t, dec("11050").Equal(all.Stats.TotalAmount))
	assert.Equal(t, "V-2", all.Items[0].SupplierInvoice, "newest invoice first")

	march, err := f.uc.VendorItems(ctx, f.vendor, dto.VendorItemsQuery{StartDate: "2024-03-01", EndDate: "2024-03-15"})
	require.NoError(t, err)
	assert.Len(t, march.Items, 2, "end_date includes the whole day")

	_, err = f.uc.VendorItems(ctx, f.vendor, dto.VendorItemsQuery{StartDate: "2024-07-01", EndDate: "2024-06-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.uc.VendorItems(ctx, 8888, dto.VendorItemsQuery{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVendorStatementPDF(t *testing.T) {
	f := newFixture()
	f.create(t, "S-1", f.item("10", "Sq Meter", 500, 500))

	data, name, err := f.uc.VendorStatementPDF(context.Background(), f.vendor, dto.VendorItemsQuery{})

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), data)
	assert.Contains(t, name, ".pdf")
	require.NotNil(t, f.pdf.got)
	assert.Equal(t, "Rajasthan Stone Co", f.pdf.got.VendorName)
	assert.Len(t, f.pdf.got.Items, 1)
}
