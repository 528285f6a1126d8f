package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// GSTType tipo de impuesto indicado en la factura del proveedor.
type GSTType string

const (
	GSTTypeIGST GSTType = "IGST"
	GSTTypeCGST GSTType = "CGST"
	GSTTypeSGST GSTType = "SGST"
)

// Valid indica si g es un tipo de GST aceptado.
func (g GSTType) Valid() bool {
	switch g {
	case GSTTypeIGST, GSTTypeCGST, GSTTypeSGST:
		return true
	}
	return false
}

// Procurement es la cabecera de una factura de compra a un proveedor.
type Procurement struct {
	ID                      int64
	VendorID                int64
	InvoiceDate             time.Time
	SupplierInvoice         string
	VehicleNumber           *string
	GSTType                 GSTType
	TaxPercentage           decimal.Decimal
	FreightCharges          decimal.Decimal
	AdditionalTaxableAmount decimal.Decimal
	GrandTotal              decimal.Decimal
	Comments                *string
	CreatedAt               time.Time
	UpdatedAt               time.Time
}

// ProcurementView es la cabecera con datos del proveedor para listados y detalle.
type ProcurementView struct {
	Procurement
	VendorName      string
	ContactPerson   *string
	PhoneNumber     *string
	EmailAddress    *string
	City            *string
	State           *string
	StateCode       *string
	CompleteAddress *string
	GSTNumber       *string
	BankDetails     *string
	TotalItems      int64
}

// ProcurementSummary cifras calculadas para el detalle de una compra.
type ProcurementSummary struct {
	TotalItems             int
	TotalProcurementAmount decimal.Decimal // grand_total - freight
	TaxAmount              decimal.Decimal // total_procurement_amount * tax% / 100
	GrandTotal             decimal.Decimal
	CurrentItemsTotal      decimal.Decimal // suma de item_amount vigentes
}

// Summarize calcula el resumen de la cabecera y sus líneas vigentes.
func Summarize(p *Procurement, items []*ProcurementItem) ProcurementSummary {
	total := p.GrandTotal.Sub(p.FreightCharges)
	current := decimal.Zero
	for _, it := range items {
		current = current.Add(it.ItemAmount)
	}
	return ProcurementSummary{
		TotalItems:             len(items),
		TotalProcurementAmount: total,
		TaxAmount:              total.Mul(p.TaxPercentage).Div(decimal.NewFromInt(100)),
		GrandTotal:             p.GrandTotal,
		CurrentItemsTotal:      current,
	}
}
