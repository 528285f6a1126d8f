package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProcurementItemRequest línea de compra.
type ProcurementItemRequest struct {
	ItemAttributesRequest
	HSNCodeID *int64          `json:"hsn_code_id,omitempty"`
	Quantity  decimal.Decimal `json:"quantity"`
	Units     string          `json:"units" validate:"omitempty,oneof=Pieces 'Sq Meter'"`
	Rate      decimal.Decimal `json:"rate"`
	RateUnit  string          `json:"rate_unit" validate:"max=50"`
	Comments  *string         `json:"comments,omitempty"`
}

// CreateProcurementRequest body para POST /api/procurements.
type CreateProcurementRequest struct {
	VendorID                int64                    `json:"vendor_id" validate:"required,gt=0"`
	InvoiceDate             string                   `json:"invoice_date" validate:"required,datetime=2006-01-02"`
	SupplierInvoice         string                   `json:"supplier_invoice" validate:"required,max=100"`
	VehicleNumber           *string                  `json:"vehicle_number,omitempty"`
	GSTType                 string                   `json:"gst_type" validate:"omitempty,oneof=IGST CGST SGST"`
	TaxPercentage           *decimal.Decimal         `json:"tax_percentage,omitempty"`
	FreightCharges          *decimal.Decimal         `json:"freight_charges,omitempty"`
	AdditionalTaxableAmount *decimal.Decimal         `json:"additional_taxable_amount,omitempty"`
	GrandTotal              decimal.Decimal          `json:"grand_total"`
	Comments                *string                  `json:"comments,omitempty"`
	Items                   []ProcurementItemRequest `json:"items" validate:"dive"`
	PerformedBy             string                   `json:"-"`
}

// AddProcurementItemRequest body para POST /api/procurements/:id/items.
type AddProcurementItemRequest struct {
	ProcurementItemRequest
	PerformedBy string `json:"-"`
}

// ProcurementListQuery filtros de GET /api/procurements.
type ProcurementListQuery struct {
	PageRequest
	VendorID        int64  `query:"vendor_id" validate:"min=0"`
	SupplierInvoice string `query:"supplier_invoice"`
	DateReceived    string `query:"date_received" validate:"omitempty,datetime=2006-01-02"`
	StoneType       string `query:"stone_type"`
	StoneName       string `query:"stone_name"`
	StageID         int64  `query:"stage_id" validate:"min=0"`
}

// ProcurementResponse cabecera de compra con datos del proveedor.
type ProcurementResponse struct {
	ID                      int64           `json:"id"`
	VendorID                int64           `json:"vendor_id"`
	VendorName              string          `json:"vendor_name"`
	ContactPerson           *string         `json:"contact_person,omitempty"`
	PhoneNumber             *string         `json:"phone_number,omitempty"`
	EmailAddress            *string         `json:"email_address,omitempty"`
	City                    *string         `json:"city,omitempty"`
	State                   *string         `json:"state,omitempty"`
	StateCode               *string         `json:"state_code,omitempty"`
	CompleteAddress         *string         `json:"complete_address,omitempty"`
	GSTNumber               *string         `json:"gst_number,omitempty"`
	BankDetails             *string         `json:"bank_details,omitempty"`
	InvoiceDate             time.Time       `json:"invoice_date"`
	SupplierInvoice         string          `json:"supplier_invoice"`
	VehicleNumber           *string         `json:"vehicle_number"`
	GSTType                 string          `json:"gst_type"`
	TaxPercentage           decimal.Decimal `json:"tax_percentage"`
	FreightCharges          decimal.Decimal `json:"freight_charges"`
	AdditionalTaxableAmount decimal.Decimal `json:"additional_taxable_amount"`
	GrandTotal              decimal.Decimal `json:"grand_total"`
	Comments                *string         `json:"comments"`
	TotalItems              int64           `json:"total_items"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// ProcurementItemResponse línea de compra con nombres de catálogo.
type ProcurementItemResponse struct {
	ID                int64           `json:"id"`
	ProcurementID     int64           `json:"procurement_id"`
	SupplierInvoice   string          `json:"supplier_invoice,omitempty"`
	InvoiceDate       *time.Time      `json:"invoice_date,omitempty"`
	StoneID           int64           `json:"stone_id"`
	StoneName         string          `json:"stone_name"`
	StoneType         string          `json:"stone_type"`
	HSNCodeID         *int64          `json:"hsn_code_id"`
	HSNCode           string          `json:"hsn_code,omitempty"`
	LengthMM          int64           `json:"length_mm"`
	WidthMM           int64           `json:"width_mm"`
	ThicknessMM       *int64          `json:"thickness_mm"`
	IsCalibrated      bool            `json:"is_calibrated"`
	EdgesTypeID       *int64          `json:"edges_type_id"`
	EdgesTypeName     string          `json:"edges_type_name,omitempty"`
	FinishingTypeID   *int64          `json:"finishing_type_id"`
	FinishingTypeName string          `json:"finishing_type_name,omitempty"`
	StageID           *int64          `json:"stage_id"`
	StageName         string          `json:"stage_name,omitempty"`
	Quantity          decimal.Decimal `json:"quantity"`
	Units             string          `json:"units"`
	Rate              decimal.Decimal `json:"rate"`
	RateUnit          string          `json:"rate_unit"`
	ItemAmount        decimal.Decimal `json:"item_amount"`
	Comments          *string         `json:"comments"`
	InventoryItemID   *int64          `json:"inventory_item_id"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ProcurementSummaryResponse cifras del detalle de compra.
type ProcurementSummaryResponse struct {
	TotalItems             int             `json:"total_items"`
	TotalProcurementAmount decimal.Decimal `json:"total_procurement_amount"`
	TaxAmount              decimal.Decimal `json:"tax_amount"`
	GrandTotal             decimal.Decimal `json:"grand_total"`
	CurrentItemsTotal      decimal.Decimal `json:"current_items_total"`
}

// ProcurementDetailResponse cabecera + líneas + resumen.
type ProcurementDetailResponse struct {
	Procurement ProcurementResponse        `json:"procurement"`
	Items       []ProcurementItemResponse  `json:"items"`
	Summary     ProcurementSummaryResponse `json:"summary"`
}

// ProcurementListResponse página del listado de compras.
type ProcurementListResponse struct {
	Procurements []ProcurementResponse `json:"procurements"`
	Pagination   PageResponse          `json:"pagination"`
}

// ProcurementAnalyticsResponse cifras del tablero de compras.
type ProcurementAnalyticsResponse struct {
	TotalProcurements int64           `json:"total_procurements"`
	TotalValue        decimal.Decimal `json:"total_value"`
	UniqueVendors     int64           `json:"unique_vendors"`
	TotalStones       int64           `json:"total_stones"`
}

// AddProcurementItemResponse resultado de agregar una línea a una compra.
type AddProcurementItemResponse struct {
	Item              ProcurementItemResponse `json:"item"`
	InventoryItemID   int64                   `json:"inventory_item_id"`
	InventoryCreated  bool                    `json:"inventory_created"`
	TransactionType   string                  `json:"transaction_type"`
	NewBalanceSqMeter decimal.Decimal         `json:"new_balance_sq_meter"`
	NewBalancePieces  int64                   `json:"new_balance_pieces"`
}

// DeleteProcurementItemResponse resultado de quitar una línea de compra.
type DeleteProcurementItemResponse struct {
	ProcurementItemID    int64            `json:"procurement_item_id"`
	InventoryItemID      *int64           `json:"inventory_item_id"`
	InventoryItemDeleted bool             `json:"inventory_item_deleted"`
	NewBalanceSqMeter    *decimal.Decimal `json:"new_balance_sq_meter,omitempty"`
	NewBalancePieces     *int64           `json:"new_balance_pieces,omitempty"`
}

// VendorItemsQuery filtros de GET /api/vendors/:id/procurement-items.
type VendorItemsQuery struct {
	PageRequest
	StartDate string `query:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `query:"end_date" validate:"omitempty,datetime=2006-01-02"`
	StoneType string `query:"stone_type"`
	StoneName string `query:"stone_name"`
}

// VendorItemStatsResponse totales del reporte por proveedor.
type VendorItemStatsResponse struct {
	TotalItems        int64           `json:"total_items"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	TotalProcurements int64           `json:"total_procurements"`
}

// VendorItemsResponse reporte de líneas compradas a un proveedor.
type VendorItemsResponse struct {
	VendorID   int64                     `json:"vendor_id"`
	Items      []ProcurementItemResponse `json:"items"`
	Stats      VendorItemStatsResponse   `json:"stats"`
	Pagination PageResponse              `json:"pagination"`
}
