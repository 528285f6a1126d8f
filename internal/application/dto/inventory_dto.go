package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemAttributesRequest atributos físicos de una línea de inventario. Las dimensiones se truncan a mm enteros.
type ItemAttributesRequest struct {
	StoneID         int64            `json:"stone_id"`
	LengthMM        decimal.Decimal  `json:"length_mm"`
	WidthMM         decimal.Decimal  `json:"width_mm"`
	ThicknessMM     *decimal.Decimal `json:"thickness_mm,omitempty"`
	IsCalibrated    bool             `json:"is_calibrated"`
	EdgesTypeID     *int64           `json:"edges_type_id,omitempty"`
	FinishingTypeID *int64           `json:"finishing_type_id,omitempty"`
	StageID         *int64           `json:"stage_id,omitempty"`
}

// ManualAddRequest body para POST /api/inventory/manual-add.
type ManualAddRequest struct {
	ItemAttributesRequest
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit" validate:"required,oneof=Pieces 'Sq Meter'"`
	Reason      string          `json:"reason" validate:"max=500"`
	PerformedBy string          `json:"-"`
}

// ManualAddResponse resultado de un ingreso manual.
type ManualAddResponse struct {
	InventoryItemID   int64           `json:"inventory_item_id"`
	Created           bool            `json:"created"`
	OperationID       string          `json:"operation_id"`
	AddedSqMeter      decimal.Decimal `json:"added_sq_meter"`
	AddedPieces       int64           `json:"added_pieces"`
	NewBalanceSqMeter decimal.Decimal `json:"new_balance_sq_meter"`
	NewBalancePieces  int64           `json:"new_balance_pieces"`
}

// ManualAdjustRequest body para POST /api/inventory/manual-adjust. Quantity con signo.
type ManualAdjustRequest struct {
	InventoryItemID int64           `json:"inventory_item_id" validate:"required,gt=0"`
	Quantity        decimal.Decimal `json:"quantity"`
	Unit            string          `json:"unit" validate:"required,oneof=Pieces 'Sq Meter'"`
	Reason          string          `json:"reason" validate:"max=500"`
	PerformedBy     string          `json:"-"`
}

// ManualAdjustResponse resultado de un ajuste manual.
type ManualAdjustResponse struct {
	InventoryItemID   int64           `json:"inventory_item_id"`
	OperationID       string          `json:"operation_id"`
	ChangedSqMeter    decimal.Decimal `json:"changed_sq_meter"`
	ChangedPieces     int64           `json:"changed_pieces"`
	NewBalanceSqMeter decimal.Decimal `json:"new_balance_sq_meter"`
	NewBalancePieces  int64           `json:"new_balance_pieces"`
}

// InventoryListQuery filtros de GET /api/inventory.
type InventoryListQuery struct {
	PageRequest
	StoneType       string `query:"stone_type"`
	StoneName       string `query:"stone_name"`
	StageID         int64  `query:"stage_id" validate:"min=0"`
	EdgesTypeID     int64  `query:"edges_type_id" validate:"min=0"`
	FinishingTypeID int64  `query:"finishing_type_id" validate:"min=0"`
	Source          string `query:"source" validate:"omitempty,oneof=procurement manual"`
}

// InventoryItemResponse línea de inventario con su saldo derivado del ledger.
type InventoryItemResponse struct {
	ID               int64           `json:"id"`
	StoneID          int64           `json:"stone_id"`
	StoneName        string          `json:"stone_name"`
	StoneType        string          `json:"stone_type"`
	LengthMM         int64           `json:"length_mm"`
	WidthMM          int64           `json:"width_mm"`
	ThicknessMM      *int64          `json:"thickness_mm"`
	IsCalibrated     bool            `json:"is_calibrated"`
	EdgesTypeID      *int64          `json:"edges_type_id"`
	EdgesType        string          `json:"edges_type,omitempty"`
	FinishingTypeID  *int64          `json:"finishing_type_id"`
	FinishingType    string          `json:"finishing_type,omitempty"`
	StageID          *int64          `json:"stage_id"`
	Stage            string          `json:"stage,omitempty"`
	Source           string          `json:"source"`
	QuantityPieces   int64           `json:"quantity_pieces"`
	QuantitySqMeter  decimal.Decimal `json:"quantity_sq_meter"`
	LastActivityDate *time.Time      `json:"last_activity_date,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// InventoryListResponse página del listado de inventario.
type InventoryListResponse struct {
	Items      []InventoryItemResponse `json:"items"`
	Pagination PageResponse            `json:"pagination"`
}

// InventoryAnalyticsResponse cifras del tablero de inventario.
type InventoryAnalyticsResponse struct {
	TotalItems           int64           `json:"total_items"`
	RawMaterials         int64           `json:"raw_materials"`
	PackagingComplete    int64           `json:"packaging_complete"`
	TotalQuantityPieces  int64           `json:"total_quantity_pieces"`
	TotalQuantitySqMeter decimal.Decimal `json:"total_quantity_sq_meter"`
}

// HistoryQuery filtros de GET /api/inventory/:id/transactions. Fechas en formato YYYY-MM-DD.
type HistoryQuery struct {
	Type   string `query:"type" validate:"omitempty,oneof=add remove"`
	Search string `query:"search"`
	From   string `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To     string `query:"to" validate:"omitempty,datetime=2006-01-02"`
}

// InventoryTransactionResponse fila del ledger.
type InventoryTransactionResponse struct {
	ID                  int64           `json:"id"`
	OperationID         string          `json:"operation_id"`
	TransactionType     string          `json:"transaction_type"`
	TransactionLabel    string          `json:"transaction_label"`
	ChangeInSqMeter     decimal.Decimal `json:"change_in_sq_meter"`
	ChangeInPieces      int64           `json:"change_in_pieces"`
	BalanceAfterSqMeter decimal.Decimal `json:"balance_after_sq_meter"`
	BalanceAfterPieces  int64           `json:"balance_after_pieces"`
	Reason              *string         `json:"reason"`
	SourceDetails       *string         `json:"source_details"`
	PerformedBy         string          `json:"performed_by"`
	CreatedAt           time.Time       `json:"created_at"`
}

// InventoryHistoryResponse cabecera de la línea + historial.
type InventoryHistoryResponse struct {
	Item         InventoryItemResponse          `json:"item"`
	Transactions []InventoryTransactionResponse `json:"transactions"`
}

// LedgerViolationResponse inconsistencia encontrada al reproducir el ledger.
type LedgerViolationResponse struct {
	TransactionID int64  `json:"transaction_id"`
	Problem       string `json:"problem"`
}

// LedgerCheckResponse resultado de verificar el ledger de una línea.
type LedgerCheckResponse struct {
	InventoryItemID int64                     `json:"inventory_item_id"`
	Transactions    int                       `json:"transactions"`
	BalanceSqMeter  decimal.Decimal           `json:"balance_sq_meter"`
	BalancePieces   int64                     `json:"balance_pieces"`
	Consistent      bool                      `json:"consistent"`
	Violations      []LedgerViolationResponse `json:"violations"`
}
