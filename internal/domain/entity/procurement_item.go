package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit unidad en la que el usuario expresa una cantidad.
type Unit string

const (
	UnitPieces  Unit = "Pieces"
	UnitSqMeter Unit = "Sq Meter"
)

// Valid indica si u es una unidad soportada.
func (u Unit) Valid() bool {
	return u == UnitPieces || u == UnitSqMeter
}

// ProcurementItem es una línea de piedra comprada. Guarda su propia copia de los atributos
// físicos (registro histórico) y, opcionalmente, la línea de inventario a la que aportó.
type ProcurementItem struct {
	ID            int64
	ProcurementID int64
	HSNCodeID     *int64
	ItemAttributes
	Quantity        decimal.Decimal
	Units           Unit
	Rate            decimal.Decimal
	RateUnit        string
	ItemAmount      decimal.Decimal
	Comments        *string
	InventoryItemID *int64
	CreatedAt       time.Time // fecha de la factura, no la hora de inserción
}

// ProcurementItemView añade nombres de catálogo y datos de la compra a la línea.
type ProcurementItemView struct {
	ProcurementItem
	StoneName         string
	StoneType         string
	StageName         string
	EdgesTypeName     string
	FinishingTypeName string
	HSNCode           string
	SupplierInvoice   string
	InvoiceDate       time.Time
}
