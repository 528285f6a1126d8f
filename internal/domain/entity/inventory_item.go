package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Source distingue cómo entró el stock a inventario. Stock de procurement y stock manual
// con la misma especificación física se llevan en líneas separadas.
type Source string

const (
	SourceProcurement Source = "procurement"
	SourceManual      Source = "manual"
)

// Valid indica si s es un origen conocido.
func (s Source) Valid() bool {
	switch s {
	case SourceProcurement, SourceManual:
		return true
	}
	return false
}

// ItemAttributes es la tupla física que identifica una línea de inventario (sin el origen).
// Las dimensiones ya vienen normalizadas a milímetros enteros.
type ItemAttributes struct {
	StoneID         int64
	LengthMM        int64
	WidthMM         int64
	ThicknessMM     *int64 // NULL solo coincide con NULL
	IsCalibrated    bool
	EdgesTypeID     *int64
	FinishingTypeID *int64
	StageID         *int64
}

// InventoryItem es una línea lógica de stock. No guarda cantidades: el saldo se deriva del ledger.
// Nunca se modifica después de creada, solo se elimina (arrastrando su ledger).
type InventoryItem struct {
	ID int64
	ItemAttributes
	Source    Source
	CreatedAt time.Time
}

// InventoryItemView es la fila de listado: atributos + nombres de catálogo + saldo derivado.
type InventoryItemView struct {
	InventoryItem
	StoneName        string
	StoneType        string
	Stage            string
	EdgesType        string
	FinishingType    string
	QuantityPieces   int64
	QuantitySqMeter  decimal.Decimal
	LastActivityDate *time.Time
}
