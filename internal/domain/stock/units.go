// Package stock contiene la conversión entre metros cuadrados (unidad maestra) y piezas.
package stock

import "github.com/shopspring/decimal"

// SqMeterScale es la escala con la que se guardan los metros cuadrados (NUMERIC(18,6)).
const SqMeterScale int32 = 6

var mmPerMeterSquared = decimal.NewFromInt(1_000_000)

// AreaOfOnePiece devuelve el área en m² de una pieza de lengthMM x widthMM.
func AreaOfOnePiece(lengthMM, widthMM int64) decimal.Decimal {
	return decimal.NewFromInt(lengthMM).Mul(decimal.NewFromInt(widthMM)).Div(mmPerMeterSquared)
}

// PiecesFromSqMeter devuelve las piezas necesarias para cubrir sq (siempre redondea hacia arriba).
// Con área nula devuelve 0.
func PiecesFromSqMeter(sq decimal.Decimal, lengthMM, widthMM int64) int64 {
	area := AreaOfOnePiece(lengthMM, widthMM)
	if area.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	return sq.Div(area).Ceil().IntPart()
}

// SqMeterFromPieces devuelve el área exacta de pieces piezas.
func SqMeterFromPieces(pieces int64, lengthMM, widthMM int64) decimal.Decimal {
	return decimal.NewFromInt(pieces).Mul(AreaOfOnePiece(lengthMM, widthMM))
}

// SignedPiecesFromSqMeter convierte la magnitud y reaplica el signo, así un retiro
// de 0.1 m² cuenta como -1 pieza y no como 0.
func SignedPiecesFromSqMeter(sq decimal.Decimal, lengthMM, widthMM int64) int64 {
	p := PiecesFromSqMeter(sq.Abs(), lengthMM, widthMM)
	if sq.IsNegative() {
		return -p
	}
	return p
}

// SignedSqMeterFromPieces es la versión con signo de SqMeterFromPieces.
func SignedSqMeterFromPieces(pieces int64, lengthMM, widthMM int64) decimal.Decimal {
	if pieces < 0 {
		return SqMeterFromPieces(-pieces, lengthMM, widthMM).Neg()
	}
	return SqMeterFromPieces(pieces, lengthMM, widthMM)
}

// RoundSqMeter redondea a la escala de almacenamiento.
func RoundSqMeter(sq decimal.Decimal) decimal.Decimal {
	return sq.Round(SqMeterScale)
}

// FloorMM normaliza una dimensión de entrada a milímetros enteros.
func FloorMM(v decimal.Decimal) int64 {
	return v.Floor().IntPart()
}
