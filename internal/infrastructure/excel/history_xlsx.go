package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/application/inventory"
)

var _ inventory.HistorySpreadsheet = (*HistoryGenerator)(nil)

// SheetName hoja donde se escribe el historial.
const SheetName = "Transactions"

// Fila donde empieza la tabla de movimientos (encabezados); antes va el resumen de la línea.
const tableHeaderRow = 7

var historyColumns = []string{
	"ID", "Date", "Type", "Change (Sq M)", "Change (Pcs)",
	"Balance (Sq M)", "Balance (Pcs)", "Reason", "Source", "Performed By", "Operation",
}

// HistoryGenerator arma el .xlsx del historial de una línea de inventario.
type HistoryGenerator struct{}

// NewHistoryGenerator construye el generador.
func NewHistoryGenerator() *HistoryGenerator {
	return &HistoryGenerator{}
}

// GenerateHistoryXLSX escribe la cabecera de la línea y una fila por movimiento, en el orden recibido.
func (g *HistoryGenerator) GenerateHistoryXLSX(_ context.Context, h *dto.InventoryHistoryResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4A4A4A"}},
	})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	if err := writeSummary(f, &h.Item, bold); err != nil {
		return nil, err
	}
	for i, name := range historyColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, tableHeaderRow)
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(historyColumns), tableHeaderRow)
	if err := f.SetCellStyle(SheetName, "A7", last, header); err != nil {
		return nil, fmt.Errorf("style header: %w", err)
	}

	for i, t := range h.Transactions {
		row := []any{
			t.ID,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
			t.TransactionLabel,
			t.ChangeInSqMeter.InexactFloat64(),
			t.ChangeInPieces,
			t.BalanceAfterSqMeter.InexactFloat64(),
			t.BalanceAfterPieces,
			deref(t.Reason),
			deref(t.SourceDetails),
			t.PerformedBy,
			t.OperationID,
		}
		cell, _ := excelize.CoordinatesToCellName(1, tableHeaderRow+1+i)
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return nil, fmt.Errorf("write transaction %d: %w", t.ID, err)
		}
	}
	_ = f.SetColWidth(SheetName, "B", "C", 22)
	_ = f.SetColWidth(SheetName, "H", "J", 30)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func writeSummary(f *excelize.File, it *dto.InventoryItemResponse, bold int) error {
	dims := fmt.Sprintf("%d x %d mm", it.LengthMM, it.WidthMM)
	if it.ThicknessMM != nil {
		dims = fmt.Sprintf("%d x %d x %d mm", it.LengthMM, it.WidthMM, *it.ThicknessMM)
	}
	rows := [][]any{
		{"Inventory Item", it.ID, "Stone", it.StoneName, "Type", it.StoneType},
		{"Dimensions", dims, "Calibrated", yesNo(it.IsCalibrated), "Source", it.Source},
		{"Stage", it.Stage, "Edges", it.EdgesType, "Finishing", it.FinishingType},
		{"Balance (Sq M)", it.QuantitySqMeter.InexactFloat64(), "Balance (Pcs)", it.QuantityPieces},
	}
	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(SheetName, cell, &rows[i]); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
		for _, col := range []string{"A", "C", "E"} {
			ref := fmt.Sprintf("%s%d", col, i+1)
			if err := f.SetCellStyle(SheetName, ref, ref, bold); err != nil {
				return fmt.Errorf("style summary: %w", err)
			}
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
