// Package pdf genera el estado de compras de un proveedor.
//
// Layout de la página A4 (horizontal):
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Proveedor          │  Periodo + fecha de emisión   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Factura | Piedra | Medidas | Etapa | ...    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: líneas / compras / monto                          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/stoneworks/inventory-api/internal/application/procurement"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

var _ procurement.StatementPDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 94, Green: 72, Blue: 48}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorStripe  = &props.Color{Red: 245, Green: 241, Blue: 235}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

const displayDate = "02 Jan 2006"

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa procurement.StatementPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateVendorStatement genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateVendorStatement(_ context.Context, st *procurement.VendorStatement) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 8}).
		WithTitle("Vendor Procurement Statement", true).
		WithAuthor(st.VendorName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(st))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(row.New(3))

	m.AddRows(tableHeaderRow())
	if len(st.Items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No procurement items in this period.", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	m.AddRows(tableDetailRows(st.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(st))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: proveedor (izq) y periodo + emisión (der).
func headerRow(st *procurement.VendorStatement) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(st.VendorName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Vendor #%d", st.VendorID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("PROCUREMENT STATEMENT", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(period(st.StartDate, st.EndDate), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Generated: "+st.GeneratedAt.Format(displayDate), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

type column struct {
	label string
	size  int
	align align.Type
}

var statementColumns = []column{
	{"Date", 1, align.Left},
	{"Invoice", 1, align.Left},
	{"Stone", 2, align.Left},
	{"Size (mm)", 2, align.Left},
	{"Stage", 1, align.Left},
	{"HSN", 1, align.Left},
	{"Qty", 1, align.Right},
	{"Rate", 1, align.Right},
	{"Amount", 2, align.Right},
}

// tableHeaderRow: cabecera de la tabla con fondo de color.
func tableHeaderRow() core.Row {
	cols := make([]core.Col, 0, len(statementColumns))
	for _, c := range statementColumns {
		cols = append(cols, col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return row.New(8).Add(cols...).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
}

// tableDetailRows: una fila por línea de compra.
func tableDetailRows(items []*entity.ProcurementItemView) []core.Row {
	result := make([]core.Row, 0, len(items))
	for i, it := range items {
		values := []string{
			it.InvoiceDate.Format(displayDate),
			it.SupplierInvoice,
			it.StoneName,
			dimensions(it.ItemAttributes),
			nonEmpty(it.StageName, "-"),
			nonEmpty(it.HSNCode, "-"),
			it.Quantity.String() + " " + unitShort(it.Units),
			formatMoney(it.Rate.StringFixed(2)),
			formatMoney(it.ItemAmount.StringFixed(2)),
		}
		cols := make([]core.Col, 0, len(values))
		for j, v := range values {
			c := statementColumns[j]
			cols = append(cols, col.New(c.size).Add(text.New(v, props.Text{
				Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
			})))
		}
		r := row.New(7).Add(cols...)
		if i%2 == 1 {
			r = r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
		}
		result = append(result, r)
	}
	return result
}

// totalsRow: bloque de totales alineado a la derecha.
func totalsRow(st *procurement.VendorStatement) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Items:"),
			text.New("Procurements:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 5}),
			text.New("TOTAL AMOUNT:", props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 10,
			}),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", st.Stats.TotalItems)),
			text.New(fmt.Sprintf("%d", st.Stats.TotalProcurements), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
			text.New(formatMoney(st.Stats.TotalAmount.StringFixed(2)), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 10,
			}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// period describe el rango pedido. end es exclusivo (día siguiente al último incluido).
func period(start, end *time.Time) string {
	switch {
	case start != nil && end != nil:
		return start.Format(displayDate) + " - " + end.AddDate(0, 0, -1).Format(displayDate)
	case start != nil:
		return "From " + start.Format(displayDate)
	case end != nil:
		return "Until " + end.AddDate(0, 0, -1).Format(displayDate)
	}
	return "All dates"
}

func dimensions(a entity.ItemAttributes) string {
	s := fmt.Sprintf("%d x %d", a.LengthMM, a.WidthMM)
	if a.ThicknessMM != nil {
		s += fmt.Sprintf(" x %d", *a.ThicknessMM)
	}
	if a.IsCalibrated {
		s += " cal."
	}
	return s
}

func unitShort(u entity.Unit) string {
	if u == entity.UnitPieces {
		return "pcs"
	}
	return "sqm"
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney inserta comas de miles en un string numérico con o sin decimales.
// Ej: "25000.00" → "25,000.00", "-1000000" → "-1,000,000"
func formatMoney(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + frac
}
