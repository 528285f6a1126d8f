// Package legacy copia los datos de la base MySQL anterior a PostgreSQL conservando los IDs.
package legacy

// kind tipo de destino de una columna; decide cómo se convierte el valor leído de MySQL.
type kind int

const (
	kindInt kind = iota
	kindNullInt
	kindText
	kindNullText
	kindBool
	kindDecimal
	kindTime
	kindOperationID // no existe en MySQL: se deriva del id de la fila
)

type column struct {
	name string
	kind kind
}

// table describe una tabla a copiar. Todas tienen PK id BIGSERIAL.
type table struct {
	name    string
	columns []column
}

func (t table) names() []string {
	out := make([]string, len(t.columns))
	for i, c := range t.columns {
		out[i] = c.name
	}
	return out
}

// selectColumns columnas que se leen de MySQL (sin las derivadas).
func (t table) selectColumns() []string {
	out := make([]string, 0, len(t.columns))
	for _, c := range t.columns {
		if c.kind != kindOperationID {
			out = append(out, c.name)
		}
	}
	return out
}

// tables en orden de dependencia de claves foráneas.
var tables = []table{
	{"stones", []column{
		{"id", kindInt}, {"stone_name", kindText}, {"stone_type", kindText}, {"created_at", kindTime},
	}},
	{"stages", []column{{"id", kindInt}, {"name", kindText}}},
	{"edges_types", []column{{"id", kindInt}, {"name", kindText}}},
	{"finishing_types", []column{{"id", kindInt}, {"name", kindText}}},
	{"hsn_codes", []column{{"id", kindInt}, {"code", kindText}, {"description", kindText}}},
	{"vendors", []column{
		{"id", kindInt}, {"company_name", kindText}, {"contact_person", kindNullText},
		{"phone_number", kindNullText}, {"email_address", kindNullText}, {"city", kindNullText},
		{"state", kindNullText}, {"state_code", kindNullText}, {"complete_address", kindNullText},
		{"gst_number", kindNullText}, {"bank_details", kindNullText}, {"created_at", kindTime},
	}},
	{"inventory_items", []column{
		{"id", kindInt}, {"stone_id", kindInt}, {"length_mm", kindInt}, {"width_mm", kindInt},
		{"thickness_mm", kindNullInt}, {"is_calibrated", kindBool}, {"edges_type_id", kindNullInt},
		{"finishing_type_id", kindNullInt}, {"stage_id", kindNullInt}, {"source", kindText},
		{"created_at", kindTime},
	}},
	{"inventory_transactions", []column{
		{"id", kindInt}, {"inventory_item_id", kindInt}, {"operation_id", kindOperationID},
		{"transaction_type", kindText}, {"change_in_sq_meter", kindDecimal}, {"change_in_pieces", kindInt},
		{"balance_after_sq_meter", kindDecimal}, {"balance_after_pieces", kindInt},
		{"reason", kindNullText}, {"source_details", kindNullText}, {"performed_by", kindText},
		{"created_at", kindTime},
	}},
	{"procurements", []column{
		{"id", kindInt}, {"vendor_id", kindInt}, {"invoice_date", kindTime}, {"supplier_invoice", kindText},
		{"vehicle_number", kindNullText}, {"gst_type", kindText}, {"tax_percentage", kindDecimal},
		{"freight_charges", kindDecimal}, {"additional_taxable_amount", kindDecimal},
		{"grand_total", kindDecimal}, {"comments", kindNullText}, {"created_at", kindTime},
		{"updated_at", kindTime},
	}},
	{"procurement_items", []column{
		{"id", kindInt}, {"procurement_id", kindInt}, {"stone_id", kindInt}, {"hsn_code_id", kindNullInt},
		{"length_mm", kindInt}, {"width_mm", kindInt}, {"thickness_mm", kindNullInt},
		{"is_calibrated", kindBool}, {"edges_type_id", kindNullInt}, {"finishing_type_id", kindNullInt},
		{"stage_id", kindNullInt}, {"quantity", kindDecimal}, {"units", kindText}, {"rate", kindDecimal},
		{"rate_unit", kindText}, {"item_amount", kindDecimal}, {"comments", kindNullText},
		{"inventory_item_id", kindNullInt}, {"created_at", kindTime},
	}},
}
