package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

var _ repository.ProcurementRepository = (*ProcurementRepo)(nil)

// ProcurementRepo cabeceras de compra sobre PostgreSQL (usable con pool o tx).
type ProcurementRepo struct {
	q Querier
}

// NewProcurementRepository construye el adaptador de compras. Pasar pool o tx (Querier).
func NewProcurementRepository(q Querier) *ProcurementRepo {
	return &ProcurementRepo{q: q}
}

const procurementViewSelect = `
	SELECT p.id, p.vendor_id, p.invoice_date, p.supplier_invoice, p.vehicle_number, p.gst_type,
		p.tax_percentage, p.freight_charges, p.additional_taxable_amount, p.grand_total,
		p.comments, p.created_at, p.updated_at,
		v.company_name, v.contact_person, v.phone_number, v.email_address, v.city, v.state,
		v.state_code, v.complete_address, v.gst_number, v.bank_details,
		(SELECT COUNT(*) FROM procurement_items pi WHERE pi.procurement_id = p.id)
	FROM procurements p
	JOIN vendors v ON v.id = p.vendor_id`

func scanProcurementView(row pgx.Row) (*entity.ProcurementView, error) {
	var v entity.ProcurementView
	var gst string
	err := row.Scan(&v.ID, &v.VendorID, &v.InvoiceDate, &v.SupplierInvoice, &v.VehicleNumber, &gst,
		&v.TaxPercentage, &v.FreightCharges, &v.AdditionalTaxableAmount, &v.GrandTotal,
		&v.Comments, &v.CreatedAt, &v.UpdatedAt,
		&v.VendorName, &v.ContactPerson, &v.PhoneNumber, &v.EmailAddress, &v.City, &v.State,
		&v.StateCode, &v.CompleteAddress, &v.GSTNumber, &v.BankDetails,
		&v.TotalItems)
	if err != nil {
		return nil, err
	}
	v.GSTType = entity.GSTType(gst)
	return &v, nil
}

// Create persiste la cabecera. Una factura repetida para el mismo proveedor es ErrDuplicate.
func (r *ProcurementRepo) Create(ctx context.Context, p *entity.Procurement) error {
	query := `
		INSERT INTO procurements (vendor_id, invoice_date, supplier_invoice, vehicle_number, gst_type,
			tax_percentage, freight_charges, additional_taxable_amount, grand_total, comments)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at`
	err := r.q.QueryRow(ctx, query,
		p.VendorID, p.InvoiceDate, p.SupplierInvoice, p.VehicleNumber, string(p.GSTType),
		p.TaxPercentage, p.FreightCharges, p.AdditionalTaxableAmount, p.GrandTotal, p.Comments,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.Duplicate("a procurement with this supplier invoice already exists for the vendor")
		case isForeignKeyViolation(err):
			return domain.NotFound("vendor")
		}
		return fmt.Errorf("insert procurement: %w", err)
	}
	return nil
}

// GetByID obtiene la cabecera con datos del proveedor.
func (r *ProcurementRepo) GetByID(ctx context.Context, id int64) (*entity.ProcurementView, error) {
	v, err := scanProcurementView(r.q.QueryRow(ctx, procurementViewSelect+` WHERE p.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get procurement: %w", err)
	}
	return v, nil
}

// List lista compras filtradas, la modificada más recientemente primero.
// Los filtros de piedra y etapa aplican sobre las líneas de la compra.
func (r *ProcurementRepo) List(ctx context.Context, f repository.ProcurementFilter, limit, offset int) ([]*entity.ProcurementView, int64, error) {
	var c conditions
	if f.VendorID != nil {
		c.add("p.vendor_id = $%d", *f.VendorID)
	}
	if f.SupplierInvoice != "" {
		c.add("p.supplier_invoice ILIKE $%d", likePattern(f.SupplierInvoice))
	}
	if f.DateReceived != nil {
		c.add("p.invoice_date = $%d::date", *f.DateReceived)
	}
	if f.StoneType != "" || f.StoneName != "" || f.StageID != nil {
		var sub conditions
		sub.args = c.args
		sub.and("pi.procurement_id = p.id")
		if f.StoneType != "" {
			sub.add("st.stone_type = $%d", f.StoneType)
		}
		if f.StoneName != "" {
			sub.add("st.stone_name ILIKE $%d", likePattern(f.StoneName))
		}
		if f.StageID != nil {
			sub.add("pi.stage_id = $%d", *f.StageID)
		}
		c.args = sub.args
		c.and(`EXISTS (SELECT 1 FROM procurement_items pi JOIN stones st ON st.id = pi.stone_id` + sub.where() + `)`)
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM procurements p` + c.where()
	if err := r.q.QueryRow(ctx, countQuery, c.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count procurements: %w", err)
	}

	query := procurementViewSelect + c.where() + ` ORDER BY p.updated_at DESC, p.id DESC` + c.page(limit, offset)
	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list procurements: %w", err)
	}
	defer rows.Close()
	list := []*entity.ProcurementView{}
	for rows.Next() {
		v, err := scanProcurementView(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan procurement: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list procurements: %w", err)
	}
	return list, total, nil
}

// Analytics totales del tablero de compras.
func (r *ProcurementRepo) Analytics(ctx context.Context) (*repository.ProcurementAnalytics, error) {
	var a repository.ProcurementAnalytics
	err := r.q.QueryRow(ctx, `
		SELECT COUNT(*), COALESCE(SUM(grand_total), 0), COUNT(DISTINCT vendor_id),
		       (SELECT COUNT(*) FROM procurement_items)
		FROM procurements`,
	).Scan(&a.TotalProcurements, &a.TotalValue, &a.UniqueVendors, &a.TotalStones)
	if err != nil {
		return nil, fmt.Errorf("procurement analytics: %w", err)
	}
	return &a, nil
}

// VendorName devuelve el nombre del proveedor y si existe.
func (r *ProcurementRepo) VendorName(ctx context.Context, vendorID int64) (string, bool, error) {
	var name string
	err := r.q.QueryRow(ctx, `SELECT company_name FROM vendors WHERE id = $1`, vendorID).Scan(&name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("get vendor: %w", err)
	}
	return name, true, nil
}

// Touch marca la cabecera como modificada.
func (r *ProcurementRepo) Touch(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `UPDATE procurements SET updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("touch procurement: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("procurement")
	}
	return nil
}
