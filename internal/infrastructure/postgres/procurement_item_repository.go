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

var _ repository.ProcurementItemRepository = (*ProcurementItemRepo)(nil)

// ProcurementItemRepo líneas de compra sobre PostgreSQL (usable con pool o tx).
type ProcurementItemRepo struct {
	q Querier
}

// NewProcurementItemRepository construye el adaptador de líneas de compra. Pasar pool o tx (Querier).
func NewProcurementItemRepository(q Querier) *ProcurementItemRepo {
	return &ProcurementItemRepo{q: q}
}

const procurementItemColumns = `pi.id, pi.procurement_id, pi.hsn_code_id, pi.stone_id, pi.length_mm, pi.width_mm,
	pi.thickness_mm, pi.is_calibrated, pi.edges_type_id, pi.finishing_type_id, pi.stage_id,
	pi.quantity, pi.units, pi.rate, pi.rate_unit, pi.item_amount, pi.comments, pi.inventory_item_id, pi.created_at`

const procurementItemViewSelect = `
	SELECT ` + procurementItemColumns + `,
		st.stone_name, st.stone_type,
		COALESCE(sg.name, ''), COALESCE(e.name, ''), COALESCE(f.name, ''), COALESCE(h.code, ''),
		p.supplier_invoice, p.invoice_date
	FROM procurement_items pi
	JOIN procurements p ON p.id = pi.procurement_id
	JOIN stones st ON st.id = pi.stone_id
	LEFT JOIN stages sg ON sg.id = pi.stage_id
	LEFT JOIN edges_types e ON e.id = pi.edges_type_id
	LEFT JOIN finishing_types f ON f.id = pi.finishing_type_id
	LEFT JOIN hsn_codes h ON h.id = pi.hsn_code_id`

func scanProcurementItem(row pgx.Row, it *entity.ProcurementItem, extra ...any) error {
	var units string
	dest := []any{&it.ID, &it.ProcurementID, &it.HSNCodeID, &it.StoneID, &it.LengthMM, &it.WidthMM,
		&it.ThicknessMM, &it.IsCalibrated, &it.EdgesTypeID, &it.FinishingTypeID, &it.StageID,
		&it.Quantity, &units, &it.Rate, &it.RateUnit, &it.ItemAmount, &it.Comments, &it.InventoryItemID, &it.CreatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	it.Units = entity.Unit(units)
	return nil
}

func scanProcurementItemView(row pgx.Row) (*entity.ProcurementItemView, error) {
	var v entity.ProcurementItemView
	err := scanProcurementItem(row, &v.ProcurementItem,
		&v.StoneName, &v.StoneType, &v.StageName, &v.EdgesTypeName, &v.FinishingTypeName, &v.HSNCode,
		&v.SupplierInvoice, &v.InvoiceDate)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// Create persiste la línea. CreatedAt llega fijado a la fecha de la factura.
func (r *ProcurementItemRepo) Create(ctx context.Context, it *entity.ProcurementItem) error {
	query := `
		INSERT INTO procurement_items (procurement_id, stone_id, hsn_code_id, length_mm, width_mm, thickness_mm,
			is_calibrated, edges_type_id, finishing_type_id, stage_id, quantity, units, rate, rate_unit,
			item_amount, comments, inventory_item_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		it.ProcurementID, it.StoneID, it.HSNCodeID, it.LengthMM, it.WidthMM, it.ThicknessMM,
		it.IsCalibrated, it.EdgesTypeID, it.FinishingTypeID, it.StageID, it.Quantity, string(it.Units), it.Rate, it.RateUnit,
		it.ItemAmount, it.Comments, it.InventoryItemID, it.CreatedAt,
	).Scan(&it.ID)
	if err != nil {
		switch {
		case isForeignKeyViolation(err):
			return domain.Invalid("referenced stone, lookup or hsn code does not exist")
		case isCheckViolation(err):
			return domain.Invalid("quantity must be positive")
		}
		return fmt.Errorf("insert procurement item: %w", err)
	}
	return nil
}

// GetByID obtiene una línea de compra por ID.
func (r *ProcurementItemRepo) GetByID(ctx context.Context, id int64) (*entity.ProcurementItem, error) {
	var it entity.ProcurementItem
	query := `SELECT ` + procurementItemColumns + ` FROM procurement_items pi WHERE pi.id = $1`
	if err := scanProcurementItem(r.q.QueryRow(ctx, query, id), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get procurement item: %w", err)
	}
	return &it, nil
}

// ListByProcurement lista las líneas vigentes de una compra en orden de carga.
func (r *ProcurementItemRepo) ListByProcurement(ctx context.Context, procurementID int64) ([]*entity.ProcurementItemView, error) {
	return r.list(ctx, procurementItemViewSelect+` WHERE pi.procurement_id = $1 ORDER BY pi.id`, procurementID)
}

// CountLinked cuenta otras líneas de compra que alimentan la misma línea de inventario.
func (r *ProcurementItemRepo) CountLinked(ctx context.Context, inventoryItemID, exceptID int64) (int64, error) {
	var n int64
	err := r.q.QueryRow(ctx,
		`SELECT COUNT(*) FROM procurement_items WHERE inventory_item_id = $1 AND id <> $2`,
		inventoryItemID, exceptID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count linked procurement items: %w", err)
	}
	return n, nil
}

func vendorConditions(vendorID int64, f repository.VendorItemFilter) *conditions {
	c := &conditions{}
	c.add("p.vendor_id = $%d", vendorID)
	if f.StartDate != nil {
		c.add("pi.created_at >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		c.add("pi.created_at < $%d", *f.EndDate)
	}
	if f.StoneType != "" {
		c.add("st.stone_type = $%d", f.StoneType)
	}
	if f.StoneName != "" {
		c.add("st.stone_name ILIKE $%d", likePattern(f.StoneName))
	}
	return c
}

// ListByVendor lista las líneas compradas a un proveedor, la más reciente primero.
func (r *ProcurementItemRepo) ListByVendor(ctx context.Context, vendorID int64, f repository.VendorItemFilter, limit, offset int) ([]*entity.ProcurementItemView, int64, error) {
	c := vendorConditions(vendorID, f)

	var total int64
	countQuery := `
		SELECT COUNT(*) FROM procurement_items pi
		JOIN procurements p ON p.id = pi.procurement_id
		JOIN stones st ON st.id = pi.stone_id` + c.where()
	if err := r.q.QueryRow(ctx, countQuery, c.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count vendor items: %w", err)
	}

	query := procurementItemViewSelect + c.where() + ` ORDER BY pi.created_at DESC, pi.id DESC` + c.page(limit, offset)
	list, err := r.list(ctx, query, c.args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// VendorStats totales del reporte por proveedor con los mismos filtros del listado.
func (r *ProcurementItemRepo) VendorStats(ctx context.Context, vendorID int64, f repository.VendorItemFilter) (*repository.VendorItemStats, error) {
	c := vendorConditions(vendorID, f)
	query := `
		SELECT COUNT(*), COALESCE(SUM(pi.item_amount), 0), COUNT(DISTINCT pi.procurement_id)
		FROM procurement_items pi
		JOIN procurements p ON p.id = pi.procurement_id
		JOIN stones st ON st.id = pi.stone_id` + c.where()
	var s repository.VendorItemStats
	if err := r.q.QueryRow(ctx, query, c.args...).Scan(&s.TotalItems, &s.TotalAmount, &s.TotalProcurements); err != nil {
		return nil, fmt.Errorf("vendor item stats: %w", err)
	}
	return &s, nil
}

// Delete elimina la línea de compra.
func (r *ProcurementItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM procurement_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete procurement item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("procurement item")
	}
	return nil
}

func (r *ProcurementItemRepo) list(ctx context.Context, query string, args ...any) ([]*entity.ProcurementItemView, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list procurement items: %w", err)
	}
	defer rows.Close()
	list := []*entity.ProcurementItemView{}
	for rows.Next() {
		v, err := scanProcurementItemView(rows)
		if err != nil {
			return nil, fmt.Errorf("scan procurement item: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list procurement items: %w", err)
	}
	return list, nil
}
