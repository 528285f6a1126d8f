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

var _ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)

// InventoryItemRepo implementación del puerto InventoryItemRepository sobre PostgreSQL (usable con pool o tx).
type InventoryItemRepo struct {
	q Querier
}

// NewInventoryItemRepository construye el adaptador de líneas de inventario. Pasar pool o tx (Querier).
func NewInventoryItemRepository(q Querier) *InventoryItemRepo {
	return &InventoryItemRepo{q: q}
}

const itemColumns = `i.id, i.stone_id, i.length_mm, i.width_mm, i.thickness_mm, i.is_calibrated,
	i.edges_type_id, i.finishing_type_id, i.stage_id, i.source, i.created_at`

// El saldo se deriva del ledger: la suma de cambios es igual al balance_after de la última fila.
const itemViewSelect = `
	SELECT ` + itemColumns + `,
		s.stone_name, s.stone_type,
		COALESCE(sg.name, ''), COALESCE(e.name, ''), COALESCE(f.name, ''),
		COALESCE(b.pieces, 0)::bigint, COALESCE(b.sq_meter, 0), b.last_activity
	FROM inventory_items i
	JOIN stones s ON s.id = i.stone_id
	LEFT JOIN stages sg ON sg.id = i.stage_id
	LEFT JOIN edges_types e ON e.id = i.edges_type_id
	LEFT JOIN finishing_types f ON f.id = i.finishing_type_id
	LEFT JOIN LATERAL (
		SELECT SUM(t.change_in_pieces) AS pieces,
		       SUM(t.change_in_sq_meter) AS sq_meter,
		       MAX(t.created_at) AS last_activity
		FROM inventory_transactions t
		WHERE t.inventory_item_id = i.id
	) b ON true`

func scanItem(row pgx.Row, it *entity.InventoryItem, extra ...any) error {
	var source string
	dest := []any{&it.ID, &it.StoneID, &it.LengthMM, &it.WidthMM, &it.ThicknessMM, &it.IsCalibrated,
		&it.EdgesTypeID, &it.FinishingTypeID, &it.StageID, &source, &it.CreatedAt}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return err
	}
	it.Source = entity.Source(source)
	return nil
}

func scanItemView(row pgx.Row) (*entity.InventoryItemView, error) {
	var v entity.InventoryItemView
	err := scanItem(row, &v.InventoryItem,
		&v.StoneName, &v.StoneType, &v.Stage, &v.EdgesType, &v.FinishingType,
		&v.QuantityPieces, &v.QuantitySqMeter, &v.LastActivityDate)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// FindOrCreate inserta la línea si no existe; si otra transacción la creó primero, la lee con FOR UPDATE.
// La constraint inventory_items_identity_key usa NULLS NOT DISTINCT, así NULL solo coincide con NULL.
func (r *InventoryItemRepo) FindOrCreate(ctx context.Context, attrs entity.ItemAttributes, source entity.Source) (int64, bool, error) {
	var id int64
	err := r.q.QueryRow(ctx, `
		INSERT INTO inventory_items (stone_id, length_mm, width_mm, thickness_mm, is_calibrated,
			edges_type_id, finishing_type_id, stage_id, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT ON CONSTRAINT inventory_items_identity_key DO NOTHING
		RETURNING id`,
		attrs.StoneID, attrs.LengthMM, attrs.WidthMM, attrs.ThicknessMM, attrs.IsCalibrated,
		attrs.EdgesTypeID, attrs.FinishingTypeID, attrs.StageID, string(source),
	).Scan(&id)
	switch {
	case err == nil:
		return id, true, nil
	case errors.Is(err, pgx.ErrNoRows):
	case isForeignKeyViolation(err):
		return 0, false, domain.Invalid("referenced stone or lookup does not exist")
	case isCheckViolation(err):
		return 0, false, domain.Invalid("dimensions must be positive")
	default:
		return 0, false, fmt.Errorf("insert inventory item: %w", err)
	}

	err = r.q.QueryRow(ctx, `
		SELECT id FROM inventory_items
		WHERE stone_id = $1 AND length_mm = $2 AND width_mm = $3
		  AND thickness_mm IS NOT DISTINCT FROM $4
		  AND is_calibrated = $5
		  AND edges_type_id IS NOT DISTINCT FROM $6
		  AND finishing_type_id IS NOT DISTINCT FROM $7
		  AND stage_id IS NOT DISTINCT FROM $8
		  AND source = $9
		FOR UPDATE`,
		attrs.StoneID, attrs.LengthMM, attrs.WidthMM, attrs.ThicknessMM, attrs.IsCalibrated,
		attrs.EdgesTypeID, attrs.FinishingTypeID, attrs.StageID, string(source),
	).Scan(&id)
	if err != nil {
		return 0, false, fmt.Errorf("find inventory item: %w", err)
	}
	return id, false, nil
}

// GetByID obtiene una línea por ID.
func (r *InventoryItemRepo) GetByID(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	return r.get(ctx, `SELECT `+itemColumns+` FROM inventory_items i WHERE i.id = $1`, id)
}

// GetForUpdate obtiene la línea bloqueándola hasta el fin de la transacción.
func (r *InventoryItemRepo) GetForUpdate(ctx context.Context, id int64) (*entity.InventoryItem, error) {
	return r.get(ctx, `SELECT `+itemColumns+` FROM inventory_items i WHERE i.id = $1 FOR UPDATE`, id)
}

func (r *InventoryItemRepo) get(ctx context.Context, query string, id int64) (*entity.InventoryItem, error) {
	var it entity.InventoryItem
	if err := scanItem(r.q.QueryRow(ctx, query, id), &it); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item: %w", err)
	}
	return &it, nil
}

// GetView obtiene la línea con nombres de catálogo y saldo.
func (r *InventoryItemRepo) GetView(ctx context.Context, id int64) (*entity.InventoryItemView, error) {
	v, err := scanItemView(r.q.QueryRow(ctx, itemViewSelect+` WHERE i.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get inventory item view: %w", err)
	}
	return v, nil
}

// List lista líneas filtradas, la de actividad más reciente primero. Devuelve también el total.
func (r *InventoryItemRepo) List(ctx context.Context, f repository.InventoryItemFilter, limit, offset int) ([]*entity.InventoryItemView, int64, error) {
	var c conditions
	if f.StoneType != "" {
		c.add("s.stone_type = $%d", f.StoneType)
	}
	if f.StoneName != "" {
		c.add("s.stone_name ILIKE $%d", likePattern(f.StoneName))
	}
	if f.StageID != nil {
		c.add("i.stage_id = $%d", *f.StageID)
	}
	if f.EdgesTypeID != nil {
		c.add("i.edges_type_id = $%d", *f.EdgesTypeID)
	}
	if f.FinishingTypeID != nil {
		c.add("i.finishing_type_id = $%d", *f.FinishingTypeID)
	}
	if f.Source != "" {
		c.add("i.source = $%d", string(f.Source))
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM inventory_items i JOIN stones s ON s.id = i.stone_id` + c.where()
	if err := r.q.QueryRow(ctx, countQuery, c.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count inventory items: %w", err)
	}

	query := itemViewSelect + c.where() + ` ORDER BY b.last_activity DESC NULLS LAST, i.id DESC` + c.page(limit, offset)
	rows, err := r.q.Query(ctx, query, c.args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list inventory items: %w", err)
	}
	defer rows.Close()
	list := []*entity.InventoryItemView{}
	for rows.Next() {
		v, err := scanItemView(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan inventory item: %w", err)
		}
		list = append(list, v)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list inventory items: %w", err)
	}
	return list, total, nil
}

// ListIDs devuelve los IDs de todas las líneas en orden ascendente.
func (r *InventoryItemRepo) ListIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.q.Query(ctx, `SELECT id FROM inventory_items ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list inventory item ids: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("scan inventory item ids: %w", err)
	}
	return ids, nil
}

// Analytics calcula los totales del tablero. Solo cuentan como líneas las que tienen piezas.
func (r *InventoryItemRepo) Analytics(ctx context.Context) (*repository.InventoryAnalytics, error) {
	query := `
	WITH balances AS (
		SELECT i.id, i.stage_id,
		       COALESCE(SUM(t.change_in_pieces), 0) AS pieces,
		       COALESCE(SUM(t.change_in_sq_meter), 0) AS sq_meter
		FROM inventory_items i
		LEFT JOIN inventory_transactions t ON t.inventory_item_id = i.id
		GROUP BY i.id, i.stage_id
	)
	SELECT
		COUNT(*) FILTER (WHERE pieces > 0),
		COUNT(*) FILTER (WHERE pieces > 0 AND stage_id = $1),
		COUNT(*) FILTER (WHERE pieces > 0 AND stage_id = $2),
		COALESCE(SUM(pieces), 0)::bigint,
		COALESCE(SUM(sq_meter), 0)
	FROM balances`
	var a repository.InventoryAnalytics
	err := r.q.QueryRow(ctx, query, entity.StageRawMaterial, entity.StagePackagingComplete).Scan(
		&a.TotalItems, &a.RawMaterials, &a.PackagingComplete, &a.TotalQuantityPieces, &a.TotalQuantitySqMeter,
	)
	if err != nil {
		return nil, fmt.Errorf("inventory analytics: %w", err)
	}
	return &a, nil
}

// Delete elimina la línea. El ledger cae por ON DELETE CASCADE y las líneas de compra quedan sin vínculo.
func (r *InventoryItemRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM inventory_items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete inventory item: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.NotFound("inventory item")
	}
	return nil
}
