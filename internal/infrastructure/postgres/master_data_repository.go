package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

var _ repository.MasterDataRepository = (*MasterDataRepo)(nil)

// MasterDataRepo catálogos de solo lectura.
type MasterDataRepo struct {
	q Querier
}

// NewMasterDataRepository construye el adaptador de catálogos.
func NewMasterDataRepository(q Querier) *MasterDataRepo {
	return &MasterDataRepo{q: q}
}

func (r *MasterDataRepo) Stones(ctx context.Context) ([]*entity.Stone, error) {
	rows, err := r.q.Query(ctx, `SELECT id, stone_name, stone_type FROM stones ORDER BY stone_name, id`)
	if err != nil {
		return nil, fmt.Errorf("list stones: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.Stone, error) {
		var s entity.Stone
		err := row.Scan(&s.ID, &s.StoneName, &s.StoneType)
		return &s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan stone: %w", err)
	}
	return list, nil
}

func (r *MasterDataRepo) Stages(ctx context.Context) ([]*entity.LookupEntry, error) {
	return r.lookup(ctx, "stages")
}

func (r *MasterDataRepo) EdgesTypes(ctx context.Context) ([]*entity.LookupEntry, error) {
	return r.lookup(ctx, "edges_types")
}

func (r *MasterDataRepo) FinishingTypes(ctx context.Context) ([]*entity.LookupEntry, error) {
	return r.lookup(ctx, "finishing_types")
}

// lookup lee una tabla id/name. table es siempre una constante de este archivo.
func (r *MasterDataRepo) lookup(ctx context.Context, table string) ([]*entity.LookupEntry, error) {
	rows, err := r.q.Query(ctx, `SELECT id, name FROM `+table+` ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", table, err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.LookupEntry, error) {
		var e entity.LookupEntry
		err := row.Scan(&e.ID, &e.Name)
		return &e, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan %s: %w", table, err)
	}
	return list, nil
}

func (r *MasterDataRepo) HSNCodes(ctx context.Context) ([]*entity.HSNCode, error) {
	rows, err := r.q.Query(ctx, `SELECT id, code, description FROM hsn_codes ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("list hsn codes: %w", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*entity.HSNCode, error) {
		var h entity.HSNCode
		err := row.Scan(&h.ID, &h.Code, &h.Description)
		return &h, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan hsn code: %w", err)
	}
	return list, nil
}
