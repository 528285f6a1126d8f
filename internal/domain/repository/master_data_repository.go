package repository

import (
	"context"

	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

// MasterDataRepository catálogos de solo lectura.
type MasterDataRepository interface {
	Stones(ctx context.Context) ([]*entity.Stone, error)
	Stages(ctx context.Context) ([]*entity.LookupEntry, error)
	EdgesTypes(ctx context.Context) ([]*entity.LookupEntry, error)
	FinishingTypes(ctx context.Context) ([]*entity.LookupEntry, error)
	HSNCodes(ctx context.Context) ([]*entity.HSNCode, error)
}
