package repository

import (
	"context"

	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

// UserRepository puerto de persistencia de operadores.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername devuelve (nil, nil) si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	Count(ctx context.Context) (int64, error)
}
