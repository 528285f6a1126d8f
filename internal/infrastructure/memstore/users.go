package memstore

import (
	"context"

	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

var _ repository.UserRepository = (*userRepo)(nil)

type userRepo Store

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := (*Store)(r).fault("users.create"); err != nil {
		return err
	}
	if _, ok := r.data.users[u.Username]; ok {
		return domain.Duplicate("username already taken")
	}
	u.ID = (*Store)(r).nextID()
	u.CreatedAt = r.now()
	u.UpdatedAt = u.CreatedAt
	r.data.users[u.Username] = *u
	return nil
}

func (r *userRepo) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.data.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *userRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.data.users)), nil
}
