package userrepo

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/smmpanel/backend/internal/domain"
	"github.com/smmpanel/backend/internal/store"
)

type Repository struct {
	store store.Store
}

func New(st store.Store) *Repository {
	return &Repository{
		store: st,
	}
}

// GetByID returns nil without an error when the user does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	doc, err := r.store.Get(ctx, store.UsersCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get user", zap.Error(err))
		return nil, err
	}

	var user domain.User
	if err := store.Unmarshal(doc, &user); err != nil {
		zap.L().Error("can't decode user document", zap.Error(err))
		return nil, err
	}
	user.ID = id
	return &user, nil
}

func (r *Repository) Save(ctx context.Context, user *domain.User) error {
	doc, err := store.Marshal(user)
	if err != nil {
		return err
	}
	if err := r.store.Put(ctx, store.UsersCollection, user.ID, doc); err != nil {
		zap.L().Error("can't save user", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateUsername(ctx context.Context, id, username string, updatedAt time.Time) error {
	fields := store.Document{
		"username":   username,
		"updated_at": updatedAt,
	}
	if err := r.store.Update(ctx, store.UsersCollection, id, fields); err != nil {
		zap.L().Error("can't update username", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) UpdateBalance(ctx context.Context, id string, balance decimal.Decimal, updatedAt time.Time) error {
	fields := store.Document{
		"balance":    balance,
		"updated_at": updatedAt,
	}
	if err := r.store.Update(ctx, store.UsersCollection, id, fields); err != nil {
		zap.L().Error("can't update balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, store.UsersCollection, id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			zap.L().Error("can't delete user", zap.Error(err))
		}
		return err
	}
	return nil
}
