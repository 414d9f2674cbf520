package orderrepo

import (
	"context"
	"errors"
	"time"

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

// Save inserts the order under a store-generated id and writes it back to
// order.ID.
func (r *Repository) Save(ctx context.Context, order *domain.Order) error {
	doc, err := store.Marshal(order)
	if err != nil {
		return err
	}
	id, err := r.store.Insert(ctx, store.OrdersCollection, doc)
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return err
	}
	order.ID = id
	return nil
}

// GetByID returns nil without an error when the order does not exist.
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	doc, err := r.store.Get(ctx, store.OrdersCollection, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't get order", zap.Error(err))
		return nil, err
	}

	var order domain.Order
	if err := store.Unmarshal(doc, &order); err != nil {
		zap.L().Error("can't decode order document", zap.Error(err))
		return nil, err
	}
	order.ID = id
	return &order, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) error {
	fields := store.Document{
		"status":     status,
		"updated_at": updatedAt,
	}
	if err := r.store.Update(ctx, store.OrdersCollection, id, fields); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			zap.L().Error("can't update order status", zap.Error(err))
		}
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	if err := r.store.Delete(ctx, store.OrdersCollection, id); err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			zap.L().Error("can't delete order", zap.Error(err))
		}
		return err
	}
	return nil
}
