package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
)

type OrderMemoryRepository struct {
	mu     sync.Mutex
	orders []model.Order
	seq    int64
}

// DI
func NewOrderMemoryRepository() *OrderMemoryRepository {
	return &OrderMemoryRepository{}
}

func (r *OrderMemoryRepository) Create(ctx context.Context, order model.Order) (model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	order.ID = r.seq

	r.orders = append(r.orders, order)
	return order, nil
}

func (r *OrderMemoryRepository) ListAll(ctx context.Context) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *OrderMemoryRepository) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
