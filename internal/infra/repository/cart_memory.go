package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// ユーザーIDをキーにしたメモリ上のカートストア。
// mapのエントリ有無で「カート未生成」と「空のカート」を区別する。
type CartMemoryRepository struct {
	mu    sync.Mutex
	carts map[int64][]model.CartItem
}

// DI
func NewCartMemoryRepository() *CartMemoryRepository {
	return &CartMemoryRepository{carts: make(map[int64][]model.CartItem)}
}

func (r *CartMemoryRepository) ItemsByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return copyItems(r.carts[userID]), nil
}

func (r *CartMemoryRepository) AddItem(ctx context.Context, userID int64, productID string, qty int64) ([]model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items := r.carts[userID]

	found := false
	for i := range items {
		if items[i].ProductID == productID {
			items[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		items = append(items, model.CartItem{ProductID: productID, Quantity: qty})
	}

	r.carts[userID] = items
	return copyItems(items), nil
}

func (r *CartMemoryRepository) RemoveItem(ctx context.Context, userID int64, productID string) ([]model.CartItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	items, ok := r.carts[userID]
	if !ok {
		return nil, repo.ErrNotFound
	}

	kept := make([]model.CartItem, 0, len(items))
	for _, it := range items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}

	r.carts[userID] = kept
	return copyItems(kept), nil
}

func (r *CartMemoryRepository) Clear(ctx context.Context, userID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[userID] = []model.CartItem{}
	return nil
}

func copyItems(items []model.CartItem) []model.CartItem {
	out := make([]model.CartItem, len(items))
	copy(out, items)
	return out
}
