package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
)

type CategoryMemoryRepository struct {
	mu         sync.Mutex
	categories []model.Category
	seq        int64
}

// DI
func NewCategoryMemoryRepository() *CategoryMemoryRepository {
	return &CategoryMemoryRepository{}
}

func (r *CategoryMemoryRepository) List(ctx context.Context) ([]model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *CategoryMemoryRepository) Create(ctx context.Context, c model.Category) (model.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if c.ID > 0 {
		if c.ID > r.seq {
			r.seq = c.ID
		}
	} else {
		r.seq++
		c.ID = r.seq
	}

	r.categories = append(r.categories, c)
	return c, nil
}
