package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
)

type ReviewMemoryRepository struct {
	mu      sync.Mutex
	reviews []model.Review
	seq     int64
}

// DI
func NewReviewMemoryRepository() *ReviewMemoryRepository {
	return &ReviewMemoryRepository{}
}

func (r *ReviewMemoryRepository) Create(ctx context.Context, review model.Review) (model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	review.ID = r.seq

	r.reviews = append(r.reviews, review)
	return review, nil
}

func (r *ReviewMemoryRepository) ListByProductID(ctx context.Context, productID string) ([]model.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Review, 0)
	for _, rv := range r.reviews {
		if rv.ProductID == productID {
			out = append(out, rv)
		}
	}
	return out, nil
}

func (r *ReviewMemoryRepository) DeleteByProductID(ctx context.Context, productID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.reviews[:0]
	for _, rv := range r.reviews {
		if rv.ProductID != productID {
			kept = append(kept, rv)
		}
	}
	r.reviews = kept
	return nil
}
