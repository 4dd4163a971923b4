package repository

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// プロセス内メモリの商品ストア。
// 採番は単調増加カウンタで行い、削除後もIDを再利用しない。
type ProductMemoryRepository struct {
	mu       sync.Mutex
	products []model.Product
	seq      int64
}

// DI
func NewProductMemoryRepository() *ProductMemoryRepository {
	return &ProductMemoryRepository{}
}

func (r *ProductMemoryRepository) List(ctx context.Context) ([]model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *ProductMemoryRepository) FindByID(ctx context.Context, id string) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

// IDが空、または指定IDが既存と衝突する場合はストアが採番する。
func (r *ProductMemoryRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID != "" && !r.existsLocked(p.ID) {
		// "p12" のような明示IDはカウンタを追い越させる
		if n, ok := parseProductSeq(p.ID); ok && n > r.seq {
			r.seq = n
		}
	} else {
		r.seq++
		p.ID = fmt.Sprintf("p%d", r.seq)
	}

	r.products = append(r.products, p)
	return p, nil
}

func (r *ProductMemoryRepository) Update(ctx context.Context, p model.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == p.ID {
			r.products[i] = p
			return nil
		}
	}
	return repo.ErrNotFound
}

func (r *ProductMemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.products[:0]
	for _, p := range r.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	r.products = kept
	return nil
}

func (r *ProductMemoryRepository) existsLocked(id string) bool {
	for _, p := range r.products {
		if p.ID == id {
			return true
		}
	}
	return false
}

func parseProductSeq(id string) (int64, bool) {
	rest, ok := strings.CutPrefix(id, "p")
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(rest, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
