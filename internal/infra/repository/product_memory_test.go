package repository

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedFourProducts(t *testing.T, r *ProductMemoryRepository) {
	t.Helper()
	ctx := context.Background()

	for _, p := range []model.Product{
		{ID: "p1", Name: "Audifonos", Price: 59990},
		{ID: "p2", Name: "Teclado", Price: 36990},
		{ID: "p3", Name: "Mouse", Price: 99990},
		{ID: "p4", Name: "Monitor", Price: 94990},
	} {
		_, err := r.Create(ctx, p)
		require.NoError(t, err)
	}
}

// Test: 4件seed後の自動採番はp5
func TestProductCreate_GeneratedID(t *testing.T) {
	r := NewProductMemoryRepository()
	seedFourProducts(t, r)

	created, err := r.Create(context.Background(), model.Product{Name: "X", Price: 100})
	require.NoError(t, err)
	assert.Equal(t, "p5", created.ID)

	found, err := r.FindByID(context.Background(), "p5")
	require.NoError(t, err)
	assert.Equal(t, created, found)
}

// Test: 削除してもIDは再利用しない
func TestProductCreate_NoIDReuseAfterDelete(t *testing.T) {
	r := NewProductMemoryRepository()
	seedFourProducts(t, r)
	ctx := context.Background()

	require.NoError(t, r.Delete(ctx, "p4"))

	created, err := r.Create(ctx, model.Product{Name: "Y", Price: 200})
	require.NoError(t, err)
	assert.Equal(t, "p5", created.ID)

	list, err := r.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 4)
}

// Test: 既存IDと衝突する明示IDはストアが採番し直す
func TestProductCreate_ExplicitIDConflict(t *testing.T) {
	r := NewProductMemoryRepository()
	seedFourProducts(t, r)

	created, err := r.Create(context.Background(), model.Product{ID: "p1", Name: "Dup", Price: 1})
	require.NoError(t, err)
	assert.Equal(t, "p5", created.ID)
}

func TestProductFindByID_NotFound(t *testing.T) {
	r := NewProductMemoryRepository()

	_, err := r.FindByID(context.Background(), "p99")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestProductUpdate_NotFound(t *testing.T) {
	r := NewProductMemoryRepository()

	err := r.Update(context.Background(), model.Product{ID: "p1", Name: "X"})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
