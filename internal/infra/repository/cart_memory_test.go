package repository

import (
	"context"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test: 同一商品の追加は数量加算で明細は1行のまま
func TestCartAddItem_Accumulates(t *testing.T) {
	r := NewCartMemoryRepository()
	ctx := context.Background()

	_, err := r.AddItem(ctx, 1, "p1", 2)
	require.NoError(t, err)

	items, err := r.AddItem(ctx, 1, "p1", 3)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, model.CartItem{ProductID: "p1", Quantity: 5}, items[0])
}

// Test: 未生成カートからの削除はErrNotFound
func TestCartRemoveItem_NoCart(t *testing.T) {
	r := NewCartMemoryRepository()

	_, err := r.RemoveItem(context.Background(), 1, "p1")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

// Test: Clear後は「空のカートが存在する」状態（削除は404にならない）
func TestCartClear_LeavesEmptyCart(t *testing.T) {
	r := NewCartMemoryRepository()
	ctx := context.Background()

	_, err := r.AddItem(ctx, 1, "p1", 2)
	require.NoError(t, err)
	require.NoError(t, r.Clear(ctx, 1))

	items, err := r.ItemsByUserID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, items)

	items, err = r.RemoveItem(ctx, 1, "p1")
	require.NoError(t, err)
	assert.Empty(t, items)
}

// Test: カートはユーザーごとに独立
func TestCartIsolatedPerUser(t *testing.T) {
	r := NewCartMemoryRepository()
	ctx := context.Background()

	_, err := r.AddItem(ctx, 1, "p1", 1)
	require.NoError(t, err)

	items, err := r.ItemsByUserID(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, items)
}
