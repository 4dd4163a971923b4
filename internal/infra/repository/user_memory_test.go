package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test: email重複はErrEmailTaken、件数は増えない
func TestUserCreate_DuplicateEmail(t *testing.T) {
	r := NewUserMemoryRepository()
	ctx := context.Background()

	first := &model.User{Name: "A", Email: "a@example.com", Role: model.RoleUser}
	require.NoError(t, r.Create(ctx, first))
	assert.Equal(t, int64(1), first.ID)

	second := &model.User{Name: "B", Email: "a@example.com", Role: model.RoleUser}
	err := r.Create(ctx, second)
	assert.ErrorIs(t, err, repo.ErrEmailTaken)

	got, err := r.FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "A", got.Name)
}

// Test: 同時登録でもIDとemailは衝突しない
func TestUserCreate_Concurrent(t *testing.T) {
	r := NewUserMemoryRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int64, n)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			u := &model.User{Email: fmt.Sprintf("u%d@example.com", i), Role: model.RoleUser}
			if err := r.Create(ctx, u); err == nil {
				ids <- u.ID
			}
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[int64]bool)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	assert.Len(t, seen, n)
}

func TestUserFindByID_NotFound(t *testing.T) {
	r := NewUserMemoryRepository()

	_, err := r.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
