package repository

import (
	"context"
	"sync"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// メモリ上のユーザーストア。
// email重複チェックと採番を同一ロック内で行うので、
// 同時登録でも重複emailやID衝突は起きない。
type UserMemoryRepository struct {
	mu      sync.Mutex
	users   []model.User
	byEmail map[string]int // index into users
	seq     int64
}

// DI
func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{byEmail: make(map[string]int)}
}

func (r *UserMemoryRepository) Create(ctx context.Context, user *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byEmail[user.Email]; ok {
		return repo.ErrEmailTaken
	}

	r.seq++
	user.ID = r.seq

	r.users = append(r.users, *user)
	r.byEmail[user.Email] = len(r.users) - 1
	return nil
}

func (r *UserMemoryRepository) FindByID(ctx context.Context, userID int64) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return model.User{}, repo.ErrNotFound
}

func (r *UserMemoryRepository) FindByEmail(ctx context.Context, email string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byEmail[email]
	if !ok {
		return model.User{}, repo.ErrNotFound
	}
	return r.users[i], nil
}
