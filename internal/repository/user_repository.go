package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

// email重複を統一
var ErrEmailTaken = errors.New("email already taken")

// 保存・取得を約束。
// Createは採番とemail重複チェックを単一の更新経路で行う。
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, userID int64) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
}
