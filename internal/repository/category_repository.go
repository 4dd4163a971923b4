package repository

import (
	"context"

	"app/internal/domain/model"
)

type CategoryRepository interface {
	List(ctx context.Context) ([]model.Category, error)

	// IDが0ならストアが採番する。
	Create(ctx context.Context, c model.Category) (model.Category, error)
}
