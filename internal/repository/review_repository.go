package repository

import (
	"context"

	"app/internal/domain/model"
)

type ReviewRepository interface {
	// IDはストアが採番する。
	Create(ctx context.Context, r model.Review) (model.Review, error)

	ListByProductID(ctx context.Context, productID string) ([]model.Review, error)

	// 商品削除のカスケード用
	DeleteByProductID(ctx context.Context, productID string) error
}
