package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	// IDはストアが採番する。採番済みの注文を返す。
	Create(ctx context.Context, order model.Order) (model.Order, error)

	ListAll(ctx context.Context) ([]model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}
