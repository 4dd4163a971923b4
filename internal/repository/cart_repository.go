package repository

import (
	"context"

	"app/internal/domain/model"
)

// カートはユーザーIDをキーに初回追加で遅延生成される。
// 注文確定後のClearは「空のカートが存在する」状態にする（未生成とは区別）。
type CartRepository interface {
	// 未生成なら空の明細を返す
	ItemsByUserID(ctx context.Context, userID int64) ([]model.CartItem, error)

	// 同一商品は数量加算。更新後の明細を返す。
	AddItem(ctx context.Context, userID int64, productID string, qty int64) ([]model.CartItem, error)

	// カート自体が未生成ならErrNotFound。更新後の明細を返す。
	RemoveItem(ctx context.Context, userID int64, productID string) ([]model.CartItem, error)

	Clear(ctx context.Context, userID int64) error
}
