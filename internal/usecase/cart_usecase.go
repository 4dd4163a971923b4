package usecase

import (
	"context"
	"errors"
	"net/http"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase は /api/carrito の業務ロジック。
type CartUsecase struct {
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(cartRepo repo.CartRepository, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type AddCartInput struct {
	ProductID string
	Quantity  int64
}

// 明細＋現在の商品情報。スナップショットではなく参照時joinで埋める。
// 商品が消えていた場合はゼロ値の商品が入る。
type CartItemView struct {
	ProductID string        `json:"productId"`
	Quantity  int64         `json:"quantity"`
	Product   model.Product `json:"product"`
}

type CartView struct {
	Items []CartItemView `json:"items"`
}

// カートの中身を返すレスポンス（追加・削除時）
type CartMutationOutput struct {
	Message string           `json:"message"`
	Cart    []model.CartItem `json:"cart"`
}

// AddToCartはカートに追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, userID int64, in AddCartInput) (CartMutationOutput, error) {
	if in.ProductID == "" {
		return CartMutationOutput{}, NewHTTPError(http.StatusBadRequest, "productId missing")
	}
	if in.Quantity < 1 {
		return CartMutationOutput{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	items, err := u.cartRepo.AddItem(ctx, userID, in.ProductID, in.Quantity)
	if err != nil {
		return CartMutationOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return CartMutationOutput{Message: "added to cart", Cart: items}, nil
}

// GetCartは明細を現在の商品データで引き当てて返す。
func (u *CartUsecase) GetCart(ctx context.Context, userID int64) (CartView, error) {
	items, err := u.cartRepo.ItemsByUserID(ctx, userID)
	if err != nil {
		return CartView{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	views := make([]CartItemView, 0, len(items))
	for _, it := range items {
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err != nil && !errors.Is(err, repo.ErrNotFound) {
			return CartView{}, NewHTTPError(http.StatusInternalServerError, "store error")
		}

		views = append(views, CartItemView{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Product:   p,
		})
	}

	return CartView{Items: views}, nil
}

// RemoveItemは明細を取り除く。カート自体が無ければ404。
func (u *CartUsecase) RemoveItem(ctx context.Context, userID int64, productID string) (CartMutationOutput, error) {
	items, err := u.cartRepo.RemoveItem(ctx, userID, productID)
	if errors.Is(err, repo.ErrNotFound) {
		return CartMutationOutput{}, NewHTTPError(http.StatusNotFound, "cart not found")
	}
	if err != nil {
		return CartMutationOutput{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return CartMutationOutput{Message: "item removed", Cart: items}, nil
}
