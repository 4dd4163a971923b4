package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type OrderUsecase struct {
	orderRepo   repo.OrderRepository
	cartRepo    repo.CartRepository
	productRepo repo.ProductRepository
}

// DI
func NewOrderUsecase(
	orderRepo repo.OrderRepository,
	cartRepo repo.CartRepository,
	productRepo repo.ProductRepository,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type OrderItemInput struct {
	ProductID string
	Quantity  int64
}

type CreateOrderInput struct {
	Items         []OrderItemInput
	Address       string
	PaymentMethod string
}

// CreateOrderは注文を確定する。
// 価格はこの時点の商品価格をスナップショットし、未知の商品は0として扱う。
// 確定後は本人のカートを空にする。
func (u *OrderUsecase) CreateOrder(ctx context.Context, userID int64, in CreateOrderInput) (model.Order, error) {
	if len(in.Items) == 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "items empty")
	}

	orderItems := make([]model.OrderItem, 0, len(in.Items))
	var total int64 = 0

	for _, it := range in.Items {
		var price int64 = 0
		p, err := u.productRepo.FindByID(ctx, it.ProductID)
		if err == nil {
			price = p.Price
		} else if !errors.Is(err, repo.ErrNotFound) {
			return model.Order{}, NewHTTPError(http.StatusInternalServerError, "store error")
		}

		orderItems = append(orderItems, model.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     price,
		})
		total += it.Quantity * price
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "efectivo"
	}

	order, err := u.orderRepo.Create(ctx, model.Order{
		UserID:        userID,
		Items:         orderItems,
		Total:         total,
		Address:       in.Address,
		PaymentMethod: paymentMethod,
		Status:        model.OrderStatusPending,
		CreatedAt:     time.Now(),
	})
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	if err := u.cartRepo.Clear(ctx, userID); err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "store error")
	}

	return order, nil
}

// ListOrdersはadminなら全件、それ以外は本人の注文だけ。
func (u *OrderUsecase) ListOrders(ctx context.Context, userID int64, role model.Role) ([]model.Order, error) {
	var (
		orders []model.Order
		err    error
	)

	if role == model.RoleAdmin {
		orders, err = u.orderRepo.ListAll(ctx)
	} else {
		orders, err = u.orderRepo.ListByUserID(ctx, userID)
	}
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "store error")
	}
	return orders, nil
}
