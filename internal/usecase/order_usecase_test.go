package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	infraRepo "app/internal/infra/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderTestFixture(t *testing.T) (*OrderUsecase, *CartUsecase) {
	t.Helper()
	ctx := context.Background()

	products := infraRepo.NewProductMemoryRepository()
	carts := infraRepo.NewCartMemoryRepository()
	orders := infraRepo.NewOrderMemoryRepository()

	for _, p := range []model.Product{
		{ID: "p1", Name: "Audifonos", Price: 59990},
		{ID: "p2", Name: "Teclado", Price: 36990},
	} {
		_, err := products.Create(ctx, p)
		require.NoError(t, err)
	}

	return NewOrderUsecase(orders, carts, products), NewCartUsecase(carts, products)
}

// Test: total=Σ(数量×注文時価格)、確定後はカートが空
func TestCreateOrder_TotalAndCartCleared(t *testing.T) {
	orderUC, cartUC := newOrderTestFixture(t)
	ctx := context.Background()

	_, err := cartUC.AddToCart(ctx, 1, AddCartInput{ProductID: "p1", Quantity: 2})
	require.NoError(t, err)

	order, err := orderUC.CreateOrder(ctx, 1, CreateOrderInput{
		Items: []OrderItemInput{
			{ProductID: "p1", Quantity: 2},
			{ProductID: "p2", Quantity: 1},
		},
		Address: "Av. Siempre Viva 742",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2*59990+1*36990), order.Total)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, "efectivo", order.PaymentMethod)
	assert.False(t, order.CreatedAt.IsZero())

	view, err := cartUC.GetCart(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
}

// Test: 価格は確定時点のスナップショット
func TestCreateOrder_PriceSnapshot(t *testing.T) {
	ctx := context.Background()

	products := infraRepo.NewProductMemoryRepository()
	carts := infraRepo.NewCartMemoryRepository()
	orders := infraRepo.NewOrderMemoryRepository()

	p, err := products.Create(ctx, model.Product{ID: "p1", Name: "X", Price: 1000})
	require.NoError(t, err)

	uc := NewOrderUsecase(orders, carts, products)
	order, err := uc.CreateOrder(ctx, 1, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: "p1", Quantity: 3}},
	})
	require.NoError(t, err)

	p.Price = 9999
	require.NoError(t, products.Update(ctx, p))

	got, err := orders.ListByUserID(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(1000), got[0].Items[0].Price)
	assert.Equal(t, order.Total, got[0].Total)
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	orderUC, _ := newOrderTestFixture(t)

	_, err := orderUC.CreateOrder(context.Background(), 1, CreateOrderInput{})
	requireHTTPStatus(t, err, http.StatusBadRequest)
}

// Test: 未知の商品は価格0で扱う
func TestCreateOrder_UnknownProductPriceZero(t *testing.T) {
	orderUC, _ := newOrderTestFixture(t)

	order, err := orderUC.CreateOrder(context.Background(), 1, CreateOrderInput{
		Items: []OrderItemInput{{ProductID: "p999", Quantity: 4}},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(0), order.Total)
	assert.Equal(t, int64(0), order.Items[0].Price)
}

// Test: adminは全件、userは自分の注文だけ見える
func TestListOrders_Visibility(t *testing.T) {
	orderUC, _ := newOrderTestFixture(t)
	ctx := context.Background()

	_, err := orderUC.CreateOrder(ctx, 1, CreateOrderInput{Items: []OrderItemInput{{ProductID: "p1", Quantity: 1}}})
	require.NoError(t, err)
	_, err = orderUC.CreateOrder(ctx, 2, CreateOrderInput{Items: []OrderItemInput{{ProductID: "p2", Quantity: 1}}})
	require.NoError(t, err)

	mine, err := orderUC.ListOrders(ctx, 1, model.RoleUser)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, int64(1), mine[0].UserID)

	all, err := orderUC.ListOrders(ctx, 99, model.RoleAdmin)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
