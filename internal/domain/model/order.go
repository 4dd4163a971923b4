package model

import "time"

type OrderStatus string

const (
	OrderStatusPending OrderStatus = "pending"
)

// 作成時点の価格スナップショット。以後の商品価格変更の影響を受けない。
type OrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
}

// 注文は作成後に変更されない。
type Order struct {
	ID            int64       `json:"id"`
	UserID        int64       `json:"userId"`
	Items         []OrderItem `json:"items"`
	Total         int64       `json:"total"`
	Address       string      `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
	Status        OrderStatus `json:"status"`
	CreatedAt     time.Time   `json:"createdAt"`
}
