package model

// カートの明細。カート本体はユーザーIDをキーにした明細の列で、
// 同一商品の追加は数量加算になる。
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}
