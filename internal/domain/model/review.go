package model

// 商品レビュー。productoIdのキー名は既存クライアントとの互換のため。
type Review struct {
	ID        int64   `json:"id"`
	ProductID string  `json:"productoId"`
	UserID    int64   `json:"userId"`
	Rating    float64 `json:"rating"`
	Comment   string  `json:"comment"`
}
