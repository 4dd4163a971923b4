package model

// 商品。IDは "p1" のような文字列で、採番はストアが行う。
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"`
	Description string `json:"description"`
	CategoryID  *int64 `json:"categoryId,omitempty"`
}
