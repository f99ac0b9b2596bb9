package model

import "github.com/shopspring/decimal"

// カートの明細
// 追加時点の表示項目（価格など）をコピーして持つ。
type LineItem struct {
	ProductID     int64           `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	ImageURL      string          `json:"imageUrl,omitempty"`
	Category      string          `json:"category,omitempty"`
	StockQuantity int64           `json:"stockQuantity"`
	Quantity      int64           `json:"quantity"`
}

// 商品から数量1の明細を作る
func NewLineItem(p Product) LineItem {
	return LineItem{
		ProductID:     p.ID,
		Name:          p.Name,
		Price:         p.Price,
		ImageURL:      p.ImageURL,
		Category:      p.Category,
		StockQuantity: p.StockQuantity,
		Quantity:      1,
	}
}

func (i LineItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(i.Quantity))
}
