package model

import "github.com/shopspring/decimal"

func init() {
	// バックエンドへは価格を数値で送る
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stockQuantity"`
	Category      string          `json:"category,omitempty"`
	Brand         string          `json:"brand,omitempty"`
	ImageURL      string          `json:"imageUrl,omitempty"`
}

// 在庫があるか
func (p Product) InStock() bool {
	return p.StockQuantity > 0
}

// 一覧の絞り込み条件。全部空なら販売中一覧
type ProductFilter struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Search   string
}

func (f ProductFilter) IsEmpty() bool {
	return f.Category == "" && f.MinPrice == nil && f.MaxPrice == nil && f.Search == ""
}

// 管理画面の商品フォーム
type ProductInput struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stockQuantity"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	ImageURL      string          `json:"imageUrl"`
}
