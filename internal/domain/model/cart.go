package model

import "github.com/shopspring/decimal"

// 税率10%
var TaxRate = decimal.NewFromFloat(0.1)

// カート画面の注文サマリー
type CartSummary struct {
	Items     []LineItem      `json:"items"`
	ItemCount int64           `json:"item_count"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Tax       decimal.Decimal `json:"tax"`
	Shipping  string          `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
}

// 小計から税・合計を計算（表示用に小数2桁）
func NewCartSummary(items []LineItem, count int64, subtotal decimal.Decimal) CartSummary {
	tax := subtotal.Mul(TaxRate)
	return CartSummary{
		Items:     items,
		ItemCount: count,
		Subtotal:  subtotal.Round(2),
		Tax:       tax.Round(2),
		Shipping:  "Free",
		Total:     subtotal.Add(tax).Round(2),
	}
}
