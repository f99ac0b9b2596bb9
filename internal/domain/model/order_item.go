package model

import "github.com/shopspring/decimal"

type OrderItem struct {
	ID       int64           `json:"id"`
	Product  *Product        `json:"product,omitempty"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// 商品名（レコードが欠けていれば"Product"）
func (i OrderItem) ProductName() string {
	if i.Product == nil || i.Product.Name == "" {
		return "Product"
	}
	return i.Product.Name
}
