package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID              int64           `json:"id"`
	User            *User           `json:"user,omitempty"`
	OrderItems      []OrderItem     `json:"orderItems"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          OrderStatus     `json:"status"`
	OrderDate       string          `json:"orderDate,omitempty"`
	ShippingAddress string          `json:"shippingAddress,omitempty"`
	PaymentMethod   string          `json:"paymentMethod,omitempty"`
}

// orderDateはタイムゾーン無しで来ることがある
var orderDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// 注文日時をパースする（失敗時はfalse）
func (o Order) PlacedAt() (time.Time, bool) {
	for _, layout := range orderDateLayouts {
		if t, err := time.Parse(layout, o.OrderDate); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// POST /api/orders のbody
type CreateOrderRequest struct {
	UserID          int64              `json:"userId"`
	OrderItems      []OrderItemRequest `json:"orderItems"`
	ShippingAddress string             `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

type OrderItemRequest struct {
	Product  ProductRef      `json:"product"`
	Quantity int64           `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

type ProductRef struct {
	ID int64 `json:"id"`
}
