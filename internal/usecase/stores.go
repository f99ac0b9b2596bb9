package usecase

import (
	"context"
	"encoding/json"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/shopspring/decimal"
)

// SessionStore はログイン状態（store.Sessionが実装）
type SessionStore interface {
	Login(ctx context.Context, username, password string) (model.User, error)
	Register(ctx context.Context, req model.RegisterRequest) (model.User, error)
	Logout() error
	User() (model.User, bool)
	Record() json.RawMessage
}

// CartStore はカート（store.Cartが実装）
type CartStore interface {
	AddItemQuantity(p model.Product, n int64) error
	AddItemWithinStock(p model.Product, n int64) error
	RemoveItem(productID int64) error
	UpdateQuantity(productID int64, quantity int64) error
	Clear() error
	Items() []model.LineItem
	Get(productID int64) (model.LineItem, bool)
	TotalItemCount() int64
	TotalPrice() decimal.Decimal
	Summary() model.CartSummary
}
