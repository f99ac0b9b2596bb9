package repository

import (
	"context"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
)

// 管理画面のAPI
type AdminRepository interface {
	Stats(ctx context.Context) (model.AdminStats, error)
	ListAllOrders(ctx context.Context) ([]model.Order, error)
	ListUsers(ctx context.Context) ([]model.User, error)

	CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error)
	UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error

	UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (model.Order, error)
}
