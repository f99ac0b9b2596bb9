package repository

import (
	"context"
	"errors"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// 商品APIの取得系だけを約束。
type ProductRepository interface {
	ListAvailable(ctx context.Context) ([]model.Product, error)
	Filter(ctx context.Context, f model.ProductFilter) ([]model.Product, error)
	Categories(ctx context.Context) ([]string, error)
	FindByID(ctx context.Context, id int64) (model.Product, error)

	// 管理画面用（非公開含む全件）
	ListAllProducts(ctx context.Context) ([]model.Product, error)
}
