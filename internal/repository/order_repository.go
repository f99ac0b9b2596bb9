package repository

import (
	"context"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
)

type OrderRepository interface {
	//注文作成（同じキーの再送はバックエンド側で同じ結果になる想定）
	CreateOrder(ctx context.Context, idempotencyKey string, req model.CreateOrderRequest) (model.Order, error)
	ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error)
}
