package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
)

// 二重送信防止キーはヘッダーで渡す
const idempotencyHeader = "X-Idempotency-Key"

func (c *Client) CreateOrder(ctx context.Context, idempotencyKey string, req model.CreateOrderRequest) (model.Order, error) {
	h := http.Header{}
	if idempotencyKey != "" {
		h.Set(idempotencyHeader, idempotencyKey)
	}

	var out model.Order
	err := c.do(ctx, request{
		op:     "orders.create",
		method: http.MethodPost,
		path:   "api/orders",
		token:  c.userToken.Token(),
		header: h,
		body:   req,
	}, &out)
	return out, err
}

func (c *Client) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	out := []model.Order{}
	err := c.do(ctx, request{
		op:     "orders.by_user",
		method: http.MethodGet,
		path:   "api/orders/user/" + strconv.FormatInt(userID, 10),
		token:  c.userToken.Token(),
	}, &out)
	return out, err
}
