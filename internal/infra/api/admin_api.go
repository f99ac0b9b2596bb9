package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/repository"
)

func (c *Client) Stats(ctx context.Context) (model.AdminStats, error) {
	var out model.AdminStats
	err := c.do(ctx, request{
		op:     "admin.stats",
		method: http.MethodGet,
		path:   "api/admin/stats",
		token:  c.adminToken.Token(),
	}, &out)
	return out, err
}

func (c *Client) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	out := []model.Order{}
	err := c.do(ctx, request{
		op:     "admin.orders",
		method: http.MethodGet,
		path:   "api/admin/orders",
		token:  c.adminToken.Token(),
	}, &out)
	return out, err
}

func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	out := []model.User{}
	err := c.do(ctx, request{
		op:     "admin.users",
		method: http.MethodGet,
		path:   "api/admin/users",
		token:  c.adminToken.Token(),
	}, &out)
	return out, err
}

func (c *Client) CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, request{
		op:     "admin.products.create",
		method: http.MethodPost,
		path:   "api/admin/products",
		token:  c.adminToken.Token(),
		body:   in,
	}, &out)
	return out, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, request{
		op:     "admin.products.update",
		method: http.MethodPut,
		path:   "api/admin/products/" + strconv.FormatInt(id, 10),
		token:  c.adminToken.Token(),
		body:   in,
	}, &out)
	if re, ok := AsResponseError(err); ok && re.Status == http.StatusNotFound {
		return model.Product{}, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	return out, err
}

// 削除は公開側のパス（/api/products/{id}）
func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	err := c.do(ctx, request{
		op:     "admin.products.delete",
		method: http.MethodDelete,
		path:   "api/products/" + strconv.FormatInt(id, 10),
		token:  c.adminToken.Token(),
	}, nil)
	if re, ok := AsResponseError(err); ok && re.Status == http.StatusNotFound {
		return fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	return err
}

type orderStatusRequest struct {
	Status model.OrderStatus `json:"status"`
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (model.Order, error) {
	var out model.Order
	err := c.do(ctx, request{
		op:     "admin.orders.status",
		method: http.MethodPut,
		path:   "api/admin/orders/" + strconv.FormatInt(orderID, 10) + "/status",
		token:  c.adminToken.Token(),
		body:   orderStatusRequest{Status: status},
	}, &out)
	if re, ok := AsResponseError(err); ok && re.Status == http.StatusNotFound {
		return model.Order{}, fmt.Errorf("order %d: %w", orderID, repository.ErrNotFound)
	}
	return out, err
}

var (
	_ repository.AuthRepository    = (*Client)(nil)
	_ repository.ProductRepository = (*Client)(nil)
	_ repository.OrderRepository   = (*Client)(nil)
	_ repository.AdminRepository   = (*Client)(nil)
)
