package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/repository"
)

func (c *Client) ListAvailable(ctx context.Context) ([]model.Product, error) {
	out := []model.Product{}
	err := c.do(ctx, request{
		op:     "products.available",
		method: http.MethodGet,
		path:   "api/products/available",
		token:  c.userToken.Token(),
	}, &out)
	return out, err
}

// Filter は空でない条件だけをクエリに載せる。
func (c *Client) Filter(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MinPrice != nil {
		q.Set("minPrice", f.MinPrice.String())
	}
	if f.MaxPrice != nil {
		q.Set("maxPrice", f.MaxPrice.String())
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}

	out := []model.Product{}
	err := c.do(ctx, request{
		op:     "products.filter",
		method: http.MethodGet,
		path:   "api/products/filter",
		query:  q,
		token:  c.userToken.Token(),
	}, &out)
	return out, err
}

func (c *Client) Categories(ctx context.Context) ([]string, error) {
	out := []string{}
	err := c.do(ctx, request{
		op:     "products.categories",
		method: http.MethodGet,
		path:   "api/products/categories",
		token:  c.userToken.Token(),
	}, &out)
	return out, err
}

// FindByID は404をrepository.ErrNotFoundにする。
func (c *Client) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var out model.Product
	err := c.do(ctx, request{
		op:     "products.get",
		method: http.MethodGet,
		path:   "api/products/" + strconv.FormatInt(id, 10),
		token:  c.userToken.Token(),
	}, &out)
	if re, ok := AsResponseError(err); ok && re.Status == http.StatusNotFound {
		return model.Product{}, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	return out, err
}

func (c *Client) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	out := []model.Product{}
	err := c.do(ctx, request{
		op:     "products.all",
		method: http.MethodGet,
		path:   "api/products",
		token:  c.adminToken.Token(),
	}, &out)
	return out, err
}
