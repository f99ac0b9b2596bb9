package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/infra/localstorage"
	"github.com/Kodelavinaykumar/QuickKart1/internal/repository"
	"github.com/Kodelavinaykumar/QuickKart1/internal/store"
	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mock
// =====================

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) ListAvailable(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepo) Filter(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepo) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockProductRepo) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Product), args.Error(1)
}

type MockAdminRepo struct{ mock.Mock }

func (m *MockAdminRepo) Stats(ctx context.Context) (model.AdminStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.AdminStats), args.Error(1)
}

func (m *MockAdminRepo) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *MockAdminRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.User), args.Error(1)
}

func (m *MockAdminRepo) CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockAdminRepo) UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (model.Product, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *MockAdminRepo) DeleteProduct(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockAdminRepo) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (model.Order, error) {
	args := m.Called(ctx, orderID, status)
	return args.Get(0).(model.Order), args.Error(1)
}

// =====================
// helper
// =====================

func newProductEcho(t *testing.T, products *MockProductRepo) *echo.Echo {
	t.Helper()

	cart := store.NewCart(localstorage.NewMemory(), store.CartOptions{})
	cartUC := usecase.NewCartUsecase(cart, products)

	e := echo.New()
	NewProductHandler(usecase.NewProductUsecase(products, nil), cartUC).RegisterRoutes(e)
	NewCartHandler(cartUC).RegisterRoutes(e)
	return e
}

func newAdminEcho(admin *MockAdminRepo, products *MockProductRepo) *echo.Echo {
	uc := usecase.NewAdminUsecase(admin, products)

	e := echo.New()
	g := e.Group("/admin")
	NewAdminProductHandler(uc).RegisterRoutes(g)
	NewAdminOrderHandler(uc).RegisterRoutes(g)
	NewAdminUserHandler(uc).RegisterRoutes(g)
	return e
}

func serve(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =====================
// Tests
// =====================

func TestWriteError(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"HTTPError", usecase.NewHTTPError(http.StatusConflict, "out of stock"), http.StatusConflict, `{"error":"out of stock"}`},
		{"wrapped HTTPError", errors.Join(errors.New("ctx"), usecase.NewHTTPError(http.StatusNotFound, "cart item not found")), http.StatusNotFound, `{"error":"cart item not found"}`},
		{"other", errors.New("boom"), http.StatusInternalServerError, `{"error":"internal error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			require.NoError(t, writeError(c, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}

func TestParseID(t *testing.T) {
	e := echo.New()

	for _, tt := range []struct {
		raw    string
		wantID int64
		wantOK bool
	}{
		{"12", 12, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
	} {
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		c.SetParamNames("id")
		c.SetParamValues(tt.raw)

		id, ok := parseID(c)
		assert.Equal(t, tt.wantOK, ok, tt.raw)
		assert.Equal(t, tt.wantID, id, tt.raw)
	}
}

func TestProductList_QueryToFilter(t *testing.T) {
	products := new(MockProductRepo)
	products.On("Filter", mock.Anything, mock.MatchedBy(func(f model.ProductFilter) bool {
		return f.Category == "Kitchen" &&
			f.Search == "mug" &&
			f.MinPrice != nil && f.MinPrice.Equal(decimal.NewFromInt(5)) &&
			f.MaxPrice != nil && f.MaxPrice.Equal(decimal.RequireFromString("19.99"))
	})).Return([]model.Product{{ID: 1, Name: "Mug"}}, nil).Once()

	e := newProductEcho(t, products)

	rec := serve(e, http.MethodGet, "/products?category=Kitchen&search=mug&minPrice=5&maxPrice=19.99", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"name":"Mug"`)
	products.AssertExpectations(t)
}

func TestProductList_BadQuery(t *testing.T) {
	products := new(MockProductRepo)
	e := newProductEcho(t, products)

	rec := serve(e, http.MethodGet, "/products?maxPrice=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid maxPrice"}`, rec.Body.String())

	rec = serve(e, http.MethodGet, "/products?minPrice=10&maxPrice=5", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	products.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything)
}

func TestProductDetail(t *testing.T) {
	products := new(MockProductRepo)
	products.On("FindByID", mock.Anything, int64(9)).Return(model.Product{}, repository.ErrNotFound).Once()
	e := newProductEcho(t, products)

	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodGet, "/products/abc", "").Code)

	rec := serve(e, http.MethodGet, "/products/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Product not found"}`, rec.Body.String())
}

func TestCartRoutes(t *testing.T) {
	products := new(MockProductRepo)
	products.On("FindByID", mock.Anything, int64(1)).
		Return(model.Product{ID: 1, Name: "Mug", Price: decimal.NewFromInt(20), StockQuantity: 5}, nil)
	products.On("FindByID", mock.Anything, int64(2)).
		Return(model.Product{ID: 2, Name: "Gone", Price: decimal.NewFromInt(1)}, nil)
	e := newProductEcho(t, products)

	rec := serve(e, http.MethodPost, "/products/1/cart", `{"quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"item_count":2`)

	// int64上限でも桁あふれせず在庫超えになる
	rec = serve(e, http.MethodPost, "/cart", `{"product_id":1,"quantity":9223372036854775807}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, serve(e, http.MethodGet, "/cart", "").Body.String(), `"item_count":2`)

	// 在庫0
	rec = serve(e, http.MethodPost, "/cart", `{"product_id":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = serve(e, http.MethodPatch, "/cart/1", `{"quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(e, http.MethodPatch, "/cart/3", `{"quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(e, http.MethodPatch, "/cart/1", `{"quantity":4}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"item_count":4`)

	rec = serve(e, http.MethodDelete, "/cart/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"item_count":0`)

	rec = serve(e, http.MethodPost, "/cart", `{bad`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminProductRoutes(t *testing.T) {
	admin := new(MockAdminRepo)
	products := new(MockProductRepo)
	admin.On("CreateProduct", mock.Anything, mock.MatchedBy(func(in model.ProductInput) bool {
		return in.Name == "Lamp" && in.Price.Equal(decimal.RequireFromString("12.5")) && in.StockQuantity == 4
	})).Return(model.Product{ID: 30, Name: "Lamp"}, nil).Once()
	admin.On("DeleteProduct", mock.Anything, int64(30)).Return(nil).Once()

	e := newAdminEcho(admin, products)

	rec := serve(e, http.MethodPost, "/admin/products", `{"name":" Lamp ","price":12.5,"stockQuantity":4}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = serve(e, http.MethodPost, "/admin/products", `{"name":"","price":1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, http.StatusBadRequest, serve(e, http.MethodDelete, "/admin/products/0", "").Code)
	assert.Equal(t, http.StatusNoContent, serve(e, http.MethodDelete, "/admin/products/30", "").Code)

	admin.AssertExpectations(t)
}

func TestAdminOrderStatus(t *testing.T) {
	admin := new(MockAdminRepo)
	admin.On("UpdateOrderStatus", mock.Anything, int64(5), model.OrderStatus("SHIPPED")).
		Return(model.Order{ID: 5, Status: "SHIPPED"}, nil).Once()

	e := newAdminEcho(admin, new(MockProductRepo))

	rec := serve(e, http.MethodPut, "/admin/orders/5/status", `{"status":"shipped"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"status":"SHIPPED"`)

	rec = serve(e, http.MethodPut, "/admin/orders/5/status", `{"status":"LOST"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid status"}`, rec.Body.String())

	admin.AssertExpectations(t)
}

func TestAdminUsers_BackendError(t *testing.T) {
	admin := new(MockAdminRepo)
	admin.On("ListUsers", mock.Anything).Return([]model.User(nil), errors.New("down")).Once()

	e := newAdminEcho(admin, new(MockProductRepo))

	rec := serve(e, http.MethodGet, "/admin/users", "")
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
