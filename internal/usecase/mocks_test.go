package usecase_test

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	repo "github.com/Kodelavinaykumar/QuickKart1/internal/repository"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type MockProductRepo struct{ mock.Mock }

func (m *MockProductRepo) ListAvailable(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *MockProductRepo) Filter(ctx context.Context, f model.ProductFilter) ([]model.Product, error) {
	args := m.Called(ctx, f)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *MockProductRepo) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	cats, _ := args.Get(0).([]string)
	return cats, args.Error(1)
}

func (m *MockProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockProductRepo) ListAllProducts(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

var _ repo.ProductRepository = (*MockProductRepo)(nil)

type MockOrderRepo struct{ mock.Mock }

func (m *MockOrderRepo) CreateOrder(ctx context.Context, key string, req model.CreateOrderRequest) (model.Order, error) {
	args := m.Called(ctx, key, req)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepo) ListOrdersByUser(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

var _ repo.OrderRepository = (*MockOrderRepo)(nil)

type MockAdminRepo struct{ mock.Mock }

func (m *MockAdminRepo) Stats(ctx context.Context) (model.AdminStats, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(model.AdminStats)
	return s, args.Error(1)
}

func (m *MockAdminRepo) ListAllOrders(ctx context.Context) ([]model.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

func (m *MockAdminRepo) ListUsers(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]model.User)
	return users, args.Error(1)
}

func (m *MockAdminRepo) CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	args := m.Called(ctx, in)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockAdminRepo) UpdateProduct(ctx context.Context, id int64, in model.ProductInput) (model.Product, error) {
	args := m.Called(ctx, id, in)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *MockAdminRepo) DeleteProduct(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockAdminRepo) UpdateOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) (model.Order, error) {
	args := m.Called(ctx, orderID, status)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

var _ repo.AdminRepository = (*MockAdminRepo)(nil)

type MockAuthRepo struct{ mock.Mock }

func (m *MockAuthRepo) Login(ctx context.Context, req model.LoginRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

func (m *MockAuthRepo) Register(ctx context.Context, req model.RegisterRequest) (json.RawMessage, error) {
	args := m.Called(ctx, req)
	raw, _ := args.Get(0).(json.RawMessage)
	return raw, args.Error(1)
}

var _ repo.AuthRepository = (*MockAuthRepo)(nil)

type MockRecorder struct{ mock.Mock }

func (m *MockRecorder) RecordAPICall(string, int, time.Duration) {}
func (m *MockRecorder) RecordCartMutation(string)                {}
func (m *MockRecorder) RecordCheckout(outcome string)            { m.Called(outcome) }

type fixedID string

func (f fixedID) NewID() string { return string(f) }

// =====================
// helper
// =====================

func product(id int64, name, price string, stock int64) model.Product {
	return model.Product{
		ID:            id,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
}
