package store

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/infra/localstorage"
	"github.com/golang-jwt/jwt/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Mocks
// =====================

type MockAuthRepo struct {
	mock.Mock
}

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

var errDiskFull = errors.New("disk full")

// flakyStorage は書き込み・削除を失敗させられるLocalStorage
type flakyStorage struct {
	*localstorage.Memory
	failWrites bool
}

func newFlakyStorage() *flakyStorage {
	return &flakyStorage{Memory: localstorage.NewMemory()}
}

func (s *flakyStorage) SetItem(key string, value []byte) error {
	if s.failWrites {
		return errDiskFull
	}
	return s.Memory.SetItem(key, value)
}

func (s *flakyStorage) RemoveItem(key string) error {
	if s.failWrites {
		return errDiskFull
	}
	return s.Memory.RemoveItem(key)
}

// =====================
// helper
// =====================

func mustMakeJWT(t *testing.T, exp time.Time) string {
	t.Helper()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "7",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func product(id int64, name string, price string, stock int64) model.Product {
	return model.Product{
		ID:            id,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
		Category:      "General",
	}
}
