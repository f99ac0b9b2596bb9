package usecase_test

import (
	"errors"
	"testing"

	"github.com/Kodelavinaykumar/QuickKart1/internal/infra/localstorage"
	"github.com/Kodelavinaykumar/QuickKart1/internal/store"
	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertHTTPError(t *testing.T, err error, status int, msg string) {
	t.Helper()

	require.Error(t, err)
	he, ok := usecase.AsHTTPError(err)
	require.True(t, ok, "expected HTTPError, got %T: %v", err, err)
	assert.Equal(t, status, he.Status)
	if msg != "" {
		assert.Equal(t, msg, he.Message)
	}
}

// loggedInSession は保存済みレコードから復元したSession
func loggedInSession(t *testing.T, record string) *store.Session {
	t.Helper()

	storage := localstorage.NewMemory()
	require.NoError(t, storage.SetItem(store.UserKey, []byte(record)))
	s := store.NewSession(storage, new(MockAuthRepo), store.SessionOptions{})
	require.True(t, s.LoggedIn())
	return s
}

func loggedOutSession() *store.Session {
	return store.NewSession(localstorage.NewMemory(), new(MockAuthRepo), store.SessionOptions{})
}

// =====================
// storage
// =====================

var errDiskFull = errors.New("disk full")

// clearFailStorage はキー削除だけ失敗させる
type clearFailStorage struct {
	*localstorage.Memory
}

func (s clearFailStorage) RemoveItem(string) error {
	return errDiskFull
}
