package usecase

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/store"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// storeError はストアのエラーをHTTPErrorにする
func storeError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrInvalidQuantity):
		return NewHTTPError(http.StatusBadRequest, "invalid quantity")
	case errors.Is(err, store.ErrInsufficientStock):
		return NewHTTPError(http.StatusConflict, "insufficient stock")
	case errors.Is(err, store.ErrInvalidProduct):
		return NewHTTPError(http.StatusBadRequest, "invalid product_id")
	case errors.Is(err, store.ErrPersist):
		return NewHTTPError(http.StatusInternalServerError, "failed to save state")
	}
	return NewHTTPError(http.StatusInternalServerError, "internal error")
}
