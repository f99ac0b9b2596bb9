package usecase

import (
	"context"
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	repo "github.com/Kodelavinaykumar/QuickKart1/internal/repository"
)

// OrderUsecase はログインユーザーの注文履歴
type OrderUsecase struct {
	session   SessionStore
	orderRepo repo.OrderRepository
}

func NewOrderUsecase(session SessionStore, orderRepo repo.OrderRepository) *OrderUsecase {
	return &OrderUsecase{session: session, orderRepo: orderRepo}
}

func (u *OrderUsecase) History(ctx context.Context) ([]model.Order, error) {
	user, ok := u.session.User()
	if !ok {
		return nil, NewHTTPError(http.StatusUnauthorized, "login required")
	}

	orders, err := u.orderRepo.ListOrdersByUser(ctx, user.ID)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadGateway, "Failed to load orders")
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}
