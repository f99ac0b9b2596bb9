package usecase

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/metrics"
	repo "github.com/Kodelavinaykumar/QuickKart1/internal/repository"
	"github.com/google/uuid"
)

const (
	defaultShippingAddress = "Default Address"
	defaultPaymentMethod   = "Credit Card"
)

// 冪等キーの生成
type IDGenerator interface {
	NewID() string
}

type uuidGenerator struct{}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// CheckoutUsecase はカートから注文を作る。
// 成功したらカートを空にし、失敗したらカートはそのまま。
type CheckoutUsecase struct {
	session   SessionStore
	cart      CartStore
	orderRepo repo.OrderRepository
	idGen     IDGenerator
	metrics   metrics.Recorder
	logger    *slog.Logger
}

type CheckoutOption func(*CheckoutUsecase)

func WithIDGenerator(g IDGenerator) CheckoutOption {
	return func(u *CheckoutUsecase) { u.idGen = g }
}

func WithCheckoutMetrics(m metrics.Recorder) CheckoutOption {
	return func(u *CheckoutUsecase) { u.metrics = m }
}

func WithCheckoutLogger(l *slog.Logger) CheckoutOption {
	return func(u *CheckoutUsecase) { u.logger = l }
}

// DI
func NewCheckoutUsecase(session SessionStore, cart CartStore, orderRepo repo.OrderRepository, opts ...CheckoutOption) *CheckoutUsecase {
	u := &CheckoutUsecase{
		session:   session,
		cart:      cart,
		orderRepo: orderRepo,
		idGen:     uuidGenerator{},
		metrics:   metrics.Nop{},
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// POST /checkout の入力DTO
type CheckoutInput struct {
	ShippingAddress string
	PaymentMethod   string
}

func (u *CheckoutUsecase) Checkout(ctx context.Context, in CheckoutInput) (model.Order, error) {
	user, ok := u.session.User()
	if !ok {
		u.metrics.RecordCheckout("rejected")
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "login required")
	}

	items := u.cart.Items()
	if len(items) == 0 {
		u.metrics.RecordCheckout("rejected")
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	req := buildOrderRequest(user, items, in)

	key := u.idGen.NewID()
	order, err := u.orderRepo.CreateOrder(ctx, key, req)
	if err != nil {
		u.metrics.RecordCheckout("failed")
		u.logger.Error("failed to place order",
			slog.Int64("user_id", user.ID),
			slog.String("idempotency_key", key),
			slog.String("error", err.Error()),
		)
		return model.Order{}, NewHTTPError(http.StatusBadGateway, "Failed to place order. Please try again.")
	}

	// 注文は作成済みなので、カートの削除失敗では失敗扱いにしない
	if err := u.cart.Clear(); err != nil {
		u.logger.Warn("order placed but cart was not cleared",
			slog.Int64("order_id", order.ID),
			slog.String("error", err.Error()),
		)
	}

	u.metrics.RecordCheckout("placed")
	return order, nil
}

// 明細ごとの単価はカートに入れた時点の価格
func buildOrderRequest(user model.User, items []model.LineItem, in CheckoutInput) model.CreateOrderRequest {
	orderItems := make([]model.OrderItemRequest, 0, len(items))
	for _, it := range items {
		orderItems = append(orderItems, model.OrderItemRequest{
			Product:  model.ProductRef{ID: it.ProductID},
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}

	address := strings.TrimSpace(in.ShippingAddress)
	if address == "" {
		address = strings.TrimSpace(user.Address)
	}
	if address == "" {
		address = defaultShippingAddress
	}

	payment := strings.TrimSpace(in.PaymentMethod)
	if payment == "" {
		payment = defaultPaymentMethod
	}

	return model.CreateOrderRequest{
		UserID:          user.ID,
		OrderItems:      orderItems,
		ShippingAddress: address,
		PaymentMethod:   payment,
	}
}
