package handler

import (
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/middleware"
	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
	"github.com/labstack/echo/v4"
)

// 注文（チェックアウト・履歴）のHTTP
type OrderHandler struct {
	checkout *usecase.CheckoutUsecase
	orders   *usecase.OrderUsecase
}

func NewOrderHandler(checkout *usecase.CheckoutUsecase, orders *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{checkout: checkout, orders: orders}
}

type CheckoutRequest struct {
	ShippingAddress string `json:"shippingAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo, session middleware.SessionReader) {
	auth := middleware.RequireUser(session)

	e.POST("/checkout", h.create, auth)
	e.GET("/orders", h.list, auth)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req CheckoutRequest
	// bodyは任意
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
		}
	}

	out, err := h.checkout.Checkout(c.Request().Context(), usecase.CheckoutInput{
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}

func (h *OrderHandler) list(c echo.Context) error {
	out, err := h.orders.History(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
