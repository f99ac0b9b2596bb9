package handler

import (
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
	"github.com/labstack/echo/v4"
)

// 管理画面のユーザー一覧・集計
type AdminUserHandler struct {
	uc *usecase.AdminUsecase
}

func NewAdminUserHandler(uc *usecase.AdminUsecase) *AdminUserHandler {
	return &AdminUserHandler{uc: uc}
}

func (h *AdminUserHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/users", h.listUsers)
	g.GET("/stats", h.stats)
}

func (h *AdminUserHandler) listUsers(c echo.Context) error {
	out, err := h.uc.Users(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminUserHandler) stats(c echo.Context) error {
	out, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
