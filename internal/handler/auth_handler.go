package handler

import (
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
	"github.com/labstack/echo/v4"
)

// ログイン・登録・ログアウトのHTTP
// 管理者用はprefix "/admin" で登録し、registerは出さない。
type AuthHandler struct {
	uc            *usecase.AuthUsecase
	prefix        string
	allowRegister bool
}

// DI
func NewAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc, allowRegister: true}
}

func NewAdminAuthHandler(uc *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc, prefix: "/admin"}
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *AuthHandler) RegisterRoutes(e *echo.Echo) {
	e.GET(h.prefix+"/session", h.session)
	e.POST(h.prefix+"/login", h.login)
	e.POST(h.prefix+"/logout", h.logout)
	if h.allowRegister {
		e.POST(h.prefix+"/register", h.register)
	}
}

func (h *AuthHandler) session(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Session())
}

func (h *AuthHandler) login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	u, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *AuthHandler) register(c echo.Context) error {
	var req model.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	u, err := h.uc.Register(c.Request().Context(), req)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *AuthHandler) logout(c echo.Context) error {
	if err := h.uc.Logout(); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
