package handler

import (
	"net/http"
	"strconv"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// 管理画面の商品
type AdminProductHandler struct {
	uc *usecase.AdminUsecase
}

func NewAdminProductHandler(uc *usecase.AdminUsecase) *AdminProductHandler {
	return &AdminProductHandler{uc: uc}
}

// 商品フォーム（画像はURLのみ）
type AdminProductRequest struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int64           `json:"stockQuantity"`
	Category      string          `json:"category"`
	Brand         string          `json:"brand"`
	ImageURL      string          `json:"imageUrl"`
}

func (r AdminProductRequest) toInput() model.ProductInput {
	return model.ProductInput{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		StockQuantity: r.StockQuantity,
		Category:      r.Category,
		Brand:         r.Brand,
		ImageURL:      r.ImageURL,
	}
}

// gは/admin（RequireAdmin済み）
func (h *AdminProductHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/products", h.listProducts)
	g.POST("/products", h.createProduct)
	g.PUT("/products/:id", h.updateProduct)
	g.DELETE("/products/:id", h.deleteProduct)
}

func (h *AdminProductHandler) listProducts(c echo.Context) error {
	out, err := h.uc.Products(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *AdminProductHandler) createProduct(c echo.Context) error {
	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	p, err := h.uc.CreateProduct(c.Request().Context(), req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, p)
}

func (h *AdminProductHandler) updateProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	var req AdminProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	p, err := h.uc.UpdateProduct(c.Request().Context(), id, req.toInput())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

func (h *AdminProductHandler) deleteProduct(c echo.Context) error {
	id, ok := parseID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// :idを正の数として取り出す
func parseID(c echo.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
