package handler

import (
	"net/http"
	"strconv"

	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	if he, ok := usecase.AsHTTPError(err); ok {
		return c.JSON(he.Status, ErrorResponse{Error: he.Message})
	}

	//500
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}

// 商品一覧・詳細の画面
type ProductHandler struct {
	uc   *usecase.ProductUsecase
	cart *usecase.CartUsecase
}

// DI
func NewProductHandler(uc *usecase.ProductUsecase, cart *usecase.CartUsecase) *ProductHandler {
	return &ProductHandler{uc: uc, cart: cart}
}

type AddProductToCartRequest struct {
	Quantity int64 `json:"quantity"`
}

// 商品のルートを登録
func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/home", h.home)
	e.GET("/products", h.list)
	e.GET("/products/current", h.current)
	e.GET("/products/categories", h.categories)
	e.GET("/products/:id", h.detail)
	e.POST("/products/:id/cart", h.addToCart)
}

func (h *ProductHandler) home(c echo.Context) error {
	return c.JSON(http.StatusOK, h.uc.Home(c.Request().Context()))
}

// GET /products?category=&minPrice=&maxPrice=&search=
func (h *ProductHandler) list(c echo.Context) error {
	in := usecase.BrowseInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("search"),
	}

	if v := c.QueryParam("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorJSON("invalid minPrice"))
		}
		in.MinPrice = &d
	}
	if v := c.QueryParam("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorJSON("invalid maxPrice"))
		}
		in.MaxPrice = &d
	}

	out, err := h.uc.Browse(c.Request().Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) current(c echo.Context) error {
	out, ok := h.uc.Current()
	if !ok {
		return c.JSON(http.StatusNotFound, errorJSON("no listing yet"))
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) categories(c echo.Context) error {
	out, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProductHandler) detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	p, err := h.uc.Detail(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, p)
}

// 詳細画面の「カートに入れる」（数量は1..在庫数）
func (h *ProductHandler) addToCart(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid id"))
	}

	var req AddProductToCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorJSON("invalid body"))
	}

	out, err := h.cart.AddToCart(c.Request().Context(), usecase.AddCartInput{
		ProductID: id,
		Quantity:  req.Quantity,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
