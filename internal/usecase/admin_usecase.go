package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	repo "github.com/Kodelavinaykumar/QuickKart1/internal/repository"
)

// AdminUsecase は管理画面の操作。
// 管理者ログインの確認はmiddleware.RequireAdminで済ませている前提。
type AdminUsecase struct {
	adminRepo   repo.AdminRepository
	productRepo repo.ProductRepository
}

func NewAdminUsecase(adminRepo repo.AdminRepository, productRepo repo.ProductRepository) *AdminUsecase {
	return &AdminUsecase{adminRepo: adminRepo, productRepo: productRepo}
}

func (u *AdminUsecase) Stats(ctx context.Context) (model.AdminStats, error) {
	s, err := u.adminRepo.Stats(ctx)
	if err != nil {
		return model.AdminStats{}, adminError(err, "Failed to load stats")
	}
	return s, nil
}

func (u *AdminUsecase) Products(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.ListAllProducts(ctx)
	if err != nil {
		return nil, adminError(err, "Failed to load products")
	}
	if items == nil {
		items = []model.Product{}
	}
	return items, nil
}

func (u *AdminUsecase) Orders(ctx context.Context) ([]model.Order, error) {
	orders, err := u.adminRepo.ListAllOrders(ctx)
	if err != nil {
		return nil, adminError(err, "Failed to load orders")
	}
	if orders == nil {
		orders = []model.Order{}
	}
	return orders, nil
}

func (u *AdminUsecase) Users(ctx context.Context) ([]model.User, error) {
	users, err := u.adminRepo.ListUsers(ctx)
	if err != nil {
		return nil, adminError(err, "Failed to load users")
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// 商品作成
func (u *AdminUsecase) CreateProduct(ctx context.Context, in model.ProductInput) (model.Product, error) {
	in, err := validateProductInput(in)
	if err != nil {
		return model.Product{}, err
	}

	p, err := u.adminRepo.CreateProduct(ctx, in)
	if err != nil {
		return model.Product{}, adminError(err, "Failed to save product")
	}
	return p, nil
}

// 商品更新
func (u *AdminUsecase) UpdateProduct(ctx context.Context, productID int64, in model.ProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	in, err := validateProductInput(in)
	if err != nil {
		return model.Product{}, err
	}

	p, err := u.adminRepo.UpdateProduct(ctx, productID, in)
	if err != nil {
		return model.Product{}, adminError(err, "Failed to save product")
	}
	return p, nil
}

func (u *AdminUsecase) DeleteProduct(ctx context.Context, productID int64) error {
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.adminRepo.DeleteProduct(ctx, productID); err != nil {
		return adminError(err, "Failed to delete product")
	}
	return nil
}

type AdminUpdateOrderStatusInput struct {
	Status string
}

// 注文ステータス更新
func (u *AdminUsecase) UpdateOrderStatus(ctx context.Context, orderID int64, in AdminUpdateOrderStatusInput) (model.Order, error) {
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	status := model.OrderStatus(strings.ToUpper(strings.TrimSpace(in.Status)))
	if !status.Valid() {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid status")
	}

	o, err := u.adminRepo.UpdateOrderStatus(ctx, orderID, status)
	if err != nil {
		return model.Order{}, adminError(err, "Failed to update order status")
	}
	return o, nil
}

func validateProductInput(in model.ProductInput) (model.ProductInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return in, NewHTTPError(http.StatusBadRequest, "name is required")
	}
	if in.Price.IsNegative() {
		return in, NewHTTPError(http.StatusBadRequest, "invalid price")
	}
	if in.StockQuantity < 0 {
		return in, NewHTTPError(http.StatusBadRequest, "invalid stockQuantity")
	}
	return in, nil
}

// adminError は404だけ区別し、それ以外はバックエンド失敗として返す
func adminError(err error, msg string) error {
	if errors.Is(err, repo.ErrNotFound) {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	return NewHTTPError(http.StatusBadGateway, msg)
}
