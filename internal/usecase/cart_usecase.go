package usecase

import (
	"context"
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	repo "github.com/Kodelavinaykumar/QuickKart1/internal/repository"
)

// CartUsecase は /cart の画面ロジック。
// 追加時の在庫チェックはカートのロック内で行う。
type CartUsecase struct {
	cart        CartStore
	productRepo repo.ProductRepository
}

func NewCartUsecase(cart CartStore, productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{
		cart:        cart,
		productRepo: productRepo,
	}
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// GetCart はカート内容とサマリー
func (u *CartUsecase) GetCart() model.CartSummary {
	return u.cart.Summary()
}

// AddToCart は商品を取り直し、在庫の範囲内なら数量分追加する。
// 追加済みの数量も含めて在庫を超えないようにする。
func (u *CartUsecase) AddToCart(ctx context.Context, in AddCartInput) (model.CartSummary, error) {
	if in.ProductID <= 0 {
		return model.CartSummary{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	if in.Quantity < 1 {
		return model.CartSummary{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	p, err := findProduct(ctx, u.productRepo, in.ProductID)
	if err != nil {
		return model.CartSummary{}, err
	}
	if !p.InStock() {
		return model.CartSummary{}, NewHTTPError(http.StatusConflict, "out of stock")
	}

	if err := u.cart.AddItemWithinStock(p, in.Quantity); err != nil {
		return model.CartSummary{}, storeError(err)
	}
	return u.cart.Summary(), nil
}

// UpdateCartItem は数量を置き換える（1..在庫数）
func (u *CartUsecase) UpdateCartItem(productID int64, in UpdateCartItemInput) (model.CartSummary, error) {
	if productID <= 0 {
		return model.CartSummary{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if in.Quantity < 1 {
		return model.CartSummary{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	it, ok := u.cart.Get(productID)
	if !ok {
		return model.CartSummary{}, NewHTTPError(http.StatusNotFound, "cart item not found")
	}
	if in.Quantity > it.StockQuantity {
		return model.CartSummary{}, NewHTTPError(http.StatusConflict, "insufficient stock")
	}

	if err := u.cart.UpdateQuantity(productID, in.Quantity); err != nil {
		return model.CartSummary{}, storeError(err)
	}
	return u.cart.Summary(), nil
}

// DeleteCartItem は行を消す。無くてもエラーにしない。
func (u *CartUsecase) DeleteCartItem(productID int64) (model.CartSummary, error) {
	if productID <= 0 {
		return model.CartSummary{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	if err := u.cart.RemoveItem(productID); err != nil {
		return model.CartSummary{}, storeError(err)
	}
	return u.cart.Summary(), nil
}

func (u *CartUsecase) ClearCart() (model.CartSummary, error) {
	if err := u.cart.Clear(); err != nil {
		return model.CartSummary{}, storeError(err)
	}
	return u.cart.Summary(), nil
}
