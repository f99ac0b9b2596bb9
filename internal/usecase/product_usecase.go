package usecase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	repo "github.com/Kodelavinaykumar/QuickKart1/internal/repository"
	"github.com/shopspring/decimal"
)

// トップ画面の表示件数
const (
	featuredLimit         = 6
	featuredCategoryLimit = 4
)

// ProductUsecase は商品一覧・詳細。
// 一覧は後から出したリクエストの結果だけを「現在の一覧」にする。
type ProductUsecase struct {
	productRepo repo.ProductRepository
	logger      *slog.Logger

	mu      sync.Mutex
	seq     int64
	applied int64
	current *ProductListing
}

// DI
func NewProductUsecase(productRepo repo.ProductRepository, logger *slog.Logger) *ProductUsecase {
	if logger == nil {
		logger = slog.Default()
	}
	return &ProductUsecase{
		productRepo: productRepo,
		logger:      logger,
	}
}

// GET /productsの入力DTO
type BrowseInput struct {
	Category string
	Search   string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// Seq はリクエストの通し番号。Staleは新しい一覧が既に反映済みだったとき。
type ProductListing struct {
	Items    []model.Product  `json:"items"`
	Category string           `json:"category,omitempty"`
	Search   string           `json:"search,omitempty"`
	MinPrice *decimal.Decimal `json:"minPrice,omitempty"`
	MaxPrice *decimal.Decimal `json:"maxPrice,omitempty"`
	Seq      int64            `json:"seq"`
	Stale    bool             `json:"stale"`
}

// Browse は条件が空なら販売中一覧、あれば絞り込み結果を返す。
func (u *ProductUsecase) Browse(ctx context.Context, in BrowseInput) (ProductListing, error) {
	f := model.ProductFilter{
		Category: strings.TrimSpace(in.Category),
		Search:   strings.TrimSpace(in.Search),
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
	}
	if len(f.Search) > 100 {
		return ProductListing{}, NewHTTPError(http.StatusBadRequest, "invalid search")
	}
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return ProductListing{}, NewHTTPError(http.StatusBadRequest, "invalid minPrice")
	}
	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return ProductListing{}, NewHTTPError(http.StatusBadRequest, "invalid maxPrice")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && f.MinPrice.GreaterThan(*f.MaxPrice) {
		return ProductListing{}, NewHTTPError(http.StatusBadRequest, "minPrice must be <= maxPrice")
	}

	seq := u.nextSeq()

	var (
		items []model.Product
		err   error
	)
	if f.IsEmpty() {
		items, err = u.productRepo.ListAvailable(ctx)
	} else {
		items, err = u.productRepo.Filter(ctx, f)
	}
	if err != nil {
		return ProductListing{}, NewHTTPError(http.StatusBadGateway, "Failed to load products")
	}
	if items == nil {
		items = []model.Product{}
	}

	listing := ProductListing{
		Items:    items,
		Category: f.Category,
		Search:   f.Search,
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
		Seq:      seq,
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	if seq > u.applied {
		u.applied = seq
		cur := listing
		u.current = &cur
	} else {
		listing.Stale = true
	}
	return listing, nil
}

func (u *ProductUsecase) nextSeq() int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.seq++
	return u.seq
}

// Current は最後に反映した一覧（まだ無ければfalse）
func (u *ProductUsecase) Current() (ProductListing, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.current == nil {
		return ProductListing{}, false
	}
	return *u.current, true
}

func (u *ProductUsecase) Categories(ctx context.Context) ([]string, error) {
	cats, err := u.productRepo.Categories(ctx)
	if err != nil {
		return nil, NewHTTPError(http.StatusBadGateway, "Failed to load categories")
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}

// 商品詳細
func (u *ProductUsecase) Detail(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	return findProduct(ctx, u.productRepo, productID)
}

func findProduct(ctx context.Context, productRepo repo.ProductRepository, productID int64) (model.Product, error) {
	p, err := productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return model.Product{}, NewHTTPError(http.StatusNotFound, "Product not found")
		}
		return model.Product{}, NewHTTPError(http.StatusBadGateway, "Product not found")
	}
	return p, nil
}

type HomeOutput struct {
	Featured   []model.Product `json:"featured"`
	Categories []string        `json:"categories"`
}

// Home はトップ画面用。取得に失敗した項目は空で返す。
func (u *ProductUsecase) Home(ctx context.Context) HomeOutput {
	out := HomeOutput{Featured: []model.Product{}, Categories: []string{}}

	if items, err := u.productRepo.ListAvailable(ctx); err != nil {
		u.logger.Warn("failed to fetch featured products", slog.String("error", err.Error()))
	} else {
		if len(items) > featuredLimit {
			items = items[:featuredLimit]
		}
		out.Featured = items
	}

	if cats, err := u.productRepo.Categories(ctx); err != nil {
		u.logger.Warn("failed to fetch categories", slog.String("error", err.Error()))
	} else {
		if len(cats) > featuredCategoryLimit {
			cats = cats[:featuredCategoryLimit]
		}
		out.Categories = cats
	}

	return out
}
