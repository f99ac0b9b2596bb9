package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	repo "github.com/Kodelavinaykumar/QuickKart1/internal/repository"
	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =====================
// Browse
// =====================

func TestProductUsecase_Browse_EmptyFilterUsesAvailable(t *testing.T) {
	pRepo := new(MockProductRepo)
	pRepo.On("ListAvailable", mock.Anything).Return([]model.Product{product(1, "Mug", "5", 3)}, nil)

	uc := usecase.NewProductUsecase(pRepo, nil)
	out, err := uc.Browse(context.Background(), usecase.BrowseInput{Category: "  "})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.False(t, out.Stale)

	pRepo.AssertNotCalled(t, "Filter", mock.Anything, mock.Anything)
}

func TestProductUsecase_Browse_Filter(t *testing.T) {
	minP := decimal.NewFromInt(10)
	f := model.ProductFilter{Category: "Books", Search: "go", MinPrice: &minP}

	pRepo := new(MockProductRepo)
	pRepo.On("Filter", mock.Anything, f).Return([]model.Product{}, nil)

	uc := usecase.NewProductUsecase(pRepo, nil)
	out, err := uc.Browse(context.Background(), usecase.BrowseInput{Category: "Books", Search: " go ", MinPrice: &minP})
	require.NoError(t, err)
	assert.Empty(t, out.Items)
	assert.Equal(t, "Books", out.Category)

	cur, ok := uc.Current()
	require.True(t, ok)
	assert.Equal(t, out.Seq, cur.Seq)
}

func TestProductUsecase_Browse_InvalidPrices(t *testing.T) {
	uc := usecase.NewProductUsecase(new(MockProductRepo), nil)

	neg := decimal.NewFromInt(-1)
	_, err := uc.Browse(context.Background(), usecase.BrowseInput{MinPrice: &neg})
	assertHTTPError(t, err, http.StatusBadRequest, "invalid minPrice")

	lo, hi := decimal.NewFromInt(50), decimal.NewFromInt(10)
	_, err = uc.Browse(context.Background(), usecase.BrowseInput{MinPrice: &lo, MaxPrice: &hi})
	assertHTTPError(t, err, http.StatusBadRequest, "minPrice must be <= maxPrice")
}

func TestProductUsecase_Browse_Failure(t *testing.T) {
	pRepo := new(MockProductRepo)
	pRepo.On("ListAvailable", mock.Anything).Return(nil, errors.New("boom"))

	uc := usecase.NewProductUsecase(pRepo, nil)
	_, err := uc.Browse(context.Background(), usecase.BrowseInput{})
	assertHTTPError(t, err, http.StatusBadGateway, "Failed to load products")

	_, ok := uc.Current()
	assert.False(t, ok)
}

// 後から出したリクエストの結果を、先に出した遅いレスポンスで上書きしない
func TestProductUsecase_Browse_StaleResponseDoesNotOverwrite(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})

	slow := model.ProductFilter{Search: "slow"}

	pRepo := new(MockProductRepo)
	pRepo.On("Filter", mock.Anything, slow).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return([]model.Product{product(1, "Old", "1", 1)}, nil)
	pRepo.On("ListAvailable", mock.Anything).Return([]model.Product{product(2, "New", "2", 1)}, nil)

	uc := usecase.NewProductUsecase(pRepo, nil)

	type result struct {
		out usecase.ProductListing
		err error
	}
	done := make(chan result, 1)
	go func() {
		out, err := uc.Browse(context.Background(), usecase.BrowseInput{Search: "slow"})
		done <- result{out, err}
	}()
	<-started

	fresh, err := uc.Browse(context.Background(), usecase.BrowseInput{})
	require.NoError(t, err)
	assert.False(t, fresh.Stale)

	close(release)
	old := <-done
	require.NoError(t, old.err)
	assert.True(t, old.out.Stale)
	assert.Less(t, old.out.Seq, fresh.Seq)

	cur, ok := uc.Current()
	require.True(t, ok)
	require.Len(t, cur.Items, 1)
	assert.Equal(t, "New", cur.Items[0].Name)
}

// =====================
// Detail / Categories / Home
// =====================

func TestProductUsecase_Detail(t *testing.T) {
	pRepo := new(MockProductRepo)
	pRepo.On("FindByID", mock.Anything, int64(1)).Return(product(1, "Mug", "5", 3), nil)
	pRepo.On("FindByID", mock.Anything, int64(2)).Return(nil, fmt.Errorf("product 2: %w", repo.ErrNotFound))
	pRepo.On("FindByID", mock.Anything, int64(3)).Return(nil, errors.New("timeout"))

	uc := usecase.NewProductUsecase(pRepo, nil)

	p, err := uc.Detail(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Mug", p.Name)

	_, err = uc.Detail(context.Background(), 2)
	assertHTTPError(t, err, http.StatusNotFound, "Product not found")

	_, err = uc.Detail(context.Background(), 3)
	assertHTTPError(t, err, http.StatusBadGateway, "Product not found")

	_, err = uc.Detail(context.Background(), 0)
	assertHTTPError(t, err, http.StatusBadRequest, "invalid id")
}

func TestProductUsecase_Categories(t *testing.T) {
	pRepo := new(MockProductRepo)
	pRepo.On("Categories", mock.Anything).Return(nil, errors.New("boom")).Once()
	pRepo.On("Categories", mock.Anything).Return([]string{"Books"}, nil).Once()

	uc := usecase.NewProductUsecase(pRepo, nil)

	_, err := uc.Categories(context.Background())
	assertHTTPError(t, err, http.StatusBadGateway, "Failed to load categories")

	cats, err := uc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"Books"}, cats)
}

func TestProductUsecase_Home(t *testing.T) {
	var items []model.Product
	for i := int64(1); i <= 8; i++ {
		items = append(items, product(i, fmt.Sprintf("P%d", i), "1", 1))
	}

	pRepo := new(MockProductRepo)
	pRepo.On("ListAvailable", mock.Anything).Return(items, nil)
	pRepo.On("Categories", mock.Anything).Return(nil, errors.New("boom"))

	uc := usecase.NewProductUsecase(pRepo, nil)
	out := uc.Home(context.Background())

	assert.Len(t, out.Featured, 6)
	assert.Equal(t, int64(1), out.Featured[0].ID)
	// 失敗した項目は空
	assert.NotNil(t, out.Categories)
	assert.Empty(t, out.Categories)
}
