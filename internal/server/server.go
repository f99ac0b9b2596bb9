// Package server はローカルのビューサーバー（echo）を組み立てて起動する。
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Kodelavinaykumar/QuickKart1/internal/config"
	"github.com/Kodelavinaykumar/QuickKart1/internal/handler"
	"github.com/Kodelavinaykumar/QuickKart1/internal/infra/api"
	"github.com/Kodelavinaykumar/QuickKart1/internal/infra/localstorage"
	"github.com/Kodelavinaykumar/QuickKart1/internal/metrics"
	"github.com/Kodelavinaykumar/QuickKart1/internal/store"
	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
	"github.com/Kodelavinaykumar/QuickKart1/internal/validator"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
)

const shutdownTimeout = 10 * time.Second

// App は組み立て済みのサーバーと状態
type App struct {
	Echo   *echo.Echo
	Stores *store.Stores
	Client *api.Client
}

// Options はテストで差し替える部品
type Options struct {
	HTTPClient *http.Client
	Registry   *prometheus.Registry
	Logger     *slog.Logger
}

// New は設定から全部品を組み立てる。
func New(cfg config.Config, opts Options) (*App, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := opts.Registry
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.APITimeout}
	}

	//メトリクス
	collector := metrics.NewCollector(reg)

	//localStorage相当
	storage, err := localstorage.Open(cfg.StateDir)
	if err != nil {
		return nil, fmt.Errorf("open state dir: %w", err)
	}

	//RESTクライアント
	client := api.NewClient(httpClient, *cfg.APIBaseURL, api.Options{
		RateLimit: cfg.APIRateLimit,
		RateBurst: cfg.APIRateBurst,
		Metrics:   collector,
		Logger:    logger.With(slog.String("component", "api")),
	})

	//ストア（保存済みの状態を同期的に復元）
	stores := store.Open(storage, store.Authenticators{
		User:  client,
		Admin: client.AdminAuth(),
	}, store.Options{
		Metrics: collector,
		Logger:  logger,
	})
	client.UseTokens(stores.Session, stores.Admin)

	//Usecase生成
	v := validator.NewAuthValidator()
	authUC := usecase.NewAuthUsecase(stores.Session, v)
	adminAuthUC := usecase.NewAuthUsecase(stores.Admin, v)
	productUC := usecase.NewProductUsecase(client, logger)
	cartUC := usecase.NewCartUsecase(stores.Cart, client)
	checkoutUC := usecase.NewCheckoutUsecase(stores.Session, stores.Cart, client,
		usecase.WithCheckoutMetrics(collector),
		usecase.WithCheckoutLogger(logger),
	)
	orderUC := usecase.NewOrderUsecase(stores.Session, client)
	adminUC := usecase.NewAdminUsecase(client, client)

	//Handler生成
	e := NewEcho(logger)
	RegisterRoutes(e, Routes{
		Auth:         handler.NewAuthHandler(authUC),
		AdminAuth:    handler.NewAdminAuthHandler(adminAuthUC),
		Product:      handler.NewProductHandler(productUC, cartUC),
		Cart:         handler.NewCartHandler(cartUC),
		Order:        handler.NewOrderHandler(checkoutUC, orderUC),
		AdminProduct: handler.NewAdminProductHandler(adminUC),
		AdminOrder:   handler.NewAdminOrderHandler(adminUC),
		AdminUser:    handler.NewAdminUserHandler(adminUC),
		Stores:       stores,
		Gatherer:     reg,
	})

	return &App{Echo: e, Stores: stores, Client: client}, nil
}

// Start はctxがキャンセルされるまで待ち受け、その後グレースフルに止める。
func Start(ctx context.Context, e *echo.Echo, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		slog.Info("view server starting", slog.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down view server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
