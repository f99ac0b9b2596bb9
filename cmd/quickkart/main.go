package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Kodelavinaykumar/QuickKart1/internal/config"
	"github.com/Kodelavinaykumar/QuickKart1/internal/logger"
	"github.com/Kodelavinaykumar/QuickKart1/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	if err := run(); err != nil {
		slog.Error("quickkart stopped", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	//.envは任意（無ければ環境変数だけ）
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.SetupDefault(os.Stdout, cfg.LogLevel)
	log.Info("config loaded",
		slog.String("api_base_url", cfg.APIBaseURL.String()),
		slog.String("state_dir", cfg.StateDir),
		slog.String("env", cfg.GoEnv),
	)

	app, err := server.New(cfg, server.Options{Logger: log})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	//Server起動
	return server.Start(ctx, app.Echo, cfg.Addr())
}
