package store

import (
	"log/slog"

	"github.com/Kodelavinaykumar/QuickKart1/internal/metrics"
	"github.com/Kodelavinaykumar/QuickKart1/internal/repository"
)

// Stores は画面側が共有する状態一式。mainで1回だけ作って渡す。
type Stores struct {
	Session *Session
	Admin   *Session
	Cart    *Cart
}

// Authenticators はユーザー用・管理者用の認証API
type Authenticators struct {
	User  repository.AuthRepository
	Admin repository.AuthRepository
}

type Options struct {
	Metrics metrics.Recorder
	Logger  *slog.Logger
}

// Open は保存済みの状態を読み込んで各ストアを作る。
func Open(storage repository.LocalStorage, auth Authenticators, opts Options) *Stores {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Stores{
		Session: NewSession(storage, auth.User, SessionOptions{
			Key:    UserKey,
			Logger: logger.With(slog.String("store", "session")),
		}),
		Admin: NewSession(storage, auth.Admin, SessionOptions{
			Key:         AdminKey,
			LoginFailed: "Admin login failed",
			Logger:      logger.With(slog.String("store", "admin")),
		}),
		Cart: NewCart(storage, CartOptions{
			Key:     CartKey,
			Metrics: opts.Metrics,
			Logger:  logger.With(slog.String("store", "cart")),
		}),
	}
}
