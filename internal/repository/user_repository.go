package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
)

// 管理者アカウントは登録できない
var ErrRegisterUnsupported = errors.New("admin accounts cannot be registered")

// 認証APIを約束
// 成功時はユーザーレコードを生JSONのまま返す（Sessionがそのまま保存する）。
type AuthRepository interface {
	//ログイン
	Login(ctx context.Context, req model.LoginRequest) (json.RawMessage, error)
	//新規登録（成功したらそのままログイン扱い）
	Register(ctx context.Context, req model.RegisterRequest) (json.RawMessage, error)
}
