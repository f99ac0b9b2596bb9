// Package store はクライアント側の状態（ログインセッションとカート）を持つ。
// 状態はLocalStorageに保存し、起動時に同期的に復元する。
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/infra/api"
	"github.com/Kodelavinaykumar/QuickKart1/internal/repository"
)

const (
	UserKey  = "user"
	AdminKey = "admin"
)

var errInvalidRecord = errors.New("invalid user record")

type SessionOptions struct {
	// Key は保存先キー（default "user"）
	Key string
	// 失敗メッセージが取れなかったときの文言
	LoginFailed    string
	RegisterFailed string
	Logger         *slog.Logger
	Now            func() time.Time
}

// Session はログイン中のユーザーを1人だけ持つ。
// userが有るのは、保存済みの正しいレコードが有るときだけ。
type Session struct {
	mu      sync.Mutex
	storage repository.LocalStorage
	auth    repository.AuthRepository
	key     string

	loginFailed    string
	registerFailed string
	logger         *slog.Logger
	now            func() time.Time

	raw  json.RawMessage
	user model.User
}

// NewSession は保存済みレコードを読み込んでSessionを作る。
// 壊れている・期限切れのレコードは削除してログアウト状態で始める。
func NewSession(storage repository.LocalStorage, auth repository.AuthRepository, opts SessionOptions) *Session {
	s := &Session{
		storage:        storage,
		auth:           auth,
		key:            opts.Key,
		loginFailed:    opts.LoginFailed,
		registerFailed: opts.RegisterFailed,
		logger:         opts.Logger,
		now:            opts.Now,
	}
	if s.key == "" {
		s.key = UserKey
	}
	if s.loginFailed == "" {
		s.loginFailed = "Login failed"
	}
	if s.registerFailed == "" {
		s.registerFailed = "Registration failed"
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.now == nil {
		s.now = time.Now
	}

	s.restore()
	return s
}

func (s *Session) restore() {
	data, err := s.storage.GetItem(s.key)
	if errors.Is(err, repository.ErrNotFound) {
		return
	}
	if err != nil {
		s.logger.Warn("failed to read session", slog.String("key", s.key), slog.String("error", err.Error()))
		return
	}

	user, err := s.parseRecord(data)
	if err != nil {
		s.logger.Info("dropping stored session", slog.String("key", s.key), slog.String("reason", err.Error()))
		if rmErr := s.storage.RemoveItem(s.key); rmErr != nil {
			s.logger.Warn("failed to remove session", slog.String("key", s.key), slog.String("error", rmErr.Error()))
		}
		return
	}

	s.raw = append(json.RawMessage(nil), data...)
	s.user = user
}

// parseRecord はJSONオブジェクトでid有り、トークン期限内のものだけ通す
func (s *Session) parseRecord(data []byte) (model.User, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return model.User{}, errInvalidRecord
	}

	var u model.User
	if err := json.Unmarshal(trimmed, &u); err != nil {
		return model.User{}, errInvalidRecord
	}
	if u.ID == 0 {
		return model.User{}, errInvalidRecord
	}
	if tokenExpired(u.Token, s.now()) {
		return model.User{}, errors.New("token expired")
	}
	return u, nil
}

// Login はバックエンドで認証し、成功したらレコードを保存してユーザーを差し替える。
// 失敗時はユーザーは変わらない。
func (s *Session) Login(ctx context.Context, username, password string) (model.User, error) {
	raw, err := s.auth.Login(ctx, model.LoginRequest{Username: username, Password: password})
	if err != nil {
		return model.User{}, s.authError(err, s.loginFailed)
	}
	return s.replace(raw, s.loginFailed)
}

// Register は新規登録し、作成されたアカウントでログイン状態にする。
func (s *Session) Register(ctx context.Context, req model.RegisterRequest) (model.User, error) {
	raw, err := s.auth.Register(ctx, req)
	if err != nil {
		return model.User{}, s.authError(err, s.registerFailed)
	}
	return s.replace(raw, s.registerFailed)
}

// Logout はユーザーと保存済みレコードを消す。通信はしない。
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.RemoveItem(s.key); err != nil {
		return &PersistError{Key: s.key, Err: err}
	}
	s.raw = nil
	s.user = model.User{}
	return nil
}

func (s *Session) replace(raw json.RawMessage, fallback string) (model.User, error) {
	user, err := s.parseRecord(raw)
	if err != nil {
		s.logger.Warn("backend returned unusable user record", slog.String("key", s.key), slog.String("reason", err.Error()))
		return model.User{}, &AuthError{Message: fallback, Err: err}
	}

	record := append(json.RawMessage(nil), bytes.TrimSpace(raw)...)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.storage.SetItem(s.key, record); err != nil {
		return model.User{}, &PersistError{Key: s.key, Err: err}
	}
	s.raw = record
	s.user = user
	return user, nil
}

// authError はバックエンドのエラーボディから表示用メッセージを作る
func (s *Session) authError(err error, fallback string) error {
	if errors.Is(err, repository.ErrRegisterUnsupported) {
		return &AuthError{Message: err.Error(), Err: err}
	}

	re, ok := api.AsResponseError(err)
	if !ok {
		s.logger.Warn("auth request failed", slog.String("key", s.key), slog.String("error", err.Error()))
		return &AuthError{Message: fallback, Err: err}
	}

	msg := strings.TrimSpace(re.Message())
	if msg == "" {
		msg = fallback
	}
	return &AuthError{Status: re.Status, Message: msg, Err: err}
}

// User は現在のユーザー（未ログインならfalse）
func (s *Session) User() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user, s.raw != nil
}

func (s *Session) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw != nil
}

// Record は保存されているレコードそのもの（未知のフィールドも含む）
func (s *Session) Record() json.RawMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), s.raw...)
}

// Token はAuthorizationヘッダー用のトークン。api.TokenSourceを満たす。
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user.Token
}

var _ api.TokenSource = (*Session)(nil)
