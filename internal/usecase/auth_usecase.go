package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/repository"
	"github.com/Kodelavinaykumar/QuickKart1/internal/store"
)

// 入力チェックの約束（validatorパッケージが実装）
type AuthValidator interface {
	ValidateLogin(username, password string) error
	ValidateRegister(req model.RegisterRequest) error
}

// AuthUsecase はログイン・登録・ログアウト。
// ユーザー用と管理者用でSessionを差し替えて使う。
type AuthUsecase struct {
	session   SessionStore
	validator AuthValidator
}

// DI
func NewAuthUsecase(session SessionStore, v AuthValidator) *AuthUsecase {
	return &AuthUsecase{session: session, validator: v}
}

type LoginInput struct {
	Username string
	Password string
}

func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (model.User, error) {
	username := strings.TrimSpace(in.Username)
	if err := u.validator.ValidateLogin(username, in.Password); err != nil {
		return model.User{}, err
	}

	user, err := u.session.Login(ctx, username, in.Password)
	if err != nil {
		return model.User{}, authError(err)
	}
	return user, nil
}

func (u *AuthUsecase) Register(ctx context.Context, in model.RegisterRequest) (model.User, error) {
	in.Username = strings.TrimSpace(in.Username)
	in.Email = strings.TrimSpace(in.Email)
	if err := u.validator.ValidateRegister(in); err != nil {
		return model.User{}, err
	}

	user, err := u.session.Register(ctx, in)
	if err != nil {
		return model.User{}, authError(err)
	}
	return user, nil
}

func (u *AuthUsecase) Logout() error {
	return storeError(u.session.Logout())
}

// Current は現在のユーザー（未ログインは401）
func (u *AuthUsecase) Current() (model.User, error) {
	user, ok := u.session.User()
	if !ok {
		return model.User{}, NewHTTPError(http.StatusUnauthorized, "not logged in")
	}
	return user, nil
}

type SessionOutput struct {
	LoggedIn bool            `json:"loggedIn"`
	User     json.RawMessage `json:"user"`
}

// Session は保存されているレコードをそのまま返す（未ログインならuserはnull）
func (u *AuthUsecase) Session() SessionOutput {
	rec := u.session.Record()
	if rec == nil {
		return SessionOutput{User: json.RawMessage("null")}
	}
	return SessionOutput{LoggedIn: true, User: rec}
}

// authError はバックエンドの4xxはそのまま、それ以外は502にする
func authError(err error) error {
	if errors.Is(err, store.ErrPersist) {
		return storeError(err)
	}

	ae, ok := store.AsAuthError(err)
	if !ok {
		return NewHTTPError(http.StatusBadGateway, "auth request failed")
	}
	if ae.Status >= 400 && ae.Status < 500 {
		return NewHTTPError(ae.Status, ae.Message)
	}
	if errors.Is(err, repository.ErrRegisterUnsupported) {
		return NewHTTPError(http.StatusBadRequest, ae.Message)
	}
	return NewHTTPError(http.StatusBadGateway, ae.Message)
}
