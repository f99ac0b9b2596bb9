package validator

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/usecase"
)

// パスワード最低文字数
const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type authValidator struct{}

// Usecaseは interface を依存注入
func NewAuthValidator() usecase.AuthValidator {
	return &authValidator{}
}

// ログインの入力を検証
func (v *authValidator) ValidateLogin(username string, password string) error {
	// 必須チェック
	if strings.TrimSpace(username) == "" || password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}
	return nil
}

// 新規登録の入力を検証
func (v *authValidator) ValidateRegister(req model.RegisterRequest) error {
	// 必須チェック
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return usecase.NewHTTPError(http.StatusBadRequest, "first name and last name are required")
	}

	if len(req.Password) < minPasswordLen {
		return usecase.NewHTTPError(http.StatusBadRequest, "password must be at least 6 characters")
	}

	// emailは任意。入っていれば形式チェック
	if email := strings.TrimSpace(req.Email); email != "" && !isEmailLike(email) {
		return usecase.NewHTTPError(http.StatusBadRequest, "invalid email")
	}

	return nil
}

// 簡易メール形式をチェック
func isEmailLike(s string) bool {
	return emailRe.MatchString(s)
}
