package middleware

import (
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/labstack/echo/v4"
)

const (
	CtxUserIDKey   = "user_id"   // int64
	CtxUserRoleKey = "user_role" // string
)

// ログイン状態を返すもの（store.Sessionが実装）
type SessionReader interface {
	User() (model.User, bool)
}

// RequireUser はログイン中のユーザーがいなければ401を返す。
// いればuser_id/user_roleをcontextに入れる。
func RequireUser(session SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := session.User()
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("login required"))
			}

			//contextへ保存
			c.Set(CtxUserIDKey, u.ID)
			c.Set(CtxUserRoleKey, string(u.Role))

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
