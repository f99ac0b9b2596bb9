package middleware

import (
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/labstack/echo/v4"
)

// RequireAdmin は管理者セッションが無ければ401を返す。
// roleが入っているレコードはADMINだけ通す。
func RequireAdmin(admin SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, ok := admin.User()
			if !ok {
				return c.JSON(http.StatusUnauthorized, errorJSON("admin login required"))
			}

			//USERは拒否
			if u.Role != "" && u.Role != model.RoleAdmin {
				return c.JSON(http.StatusForbidden, errorJSON("admin only"))
			}

			c.Set(CtxUserIDKey, u.ID)
			c.Set(CtxUserRoleKey, string(model.RoleAdmin))

			return next(c)
		}
	}
}
