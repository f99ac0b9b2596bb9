package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger はリクエストごとにJSON構造化ログを出す。
// ステータスが4xxならWarn、5xxならError。
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// echoのエラーハンドラーでレスポンスを確定させる
				c.Error(err)
			}

			status := c.Response().Status
			durationMs := float64(time.Since(start).Nanoseconds()) / float64(time.Millisecond)

			args := []any{
				slog.String("method", c.Request().Method),
				slog.String("path", c.Request().URL.Path),
				slog.Int("status", status),
				slog.Float64("duration_ms", durationMs),
			}
			if userID, ok := c.Get(CtxUserIDKey).(int64); ok {
				args = append(args, slog.Int64("user_id", userID))
			}

			level := slog.LevelInfo
			if status >= 500 {
				level = slog.LevelError
			} else if status >= 400 {
				level = slog.LevelWarn
			}

			logger.Log(c.Request().Context(), level, "http_request", args...)
			return nil
		}
	}
}
