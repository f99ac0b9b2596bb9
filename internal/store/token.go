package store

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// tokenExpired はJWTのexpが過ぎているかを返す。
// 署名はバックエンドが検証するのでここでは見ない。JWTでない・expが無い場合はfalse。
func tokenExpired(raw string, now time.Time) bool {
	if raw == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}

	exp, ok := claims["exp"]
	if !ok {
		return false
	}

	var unix int64
	switch v := exp.(type) {
	case float64:
		unix = int64(v)
	case int64:
		unix = v
	default:
		return false
	}

	return !now.Before(time.Unix(unix, 0))
}
