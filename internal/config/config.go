package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Configはアプリ全体の設定
type Config struct {
	APIBaseURL *url.URL // バックエンドのURL（http://localhost:8080）

	Port     string // ローカルサーバーのポート（3000）
	BindHost string // ローカルサーバーのホスト（127.0.0.1）

	StateDir string // localStorage相当の保存先（":memory:"ならメモリ）

	APITimeout   time.Duration // バックエンド呼び出しのタイムアウト（0なら無し）
	APIRateLimit float64       // バックエンドへの送信レート req/sec（0なら無制限）
	APIRateBurst int           // 送信レートのバースト

	LogLevel slog.Level // debug/info/warn/error
	GoEnv    string     // dev/prod
}

// Addr はローカルサーバーの待ち受けアドレス
func (c Config) Addr() string {
	return c.BindHost + ":" + c.Port
}

// Loadは環境変数
func Load() (Config, error) {
	rawBase := strings.TrimSpace(os.Getenv("API_BASE_URL"))
	if rawBase == "" {
		return Config{}, fmt.Errorf("API_BASE_URL is required")
	}
	base, err := url.Parse(rawBase)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return Config{}, fmt.Errorf("API_BASE_URL must be an absolute URL")
	}

	timeout, err := durationOr("API_TIMEOUT", 0)
	if err != nil {
		return Config{}, err
	}
	rateLimit, err := floatOr("API_RATE_LIMIT", 0)
	if err != nil {
		return Config{}, err
	}
	rateBurst, err := intOr("API_RATE_BURST", 10)
	if err != nil {
		return Config{}, err
	}
	level, err := logLevel(stringOr("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		APIBaseURL: base,

		Port:     strings.TrimPrefix(stringOr("PORT", "3000"), ":"),
		BindHost: stringOr("BIND_HOST", "127.0.0.1"),

		StateDir: stringOr("STATE_DIR", ".quickkart"),

		APITimeout:   timeout,
		APIRateLimit: rateLimit,
		APIRateBurst: rateBurst,

		LogLevel: level,
		GoEnv:    stringOr("GO_ENV", "dev"),
	}

	//範囲チェック
	if cfg.APITimeout < 0 {
		return Config{}, fmt.Errorf("API_TIMEOUT must not be negative")
	}
	if cfg.APIRateLimit < 0 {
		return Config{}, fmt.Errorf("API_RATE_LIMIT must not be negative")
	}
	if cfg.APIRateBurst < 1 {
		return Config{}, fmt.Errorf("API_RATE_BURST must be at least 1")
	}

	return cfg, nil
}

func stringOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func intOr(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func floatOr(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return f, nil
}

func durationOr(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}

func logLevel(v string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug/info/warn/error")
	}
	return l, nil
}
