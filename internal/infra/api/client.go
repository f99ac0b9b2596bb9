// Package api はQuickKartバックエンドのRESTクライアント。
// repositoryパッケージの各インターフェースを実装する。
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Kodelavinaykumar/QuickKart1/internal/metrics"
	"golang.org/x/time/rate"
)

// レスポンスボディの上限
const maxBodySize = 10 << 20

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource はAuthorizationヘッダーに載せるトークンを返す（無ければ空文字）。
type TokenSource interface {
	Token() string
}

type noToken struct{}

func (noToken) Token() string { return "" }

// Options はClientの任意設定。
type Options struct {
	// RateLimit は送信レート（req/sec）。0なら無制限。
	RateLimit float64
	RateBurst int
	Metrics   metrics.Recorder
	Logger    *slog.Logger
}

type Client struct {
	client     httpClient
	baseURL    url.URL
	limiter    *rate.Limiter
	metrics    metrics.Recorder
	logger     *slog.Logger
	userToken  TokenSource
	adminToken TokenSource
}

func NewClient(client httpClient, baseURL url.URL, opts Options) *Client {
	c := &Client{
		client:     client,
		baseURL:    baseURL,
		metrics:    opts.Metrics,
		logger:     opts.Logger,
		userToken:  noToken{},
		adminToken: noToken{},
	}
	if c.metrics == nil {
		c.metrics = metrics.Nop{}
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return c
}

// UseTokens はユーザー用・管理者用のトークン取得元を設定する。
// Sessionはこのクライアントに依存するので、生成後に差し込む。
func (c *Client) UseTokens(user, admin TokenSource) {
	if user != nil {
		c.userToken = user
	}
	if admin != nil {
		c.adminToken = admin
	}
}

// ResponseError は2xx以外のレスポンス。
type ResponseError struct {
	Operation string
	Status    int
	Body      []byte
}

func (e *ResponseError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Operation, e.Status, msg)
	}
	return fmt.Sprintf("%s: status %d", e.Operation, e.Status)
}

// Message はエラーボディから画面表示用のメッセージを取り出す。
// JSON文字列 / {"message"} / {"error"} / プレーンテキストの順に見る。取れなければ空。
func (e *ResponseError) Message() string {
	body := bytes.TrimSpace(e.Body)
	if len(body) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body, &s); err == nil {
		return strings.TrimSpace(s)
	}

	var obj map[string]any
	if err := json.Unmarshal(body, &obj); err == nil {
		for _, key := range []string{"message", "error"} {
			if v, ok := obj[key].(string); ok && strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		}
		return ""
	}

	// HTMLのエラーページは表示しない
	if body[0] == '<' || body[0] == '{' || body[0] == '[' {
		return ""
	}
	msg := string(body)
	if len(msg) > 200 {
		msg = msg[:200]
	}
	return msg
}

func AsResponseError(err error) (*ResponseError, bool) {
	var re *ResponseError
	ok := errors.As(err, &re)
	return re, ok
}

// request は1回分の呼び出し内容。
type request struct {
	op     string
	method string
	path   string
	query  url.Values
	token  string
	header http.Header
	body   any
}

// do はリクエストを送りoutにJSONをデコードする。リトライはしない。
func (c *Client) do(ctx context.Context, r request, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: %w", r.op, err)
		}
	}

	u := c.baseURL.JoinPath(r.path)
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var reqBody io.Reader
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("%s: encode body: %w", r.op, err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), reqBody)
	if err != nil {
		return fmt.Errorf("%s: %w", r.op, err)
	}
	for k, vs := range r.header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.metrics.RecordAPICall(r.op, 0, time.Since(start))
		c.logger.Error("backend request failed",
			slog.String("operation", r.op),
			slog.String("method", r.method),
			slog.String("path", u.Path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%s: %w", r.op, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	c.metrics.RecordAPICall(r.op, resp.StatusCode, time.Since(start))
	if err != nil {
		return fmt.Errorf("%s: read body: %w", r.op, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("backend returned error status",
			slog.String("operation", r.op),
			slog.String("method", r.method),
			slog.String("path", u.Path),
			slog.Int("http_status", resp.StatusCode),
		)
		return &ResponseError{Operation: r.op, Status: resp.StatusCode, Body: data}
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", r.op, err)
	}
	return nil
}
