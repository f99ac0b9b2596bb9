package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Kodelavinaykumar/QuickKart1/internal/domain/model"
	"github.com/Kodelavinaykumar/QuickKart1/internal/repository"
)

func (c *Client) Login(ctx context.Context, req model.LoginRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, request{
		op:     "login",
		method: http.MethodPost,
		path:   "api/users/login",
		body:   req,
	}, &out)
	return out, err
}

func (c *Client) Register(ctx context.Context, req model.RegisterRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := c.do(ctx, request{
		op:     "register",
		method: http.MethodPost,
		path:   "api/users/register",
		body:   req,
	}, &out)
	return out, err
}

// AdminAuth は管理者ログイン用のAuthRepositoryを返す。
func (c *Client) AdminAuth() repository.AuthRepository {
	return adminAuth{c: c}
}

type adminAuth struct {
	c *Client
}

func (a adminAuth) Login(ctx context.Context, req model.LoginRequest) (json.RawMessage, error) {
	var out json.RawMessage
	err := a.c.do(ctx, request{
		op:     "admin.login",
		method: http.MethodPost,
		path:   "api/admin/login",
		body:   req,
	}, &out)
	return out, err
}

func (a adminAuth) Register(context.Context, model.RegisterRequest) (json.RawMessage, error) {
	return nil, repository.ErrRegisterUnsupported
}
