package store

import (
	"errors"
	"fmt"
)

var (
	// 数量が1未満
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// 在庫数を超える
	ErrInsufficientStock = errors.New("insufficient stock")

	// 商品IDが無い
	ErrInvalidProduct = errors.New("product id is required")

	// ローカル保存に失敗（状態は変わっていない）
	ErrPersist = errors.New("persist failed")
)

// AuthError はログイン・登録の失敗。Messageはそのまま画面に出せる。
// Statusはバックエンドのステータス（通信エラーなら0）。
type AuthError struct {
	Status  int
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

func AsAuthError(err error) (*AuthError, bool) {
	var ae *AuthError
	ok := errors.As(err, &ae)
	return ae, ok
}

// PersistError はキーへの書き込み・削除の失敗。
type PersistError struct {
	Key string
	Err error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("persist %q: %v", e.Key, e.Err)
}

func (e *PersistError) Unwrap() error {
	return e.Err
}

// errors.Is(err, ErrPersist) で判定できるようにする
func (e *PersistError) Is(target error) bool {
	return target == ErrPersist
}
