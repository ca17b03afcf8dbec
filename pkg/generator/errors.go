package generator

import (
	"context"
	"errors"
	"fmt"
)

// ErrorKind は生成失敗の分類です。
type ErrorKind string

const (
	KindAuthRequired   ErrorKind = "AUTH_REQUIRED"
	KindSafetyBlocked  ErrorKind = "SAFETY_BLOCKED"
	KindNoResult       ErrorKind = "NO_RESULT"
	KindTransport      ErrorKind = "TRANSPORT"
	KindStorageFailure ErrorKind = "STORAGE_FAILURE"
)

// GenerationError は分類付きの生成エラーです。
// errors.Is は Kind が一致すれば true を返すので、センチネルとの比較に使えるのだ。
type GenerationError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

// センチネル。errors.Is(err, ErrSafetyBlocked) のように使います。
var (
	ErrAuthRequired  = &GenerationError{Kind: KindAuthRequired}
	ErrSafetyBlocked = &GenerationError{Kind: KindSafetyBlocked}
	ErrNoResult      = &GenerationError{Kind: KindNoResult}
	ErrTransport     = &GenerationError{Kind: KindTransport}
)

// NewError は分類付きエラーを生成します。
func NewError(kind ErrorKind, msg string, err error) *GenerationError {
	return &GenerationError{Kind: kind, Msg: msg, Err: err}
}

func (e *GenerationError) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	case e.Msg != "":
		return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *GenerationError) Unwrap() error { return e.Err }

func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	return ok && t.Kind == e.Kind
}

// KindOf はエラーの分類を返します。nil なら空文字、分類のないエラーは TRANSPORT です。
func KindOf(err error) ErrorKind {
	if err == nil {
		return ""
	}
	var ge *GenerationError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindTransport
}

// classify は未分類のエラーを TRANSPORT として包みます。分類済みならそのまま返すのだ。
func classify(err error) error {
	var ge *GenerationError
	if errors.As(err, &ge) {
		return err
	}
	msg := "provider request failed"
	if errors.Is(err, context.DeadlineExceeded) {
		msg = "provider request timed out"
	}
	return NewError(KindTransport, msg, err)
}
