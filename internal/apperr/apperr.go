package apperr

import (
	"errors"
	"fmt"
)

// Kind 错误类别
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindInvalidArgument Kind = "INVALID_ARGUMENT"
	KindUnauthorized    Kind = "UNAUTHORIZED"
	KindForbidden       Kind = "FORBIDDEN"
	KindInternal        Kind = "INTERNAL"
)

// Error 应用层错误，携带类别与底层原因
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New 创建指定类别的错误
func New(kind Kind, message string) error {
	return &Error{Kind: kind, Message: message}
}

// Wrap 包装底层错误
func Wrap(kind Kind, message string, err error) error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// NotFound 资源不存在
func NotFound(message string) error {
	return New(KindNotFound, message)
}

// InvalidArgument 请求参数非法或矛盾
func InvalidArgument(message string) error {
	return New(KindInvalidArgument, message)
}

// Unauthorized 未通过身份校验
func Unauthorized(message string) error {
	return New(KindUnauthorized, message)
}

// Forbidden 权限不足
func Forbidden(message string) error {
	return New(KindForbidden, message)
}

// Internal 服务器内部错误
func Internal(message string, err error) error {
	return Wrap(KindInternal, message, err)
}

// KindOf 提取错误类别，非应用层错误归为 INTERNAL
func KindOf(err error) Kind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return KindInternal
}

// MessageOf 提取对外展示的错误消息
func MessageOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Message
	}
	return "服务器内部错误"
}

// IsNotFound 是否为资源不存在错误
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// IsInvalidArgument 是否为参数错误
func IsInvalidArgument(err error) bool {
	return KindOf(err) == KindInvalidArgument
}
