package service

import (
	"errors"
	"fmt"
	"strings"
)

// 业务错误定义
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserDisabled       = errors.New("user disabled")
	ErrWeakPassword       = errors.New("password too weak")
	ErrMissingFile        = errors.New("file field missing")
	ErrFileTooLarge       = errors.New("file too large")
	ErrUploadVerifyFailed = errors.New("upload verification failed")
	ErrStorageUnavailable = errors.New("object storage not configured")
)

// ValidationError 字段级校验错误，携带 字段 -> 错误消息列表
type ValidationError struct {
	Fields map[string][]string
}

// Error 实现 error 接口
func (e *ValidationError) Error() string {
	if e == nil || len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for field, messages := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(messages, "; ")))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}

// NewValidationError 创建单字段校验错误
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string][]string{field: {message}}}
}

// Add 追加一条字段错误
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], message)
	return e
}

// AsValidationError 判断并提取字段级校验错误
func AsValidationError(err error) (*ValidationError, bool) {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return validationErr, true
	}
	return nil, false
}
