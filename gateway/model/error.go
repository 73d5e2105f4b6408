package model

import (
	"fmt"
	"net/http"
)

// 错误分类，决定传播和重试策略
const (
	ErrTypeConfiguration = "configuration_error"
	ErrTypeInvalidInput  = "invalid_input_error"
	ErrTypeTransport     = "transport_error"
	ErrTypeUpstream      = "upstream_error"
	ErrTypeNormalization = "normalization_error"
)

type Error struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Param   string `json:"param"`
	Code    any    `json:"code"`
}

type ErrorWithStatusCode struct {
	Error
	StatusCode int `json:"status_code"`
}

func (e *ErrorWithStatusCode) String() string {
	return fmt.Sprintf("%s (type=%s, status=%d)", e.Message, e.Type, e.StatusCode)
}

// ErrorWrapper 把内部 error 包装为带状态码的网关错误
func ErrorWrapper(err error, code string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Error: Error{
			Message: err.Error(),
			Type:    "gateway_error",
			Code:    code,
		},
		StatusCode: statusCode,
	}
}

func ConfigurationError(message string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Error: Error{
			Message: message,
			Type:    ErrTypeConfiguration,
			Code:    "gateway_not_configured",
		},
		StatusCode: http.StatusInternalServerError,
	}
}

func InvalidInputError(message string, code string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Error: Error{
			Message: message,
			Type:    ErrTypeInvalidInput,
			Code:    code,
		},
		StatusCode: http.StatusBadRequest,
	}
}

func TransportError(message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Error: Error{
			Message: message,
			Type:    ErrTypeTransport,
			Code:    "upstream_unreachable",
		},
		StatusCode: statusCode,
	}
}

func UpstreamError(message string, statusCode int) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Error: Error{
			Message: message,
			Type:    ErrTypeUpstream,
			Code:    "bad_response_status_code",
			Param:   fmt.Sprintf("%d", statusCode),
		},
		StatusCode: statusCode,
	}
}

func NormalizationError(message string, code string) *ErrorWithStatusCode {
	return &ErrorWithStatusCode{
		Error: Error{
			Message: message,
			Type:    ErrTypeNormalization,
			Code:    code,
		},
		StatusCode: http.StatusBadGateway,
	}
}

// IsRetryable 判断失败是否值得换下一个 base/path 重试
// 仅瞬时失败可重试：网络错误/超时、429、5xx；其余立即上抛
func IsRetryable(err *ErrorWithStatusCode) bool {
	if err == nil {
		return false
	}
	switch err.Type {
	case ErrTypeTransport:
		return true
	case ErrTypeUpstream:
		return err.StatusCode == http.StatusTooManyRequests || err.StatusCode >= http.StatusInternalServerError
	}
	return false
}
