package channel

import (
	"strings"

	"github.com/flowcanvas/gateway/gateway/model"
)

// 状态词表按线上观察维护，是配置数据而不是协议事实
var completedStatuses = map[string]bool{
	"success":   true,
	"succeed":   true,
	"succeeded": true,
	"completed": true,
	"done":      true,
	"finished":  true,
}

var failedStatuses = map[string]bool{
	"failed":    true,
	"fail":      true,
	"error":     true,
	"canceled":  true,
	"cancelled": true,
}

// 数值状态码：1=生成成功，7=生成失败，其余（排队/生成中/已删除等）一律视为处理中
const (
	StatusCodeCompleted = 1
	StatusCodeFailed    = 7
)

// NormalizeStatusString 把字符串状态归一化为终态/处理中
// 大小写不敏感；空串和未知词都按处理中处理
func NormalizeStatusString(raw string) model.VideoTaskStatus {
	status := strings.ToLower(strings.TrimSpace(raw))
	if completedStatuses[status] {
		return model.VideoStatusCompleted
	}
	if failedStatuses[status] {
		return model.VideoStatusFailed
	}
	return model.VideoStatusProcessing
}

// NormalizeStatusCode 数值状态码归一化
func NormalizeStatusCode(code int64) model.VideoTaskStatus {
	switch code {
	case StatusCodeCompleted:
		return model.VideoStatusCompleted
	case StatusCodeFailed:
		return model.VideoStatusFailed
	}
	return model.VideoStatusProcessing
}
