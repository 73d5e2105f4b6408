package model

import "encoding/json"

// RawPayload 非 JSON 的成功响应体
type RawPayload struct {
	Raw string `json:"raw"`
}

// ProviderCallResult 单次上游调用的结果，调用内产生、调用内消费
type ProviderCallResult struct {
	StatusCode int             `json:"status_code"`
	Body       json.RawMessage `json:"body,omitempty"`
	Parsed     any             `json:"parsed,omitempty"`
	OK         bool            `json:"ok"`
}

// CanonicalImageResult 归一化后的图片结果，URL 去重且保持出现顺序
type CanonicalImageResult struct {
	Images []string `json:"images"`
}

type VideoTaskStatus string

const (
	VideoStatusProcessing VideoTaskStatus = "processing"
	VideoStatusCompleted  VideoTaskStatus = "completed"
	VideoStatusFailed     VideoTaskStatus = "failed"
)

// Terminal 到达 completed/failed 后不再回退
func (s VideoTaskStatus) Terminal() bool {
	return s == VideoStatusCompleted || s == VideoStatusFailed
}

// CanonicalVideoTask 视频任务的归一化视图
type CanonicalVideoTask struct {
	TaskID   string          `json:"task_id"`
	Status   VideoTaskStatus `json:"status"`
	VideoURL string          `json:"video_url,omitempty"`
	Raw      json.RawMessage `json:"raw,omitempty"`
}
