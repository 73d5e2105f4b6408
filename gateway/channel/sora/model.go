package sora

// VideoCreateRequest 视频生成请求体
type VideoCreateRequest struct {
	Model      string `json:"model"`
	Prompt     string `json:"prompt"`
	Size       string `json:"size,omitempty"`
	Duration   int    `json:"seconds,omitempty"`
	FirstFrame string `json:"first_frame,omitempty"`
	EndFrame   string `json:"end_frame,omitempty"`
}
