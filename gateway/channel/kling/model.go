package kling

type ImageItem struct {
	Image string `json:"image"`
}

// VideoCreateRequest 多图生视频请求体
type VideoCreateRequest struct {
	ModelName   string      `json:"model_name"`
	Prompt      string      `json:"prompt,omitempty"`
	Mode        string      `json:"mode,omitempty"`
	ImageList   []ImageItem `json:"image_list"`
	AspectRatio string      `json:"aspect_ratio,omitempty"`
	Duration    string      `json:"duration,omitempty"`
}
