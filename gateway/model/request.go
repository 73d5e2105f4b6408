package model

const (
	ModalityChat  = "chat"
	ModalityImage = "image"
	ModalityVideo = "video"
)

// GenerationRequest 统一的内部生成请求
// 由上层（已鉴权、已校验）构造，进入网关后不再修改
type GenerationRequest struct {
	Modality        string   `json:"modality" binding:"required,oneof=chat image video"`
	Model           string   `json:"model" binding:"required"`
	Prompt          string   `json:"prompt"`
	Size            string   `json:"size,omitempty" binding:"omitempty,sizespec"`
	AspectRatio     string   `json:"aspect_ratio,omitempty" binding:"omitempty,aspectratio"`
	DurationSeconds int      `json:"duration_seconds,omitempty"`
	InputImages     []string `json:"input_images,omitempty"`
	FirstFrameImage string   `json:"first_frame_image,omitempty"`
	LastFrameImage  string   `json:"last_frame_image,omitempty"`
}

// HasImageInput 任意形式的图片输入（参考图或首尾帧）
func (r *GenerationRequest) HasImageInput() bool {
	return len(r.InputImages) > 0 || r.FirstFrameImage != "" || r.LastFrameImage != ""
}
