package kling

import (
	"strconv"

	"github.com/flowcanvas/gateway/common/config"
	"github.com/flowcanvas/gateway/gateway/model"
)

// ConvertVideoRequest 把统一请求翻译成多图生视频请求体
// 槽位优先级：显式首尾帧先占位，剩余槽位再用参考图列表补齐；该接口要求至少一张图
func ConvertVideoRequest(request *model.GenerationRequest) (*VideoCreateRequest, *model.ErrorWithStatusCode) {
	var images []string
	mode := ComposeModeReference
	if request.FirstFrameImage != "" || request.LastFrameImage != "" {
		mode = ComposeModeFrames
		if request.FirstFrameImage != "" {
			images = append(images, request.FirstFrameImage)
		}
		if request.LastFrameImage != "" {
			images = append(images, request.LastFrameImage)
		}
	}
	images = append(images, request.InputImages...)
	if len(images) == 0 {
		return nil, model.InvalidInputError("at least one input image is required for this video model", "image_required")
	}
	if len(images) > MaxReferenceImages {
		images = images[:MaxReferenceImages]
	}

	imageList := make([]ImageItem, 0, len(images))
	for _, image := range images {
		imageList = append(imageList, ImageItem{Image: image})
	}

	ratio := request.AspectRatio
	if ratio == "" {
		ratio = config.DefaultVideoRatio
	}
	duration := request.DurationSeconds
	if duration <= 0 {
		duration = config.DefaultVideoDuration
	}

	return &VideoCreateRequest{
		ModelName:   request.Model,
		Prompt:      request.Prompt,
		Mode:        mode,
		ImageList:   imageList,
		AspectRatio: ratio,
		Duration:    strconv.Itoa(duration),
	}, nil
}
