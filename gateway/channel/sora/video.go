package sora

import (
	"math"
	"strconv"
	"strings"

	"github.com/flowcanvas/gateway/common/config"
	"github.com/flowcanvas/gateway/gateway/model"
)

// ConvertVideoRequest 把统一请求翻译成该供应商的生成请求体
// 尺寸必须落在官方档位上：有比例按比例查表，有尺寸按最近比例吸附，都没有走默认档
func ConvertVideoRequest(request *model.GenerationRequest) (*VideoCreateRequest, *model.ErrorWithStatusCode) {
	duration := request.DurationSeconds
	if duration <= 0 {
		duration = config.DefaultVideoDuration
	}
	firstFrame := request.FirstFrameImage
	if firstFrame == "" && len(request.InputImages) > 0 {
		firstFrame = request.InputImages[0]
	}
	return &VideoCreateRequest{
		Model:      request.Model,
		Prompt:     request.Prompt,
		Size:       ResolveSize(request.AspectRatio, request.Size),
		Duration:   duration,
		FirstFrame: firstFrame,
		EndFrame:   request.LastFrameImage,
	}, nil
}

// ResolveSize 把比例或任意尺寸解析成官方尺寸档位
func ResolveSize(aspectRatio string, size string) string {
	if resolved, ok := ratioToSize[strings.TrimSpace(aspectRatio)]; ok {
		return resolved
	}
	if width, height, ok := parseSize(size); ok {
		return snapToCatalog(width, height)
	}
	return DefaultSize
}

func parseSize(size string) (width int, height int, ok bool) {
	parts := strings.SplitN(strings.ToLower(strings.TrimSpace(size)), "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	width, err1 := strconv.Atoi(parts[0])
	height, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		return 0, 0, false
	}
	return width, height, true
}

// snapToCatalog 按宽高比距离选最近的档位，比例同样近时保持查表序稳定
func snapToCatalog(width int, height int) string {
	target := float64(width) / float64(height)
	best := DefaultSize
	bestDistance := math.MaxFloat64
	for _, ratio := range []string{"16:9", "9:16", "4:3", "3:4", "1:1"} {
		candidate := ratioToSize[ratio]
		w, h, _ := parseSize(candidate)
		distance := math.Abs(float64(w)/float64(h) - target)
		if distance < bestDistance {
			bestDistance = distance
			best = candidate
		}
	}
	return best
}
