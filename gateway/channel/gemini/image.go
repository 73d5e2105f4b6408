package gemini

import (
	"fmt"
	"strconv"
	"strings"

	img "github.com/flowcanvas/gateway/common/image"
	"github.com/flowcanvas/gateway/common/logger"
	"github.com/flowcanvas/gateway/gateway/model"
	"github.com/tidwall/gjson"
)

// 图片提取规则，按优先级求值；不同供应商/网关转发层的响应形态差异很大，
// 这里把所有已观察到的形态收敛成一张有序规则表
var imageExtractionRules = []struct {
	Name string
	Path string
}{
	{"gemini-inline", "candidates.0.content.parts.#.inlineData.data"},
	{"gemini-inline-snake", "candidates.0.content.parts.#.inline_data.data"},
	{"openai-url", "data.#.url"},
	{"openai-b64", "data.#.b64_json"},
	{"images-array", "images"},
	{"top-url", "url"},
	{"top-image-url", "image_url"},
}

// ConvertImageRequest 把统一请求翻译成 generateContent 请求体
// 提示词里拼上确定性的比例短语，参考图逐张内联为 inlineData part
func ConvertImageRequest(request *model.GenerationRequest) (*GenerateContentRequest, *model.ErrorWithStatusCode) {
	parts := []Part{{Text: buildPromptText(request)}}
	for _, ref := range request.InputImages {
		mimeType, data, err := img.GetImageFromUrl(ref)
		if err != nil {
			// 单张参考图拉取失败不终止整个请求
			logger.SysError(fmt.Sprintf("skip unreachable reference image: %s", err.Error()))
			continue
		}
		parts = append(parts, Part{InlineData: &InlineData{
			MimeType: mimeType,
			Data:     data,
		}})
	}
	return &GenerateContentRequest{
		Contents: []Content{{Role: "user", Parts: parts}},
		GenerationConfig: &GenerationConfig{
			ResponseModalities: []string{"TEXT", "IMAGE"},
		},
	}, nil
}

// buildPromptText 提示词加比例短语
// 比例短语必须确定性生成，同样的输入永远产出同样的文本
func buildPromptText(request *model.GenerationRequest) string {
	ratio := request.AspectRatio
	if ratio == "" && request.Size != "" {
		ratio = ratioFromSize(request.Size)
	}
	if ratio == "" {
		return request.Prompt
	}
	return fmt.Sprintf("%s\n\nGenerate the image with an aspect ratio of %s.", request.Prompt, ratio)
}

// ratioFromSize 把 1024x768 之类的尺寸约分成 4:3
func ratioFromSize(size string) string {
	parts := strings.SplitN(strings.ToLower(size), "x", 2)
	if len(parts) != 2 {
		return ""
	}
	width, err1 := strconv.Atoi(parts[0])
	height, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || width <= 0 || height <= 0 {
		return ""
	}
	divisor := gcd(width, height)
	return fmt.Sprintf("%d:%d", width/divisor, height/divisor)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// NormalizeImageResponse 把任意兼容形态的响应归一化为 data URL 列表
// 顺序去重；一张都提不出来按归一化失败处理
func NormalizeImageResponse(body []byte) (*model.CanonicalImageResult, *model.ErrorWithStatusCode) {
	var images []string
	seen := map[string]bool{}
	appendImage := func(raw string) {
		dataURL := canonicalImageValue(raw)
		if dataURL == "" || seen[dataURL] {
			return
		}
		seen[dataURL] = true
		images = append(images, dataURL)
	}
	for _, rule := range imageExtractionRules {
		result := gjson.GetBytes(body, rule.Path)
		if !result.Exists() {
			continue
		}
		if result.IsArray() {
			for _, item := range result.Array() {
				appendImage(item.String())
			}
			continue
		}
		appendImage(result.String())
	}
	if len(images) == 0 {
		return nil, model.NormalizationError("no image content in response", "no_image_output")
	}
	return &model.CanonicalImageResult{Images: images}, nil
}

// canonicalImageValue 把单个候选值规整成 data URL 或 http URL
func canonicalImageValue(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if strings.HasPrefix(raw, "data:") {
		return raw
	}
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	if img.IsLikelyBase64(raw) {
		return img.ToDataURL("", raw)
	}
	return ""
}
