package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/flowcanvas/gateway/common/config"
	"github.com/flowcanvas/gateway/common/logger"
	"github.com/flowcanvas/gateway/gateway/channel/gemini"
	"github.com/flowcanvas/gateway/gateway/model"
	"github.com/jinzhu/copier"
)

// GenerateImage 图片生成：别名归一、翻译请求、归一化响应
func (g *Gateway) GenerateImage(ctx context.Context, request *model.GenerationRequest) (*model.CanonicalImageResult, *model.ErrorWithStatusCode) {
	modelName := gemini.CanonicalModel(request.Model)
	payload, err := gemini.ConvertImageRequest(request)
	if err != nil {
		return nil, err
	}
	if config.DebugEnabled {
		logger.Debugf(ctx, "image request payload: %s", printableGenerateContent(payload))
	}
	result, err := g.dispatcher.DispatchPaths(ctx, gemini.CreatePaths(modelName), http.MethodPost, payload)
	if err != nil {
		return nil, err
	}
	return gemini.NormalizeImageResponse(result.Body)
}

// printableGenerateContent 日志用深拷贝，内联图片数据截断后输出
// 原始请求不动，日志里也不会出现整段 base64
func printableGenerateContent(request *gemini.GenerateContentRequest) string {
	var clone gemini.GenerateContentRequest
	if err := copier.CopyWithOption(&clone, request, copier.Option{DeepCopy: true}); err != nil {
		return ""
	}
	for ci := range clone.Contents {
		for pi := range clone.Contents[ci].Parts {
			if inline := clone.Contents[ci].Parts[pi].InlineData; inline != nil && len(inline.Data) > 48 {
				inline.Data = inline.Data[:48] + "...[truncated]"
			}
		}
	}
	data, marshalErr := json.Marshal(clone)
	if marshalErr != nil {
		return ""
	}
	return string(data)
}
