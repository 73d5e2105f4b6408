package controller

import (
	"context"
	"net/http"

	"github.com/flowcanvas/gateway/gateway/channel/openai"
	"github.com/flowcanvas/gateway/gateway/model"
)

// GenerateChat 文本生成，直通 chat-completions 形态
func (g *Gateway) GenerateChat(ctx context.Context, request *model.GenerationRequest) (string, *model.ErrorWithStatusCode) {
	payload, err := openai.ConvertChatRequest(request)
	if err != nil {
		return "", err
	}
	result, err := g.dispatcher.DispatchPaths(ctx, openai.CreatePaths, http.MethodPost, payload)
	if err != nil {
		return "", err
	}
	return openai.ExtractChatText(result.Body)
}
