package controller

import (
	"context"
	"testing"

	"github.com/flowcanvas/gateway/gateway/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateImage(t *testing.T) {
	// 别名模型应该按规范标识拼路径
	stub := &stubDispatcher{responses: map[string]string{
		"/v1beta/models/gemini-3-pro-image-preview:generateContent": `{"data":[{"url":"https://cdn.example.com/out.png"}]}`,
	}}
	g := newTestGateway(stub)

	result, err := g.GenerateImage(context.Background(), &model.GenerationRequest{
		Modality: model.ModalityImage,
		Model:    "nano-banana-pro",
		Prompt:   "a watercolor fox",
	})
	require.Nil(t, err)
	require.Len(t, result.Images, 1)
	assert.Equal(t, "https://cdn.example.com/out.png", result.Images[0])
}

func TestGenerateChat(t *testing.T) {
	stub := &stubDispatcher{responses: map[string]string{
		"/v1/chat/completions": `{"choices":[{"message":{"content":"hi there"}}]}`,
	}}
	g := newTestGateway(stub)

	text, err := g.GenerateChat(context.Background(), &model.GenerationRequest{
		Modality: model.ModalityChat,
		Model:    "gemini-2.5-flash-lite",
		Prompt:   "say hi",
	})
	require.Nil(t, err)
	assert.Equal(t, "hi there", text)
}

func TestGenerateImageUpstreamErrorPassthrough(t *testing.T) {
	stub := &stubDispatcher{
		responses: map[string]string{},
		errors: map[string]*model.ErrorWithStatusCode{
			"/v1beta/models/gemini-3.1-flash-image-preview:generateContent": model.UpstreamError("content policy violation", 400),
			"/v1/models/gemini-3.1-flash-image-preview:generateContent":     model.UpstreamError("content policy violation", 400),
		},
	}
	g := newTestGateway(stub)

	_, err := g.GenerateImage(context.Background(), &model.GenerationRequest{
		Modality: model.ModalityImage,
		Model:    "nano-banana",
		Prompt:   "something disallowed",
	})
	require.NotNil(t, err)
	assert.Equal(t, model.ErrTypeUpstream, err.Type)
	assert.Equal(t, "content policy violation", err.Message)
}
