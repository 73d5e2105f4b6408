package openai

import (
	"encoding/json"
	"net/http"

	"github.com/flowcanvas/gateway/gateway/model"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest OpenAI 兼容的 chat-completions 请求体
type ChatRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

// 候选创建路径：带版本号的在前，legacy 形态兜底
var CreatePaths = []string{
	"/v1/chat/completions",
	"/chat/completions",
}

// 文本提取规则，按优先级求值，命中第一个非空结果
// 覆盖标准 choices 结构、legacy text 字段和套了一层 data 的聚合网关形态
var textExtractionRules = []struct {
	Name string
	Path string
}{
	{"chat-message", "choices.0.message.content"},
	{"chat-delta", "choices.0.delta.content"},
	{"legacy-text", "choices.0.text"},
	{"wrapped-message", "data.choices.0.message.content"},
	{"wrapped-text", "data.choices.0.text"},
}

// ConvertChatRequest 直通翻译，无模型特判
// 网关不做流式透传，统一压成一次性响应
func ConvertChatRequest(request *model.GenerationRequest) ([]byte, *model.ErrorWithStatusCode) {
	body, err := json.Marshal(ChatRequest{
		Model: request.Model,
		Messages: []ChatMessage{
			{Role: "user", Content: request.Prompt},
		},
	})
	if err != nil {
		return nil, model.ErrorWrapper(err, "marshal_chat_request", http.StatusInternalServerError)
	}
	body, _ = sjson.SetBytes(body, "stream", false)
	return body, nil
}

// ExtractChatText 从任意兼容形态的响应里提取文本
func ExtractChatText(body []byte) (string, *model.ErrorWithStatusCode) {
	for _, rule := range textExtractionRules {
		if value := gjson.GetBytes(body, rule.Path); value.Type == gjson.String && value.Str != "" {
			return value.Str, nil
		}
	}
	return "", model.NormalizationError("no text content in chat response", "no_text_output")
}
