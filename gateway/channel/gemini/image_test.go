package gemini

import (
	"strings"
	"testing"

	"github.com/flowcanvas/gateway/gateway/model"
)

func TestCanonicalModel(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"nano-banana", "gemini-3.1-flash-image-preview"},
		{"nano-banana-pro", "gemini-3-pro-image-preview"},
		{"gemini-2.5-flash-image", "gemini-3.1-flash-image-preview"},
		// 未知标识原样透传
		{"gemini-3-pro-image-preview", "gemini-3-pro-image-preview"},
		{"some-future-model", "some-future-model"},
	}
	for _, tt := range tests {
		if got := CanonicalModel(tt.alias); got != tt.want {
			t.Errorf("CanonicalModel(%q) = %q, want %q", tt.alias, got, tt.want)
		}
	}
}

func TestCreatePaths(t *testing.T) {
	paths := CreatePaths("gemini-3-pro-image-preview")
	if len(paths) != 2 {
		t.Fatalf("CreatePaths() len = %d, want 2", len(paths))
	}
	// v1beta 在前，v1 兜底
	if paths[0] != "/v1beta/models/gemini-3-pro-image-preview:generateContent" {
		t.Errorf("paths[0] = %q", paths[0])
	}
	if paths[1] != "/v1/models/gemini-3-pro-image-preview:generateContent" {
		t.Errorf("paths[1] = %q", paths[1])
	}
}

func TestBuildPromptText(t *testing.T) {
	tests := []struct {
		name    string
		request model.GenerationRequest
		want    string
	}{
		{
			name:    "无比例时提示词原样",
			request: model.GenerationRequest{Prompt: "a cat"},
			want:    "a cat",
		},
		{
			name:    "显式比例直接拼接",
			request: model.GenerationRequest{Prompt: "a cat", AspectRatio: "16:9"},
			want:    "a cat\n\nGenerate the image with an aspect ratio of 16:9.",
		},
		{
			name:    "尺寸约分成比例",
			request: model.GenerationRequest{Prompt: "a cat", Size: "1024x768"},
			want:    "a cat\n\nGenerate the image with an aspect ratio of 4:3.",
		},
		{
			name:    "正方形尺寸",
			request: model.GenerationRequest{Prompt: "a cat", Size: "1024x1024"},
			want:    "a cat\n\nGenerate the image with an aspect ratio of 1:1.",
		},
		{
			name:    "比例优先于尺寸",
			request: model.GenerationRequest{Prompt: "a cat", AspectRatio: "9:16", Size: "1024x768"},
			want:    "a cat\n\nGenerate the image with an aspect ratio of 9:16.",
		},
		{
			name:    "非法尺寸忽略",
			request: model.GenerationRequest{Prompt: "a cat", Size: "banana"},
			want:    "a cat",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buildPromptText(&tt.request); got != tt.want {
				t.Errorf("buildPromptText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuildPromptTextDeterministic(t *testing.T) {
	request := model.GenerationRequest{Prompt: "a cat", Size: "1920x1080"}
	first := buildPromptText(&request)
	for i := 0; i < 10; i++ {
		if got := buildPromptText(&request); got != first {
			t.Fatalf("buildPromptText() not deterministic: %q != %q", got, first)
		}
	}
}

func TestConvertImageRequestInlinesDataURLs(t *testing.T) {
	// data URL 参考图不走网络，直接拆成 inlineData part
	request := model.GenerationRequest{
		Prompt: "combine these",
		InputImages: []string{
			"data:image/png;base64,AAAA",
			"data:image/jpeg;base64,BBBB",
		},
	}
	payload, err := ConvertImageRequest(&request)
	if err != nil {
		t.Fatalf("ConvertImageRequest() error = %v", err)
	}
	if len(payload.Contents) != 1 {
		t.Fatalf("contents len = %d, want 1", len(payload.Contents))
	}
	parts := payload.Contents[0].Parts
	if len(parts) != 3 {
		t.Fatalf("parts len = %d, want 1 text + 2 images", len(parts))
	}
	if parts[0].Text != "combine these" {
		t.Errorf("parts[0].Text = %q", parts[0].Text)
	}
	if parts[1].InlineData == nil || parts[1].InlineData.MimeType != "image/png" || parts[1].InlineData.Data != "AAAA" {
		t.Errorf("parts[1] = %+v, want png inline data", parts[1].InlineData)
	}
	if parts[2].InlineData == nil || parts[2].InlineData.MimeType != "image/jpeg" {
		t.Errorf("parts[2] = %+v, want jpeg inline data", parts[2].InlineData)
	}
	if payload.GenerationConfig == nil || len(payload.GenerationConfig.ResponseModalities) != 2 {
		t.Errorf("generationConfig = %+v, want TEXT+IMAGE modalities", payload.GenerationConfig)
	}
}

func TestNormalizeImageResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "gemini inlineData 形态",
			body: `{"candidates":[{"content":{"parts":[{"text":"here"},{"inlineData":{"mimeType":"image/png","data":"` + fakeBase64 + `"}}]}}]}`,
			want: []string{"data:image/png;base64," + fakeBase64},
		},
		{
			name: "openai data 数组 url 形态",
			body: `{"data":[{"url":"https://cdn.example.com/a.png"},{"url":"https://cdn.example.com/b.png"}]}`,
			want: []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"},
		},
		{
			name: "顶层 url 形态",
			body: `{"url":"https://cdn.example.com/c.png"}`,
			want: []string{"https://cdn.example.com/c.png"},
		},
		{
			name: "images 数组形态",
			body: `{"images":["https://cdn.example.com/d.png"]}`,
			want: []string{"https://cdn.example.com/d.png"},
		},
		{
			name: "跨形态合并且顺序去重",
			body: `{"data":[{"url":"https://cdn.example.com/a.png"}],"url":"https://cdn.example.com/a.png","images":["https://cdn.example.com/b.png"]}`,
			want: []string{"https://cdn.example.com/a.png", "https://cdn.example.com/b.png"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NormalizeImageResponse([]byte(tt.body))
			if err != nil {
				t.Fatalf("NormalizeImageResponse() error = %v", err)
			}
			if len(result.Images) != len(tt.want) {
				t.Fatalf("images = %v, want %v", result.Images, tt.want)
			}
			for i := range tt.want {
				if result.Images[i] != tt.want[i] {
					t.Errorf("images[%d] = %q, want %q", i, result.Images[i], tt.want[i])
				}
			}
		})
	}
}

func TestNormalizeImageResponseNoImage(t *testing.T) {
	result, err := NormalizeImageResponse([]byte(`{"candidates":[{"content":{"parts":[{"text":"sorry, no image"}]}}]}`))
	if err == nil {
		t.Fatalf("NormalizeImageResponse() = %v, want error", result)
	}
	if err.Type != model.ErrTypeNormalization {
		t.Errorf("error type = %s, want %s", err.Type, model.ErrTypeNormalization)
	}
}

// 够长且只含 base64 字符，能触发裸 base64 启发式
var fakeBase64 = strings.Repeat("iVBORw0KGgoAAAANSUhEUg", 8)
