package kling

import (
	"testing"

	"github.com/flowcanvas/gateway/gateway/model"
)

func TestConvertVideoRequestFirstLastFrame(t *testing.T) {
	// 首尾帧先占槽位并切到 first-last-frame 模式，剩余槽位用参考图补齐
	request := model.GenerationRequest{
		Model:           "kling-o1",
		Prompt:          "a slow pan",
		FirstFrameImage: "data:image/png;base64,FIRST",
		LastFrameImage:  "data:image/png;base64,LAST",
		InputImages:     []string{"data:image/png;base64,REF"},
	}
	payload, err := ConvertVideoRequest(&request)
	if err != nil {
		t.Fatalf("ConvertVideoRequest() error = %v", err)
	}
	if payload.Mode != ComposeModeFrames {
		t.Errorf("Mode = %q, want %q", payload.Mode, ComposeModeFrames)
	}
	if len(payload.ImageList) != 3 {
		t.Fatalf("ImageList len = %d, want 3", len(payload.ImageList))
	}
	if payload.ImageList[0].Image != "data:image/png;base64,FIRST" {
		t.Errorf("ImageList[0] = %q, want first frame", payload.ImageList[0].Image)
	}
	if payload.ImageList[1].Image != "data:image/png;base64,LAST" {
		t.Errorf("ImageList[1] = %q, want last frame", payload.ImageList[1].Image)
	}
	if payload.ImageList[2].Image != "data:image/png;base64,REF" {
		t.Errorf("ImageList[2] = %q, want reference image after frames", payload.ImageList[2].Image)
	}
}

func TestConvertVideoRequestReferenceImages(t *testing.T) {
	request := model.GenerationRequest{
		Model:  "kling-o1",
		Prompt: "blend these",
		InputImages: []string{
			"data:image/png;base64,A",
			"data:image/png;base64,B",
			"data:image/png;base64,C",
			"data:image/png;base64,D",
			"data:image/png;base64,E",
			"data:image/png;base64,F",
		},
		AspectRatio:     "9:16",
		DurationSeconds: 10,
	}
	payload, err := ConvertVideoRequest(&request)
	if err != nil {
		t.Fatalf("ConvertVideoRequest() error = %v", err)
	}
	if payload.Mode != ComposeModeReference {
		t.Errorf("Mode = %q, want %q", payload.Mode, ComposeModeReference)
	}
	// 超过上限静默截断，保留前 4 张
	if len(payload.ImageList) != MaxReferenceImages {
		t.Fatalf("ImageList len = %d, want %d", len(payload.ImageList), MaxReferenceImages)
	}
	if payload.ImageList[3].Image != "data:image/png;base64,D" {
		t.Errorf("ImageList[3] = %q, want 4th image", payload.ImageList[3].Image)
	}
	if payload.AspectRatio != "9:16" {
		t.Errorf("AspectRatio = %q, want 9:16", payload.AspectRatio)
	}
	if payload.Duration != "10" {
		t.Errorf("Duration = %q, want \"10\"", payload.Duration)
	}
	if payload.ModelName != "kling-o1" {
		t.Errorf("ModelName = %q, want kling-o1", payload.ModelName)
	}
}

func TestConvertVideoRequestDefaults(t *testing.T) {
	request := model.GenerationRequest{
		Model:       "kling-o1",
		Prompt:      "a cat walking",
		InputImages: []string{"data:image/png;base64,A"},
	}
	payload, err := ConvertVideoRequest(&request)
	if err != nil {
		t.Fatalf("ConvertVideoRequest() error = %v", err)
	}
	if payload.AspectRatio != "16:9" {
		t.Errorf("AspectRatio = %q, want default 16:9", payload.AspectRatio)
	}
	if payload.Duration != "5" {
		t.Errorf("Duration = %q, want default \"5\"", payload.Duration)
	}
}

func TestConvertVideoRequestNoImage(t *testing.T) {
	// 该接口是图生视频，无图必须立即报客户端错误
	request := model.GenerationRequest{
		Model:  "kling-o1",
		Prompt: "pure text",
	}
	_, err := ConvertVideoRequest(&request)
	if err == nil {
		t.Fatal("ConvertVideoRequest() error = nil, want invalid input error")
	}
	if err.Type != model.ErrTypeInvalidInput {
		t.Errorf("error type = %s, want %s", err.Type, model.ErrTypeInvalidInput)
	}
}

func TestStatusPaths(t *testing.T) {
	paths := StatusPaths("task-123")
	if len(paths) != 2 {
		t.Fatalf("StatusPaths() len = %d, want 2", len(paths))
	}
	if paths[0] != "/video/task/task-123" {
		t.Errorf("paths[0] = %q", paths[0])
	}
	if paths[1] != "/v1/videos/task-123" {
		t.Errorf("paths[1] = %q", paths[1])
	}
}
