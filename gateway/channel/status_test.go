package channel

import (
	"testing"

	"github.com/flowcanvas/gateway/gateway/model"
)

func TestResolveModelFamily(t *testing.T) {
	tests := []struct {
		model string
		want  ModelFamily
	}{
		{"kling-o1", FamilyKling},
		{"kling-v2-master", FamilyKling},
		{"Kling-O1", FamilyKling},
		{"sora-2", FamilySora},
		{"sora-2-pro", FamilySora},
		{" sora-2 ", FamilySora},
		{"gemini-3-pro-image-preview", FamilyUnknown},
		{"", FamilyUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			if got := ResolveModelFamily(tt.model); got != tt.want {
				t.Errorf("ResolveModelFamily(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func TestNormalizeStatusString(t *testing.T) {
	tests := []struct {
		raw  string
		want model.VideoTaskStatus
	}{
		{"success", model.VideoStatusCompleted},
		{"succeed", model.VideoStatusCompleted},
		{"Succeeded", model.VideoStatusCompleted},
		{"COMPLETED", model.VideoStatusCompleted},
		{"done", model.VideoStatusCompleted},
		{"finished", model.VideoStatusCompleted},
		{"failed", model.VideoStatusFailed},
		{"fail", model.VideoStatusFailed},
		{"error", model.VideoStatusFailed},
		{"canceled", model.VideoStatusFailed},
		{"cancelled", model.VideoStatusFailed},
		{"processing", model.VideoStatusProcessing},
		{"submitted", model.VideoStatusProcessing},
		// 未知词和空串都按处理中，绝不猜终态
		{"weird_new_status", model.VideoStatusProcessing},
		{"", model.VideoStatusProcessing},
	}
	for _, tt := range tests {
		if got := NormalizeStatusString(tt.raw); got != tt.want {
			t.Errorf("NormalizeStatusString(%q) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestNormalizeStatusCode(t *testing.T) {
	tests := []struct {
		code int64
		want model.VideoTaskStatus
	}{
		{1, model.VideoStatusCompleted},
		{7, model.VideoStatusFailed},
		{0, model.VideoStatusProcessing},
		{5, model.VideoStatusProcessing},
		{99, model.VideoStatusProcessing},
	}
	for _, tt := range tests {
		if got := NormalizeStatusCode(tt.code); got != tt.want {
			t.Errorf("NormalizeStatusCode(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}
