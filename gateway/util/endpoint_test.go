package util

import (
	"reflect"
	"testing"
)

func TestParseEndpointPool(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    []string
		wantErr bool
	}{
		{
			name: "单个地址",
			raw:  "https://api.example.com",
			want: []string{"https://api.example.com"},
		},
		{
			name: "多个地址保持顺序",
			raw:  "https://a.example.com,https://b.example.com",
			want: []string{"https://a.example.com", "https://b.example.com"},
		},
		{
			name: "去重且保留首次出现位置",
			raw:  "https://a.example.com,https://b.example.com,https://a.example.com",
			want: []string{"https://a.example.com", "https://b.example.com"},
		},
		{
			name: "去掉空白和结尾斜杠",
			raw:  " https://a.example.com/ , https://b.example.com ",
			want: []string{"https://a.example.com", "https://b.example.com"},
		},
		{
			name:    "空配置报配置错误",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "只有逗号和空白也算空",
			raw:     " , , ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEndpointPool(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseEndpointPool(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseEndpointPool(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{
			name: "普通拼接",
			base: "https://api.example.com",
			path: "/v1/chat/completions",
			want: "https://api.example.com/v1/chat/completions",
		},
		{
			name: "base 带版本段且路径重复时不二次拼接",
			base: "https://api.example.com/v1",
			path: "/v1/chat/completions",
			want: "https://api.example.com/v1/chat/completions",
		},
		{
			name: "路径版本段优先于 base 版本段",
			base: "https://api.example.com/v1",
			path: "/v1beta/models/gemini:generateContent",
			want: "https://api.example.com/v1beta/models/gemini:generateContent",
		},
		{
			name: "v1beta base 遇到 v1 路径同样以路径为准",
			base: "https://api.example.com/v1beta",
			path: "/v1/videos",
			want: "https://api.example.com/v1/videos",
		},
		{
			name: "base 带版本段但路径不带时保留 base 的版本段",
			base: "https://api.example.com/v1",
			path: "/video/generations",
			want: "https://api.example.com/v1/video/generations",
		},
		{
			name: "路径里的 v 开头普通词不会被误判为版本段",
			base: "https://api.example.com/v1",
			path: "/video/task/abc",
			want: "https://api.example.com/v1/video/task/abc",
		},
		{
			name: "绝对 URL 原样返回",
			base: "https://api.example.com",
			path: "https://other.example.com/v1/x",
			want: "https://other.example.com/v1/x",
		},
		{
			name: "路径缺前导斜杠自动补",
			base: "https://api.example.com",
			path: "v1/status",
			want: "https://api.example.com/v1/status",
		},
		{
			name: "空路径返回 base",
			base: "https://api.example.com/v1",
			path: "",
			want: "https://api.example.com/v1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveURL(tt.base, tt.path)
			if got != tt.want {
				t.Errorf("ResolveURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
			}
		})
	}
}
