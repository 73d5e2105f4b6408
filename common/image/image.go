package image

import (
	"bytes"
	"encoding/base64"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"regexp"
	"strings"

	_ "golang.org/x/image/webp"
)

// 匹配 data URL：data:image/png;base64,xxxx
var dataURLPattern = regexp.MustCompile(`^data:([a-zA-Z0-9.+-]+/[a-zA-Z0-9.+-]+);base64,(.*)$`)

var base64Alphabet = regexp.MustCompile(`^[A-Za-z0-9+/\r\n]+={0,2}$`)

// ParseDataURL 拆出 data URL 的媒体类型和 base64 载荷
func ParseDataURL(s string) (mimeType string, data string, ok bool) {
	matches := dataURLPattern.FindStringSubmatch(s)
	if len(matches) != 3 {
		return "", "", false
	}
	return matches[1], matches[2], true
}

// IsLikelyBase64 判断一个裸字符串是否像 base64 图片载荷
// 部分供应商返回不带 data: 前缀的 base64，需要启发式识别
func IsLikelyBase64(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) < 128 {
		return false
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "data:") {
		return false
	}
	return base64Alphabet.MatchString(s)
}

// DetectMimeFromBase64 尽力推断 base64 载荷的媒体类型
// 先用已注册的图片解码器（含 webp），失败再退回内容嗅探，最后兜底 png
func DetectMimeFromBase64(encoded string) string {
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(encoded)
		if err != nil {
			return "image/png"
		}
	}
	if _, format, err := image.DecodeConfig(bytes.NewReader(decoded)); err == nil {
		return "image/" + format
	}
	sniffLen := len(decoded)
	if sniffLen > 512 {
		sniffLen = 512
	}
	if contentType := http.DetectContentType(decoded[:sniffLen]); contentType != "application/octet-stream" {
		return contentType
	}
	return "image/png"
}

// ToDataURL 把裸 base64 载荷包成 data URL
func ToDataURL(mimeType string, data string) string {
	if mimeType == "" {
		mimeType = DetectMimeFromBase64(data)
	}
	return "data:" + mimeType + ";base64," + data
}

// GetImageFromUrl 获取图片内容并编码为 base64
// data URL 直接拆开返回，http(s) URL 则拉取内容
func GetImageFromUrl(url string) (mimeType string, data string, err error) {
	if m, d, ok := ParseDataURL(url); ok {
		return m, d, nil
	}
	resp, err := http.Get(url)
	if err != nil {
		return
	}
	defer resp.Body.Close()
	buffer := bytes.NewBuffer(nil)
	_, err = buffer.ReadFrom(io.LimitReader(resp.Body, 20*1024*1024))
	if err != nil {
		return
	}
	mimeType = resp.Header.Get("Content-Type")
	if mimeType == "" || !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(buffer.Bytes()[:min(512, buffer.Len())])
	}
	data = base64.StdEncoding.EncodeToString(buffer.Bytes())
	return
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
