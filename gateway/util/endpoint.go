package util

import (
	"regexp"
	"strings"

	"github.com/flowcanvas/gateway/gateway/model"
)

// 版本段：/v1、/v2、/v1beta、/v1alpha 这类后缀/前缀
var baseVersionSuffix = regexp.MustCompile(`/(v\d+(?:alpha|beta)?)$`)
var pathVersionPrefix = regexp.MustCompile(`^/(v\d+(?:alpha|beta)?)(/|$)`)

// ParseEndpointPool 解析逗号分隔的基础地址列表
// 去重、保持首次出现顺序、去掉结尾斜杠；为空视为配置错误
func ParseEndpointPool(raw string) ([]string, *model.ErrorWithStatusCode) {
	seen := make(map[string]bool)
	var bases []string
	for _, part := range strings.Split(raw, ",") {
		base := strings.TrimRight(strings.TrimSpace(part), "/")
		if base == "" || seen[base] {
			continue
		}
		seen[base] = true
		bases = append(bases, base)
	}
	if len(bases) == 0 {
		return nil, model.ConfigurationError("PROVIDER_BASE_URLS is not configured")
	}
	return bases, nil
}

// ResolveURL 把逻辑路径解析成针对某个 base 的完整请求地址
// 规则：
//   - 逻辑路径本身是绝对 URL 时原样返回
//   - base 以版本段结尾且路径以版本段开头时，以路径的版本段为准，绝不重复拼接
//     例如 base=.../v1 + path=/v1/chat/completions -> .../v1/chat/completions
//     例如 base=.../v1 + path=/v1beta/models/x -> .../v1beta/models/x
func ResolveURL(base string, logicalPath string) string {
	if strings.HasPrefix(logicalPath, "http://") || strings.HasPrefix(logicalPath, "https://") {
		return logicalPath
	}
	if logicalPath == "" {
		return base
	}
	if !strings.HasPrefix(logicalPath, "/") {
		logicalPath = "/" + logicalPath
	}
	if m := baseVersionSuffix.FindStringSubmatch(base); m != nil {
		if pathVersionPrefix.MatchString(logicalPath) {
			return strings.TrimSuffix(base, "/"+m[1]) + logicalPath
		}
	}
	return base + logicalPath
}
