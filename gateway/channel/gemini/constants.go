package gemini

import "fmt"

var ModelList = []string{
	"gemini-3.1-flash-image-preview",
	"gemini-3-pro-image-preview",
}

// 旧版/别名标识改写为供应商认可的规范标识
var modelAliases = map[string]string{
	"nano-banana":            "gemini-3.1-flash-image-preview",
	"nano-banana-pro":        "gemini-3-pro-image-preview",
	"gemini-2.5-flash-image": "gemini-3.1-flash-image-preview",
}

// CanonicalModel 解析模型别名，未知标识原样返回
func CanonicalModel(name string) string {
	if canonical, ok := modelAliases[name]; ok {
		return canonical
	}
	return name
}

// CreatePaths 生成内容的候选路径，v1beta 优先
// URL Resolver 负责和 base 自带的版本段做归并
func CreatePaths(modelName string) []string {
	return []string{
		fmt.Sprintf("/v1beta/models/%s:generateContent", modelName),
		fmt.Sprintf("/v1/models/%s:generateContent", modelName),
	}
}
