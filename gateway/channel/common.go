package channel

import "strings"

// ModelFamily 视频模型家族，按请求解析一次，后续分发全部走闭合的 switch
type ModelFamily int

const (
	FamilyUnknown ModelFamily = iota
	FamilyKling
	FamilySora
)

func (f ModelFamily) String() string {
	switch f {
	case FamilyKling:
		return "kling"
	case FamilySora:
		return "sora"
	}
	return "unknown"
}

// ResolveModelFamily 根据模型标识解析家族
// 未识别的视频模型必须立刻报错，绝不静默回退到默认模型
func ResolveModelFamily(modelName string) ModelFamily {
	name := strings.ToLower(strings.TrimSpace(modelName))
	switch {
	case strings.HasPrefix(name, "kling"):
		return FamilyKling
	case strings.HasPrefix(name, "sora"):
		return FamilySora
	}
	return FamilyUnknown
}
