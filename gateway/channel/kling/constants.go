package kling

var ModelList = []string{
	"kling-o1",
	"kling-v2-master",
	"kling-v1-6",
}

// 多图生视频接口最多接受 4 张参考图，超出部分静默截断
const MaxReferenceImages = 4

const (
	ComposeModeFrames    = "first-last-frame"
	ComposeModeReference = "reference-image"
)

// CreatePaths 创建任务的候选路径，聚合网关形态在前，官方 v1 形态兜底
var CreatePaths = []string{
	"/video/multi-image2video",
	"/v1/videos/multi-image2video",
}

// StatusPaths 查询任务的候选路径
func StatusPaths(taskID string) []string {
	return []string{
		"/video/task/" + taskID,
		"/v1/videos/" + taskID,
	}
}
