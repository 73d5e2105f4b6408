package sora

var ModelList = []string{
	"sora-2",
	"sora-2-pro",
}

// 该供应商只接受固定尺寸档位，任意输入都要吸附到其中一档
var ratioToSize = map[string]string{
	"16:9": "1280x720",
	"9:16": "720x1280",
	"4:3":  "1152x864",
	"3:4":  "864x1152",
	"1:1":  "1024x1024",
}

const DefaultSize = "1280x720"

// CreatePaths 创建任务的候选路径
var CreatePaths = []string{
	"/video/generations",
	"/v1/videos",
}

// StatusPaths 查询任务的候选路径
func StatusPaths(taskID string) []string {
	return []string{
		"/video/generations/" + taskID,
		"/v1/videos/" + taskID,
	}
}

// ContentPaths 终态后二段取回视频内容的候选路径
func ContentPaths(taskID string) []string {
	return []string{
		"/video/generations/" + taskID + "/content",
		"/v1/videos/" + taskID + "/content",
	}
}
