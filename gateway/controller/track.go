package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/flowcanvas/gateway/common/logger"
	"github.com/flowcanvas/gateway/gateway/channel"
	"github.com/flowcanvas/gateway/gateway/channel/kling"
	"github.com/flowcanvas/gateway/gateway/channel/sora"
	"github.com/flowcanvas/gateway/gateway/model"
	"github.com/tidwall/gjson"
)

// 视频地址的常见落点；命中任意一个直接判定任务完成
var videoURLRules = []struct {
	Name string
	Path string
}{
	{"top-url", "url"},
	{"top-video-url", "video_url"},
	{"wrapped-url", "data.url"},
	{"wrapped-video-url", "data.video_url"},
	{"task-result-video", "data.task_result.videos.0.url"},
	{"bare-task-result", "task_result.videos.0.url"},
	{"task-result-url", "data.task_result.video_url"},
	{"bare-task-result-url", "task_result.video_url"},
}

// 状态字段的常见落点，字符串和数值两种形态都可能出现
var statusFieldRules = []struct {
	Name string
	Path string
}{
	{"top-status", "status"},
	{"top-task-status", "task_status"},
	{"wrapped-status", "data.status"},
	{"wrapped-task-status", "data.task_status"},
}

// PollVideoTask 查询任务状态
// 终态结果进程内缓存，重复查询不打上游；未知任务先按标识猜家族，猜错再换另一家探
// 例外：完成但还没拿到地址的任务不算闭环，后续查询继续探上游补地址，终态本身不回退
func (g *Gateway) PollVideoTask(ctx context.Context, taskID string) (*model.CanonicalVideoTask, *model.ErrorWithStatusCode) {
	cached, hasCached := g.tasks.terminalOf(taskID)
	if hasCached && !(cached.Status == model.VideoStatusCompleted && cached.VideoURL == "") {
		return cached, nil
	}

	var lastErr *model.ErrorWithStatusCode
	for _, family := range g.probeOrder(taskID) {
		result, err := g.dispatcher.ProbePaths(ctx, familyStatusPaths(family, taskID), http.MethodGet, nil)
		if err != nil {
			logger.Debugf(ctx, "status probe as %s failed for task %s: %s", family, taskID, err.Message)
			lastErr = err
			continue
		}
		g.tasks.rememberFamily(taskID, family)
		task := g.normalizeVideoTask(ctx, family, taskID, result.Body)
		if hasCached && (task.Status != model.VideoStatusCompleted || task.VideoURL == "") {
			// 本次探测没补到地址，维持已判定的完成态
			return cached, nil
		}
		g.tasks.rememberTerminal(taskID, task)
		return task, nil
	}
	if hasCached {
		return cached, nil
	}
	if lastErr == nil {
		lastErr = model.InvalidInputError("unknown task id: "+taskID, "unknown_task")
	}
	return nil, lastErr
}

// probeOrder 先走登记过的家族；没登记过的按任务标识的形态猜，猜错换另一家
func (g *Gateway) probeOrder(taskID string) []channel.ModelFamily {
	if family, ok := g.tasks.familyOf(taskID); ok {
		return withFallback(family)
	}
	lower := strings.ToLower(taskID)
	if strings.HasPrefix(lower, "video_") || strings.HasPrefix(lower, "task_") || strings.HasPrefix(lower, "gen-") {
		return withFallback(channel.FamilySora)
	}
	return withFallback(channel.FamilyKling)
}

func withFallback(primary channel.ModelFamily) []channel.ModelFamily {
	if primary == channel.FamilySora {
		return []channel.ModelFamily{channel.FamilySora, channel.FamilyKling}
	}
	return []channel.ModelFamily{channel.FamilyKling, channel.FamilySora}
}

func familyStatusPaths(family channel.ModelFamily, taskID string) []string {
	if family == channel.FamilySora {
		return sora.StatusPaths(taskID)
	}
	return kling.StatusPaths(taskID)
}

// normalizeVideoTask 把任意形态的状态响应归一化
// 视频地址短路优先：拿到可下载地址即为完成，不再看状态字段
func (g *Gateway) normalizeVideoTask(ctx context.Context, family channel.ModelFamily, taskID string, body []byte) *model.CanonicalVideoTask {
	task := &model.CanonicalVideoTask{
		TaskID: taskID,
		Status: model.VideoStatusProcessing,
		Raw:    body,
	}
	if url := extractVideoURL(body); url != "" {
		task.Status = model.VideoStatusCompleted
		task.VideoURL = url
		return task
	}
	task.Status = extractStatus(body)
	if family == channel.FamilySora && task.Status == model.VideoStatusCompleted && task.VideoURL == "" {
		// 完成但没带地址，二段取回；取回失败不降级已判定的终态
		g.fetchDeferredContent(ctx, taskID, task)
	}
	return task
}

func extractVideoURL(body []byte) string {
	for _, rule := range videoURLRules {
		value := gjson.GetBytes(body, rule.Path)
		if value.Type != gjson.String {
			continue
		}
		url := strings.TrimSpace(value.Str)
		if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
			return url
		}
	}
	return ""
}

func extractStatus(body []byte) model.VideoTaskStatus {
	for _, rule := range statusFieldRules {
		value := gjson.GetBytes(body, rule.Path)
		if !value.Exists() {
			continue
		}
		if value.Type == gjson.Number {
			return channel.NormalizeStatusCode(value.Int())
		}
		if value.Type == gjson.String && value.Str != "" {
			return channel.NormalizeStatusString(value.Str)
		}
	}
	return model.VideoStatusProcessing
}

func (g *Gateway) fetchDeferredContent(ctx context.Context, taskID string, task *model.CanonicalVideoTask) {
	result, err := g.dispatcher.ProbePaths(ctx, sora.ContentPaths(taskID), http.MethodGet, nil)
	if err != nil {
		logger.Warnf(ctx, "deferred content fetch failed for task %s: %s", taskID, err.Message)
		return
	}
	if url := extractVideoURL(result.Body); url != "" {
		task.VideoURL = url
	}
}
