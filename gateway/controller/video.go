package controller

import (
	"context"
	"net/http"

	"github.com/flowcanvas/gateway/common/logger"
	"github.com/flowcanvas/gateway/gateway/channel"
	"github.com/flowcanvas/gateway/gateway/channel/kling"
	"github.com/flowcanvas/gateway/gateway/channel/sora"
	"github.com/flowcanvas/gateway/gateway/model"
	"github.com/jinzhu/copier"
	"github.com/tidwall/gjson"
)

// 任务标识的常见落点，按优先级探测
var taskIDRules = []struct {
	Name string
	Path string
}{
	{"top-id", "id"},
	{"top-task-id", "task_id"},
	{"task-object", "task.id"},
	{"wrapped-id", "data.id"},
	{"wrapped-task-id", "data.task_id"},
	{"wrapped-task-object", "data.task.id"},
}

// 空 prompt 一律补一个中性的运动提示词，绝不把空提示词送上游
const implicitMotionPrompt = "Generate a natural, cinematic motion video."

// CreateVideoTask 创建视频生成任务
// 家族解析一次，后续分发走闭合 switch；未识别模型立即失败
func (g *Gateway) CreateVideoTask(ctx context.Context, request *model.GenerationRequest) (*model.CanonicalVideoTask, *model.ErrorWithStatusCode) {
	family := channel.ResolveModelFamily(request.Model)
	if family == channel.FamilyUnknown {
		return nil, model.InvalidInputError("unsupported video model: "+request.Model, "unsupported_model")
	}

	effective := request
	if request.Prompt == "" {
		// 深拷贝后补提示词，调用方持有的请求保持原样
		var clone model.GenerationRequest
		if err := copier.CopyWithOption(&clone, request, copier.Option{DeepCopy: true}); err != nil {
			return nil, model.ErrorWrapper(err, "clone_request_failed", http.StatusInternalServerError)
		}
		clone.Prompt = implicitMotionPrompt
		effective = &clone
	}

	var result *model.ProviderCallResult
	var callErr *model.ErrorWithStatusCode
	switch family {
	case channel.FamilyKling:
		payload, err := kling.ConvertVideoRequest(effective)
		if err != nil {
			return nil, err
		}
		result, callErr = g.dispatcher.DispatchPaths(ctx, kling.CreatePaths, http.MethodPost, payload)
	case channel.FamilySora:
		payload, err := sora.ConvertVideoRequest(effective)
		if err != nil {
			return nil, err
		}
		result, callErr = g.dispatcher.DispatchPaths(ctx, sora.CreatePaths, http.MethodPost, payload)
	}
	if callErr != nil {
		return nil, callErr
	}

	taskID := extractTaskID(result.Body)
	if taskID == "" {
		return nil, model.NormalizationError("no task id in create response", "no_task_id")
	}
	g.tasks.rememberFamily(taskID, family)
	logger.Infof(ctx, "video task created: id=%s family=%s model=%s", taskID, family, request.Model)

	// 创建响应本身也可能直接报终态（同步完成的供应商），走同一套归一化
	task := g.normalizeVideoTask(ctx, family, taskID, result.Body)
	g.tasks.rememberTerminal(taskID, task)
	return task, nil
}

func extractTaskID(body []byte) string {
	for _, rule := range taskIDRules {
		if value := gjson.GetBytes(body, rule.Path); value.Exists() && value.String() != "" {
			return value.String()
		}
	}
	return ""
}
