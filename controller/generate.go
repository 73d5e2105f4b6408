package controller

import (
	"net/http"
	"sync"

	"github.com/flowcanvas/gateway/common/helper"
	"github.com/flowcanvas/gateway/common/logger"
	gateway "github.com/flowcanvas/gateway/gateway/controller"
	"github.com/flowcanvas/gateway/gateway/model"
	"github.com/gin-gonic/gin"
)

var (
	gatewayOnce     sync.Once
	gatewayInstance *gateway.Gateway
	gatewayInitErr  *model.ErrorWithStatusCode
)

// getGateway 惰性初始化，配置缺失的错误在首个请求上暴露
func getGateway() (*gateway.Gateway, *model.ErrorWithStatusCode) {
	gatewayOnce.Do(func() {
		gatewayInstance, gatewayInitErr = gateway.New()
	})
	return gatewayInstance, gatewayInitErr
}

// abortWithError 统一错误出口，消息带上 request id 方便排查
func abortWithError(c *gin.Context, errWithCode *model.ErrorWithStatusCode) {
	requestId := c.GetString(logger.RequestIdKey)
	errWithCode.Error.Message = helper.MessageWithRequestId(errWithCode.Error.Message, requestId)
	c.JSON(errWithCode.StatusCode, gin.H{
		"error": errWithCode.Error,
	})
}

func bindGenerationRequest(c *gin.Context, modality string) (*model.GenerationRequest, *model.ErrorWithStatusCode) {
	var request model.GenerationRequest
	request.Modality = modality
	if err := c.ShouldBindJSON(&request); err != nil {
		return nil, model.InvalidInputError(err.Error(), "invalid_request_body")
	}
	// 路由已决定模态，请求体里写了别的也不认
	request.Modality = modality
	return &request, nil
}

// GenerateChat 文本生成
func GenerateChat(c *gin.Context) {
	request, errWithCode := bindGenerationRequest(c, model.ModalityChat)
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	g, errWithCode := getGateway()
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	text, errWithCode := g.GenerateChat(c.Request.Context(), request)
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"text": text,
	})
}

// GenerateImage 图片生成
func GenerateImage(c *gin.Context) {
	request, errWithCode := bindGenerationRequest(c, model.ModalityImage)
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	g, errWithCode := getGateway()
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	result, errWithCode := g.GenerateImage(c.Request.Context(), request)
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreateVideo 创建视频生成任务
func CreateVideo(c *gin.Context) {
	request, errWithCode := bindGenerationRequest(c, model.ModalityVideo)
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	g, errWithCode := getGateway()
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	task, errWithCode := g.CreateVideoTask(c.Request.Context(), request)
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	c.JSON(http.StatusOK, task)
}

// GetVideoTask 查询视频任务状态
func GetVideoTask(c *gin.Context) {
	taskID := c.Param("taskId")
	if taskID == "" {
		abortWithError(c, model.InvalidInputError("task id is required", "task_id_required"))
		return
	}
	g, errWithCode := getGateway()
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	task, errWithCode := g.PollVideoTask(c.Request.Context(), taskID)
	if errWithCode != nil {
		abortWithError(c, errWithCode)
		return
	}
	c.JSON(http.StatusOK, task)
}
