package controller

import (
	"net/http"
	"runtime"

	"github.com/flowcanvas/gateway/common/config"
	"github.com/flowcanvas/gateway/common/helper"
	"github.com/gin-gonic/gin"
)

// Status 健康检查，同时暴露少量运行时指标
func Status(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"system":     config.SystemName,
		"instance":   config.InstanceId,
		"timestamp":  helper.GetTimestamp(),
		"goroutines": runtime.NumGoroutine(),
		"memory": gin.H{
			"alloc_mb": m.Alloc / 1024 / 1024,
			"sys_mb":   m.Sys / 1024 / 1024,
			"num_gc":   m.NumGC,
		},
	})
}
