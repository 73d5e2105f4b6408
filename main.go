package main

import (
	"fmt"
	"os"

	"github.com/flowcanvas/gateway/common"
	"github.com/flowcanvas/gateway/common/config"
	"github.com/flowcanvas/gateway/common/logger"
	"github.com/flowcanvas/gateway/controller"
	"github.com/flowcanvas/gateway/middleware"
	"github.com/flowcanvas/gateway/router"
	"github.com/gin-gonic/gin"
)

func main() {
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("%s %s started", config.SystemName, common.Version))
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}

	if err := controller.RegisterValidators(); err != nil {
		logger.FatalLog("failed to register validators: " + err.Error())
	}

	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	middleware.SetUpLogger(server)

	router.SetRouter(server)

	port := os.Getenv("PORT")
	if port == "" {
		port = config.Port
	}
	logger.SysLog("listening on :" + port)
	if err := server.Run(":" + port); err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
