package router

import (
	"github.com/flowcanvas/gateway/controller"
	"github.com/flowcanvas/gateway/middleware"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	apiRouter.Use(gzip.Gzip(gzip.DefaultCompression))
	apiRouter.Use(middleware.CORS())
	{
		apiRouter.GET("/v1/status", controller.Status)

		generateRoute := apiRouter.Group("/v1/generate")
		generateRoute.Use(middleware.PanicRecover())
		{
			generateRoute.POST("/chat", controller.GenerateChat)
			generateRoute.POST("/image", controller.GenerateImage)
			generateRoute.POST("/video", controller.CreateVideo)
			generateRoute.GET("/video/:taskId", controller.GetVideoTask)
		}
	}
}
