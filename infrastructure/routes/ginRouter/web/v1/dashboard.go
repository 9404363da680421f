package routev1

import (
	"github.com/gin-gonic/gin"

	"taskdesk.io/application/controller"
	"taskdesk.io/application/interfaces"
	middlewares "taskdesk.io/infrastructure/middleware"
)

func DashboardRouter(router *gin.RouterGroup) {
	router.GET("/dashboard", func(ctx *gin.Context) {
		controller.GetDashboardSummary(&interfaces.ApplicationContext[any]{
			Ctx:      ctx,
			Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
		})
	})
}
