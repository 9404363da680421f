package routev1

import (
	"github.com/gin-gonic/gin"

	"taskdesk.io/application/controller"
	"taskdesk.io/application/interfaces"
	middlewares "taskdesk.io/infrastructure/middleware"
)

func NotificationRouter(router *gin.RouterGroup) {
	notificationRouter := router.Group("/notifications")
	{
		notificationRouter.GET("/", func(ctx *gin.Context) {
			controller.GetNotifications(&interfaces.ApplicationContext[any]{
				Ctx:      ctx,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			})
		})

		notificationRouter.PATCH("/mark-read", func(ctx *gin.Context) {
			controller.MarkAllNotificationsRead(&interfaces.ApplicationContext[any]{
				Ctx:      ctx,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			})
		})
	}
}
