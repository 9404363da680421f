package routev1

import (
	"github.com/gin-gonic/gin"

	"taskdesk.io/application/controller"
	"taskdesk.io/application/interfaces"
	middlewares "taskdesk.io/infrastructure/middleware"
)

func UserRouter(router *gin.RouterGroup) {
	userRouter := router.Group("/users")
	{
		userRouter.GET("/", func(ctx *gin.Context) {
			controller.GetUsers(&interfaces.ApplicationContext[any]{
				Ctx:      ctx,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			})
		})

		userRouter.GET("/:id", func(ctx *gin.Context) {
			controller.GetUserByID(&interfaces.ApplicationContext[any]{
				Ctx:      ctx,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			}, ctx.Param("id"))
		})
	}
}
