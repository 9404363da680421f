package routev1

import (
	"github.com/gin-gonic/gin"

	"taskdesk.io/application/controller"
	"taskdesk.io/application/interfaces"
)

func WorkspaceRouter(router *gin.RouterGroup) {
	router.GET("/workspaces", func(ctx *gin.Context) {
		controller.GetWorkspaceDirectory(&interfaces.ApplicationContext[any]{
			Ctx: ctx,
		})
	})
}
