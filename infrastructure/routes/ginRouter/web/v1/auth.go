package routev1

import (
	"github.com/gin-gonic/gin"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/controller"
	"taskdesk.io/application/controller/dto"
	"taskdesk.io/application/interfaces"
)

func AuthRouter(router *gin.RouterGroup) {
	router.POST("/login", func(ctx *gin.Context) {
		var body dto.LoginDTO
		if err := ctx.ShouldBindJSON(&body); err != nil {
			apperrors.ErrorProcessingPayload(ctx)
			return
		}
		controller.Login(&interfaces.ApplicationContext[dto.LoginDTO]{
			Ctx:  ctx,
			Body: &body,
		})
	})

	router.POST("/register", func(ctx *gin.Context) {
		var body dto.RegisterDTO
		if err := ctx.ShouldBindJSON(&body); err != nil {
			apperrors.ErrorProcessingPayload(ctx)
			return
		}
		controller.Register(&interfaces.ApplicationContext[dto.RegisterDTO]{
			Ctx:  ctx,
			Body: &body,
		})
	})

	router.POST("/logout", func(ctx *gin.Context) {
		controller.Logout(&interfaces.ApplicationContext[any]{
			Ctx: ctx,
		})
	})
}
