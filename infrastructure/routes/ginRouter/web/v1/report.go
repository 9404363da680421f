package routev1

import (
	"github.com/gin-gonic/gin"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/controller"
	"taskdesk.io/application/controller/dto"
	"taskdesk.io/application/interfaces"
	middlewares "taskdesk.io/infrastructure/middleware"
)

func ReportRouter(router *gin.RouterGroup) {
	reportRouter := router.Group("/reports")
	{
		reportRouter.POST("/", func(ctx *gin.Context) {
			var body dto.CreateReportDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.AddReport(&interfaces.ApplicationContext[dto.CreateReportDTO]{
				Ctx:      ctx,
				Body:     &body,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			})
		})

		reportRouter.GET("/", func(ctx *gin.Context) {
			controller.GetReports(&interfaces.ApplicationContext[any]{
				Ctx:      ctx,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			})
		})

		reportRouter.GET("/:id", func(ctx *gin.Context) {
			controller.GetReportByID(&interfaces.ApplicationContext[any]{
				Ctx:      ctx,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			}, ctx.Param("id"))
		})

		reportRouter.PATCH("/:id", func(ctx *gin.Context) {
			var body dto.UpdateReportDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.UpdateReport(&interfaces.ApplicationContext[dto.UpdateReportDTO]{
				Ctx:      ctx,
				Body:     &body,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			}, ctx.Param("id"))
		})

		reportRouter.DELETE("/:id", func(ctx *gin.Context) {
			controller.DeleteReport(&interfaces.ApplicationContext[any]{
				Ctx:      ctx,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			}, ctx.Param("id"))
		})
	}
}
