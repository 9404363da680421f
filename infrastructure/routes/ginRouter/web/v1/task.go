package routev1

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/controller"
	"taskdesk.io/application/controller/dto"
	"taskdesk.io/application/interfaces"
	middlewares "taskdesk.io/infrastructure/middleware"
)

func TaskRouter(router *gin.RouterGroup) {
	taskRouter := router.Group("/tasks")
	{
		taskRouter.POST("/", func(ctx *gin.Context) {
			var body dto.CreateTaskDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.AddTask(&interfaces.ApplicationContext[dto.CreateTaskDTO]{
				Ctx:      ctx,
				Body:     &body,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			})
		})

		taskRouter.GET("/", func(ctx *gin.Context) {
			query := dto.TaskListQuery{
				Search: ctx.Query("search"),
			}
			if page, err := strconv.ParseInt(ctx.Query("page"), 10, 64); err == nil {
				query.Page = page
			}
			if limit, err := strconv.ParseInt(ctx.Query("limit"), 10, 64); err == nil {
				query.Limit = limit
			}
			if raw := ctx.Query("createdAt"); raw != "" {
				if day, err := time.Parse("2006-01-02", raw); err == nil {
					query.CreatedAt = &day
				}
			}
			controller.GetTasks(&interfaces.ApplicationContext[dto.TaskListQuery]{
				Ctx:      ctx,
				Body:     &query,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			})
		})

		taskRouter.GET("/:id", func(ctx *gin.Context) {
			controller.GetTaskByID(&interfaces.ApplicationContext[any]{
				Ctx:      ctx,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			}, ctx.Param("id"))
		})

		taskRouter.PATCH("/:id", func(ctx *gin.Context) {
			var body dto.UpdateTaskDTO
			if err := ctx.ShouldBindJSON(&body); err != nil {
				apperrors.ErrorProcessingPayload(ctx)
				return
			}
			controller.UpdateTask(&interfaces.ApplicationContext[dto.UpdateTaskDTO]{
				Ctx:      ctx,
				Body:     &body,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			}, ctx.Param("id"))
		})

		taskRouter.DELETE("/:id", func(ctx *gin.Context) {
			controller.DeleteTask(&interfaces.ApplicationContext[any]{
				Ctx:      ctx,
				Identity: middlewares.ParseIdentityHeader(ctx.Request.Header),
			}, ctx.Param("id"))
		})
	}
}
