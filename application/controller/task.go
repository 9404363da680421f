package controller

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/controller/dto"
	"taskdesk.io/application/interfaces"
	"taskdesk.io/application/repository"
	"taskdesk.io/entities"
	"taskdesk.io/infrastructure/logger"
	messagequeue "taskdesk.io/infrastructure/message_queue"
	queue_tasks "taskdesk.io/infrastructure/message_queue/tasks"
	mq_types "taskdesk.io/infrastructure/message_queue/types"
	server_response "taskdesk.io/infrastructure/serverResponse"
	"taskdesk.io/infrastructure/validator"
)

func AddTask(ctx *interfaces.ApplicationContext[dto.CreateTaskDTO]) {
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	var workspaceID *string
	if ctx.Identity != nil {
		workspaceID = ctx.Identity.WorkspaceID
	}

	task, err := repository.TaskRepo().CreateOne(nil, entities.Task{
		Title:         ctx.Body.Title,
		Description:   ctx.Body.Description,
		Group:         ctx.Body.Group,
		CurrentStatus: ctx.Body.CurrentStatus,
		ScheduledDate: ctx.Body.ScheduledDate,
		AssignedTo:    ctx.Body.AssignedTo,
		WorkspaceID:   workspaceID,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	if task.AssignedTo != nil {
		notifyAssignee(task, "New Task Assigned")
	}

	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, task)
}

func GetTasks(ctx *interfaces.ApplicationContext[dto.TaskListQuery]) {
	query := map[string]any{}

	if ctx.Body.Search != "" {
		query["title"] = primitive.Regex{Pattern: ctx.Body.Search, Options: "i"}
	}

	if ctx.Body.CreatedAt != nil {
		start := time.Date(ctx.Body.CreatedAt.Year(), ctx.Body.CreatedAt.Month(), ctx.Body.CreatedAt.Day(), 0, 0, 0, 0, ctx.Body.CreatedAt.Location())
		end := start.Add(24*time.Hour - time.Nanosecond)
		query["scheduledDate"] = map[string]any{"$gte": start, "$lte": end}
	}

	// Members only ever see their own assignments; every query is scoped
	// to the caller's workspace when one is known.
	if ctx.Identity != nil {
		if ctx.Identity.Role == string(entities.MemberRole) && ctx.Identity.ID != "" {
			query["assignedTo"] = ctx.Identity.ID
		}
		if ctx.Identity.WorkspaceID != nil {
			query["workspaceId"] = *ctx.Identity.WorkspaceID
		}
	}

	page := ctx.Body.Page
	if page < 1 {
		page = 1
	}
	limit := ctx.Body.Limit
	if limit < 1 {
		limit = 10
	}
	skip := (page - 1) * limit

	taskRepo := repository.TaskRepo()
	tasks, err := taskRepo.FindMany(query, options.Find().SetSkip(skip).SetLimit(limit).SetSort(map[string]any{"createdAt": -1}))
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	total, err := taskRepo.CountDocs(query)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, map[string]any{
		"data": tasks,
		"pagination": map[string]any{
			"total":      total,
			"page":       page,
			"limit":      limit,
			"totalPages": int64(math.Ceil(float64(total) / float64(limit))),
		},
	})
}

func GetTaskByID(ctx *interfaces.ApplicationContext[any], id string) {
	task, err := repository.TaskRepo().FindByID(id)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if task == nil {
		apperrors.NotFoundError(ctx.Ctx, "Task not found")
		return
	}
	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, task)
}

func UpdateTask(ctx *interfaces.ApplicationContext[dto.UpdateTaskDTO], id string) {
	if id == "" {
		apperrors.ClientError(ctx.Ctx, "Task id is required", nil)
		return
	}
	validationErr := validator.ValidatorInstance.ValidateStruct(ctx.Body)
	if validationErr != nil {
		apperrors.ValidationFailedError(ctx.Ctx, validationErr)
		return
	}

	taskRepo := repository.TaskRepo()
	task, err := taskRepo.FindByID(id)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if task == nil {
		apperrors.NotFoundError(ctx.Ctx, "Task not found")
		return
	}

	_, err = taskRepo.UpdatePartialByID(id, map[string]any{
		"title":         ctx.Body.Title,
		"description":   ctx.Body.Description,
		"group":         ctx.Body.Group,
		"currentStatus": ctx.Body.CurrentStatus,
		"scheduledDate": ctx.Body.ScheduledDate,
		"assignedTo":    ctx.Body.AssignedTo,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	updated, err := taskRepo.FindByID(id)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	newAssignee := ctx.Body.AssignedTo != nil && (task.AssignedTo == nil || *task.AssignedTo != *ctx.Body.AssignedTo)
	if newAssignee {
		notifyAssignee(updated, "Task Reassigned")
	}

	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, updated)
}

func DeleteTask(ctx *interfaces.ApplicationContext[any], id string) {
	deleted, err := repository.TaskRepo().DeleteByID(id)
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	if deleted == 0 {
		apperrors.NotFoundError(ctx.Ctx, "Task not found")
		return
	}
	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, "Task deleted", nil, nil)
}

func notifyAssignee(task *entities.Task, title string) {
	payload, err := json.Marshal(queue_tasks.NotificationPayload{
		UserID:      *task.AssignedTo,
		Title:       title,
		Message:     fmt.Sprintf("%q is scheduled for %s", task.Title, task.ScheduledDate.Format("Jan 2, 2006")),
		RelatedTask: &task.ID,
	})
	if err != nil {
		logger.Error("error marshalling payload for notification queue", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return
	}
	messagequeue.TaskQueue.Enqueue(mq_types.QueueTask{
		Payload:   payload,
		Name:      queue_tasks.HandleNotificationDeliveryTaskName,
		Priority:  mq_types.High,
		ProcessIn: 1,
	})
}
