package controller

import (
	"fmt"
	"net/http"

	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "taskdesk.io/application/appErrors"
	"taskdesk.io/application/interfaces"
	"taskdesk.io/application/repository"
	server_response "taskdesk.io/infrastructure/serverResponse"
)

const notificationFeedLimit = 10

// GetNotifications returns the caller's ten most recent notifications.
func GetNotifications(ctx *interfaces.ApplicationContext[any]) {
	if ctx.Identity == nil || ctx.Identity.ID == "" {
		apperrors.ClientError(ctx.Ctx, "User not found", nil)
		return
	}

	notifications, err := repository.NotificationRepo().FindMany(map[string]any{
		"userId": ctx.Identity.ID,
	}, options.Find().SetSort(map[string]any{"createdAt": -1}).SetLimit(notificationFeedLimit))
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}
	server_response.Responder.RespondRaw(ctx.Ctx, http.StatusOK, notifications)
}

func MarkAllNotificationsRead(ctx *interfaces.ApplicationContext[any]) {
	if ctx.Identity == nil || ctx.Identity.ID == "" {
		apperrors.ClientError(ctx.Ctx, "User not found", nil)
		return
	}

	notificationRepo := repository.NotificationRepo()
	unread, err := notificationRepo.CountDocs(map[string]any{
		"userId": ctx.Identity.ID,
		"isRead": false,
	})
	if err != nil {
		apperrors.FatalServerError(ctx.Ctx, err)
		return
	}

	if unread != 0 {
		_, err = notificationRepo.UpdatePartialByFilter(map[string]any{
			"userId": ctx.Identity.ID,
			"isRead": false,
		}, map[string]any{
			"isRead": true,
		})
		if err != nil {
			apperrors.FatalServerError(ctx.Ctx, err)
			return
		}
	}

	server_response.Responder.Respond(ctx.Ctx, http.StatusOK, fmt.Sprintf("%d notifications marked as read", unread), nil, nil)
}
