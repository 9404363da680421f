package queue_tasks

import (
	"context"
	"encoding/json"

	"github.com/hibiken/asynq"

	"taskdesk.io/application/repository"
	"taskdesk.io/entities"
	"taskdesk.io/infrastructure/logger"
	mq_types "taskdesk.io/infrastructure/message_queue/types"
)

var HandleNotificationDeliveryTaskName mq_types.Queues = "deliver_notification"

type NotificationPayload struct {
	UserID      string
	Title       string
	Message     string
	RelatedTask *string
}

// HandleNotificationDeliveryTask writes an in-app notification document for
// the target user. Returning an error lets asynq retry delivery.
func HandleNotificationDeliveryTask(ctx context.Context, t *asynq.Task) error {
	var payload NotificationPayload
	err := json.Unmarshal(t.Payload(), &payload)
	if err != nil {
		logger.Error("an error occured while unmarshalling notification queue payload", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	_, err = repository.NotificationRepo().CreateOne(ctx, entities.Notification{
		UserID:      payload.UserID,
		Title:       payload.Title,
		Message:     payload.Message,
		RelatedTask: payload.RelatedTask,
	})
	if err != nil {
		logger.Error("failed to deliver notification", logger.LoggerOptions{
			Key:  "userId",
			Data: payload.UserID,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return err
	}
	return nil
}
