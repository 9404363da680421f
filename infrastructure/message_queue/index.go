package messagequeue

import (
	"taskdesk.io/infrastructure/message_queue/asynq"
	mq_types "taskdesk.io/infrastructure/message_queue/types"
)

var TaskQueue mq_types.TaskQueueBroker = &asynq.AsynqBroker{}

func StartQueue() {
	TaskQueue.Start()
}
