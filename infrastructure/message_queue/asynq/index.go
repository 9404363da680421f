package asynq

import (
	"os"
	"sync"
	"time"

	"github.com/hibiken/asynq"

	"taskdesk.io/infrastructure/logger"
	queue_tasks "taskdesk.io/infrastructure/message_queue/tasks"
	mq_types "taskdesk.io/infrastructure/message_queue/types"
)

type AsynqBroker struct {
	Client *asynq.Client

	clientOnce sync.Once
}

func redisConnOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
	}
}

// ensureClient makes Enqueue safe to call before (or concurrently with)
// Start, which runs on its own goroutine during boot.
func (aq *AsynqBroker) ensureClient() {
	aq.clientOnce.Do(func() {
		aq.Client = asynq.NewClient(redisConnOpt())
	})
}

func (aq *AsynqBroker) Start() {
	aq.ensureClient()

	srv := asynq.NewServer(
		redisConnOpt(),
		asynq.Config{
			Concurrency: 50,
			Queues: map[string]int{
				string(mq_types.High):   7,
				string(mq_types.Medium): 2,
				string(mq_types.Low):    1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(string(queue_tasks.HandleNotificationDeliveryTaskName), queue_tasks.HandleNotificationDeliveryTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			logger.Error("asynq server stopped", logger.LoggerOptions{
				Key:  "error",
				Data: err,
			})
		}
	}()
}

func (aq *AsynqBroker) Enqueue(task mq_types.QueueTask) {
	aq.ensureClient()
	if task.TimeOut == 0 {
		task.TimeOut = 60
	}
	_, err := aq.Client.Enqueue(asynq.NewTask(string(task.Name), task.Payload),
		asynq.ProcessIn(time.Duration(task.ProcessIn)*time.Second),
		asynq.MaxRetry(10),
		asynq.Timeout(time.Second*time.Duration(task.TimeOut)),
		asynq.Queue(string(task.Priority)))
	if err != nil {
		logger.Error("failed to enqueue task", logger.LoggerOptions{
			Key:  "task",
			Data: task.Name,
		}, logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
	}
}
