package asynq

import (
	"testing"

	mq_types "taskdesk.io/infrastructure/message_queue/types"
)

func TestEnqueueBeforeStartInitializesClient(t *testing.T) {
	t.Setenv("REDIS_ADDR", "localhost:0")

	broker := &AsynqBroker{}
	// No Start has run yet; the enqueue fails against the unreachable
	// address but must not panic on a nil client.
	broker.Enqueue(mq_types.QueueTask{
		Name:    "deliver_notification",
		Payload: []byte(`{}`),
	})

	if broker.Client == nil {
		t.Fatal("Enqueue did not initialize the client")
	}
}
