package cron

import (
	"encoding/json"
	"sync"

	"github.com/hibiken/asynq"
)

var (
	client     *asynq.Client
	clientOnce sync.Once
)

func getClient() *asynq.Client {
	clientOnce.Do(func() {
		client = asynq.NewClient(queueRedisOpt())
	})
	return client
}

func enqueue(task *asynq.Task) error {
	_, err := getClient().Enqueue(task)
	return err
}

// EnqueueRequestFanout queues the notification fan-out for a new request.
func EnqueueRequestFanout(requestID string) error {
	payload, err := json.Marshal(FanoutPayload{RequestID: requestID})
	if err != nil {
		return err
	}
	return enqueue(asynq.NewTask(TypeRequestFanout, payload))
}
