package queue

import (
	"context"
	"fmt"
	"log"

	"github.com/hibiken/asynq"
)

const TaskReconcileStorage = "storage:reconcile"

// Client wraps asynq.Client for enqueuing tasks
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, redisPassword string) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: redisPassword,
		}),
	}
}

func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueReconcile schedules an immediate reconciliation sweep.
func (c *Client) EnqueueReconcile(ctx context.Context) error {
	task := asynq.NewTask(TaskReconcileStorage, nil)

	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("failed to enqueue task: %w", err)
	}

	log.Printf("[Queue] enqueued task id=%s queue=%s", info.ID, info.Queue)
	return nil
}
