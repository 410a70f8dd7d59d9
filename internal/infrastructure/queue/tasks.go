package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"idealink-backend/internal/infrastructure/email"
)

// Task types processed by cmd/worker.
const (
	TypeApplicationReceived = "email:application_received"
	TypeApplicationDecided  = "email:application_decided"
)

// Enqueuer abstracts the task queue so services can enqueue notifications
// without knowing about asynq. Tests swap in a fake.
type Enqueuer interface {
	EnqueueApplicationReceived(ctx context.Context, data email.ApplicationReceivedData) error
	EnqueueApplicationDecided(ctx context.Context, data email.ApplicationDecidedData) error
}

// Client is the asynq-backed Enqueuer implementation.
type Client struct {
	client *asynq.Client
}

func NewClient(redisAddr, password string, db int) *Client {
	return &Client{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     redisAddr,
			Password: password,
			DB:       db,
		}),
	}
}

func (c *Client) EnqueueApplicationReceived(ctx context.Context, data email.ApplicationReceivedData) error {
	return c.enqueue(ctx, TypeApplicationReceived, data)
}

func (c *Client) EnqueueApplicationDecided(ctx context.Context, data email.ApplicationDecidedData) error {
	return c.enqueue(ctx, TypeApplicationDecided, data)
}

func (c *Client) enqueue(ctx context.Context, taskType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", taskType, err)
	}

	task := asynq.NewTask(taskType, data)

	_, err = c.client.EnqueueContext(ctx, task,
		asynq.Queue("default"),
		asynq.MaxRetry(5),
		asynq.Timeout(30*time.Second),
	)
	if err != nil {
		return fmt.Errorf("enqueue %s: %w", taskType, err)
	}

	return nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
