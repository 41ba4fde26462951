package tasks

import (
	"context"
	"encoding/json"
	"fmt"

	"hireflow/models"

	"github.com/hibiken/asynq"
)

const TypeOutreachEmailDeliver = "outreach:email:deliver"

// NewOutreachEmailTask wraps a confirmed send into a queue task.
func NewOutreachEmailTask(payload models.OutreachEmailPayload) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeOutreachEmailDeliver, b)
	opts := []asynq.Option{asynq.MaxRetry(5)}

	return task, opts, nil
}

// AsynqEmailQueue enqueues outreach emails on the Redis-backed queue. It
// satisfies the outreach engine's EmailQueuer interface.
type AsynqEmailQueue struct {
	Client *asynq.Client
}

func NewAsynqEmailQueue(client *asynq.Client) *AsynqEmailQueue {
	return &AsynqEmailQueue{Client: client}
}

func (q *AsynqEmailQueue) EnqueueOutreachEmail(ctx context.Context, payload models.OutreachEmailPayload) error {
	task, opts, err := NewOutreachEmailTask(payload)
	if err != nil {
		return fmt.Errorf("failed to build outreach email task: %w", err)
	}
	if _, err := q.Client.EnqueueContext(ctx, task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue outreach email: %w", err)
	}
	return nil
}
