package queue

import (
	"github.com/hibiken/asynq"
)

// Task types processed by cmd/worker.
const (
	TypeTrackCheckout     = "checkout:track"
	TypeOrderConfirmation = "checkout:order_confirmation"
	TypeSweepPending      = "checkout:sweep_pending"
)

// Queue names.
const (
	QueueDefault  = "default"
	QueueCheckout = "checkout"
)

// Enqueuer is the client-side port for handing tasks to the worker.
// Services depend on this interface so tests can capture enqueued tasks.
type Enqueuer interface {
	Enqueue(task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// NewClient builds the asynq client against the shared Redis broker.
func NewClient(redisAddr, password string, db int) *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     redisAddr,
		Password: password,
		DB:       db,
	})
}
