package job

import (
	"context"
	"time"

	"storefront-backend/internal/domains/checkout/store"
	"storefront-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// StaleDeleter removes records under a key prefix older than a cutoff.
// Satisfied by the Postgres kv store.
type StaleDeleter interface {
	DeleteStale(ctx context.Context, prefix string, olderThan time.Duration) (int64, error)
}

// SweepPendingHandler deletes abandoned pending-checkout records.
// Runs hourly from the scheduler; the read path already ignores stale
// records, this just reclaims the rows.
type SweepPendingHandler struct {
	deleter StaleDeleter
	maxAge  time.Duration
}

func NewSweepPendingHandler(deleter StaleDeleter, maxAge time.Duration) *SweepPendingHandler {
	return &SweepPendingHandler{deleter: deleter, maxAge: maxAge}
}

func (h *SweepPendingHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	deleted, err := h.deleter.DeleteStale(ctx, store.PendingKeyPrefix, h.maxAge)
	if err != nil {
		return err
	}

	if deleted > 0 {
		logger.Info("Swept abandoned pending checkouts", map[string]interface{}{
			"deleted": deleted,
			"max_age": h.maxAge.String(),
		})
	}

	return nil
}
