package job

import (
	"context"
	"fmt"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/internal/shared/utils"
	"storefront-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// TrackCheckoutHandler records the in-flight checkout signal.
type TrackCheckoutHandler struct {
	// Add analytics service here if you have one
}

func NewTrackCheckoutHandler() *TrackCheckoutHandler {
	return &TrackCheckoutHandler{}
}

func (h *TrackCheckoutHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.TrackCheckoutPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	logger.Info("Checkout in flight", map[string]interface{}{
		"owner":           payload.Owner,
		"transaction_ref": payload.TransactionRef,
		"total":           payload.TotalAmount.String(),
		"item_count":      payload.ItemCount,
	})

	return nil
}
