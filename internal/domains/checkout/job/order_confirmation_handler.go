package job

import (
	"context"
	"fmt"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/internal/shared/utils"
	"storefront-backend/pkg/logger"

	"github.com/hibiken/asynq"
)

// OrderConfirmationHandler runs after the backend reports order
// creation. Customer email delivery is owned by an external service;
// this handler is the hook where that call would go.
type OrderConfirmationHandler struct{}

func NewOrderConfirmationHandler() *OrderConfirmationHandler {
	return &OrderConfirmationHandler{}
}

func (h *OrderConfirmationHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload model.OrderConfirmationPayload
	if err := utils.UnmarshalTask(t, &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	logger.Info("Order confirmation processed", map[string]interface{}{
		"owner":           payload.Owner,
		"transaction_ref": payload.TransactionRef,
		"total":           payload.TotalAmount.String(),
		"item_count":      payload.ItemCount,
	})

	return nil
}
