package main

import (
	"github.com/hibiken/asynq"

	checkoutJob "storefront-backend/internal/domains/checkout/job"
	"storefront-backend/internal/infrastructure/queue"
	"storefront-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	trackCheckout     *checkoutJob.TrackCheckoutHandler
	orderConfirmation *checkoutJob.OrderConfirmationHandler
	sweepPending      *checkoutJob.SweepPendingHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container) *HandlerRegistry {
	return &HandlerRegistry{
		trackCheckout:     checkoutJob.NewTrackCheckoutHandler(),
		orderConfirmation: checkoutJob.NewOrderConfirmationHandler(),
		sweepPending: checkoutJob.NewSweepPendingHandler(
			c.DBStore,
			c.Config.Checkout.PendingTTL,
		),
	}
}

// RegisterHandlers wires every task type to its handler
func (r *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	mux.Handle(queue.TypeTrackCheckout, r.trackCheckout)
	mux.Handle(queue.TypeOrderConfirmation, r.orderConfirmation)
	mux.Handle(queue.TypeSweepPending, r.sweepPending)
}
