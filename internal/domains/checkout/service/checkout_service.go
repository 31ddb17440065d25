package service

import (
	"context"
	"fmt"
	"time"

	cartmodel "storefront-backend/internal/domains/cart/model"
	cartstore "storefront-backend/internal/domains/cart/store"
	"storefront-backend/internal/domains/checkout/backend"
	"storefront-backend/internal/domains/checkout/gateway/esewa"
	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/internal/domains/checkout/store"
	"storefront-backend/internal/infrastructure/queue"
	"storefront-backend/internal/shared/utils"
	"storefront-backend/pkg/logger"

	"github.com/hibiken/asynq"
	"github.com/shopspring/decimal"
)

// CheckoutService drives the handoff to the redirect payment gateway.
//
// The one hard rule: the live cart is cleared only after the backend
// confirms order creation. Every other path (initiate, redirect,
// decode failure, verify failure, gateway failure) leaves it intact.
type CheckoutService struct {
	cart     *cartstore.Store
	pending  *store.PendingStore
	backend  backend.Client
	gateway  esewa.Config
	enqueuer queue.Enqueuer
}

func NewCheckoutService(
	cart *cartstore.Store,
	pending *store.PendingStore,
	backendClient backend.Client,
	gateway esewa.Config,
	enqueuer queue.Enqueuer,
) ServiceInterface {
	return &CheckoutService{
		cart:     cart,
		pending:  pending,
		backend:  backendClient,
		gateway:  gateway,
		enqueuer: enqueuer,
	}
}

func (s *CheckoutService) Initiate(ctx context.Context, owner, sessionToken string) (*model.InitiateResponse, error) {
	// Step 1: Load the cart; an empty cart cannot be checked out
	lines, err := s.cart.Load(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(lines) == 0 {
		return nil, model.ErrEmptyCart
	}

	total := cartmodel.TotalPrice(lines)
	itemCount := cartmodel.TotalItems(lines)

	// Step 2: Request a payment session; line items are advisory, the
	// backend reprices from its own catalog
	result, err := s.backend.InitiatePayment(ctx, sessionToken, lines)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrBackend, err)
	}

	// Step 3: Snapshot the pending checkout. The reference may be empty
	// when the backend omits it; the success callback reconciles it.
	p := &model.PendingCheckout{
		Owner:          owner,
		TransactionRef: result.TransactionRef,
		State:          model.StateRedirected,
		Lines:          lines,
		TotalAmount:    total,
		ItemCount:      itemCount,
		CreatedAt:      time.Now(),
	}
	if err := s.pending.Save(ctx, p); err != nil {
		return nil, err
	}

	// Step 4: Fire-and-forget in-flight signal; losing it never blocks
	// the handoff
	s.track(owner, result.TransactionRef, total, itemCount)

	logger.Info("Checkout initiated", map[string]interface{}{
		"owner":           owner,
		"transaction_ref": result.TransactionRef,
		"total":           total.String(),
		"item_count":      itemCount,
	})

	return &model.InitiateResponse{
		PaymentURL:     result.PaymentURL,
		TransactionRef: result.TransactionRef,
		TotalAmount:    total,
		ItemCount:      itemCount,
	}, nil
}

func (s *CheckoutService) HandleSuccessReturn(ctx context.Context, owner, sessionToken, data string) (*model.SuccessReturnResponse, error) {
	// Step 1: Decode the callback. A decode failure says nothing about
	// the payment outcome, so nothing is mutated.
	payload, err := esewa.DecodeCallback(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidCallback, err)
	}

	// Step 2: Verify the signature when a secret is configured.
	// Treated like a decode failure: retryable, nothing mutated.
	if s.gateway.VerifiesSignatures() {
		if err := esewa.VerifySignature(payload, s.gateway.SecretKey); err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrBadSignature, err)
		}
	}

	// Step 3: Reconcile the pending record with the callback reference
	if p, err := s.pending.Load(ctx, owner); err == nil {
		if p.TransactionRef == "" {
			p.TransactionRef = payload.TransactionUUID
		}
		p.State = model.StateReturnedSuccess
		if err := s.pending.Save(ctx, p); err != nil {
			logger.Warn("failed to update pending checkout state", map[string]interface{}{
				"owner": owner, "error": err.Error(),
			})
		}
	}

	// Step 4: Only a COMPLETE gateway status triggers confirmation
	if payload.Status != esewa.StatusComplete {
		return &model.SuccessReturnResponse{
			TransactionRef: payload.TransactionUUID,
			Status:         payload.Status,
			State:          model.StateReturnedSuccess,
			OrderCreated:   false,
		}, nil
	}

	return s.confirmAndFinalize(ctx, owner, sessionToken, payload.TransactionUUID)
}

func (s *CheckoutService) HandleFailureReturn(ctx context.Context, owner, transactionRef, status, errorMessage string) (*model.FailureReturnResponse, error) {
	// The reference is terminal; a retry means a fresh initiate.
	// The cart itself is untouched.
	if err := s.pending.Delete(ctx, owner); err != nil {
		logger.Warn("failed to discard pending checkout", map[string]interface{}{
			"owner": owner, "error": err.Error(),
		})
	}

	logger.Info("Checkout failed at gateway", map[string]interface{}{
		"owner":           owner,
		"transaction_ref": transactionRef,
		"status":          status,
		"error_message":   errorMessage,
	})

	return &model.FailureReturnResponse{
		TransactionRef: transactionRef,
		Status:         status,
		ErrorMessage:   errorMessage,
		State:          model.StateReturnedFailure,
	}, nil
}

func (s *CheckoutService) CheckStatus(ctx context.Context, owner, sessionToken, transactionRef string, amount decimal.Decimal) (*model.StatusResponse, error) {
	// Fall back to the pending snapshot's amount when the caller
	// doesn't supply one.
	if amount.IsZero() {
		if p, err := s.pending.Load(ctx, owner); err == nil && p.TransactionRef == transactionRef {
			amount = p.TotalAmount
		}
	}

	result, err := s.backend.CheckStatus(ctx, sessionToken, transactionRef, amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrBackend, err)
	}

	return &model.StatusResponse{
		TransactionRef: transactionRef,
		Status:         result.Status,
		RefID:          result.RefID,
	}, nil
}

func (s *CheckoutService) Confirm(ctx context.Context, owner, sessionToken, transactionRef string) (*model.SuccessReturnResponse, error) {
	// Re-verify before confirming when the pending snapshot gives us
	// the amount to check against.
	if p, err := s.pending.Load(ctx, owner); err == nil && p.TransactionRef == transactionRef {
		status, err := s.backend.CheckStatus(ctx, sessionToken, transactionRef, p.TotalAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", model.ErrBackend, err)
		}
		if status.Status != model.PaymentStatusComplete {
			return nil, fmt.Errorf("%w: status is %s", model.ErrNotPaid, status.Status)
		}
	}

	return s.confirmAndFinalize(ctx, owner, sessionToken, transactionRef)
}

func (s *CheckoutService) GetPending(ctx context.Context, owner string) (*model.PendingResponse, error) {
	p, err := s.pending.Load(ctx, owner)
	if err != nil {
		return nil, err
	}

	return &model.PendingResponse{
		TransactionRef: p.TransactionRef,
		State:          p.State,
		TotalAmount:    p.TotalAmount,
		ItemCount:      p.ItemCount,
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
	}, nil
}

// confirmAndFinalize asks the backend to create the order and, only on
// success, clears the cart and discards the pending record. This is the
// single destructive point of the whole handoff.
func (s *CheckoutService) confirmAndFinalize(ctx context.Context, owner, sessionToken, transactionRef string) (*model.SuccessReturnResponse, error) {
	result, err := s.backend.ConfirmPayment(ctx, sessionToken, transactionRef)
	if err != nil {
		// Cart and pending record stay intact; the shopper can retry
		// via POST /checkout/confirm or GET /checkout/status.
		return nil, fmt.Errorf("%w: %v", model.ErrBackend, err)
	}

	var total decimal.Decimal
	var itemCount int
	if p, perr := s.pending.Load(ctx, owner); perr == nil {
		total = p.TotalAmount
		itemCount = p.ItemCount
	}

	if err := s.cart.Clear(ctx, owner); err != nil {
		// The order exists; a stale cart is recoverable, losing the
		// order response is not.
		logger.Error("failed to clear cart after order creation", err)
	}
	if err := s.pending.Delete(ctx, owner); err != nil {
		logger.Warn("failed to discard pending checkout", map[string]interface{}{
			"owner": owner, "error": err.Error(),
		})
	}

	s.enqueueOrderConfirmation(owner, transactionRef, total, itemCount)

	logger.Info("Order created", map[string]interface{}{
		"owner":           owner,
		"transaction_ref": transactionRef,
	})

	return &model.SuccessReturnResponse{
		TransactionRef: transactionRef,
		Status:         model.PaymentStatusComplete,
		State:          model.StateOrderCreated,
		OrderCreated:   true,
		Order:          result.Order,
	}, nil
}

func (s *CheckoutService) track(owner, transactionRef string, total decimal.Decimal, itemCount int) {
	if s.enqueuer == nil {
		return
	}

	task, err := utils.NewTask(queue.TypeTrackCheckout, model.TrackCheckoutPayload{
		Owner:          owner,
		TransactionRef: transactionRef,
		TotalAmount:    total,
		ItemCount:      itemCount,
	})
	if err != nil {
		logger.Warn("failed to build track task", map[string]interface{}{"error": err.Error()})
		return
	}

	if _, err := s.enqueuer.Enqueue(task, asynq.Queue(queue.QueueDefault), asynq.MaxRetry(3)); err != nil {
		logger.Warn("failed to enqueue track task", map[string]interface{}{"error": err.Error()})
	}
}

func (s *CheckoutService) enqueueOrderConfirmation(owner, transactionRef string, total decimal.Decimal, itemCount int) {
	if s.enqueuer == nil {
		return
	}

	task, err := utils.NewTask(queue.TypeOrderConfirmation, model.OrderConfirmationPayload{
		Owner:          owner,
		TransactionRef: transactionRef,
		TotalAmount:    total,
		ItemCount:      itemCount,
	})
	if err != nil {
		logger.Warn("failed to build order confirmation task", map[string]interface{}{"error": err.Error()})
		return
	}

	if _, err := s.enqueuer.Enqueue(task, asynq.Queue(queue.QueueCheckout), asynq.MaxRetry(5)); err != nil {
		logger.Warn("failed to enqueue order confirmation task", map[string]interface{}{"error": err.Error()})
	}
}
