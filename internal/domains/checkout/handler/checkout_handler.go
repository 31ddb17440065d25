package handler

import (
	"errors"
	"net/http"

	"storefront-backend/internal/domains/checkout/model"
	"storefront-backend/internal/domains/checkout/service"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
	"storefront-backend/internal/shared/utils"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the checkout handoff
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ===================================
// POST /api/v1/checkout/initiate
// ===================================

func (h *Handler) Initiate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.service.Initiate(c.Request.Context(), userID.String(), middleware.SessionToken(c))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrEmptyCart):
			response.UnprocessableEntity(c, "Cart is empty")
		case errors.Is(err, model.ErrBackend):
			response.BadGateway(c, "Payment initiation failed")
		default:
			response.InternalServerError(c, "Failed to initiate checkout")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ===================================
// GET /api/v1/checkout/return/success?data=<base64>
// ===================================

func (h *Handler) SuccessReturn(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.service.HandleSuccessReturn(
		c.Request.Context(), userID.String(), middleware.SessionToken(c), c.Query("data"))
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidCallback), errors.Is(err, model.ErrBadSignature):
			// Retryable: nothing was mutated, the shopper can reload.
			response.UnprocessableEntity(c, err.Error())
		case errors.Is(err, model.ErrBackend):
			response.BadGateway(c, "Order confirmation failed; payment state is unchanged")
		default:
			response.InternalServerError(c, "Failed to process payment return")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ===================================
// GET /api/v1/checkout/return/failure
// ===================================

func (h *Handler) FailureReturn(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.service.HandleFailureReturn(
		c.Request.Context(),
		userID.String(),
		c.Query("transaction_uuid"),
		c.Query("status"),
		c.Query("errorMessage"),
	)
	if err != nil {
		response.InternalServerError(c, "Failed to record payment failure")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ===================================
// GET /api/v1/checkout/status?transaction_ref=&amount=
// ===================================

func (h *Handler) CheckStatus(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	transactionRef := c.Query("transaction_ref")
	if transactionRef == "" {
		response.BadRequest(c, "transaction_ref is required")
		return
	}

	amount, err := utils.ParseDecimal(c.Query("amount"))
	if err != nil {
		response.BadRequest(c, "Invalid amount")
		return
	}

	result, err := h.service.CheckStatus(
		c.Request.Context(), userID.String(), middleware.SessionToken(c), transactionRef, amount)
	if err != nil {
		if errors.Is(err, model.ErrBackend) {
			response.BadGateway(c, "Status check failed")
			return
		}
		response.InternalServerError(c, "Failed to check payment status")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ===================================
// POST /api/v1/checkout/confirm
// ===================================

func (h *Handler) Confirm(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	result, err := h.service.Confirm(
		c.Request.Context(), userID.String(), middleware.SessionToken(c), req.TransactionRef)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrNotPaid):
			response.Conflict(c, err.Error())
		case errors.Is(err, model.ErrBackend):
			response.BadGateway(c, "Order confirmation failed")
		default:
			response.InternalServerError(c, "Failed to confirm payment")
		}
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ===================================
// GET /api/v1/checkout/pending
// ===================================

func (h *Handler) GetPending(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.service.GetPending(c.Request.Context(), userID.String())
	if err != nil {
		if errors.Is(err, model.ErrNoPending) || errors.Is(err, model.ErrPendingExpired) {
			response.NotFound(c, "No pending checkout")
			return
		}
		response.InternalServerError(c, "Failed to load pending checkout")
		return
	}

	response.Success(c, http.StatusOK, result)
}
