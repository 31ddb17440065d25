package handler

import (
	"errors"
	"net/http"

	"storefront-backend/internal/domains/cart/model"
	"storefront-backend/internal/domains/cart/service"
	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the cart
type Handler struct {
	service service.ServiceInterface
}

func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// ===================================
// GET /api/v1/cart
// ===================================

func (h *Handler) GetCart(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	cart, err := h.service.GetCart(c.Request.Context(), userID.String())
	if err != nil {
		response.InternalServerError(c, "Failed to load cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ===================================
// POST /api/v1/cart/items
// ===================================

func (h *Handler) AddItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req model.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	cart, err := h.service.AddItem(c.Request.Context(), userID.String(), &req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidQuantity) {
			response.UnprocessableEntity(c, "Quantity must be at least 1")
			return
		}
		response.InternalServerError(c, "Failed to add item to cart")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ===================================
// PUT /api/v1/cart/items/:lineId
// ===================================

func (h *Handler) UpdateQuantity(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	lineID := c.Param("lineId")
	if lineID == "" {
		response.BadRequest(c, "Line id is required")
		return
	}

	var req model.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.UnprocessableEntity(c, err.Error())
		return
	}

	cart, err := h.service.UpdateQuantity(c.Request.Context(), userID.String(), lineID, req.Quantity)
	if err != nil {
		if errors.Is(err, model.ErrLineNotFound) {
			response.NotFound(c, "Cart line not found")
			return
		}
		response.InternalServerError(c, "Failed to update quantity")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ===================================
// DELETE /api/v1/cart/items/:lineId
// ===================================

func (h *Handler) RemoveItem(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	lineID := c.Param("lineId")
	if lineID == "" {
		response.BadRequest(c, "Line id is required")
		return
	}

	// Removing an absent line is a no-op, so this never 404s.
	cart, err := h.service.RemoveItem(c.Request.Context(), userID.String(), lineID)
	if err != nil {
		response.InternalServerError(c, "Failed to remove item")
		return
	}

	response.Success(c, http.StatusOK, cart)
}

// ===================================
// DELETE /api/v1/cart
// ===================================

func (h *Handler) ClearCart(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	if err := h.service.ClearCart(c.Request.Context(), userID.String()); err != nil {
		response.InternalServerError(c, "Failed to clear cart")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"cleared": true})
}

// ===================================
// GET /api/v1/cart/quantity?product_id=&seller_id=
// ===================================

func (h *Handler) GetItemQuantity(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	productID := c.Query("product_id")
	if productID == "" {
		response.BadRequest(c, "product_id is required")
		return
	}
	sellerID := c.Query("seller_id")

	result, err := h.service.GetItemQuantity(c.Request.Context(), userID.String(), productID, sellerID)
	if err != nil {
		response.InternalServerError(c, "Failed to read cart quantity")
		return
	}

	response.Success(c, http.StatusOK, result)
}

// ===================================
// GET /api/v1/cart/sellers
// ===================================

func (h *Handler) GetItemsBySeller(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	groups, err := h.service.GetItemsBySeller(c.Request.Context(), userID.String())
	if err != nil {
		response.InternalServerError(c, "Failed to group cart by seller")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sellers": groups})
}

// ===================================
// GET /api/v1/cart/sellers/:sellerId/total
// ===================================

func (h *Handler) GetTotalPriceBySeller(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	sellerID := c.Param("sellerId")
	if sellerID == "" {
		response.BadRequest(c, "Seller id is required")
		return
	}

	group, err := h.service.GetTotalPriceBySeller(c.Request.Context(), userID.String(), sellerID)
	if err != nil {
		response.InternalServerError(c, "Failed to compute seller total")
		return
	}

	response.Success(c, http.StatusOK, group)
}
