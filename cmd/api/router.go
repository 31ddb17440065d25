package main

import (
	"net/http"

	"storefront-backend/internal/shared/middleware"
	"storefront-backend/internal/shared/response"
	"storefront-backend/pkg/container"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health checks (public)
		v1.GET("/health", healthCheckHandler(c))
		v1.GET("/health/ready", readinessHandler(c))

		setupCartRoutes(v1, c)
		setupCheckoutRoutes(v1, c)
	}

	return router
}

// ========================================
// CART ROUTES
// ========================================
func setupCartRoutes(v1 *gin.RouterGroup, c *container.Container) {
	cart := v1.Group("/cart")
	cart.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		cart.GET("", c.CartHandler.GetCart)
		cart.DELETE("", c.CartHandler.ClearCart)
		cart.POST("/items", c.CartHandler.AddItem)
		cart.PUT("/items/:lineId", c.CartHandler.UpdateQuantity)
		cart.DELETE("/items/:lineId", c.CartHandler.RemoveItem)
		cart.GET("/quantity", c.CartHandler.GetItemQuantity)
		cart.GET("/sellers", c.CartHandler.GetItemsBySeller)
		cart.GET("/sellers/:sellerId/total", c.CartHandler.GetTotalPriceBySeller)
	}
}

// ========================================
// CHECKOUT ROUTES
// ========================================
func setupCheckoutRoutes(v1 *gin.RouterGroup, c *container.Container) {
	checkout := v1.Group("/checkout")
	checkout.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		checkout.POST("/initiate", c.CheckoutHandler.Initiate)
		checkout.GET("/return/success", c.CheckoutHandler.SuccessReturn)
		checkout.GET("/return/failure", c.CheckoutHandler.FailureReturn)
		checkout.GET("/status", c.CheckoutHandler.CheckStatus)
		checkout.POST("/confirm", c.CheckoutHandler.Confirm)
		checkout.GET("/pending", c.CheckoutHandler.GetPending)
	}
}

// ========================================
// HEALTH HANDLERS
// ========================================

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		response.Success(ctx, http.StatusOK, gin.H{
			"status":  "ok",
			"name":    c.Config.App.Name,
			"version": c.Config.App.Version,
		})
	}
}

// readinessHandler verifies the backing stores are reachable.
func readinessHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checks := gin.H{"database": "ok", "redis": "ok"}
		healthy := true

		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
		if err := c.Redis.HealthCheck(ctx.Request.Context()); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		}

		if !healthy {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "checks": checks})
			return
		}
		response.Success(ctx, http.StatusOK, checks)
	}
}
