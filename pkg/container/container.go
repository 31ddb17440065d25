package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"storefront-backend/internal/config"
	"storefront-backend/internal/infrastructure/cache"
	"storefront-backend/internal/infrastructure/database"
	"storefront-backend/internal/infrastructure/queue"
	"storefront-backend/pkg/jwt"

	cartHandler "storefront-backend/internal/domains/cart/handler"
	cartService "storefront-backend/internal/domains/cart/service"
	cartStore "storefront-backend/internal/domains/cart/store"
	checkoutBackend "storefront-backend/internal/domains/checkout/backend"
	"storefront-backend/internal/domains/checkout/gateway/esewa"
	checkoutHandler "storefront-backend/internal/domains/checkout/handler"
	checkoutService "storefront-backend/internal/domains/checkout/service"
	checkoutStore "storefront-backend/internal/domains/checkout/store"

	"github.com/hibiken/asynq"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds ALL dependencies of the application.
// It is the root of the dependency graph.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================
	// Shared across all domains. Lifecycle: singleton.

	Config      *config.Config
	DB          *database.PostgresDB
	Redis       *cache.RedisClient
	AsynqClient *asynq.Client
	JWTManager  *jwt.Manager

	// ========================================
	// STORE LAYER (DATA ACCESS)
	// ========================================

	DBStore      *database.KVStore // durable blob store (Postgres)
	CacheStore   *cache.KVStore    // best-effort read cache (Redis)
	CartStore    *cartStore.Store
	PendingStore *checkoutStore.PendingStore

	// ========================================
	// COLLABORATORS
	// ========================================

	BackendClient checkoutBackend.Client

	// ========================================
	// SERVICE LAYER (BUSINESS LOGIC)
	// ========================================

	CartService     cartService.ServiceInterface
	CheckoutService checkoutService.ServiceInterface

	// ========================================
	// HANDLER LAYER (HTTP)
	// ========================================

	CartHandler     *cartHandler.Handler
	CheckoutHandler *checkoutHandler.Handler
}

// NewContainer builds and initializes the whole dependency graph.
//
// Initialization order matters:
// 1. Config (depends on nothing)
// 2. Infrastructure (DB, Redis, asynq client) - depends on Config
// 3. Stores - depend on infrastructure
// 4. Services - depend on stores and collaborators
// 5. Handlers - depend on services
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	log.Println("📋 Loading configuration...")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE DATABASE
	// ========================================
	log.Println("🗄️  Connecting to PostgreSQL...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c.DB = database.NewPostgresDB(cfg.Database)
	if err := c.DB.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("✅ Database connected")

	// ========================================
	// STEP 3: INITIALIZE REDIS
	// ========================================
	log.Println("📦 Connecting to Redis...")

	c.Redis = cache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := c.Redis.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	log.Println("✅ Redis connected")

	c.AsynqClient = queue.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	c.JWTManager = jwt.NewManager(cfg.JWT.Secret)

	// ========================================
	// STEP 4: INITIALIZE STORES
	// ========================================
	c.DBStore = database.NewKVStore(c.DB)
	c.CacheStore = cache.NewKVStore(c.Redis)
	c.CartStore = cartStore.New(c.DBStore, c.CacheStore, cfg.Checkout.CartCacheTTL)
	c.PendingStore = checkoutStore.NewPendingStore(c.DBStore, cfg.Checkout.PendingTTL)

	// ========================================
	// STEP 5: INITIALIZE COLLABORATORS
	// ========================================
	c.BackendClient = checkoutBackend.NewHTTPClient(
		cfg.Backend.BaseURL,
		cfg.Esewa.ProductCode,
		cfg.Backend.Timeout,
	)

	// ========================================
	// STEP 6: INITIALIZE SERVICES
	// ========================================
	c.CartService = cartService.NewCartService(c.CartStore)
	c.CheckoutService = checkoutService.NewCheckoutService(
		c.CartStore,
		c.PendingStore,
		c.BackendClient,
		esewa.Config{
			ProductCode: cfg.Esewa.ProductCode,
			SecretKey:   cfg.Esewa.SecretKey,
			SuccessURL:  cfg.Esewa.SuccessURL,
			FailureURL:  cfg.Esewa.FailureURL,
		},
		c.AsynqClient,
	)

	// ========================================
	// STEP 7: INITIALIZE HANDLERS
	// ========================================
	c.CartHandler = cartHandler.NewHandler(c.CartService)
	c.CheckoutHandler = checkoutHandler.NewHandler(c.CheckoutService)

	log.Println("✅ DI Container initialized")
	return c, nil
}

// Cleanup releases infrastructure resources. Call on shutdown.
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.AsynqClient != nil {
		if err := c.AsynqClient.Close(); err != nil {
			log.Printf("⚠️  Failed to close asynq client: %v", err)
		}
	}
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			log.Printf("⚠️  Failed to close redis: %v", err)
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}

	log.Println("✅ Cleanup complete")
}
