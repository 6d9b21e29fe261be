package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"github.com/Alast0rRL/testtaxi/internal/handler"
	"github.com/Alast0rRL/testtaxi/internal/middleware"
)

// RiderRouterDeps contains dependencies for the rider-side router.
type RiderRouterDeps struct {
	OrderHandler   *handler.OrderHandler
	SupportHandler *handler.SupportHandler
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
}

// DriverRouterDeps contains dependencies for the driver-side router.
type DriverRouterDeps struct {
	DriverHandler *handler.DriverHandler
	RedisClient   *redis.Client
	NewRelicApp   *newrelic.Application
}

// NewRiderRouter creates the Gin router served by the rider bot process.
func NewRiderRouter(deps RiderRouterDeps) *gin.Engine {
	router := newBaseRouter(deps.RedisClient, deps.NewRelicApp)

	v1 := router.Group("/v1")
	{
		orders := v1.Group("/orders")
		{
			orders.POST("", deps.OrderHandler.CreateOrder)
			orders.GET("", deps.OrderHandler.ListRiderOrders)
			orders.GET("/:id", deps.OrderHandler.GetOrder)
		}

		v1.POST("/support", deps.SupportHandler.Forward)
	}

	return router
}

// NewDriverRouter creates the Gin router served by the driver bot process.
func NewDriverRouter(deps DriverRouterDeps) *gin.Engine {
	router := newBaseRouter(deps.RedisClient, deps.NewRelicApp)

	v1 := router.Group("/v1")
	{
		drivers := v1.Group("/drivers")
		{
			drivers.GET("/session", deps.DriverHandler.Session)
			drivers.POST("/register", deps.DriverHandler.Register)
			drivers.POST("/rebind", deps.DriverHandler.Rebind)
		}

		orders := v1.Group("/orders")
		{
			orders.GET("/waiting", deps.DriverHandler.ListWaiting)
			orders.POST("/:id/claim", deps.DriverHandler.Claim)
		}
	}

	return router
}

func newBaseRouter(redisClient *redis.Client, nrApp *newrelic.Application) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	if nrApp != nil {
		router.Use(nrgin.Middleware(nrApp))
	}

	if redisClient != nil {
		router.Use(middleware.Idempotency(redisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
