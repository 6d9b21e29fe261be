package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Alast0rRL/testtaxi/internal/app"
	"github.com/Alast0rRL/testtaxi/internal/config"
	"github.com/Alast0rRL/testtaxi/internal/handler"
	internalRedis "github.com/Alast0rRL/testtaxi/internal/redis"
	"github.com/Alast0rRL/testtaxi/internal/repository/postgres"
	"github.com/Alast0rRL/testtaxi/internal/service"
	"github.com/Alast0rRL/testtaxi/internal/telegram"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic first so the database driver can be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName+"-driver"),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s-driver", cfg.NewRelic.AppName)
		}
	}

	db, err := app.NewDatabase(ctx, cfg.Database, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	log.Println("Connected to PostgreSQL")

	if err := postgres.InitSchema(ctx, db); err != nil {
		log.Fatalf("failed to initialize schema: %v", err)
	}

	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	server := wireServer(db, redisClient, nrApp, cfg)

	go func() {
		log.Printf("Starting driver bot server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(db *sql.DB, redisClient *goredis.Client, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize Redis stores.
	cacheStore := internalRedis.NewCacheStore(redisClient)

	// Initialize repositories.
	orderRepo := postgres.NewOrderRepository(db)
	driverRepo := postgres.NewDriverRepository(db)

	// The driver process holds the rider bot's token: the only cross-process
	// effect of a won claim is one message into the rider's chat.
	riderBot := telegram.New(cfg.Telegram.APIBaseURL, cfg.Telegram.RiderBotToken, cfg.Telegram.NotifyTimeout)

	// Initialize services.
	orderService := service.NewOrderService(orderRepo)
	driverService := service.NewDriverService(driverRepo, cacheStore)
	notifier := service.NewRiderNotifierService(riderBot)
	dispatchService := service.NewDispatchService(orderRepo, driverRepo, notifier)
	dispatchService.SetNotifyTimeout(cfg.Telegram.NotifyTimeout)

	// Initialize handlers.
	driverHandler := handler.NewDriverHandler(driverService, orderService, dispatchService)

	// Create router.
	router := app.NewDriverRouter(app.DriverRouterDeps{
		DriverHandler: driverHandler,
		RedisClient:   redisClient,
		NewRelicApp:   nrApp,
	})

	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
