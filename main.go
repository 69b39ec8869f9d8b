// File: voyago/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"voyago/config"
	"voyago/cron"
	"voyago/database"
	"voyago/database/repository"
	"voyago/handlers"
	"voyago/middleware"
	"voyago/routes"
	"voyago/services/completion"
	"voyago/services/credential"
	"voyago/services/search"
	"voyago/services/trip"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	bookingRepo := repository.NewMongoBookingRepo()

	// services.
	completionClient := completion.NewHTTPClient(
		config.AppConfig.CompletionAPIURL,
		config.AppConfig.CompletionModel,
		time.Duration(config.AppConfig.CompletionTimeoutSecs)*time.Second,
		logger,
	)

	credentialService := &credential.DefaultCredentialService{
		Cache:      utils.GetAuthCacheClient(),
		Completion: completionClient,
		CentralKey: config.AppConfig.CentralCompletionKey,
		Logger:     logger,
	}

	searchService := &search.DefaultSearchService{
		Credentials: credentialService,
		Completion:  completionClient,
		Cache:       utils.GetCacheClient(),
		Logger:      logger,
	}

	taskClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer taskClient.Close()

	tripService := &trip.DefaultTripSessionService{
		Store:      trip.NewRedisSessionStore(utils.GetCacheClient()),
		Bookings:   bookingRepo,
		TaskClient: taskClient,
		StripeKey:  config.AppConfig.StripeKey,
		BookingFee: config.AppConfig.BookingFee,
		Logger:     logger,
	}

	cron.InitReminderWorker(bookingRepo)

	// Assemble the handler bundle.
	handlerBundle := &routes.HandlerBundle{
		Search:     handlers.NewSearchHandler(searchService),
		Trip:       handlers.NewTripHandler(tripService),
		Credential: handlers.NewCredentialHandler(credentialService),
		Booking:    handlers.NewBookingHandler(bookingRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
