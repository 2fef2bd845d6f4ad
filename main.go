package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"urbanease/config"
	"urbanease/cron"
	"urbanease/handlers"
	"urbanease/middleware"
	"urbanease/routes"
	"urbanease/services/admin"
	"urbanease/services/booking"
	"urbanease/services/feed"
	"urbanease/services/provider"
	"urbanease/services/user"
	"urbanease/upstream"
	"urbanease/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Upstream client: everything this gateway serves lives behind the
	// marketplace API.
	apiClient := upstream.NewClient(
		config.AppConfig.APIBaseURL,
		upstream.WithTimeout(time.Duration(config.AppConfig.UpstreamTimeoutSec)*time.Second),
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.GeolocationMiddleware())

	// services.
	userService := &user.DefaultUserService{
		API:      apiClient,
		Sessions: user.NewRedisSessionStore(utils.GetSessionCacheClient(), time.Duration(config.AppConfig.SessionTTLMin)*time.Minute),
		Cache:    utils.GetCacheClient(),
	}

	feedService := &feed.DefaultFeedService{
		API:   apiClient,
		Cache: feed.NewRedisListingCache(utils.GetCacheClient(), utils.FeedCacheTTL),
	}

	flowService := &booking.DefaultFlowService{
		API:   apiClient,
		Store: booking.NewRedisSessionStore(utils.GetSessionCacheClient(), time.Duration(config.AppConfig.BookingSessionTTLMin)*time.Minute),
	}
	statusService := &booking.DefaultStatusService{API: apiClient}

	providerService := &provider.DefaultProviderService{
		API:    apiClient,
		Status: statusService,
	}

	adminService := &admin.DefaultAdminService{API: apiClient}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserSvc: userService,

		Auth:     handlers.NewAuthHandler(userService, logger),
		Feed:     handlers.NewFeedHandler(feedService, logger),
		Booking:  handlers.NewBookingHandler(flowService, logger),
		User:     handlers.NewUserHandler(userService, logger),
		Provider: handlers.NewProviderHandler(providerService, logger),
		Admin:    handlers.NewAdminHandler(adminService, logger),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	cron.InitFeedRefreshWorker(feedService)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetSessionCacheClient()},
		config.AppConfig.APIBaseURL,
	)

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
