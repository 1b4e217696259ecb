package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localserve/config"
	"localserve/handlers"
	"localserve/middleware"
	"localserve/routes"
	"localserve/services/booking"
	"localserve/services/matching"
	"localserve/services/realtime"
	"localserve/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Realtime hub.
	hub := realtime.NewHub(logger)
	go hub.Run()

	// Marketplace state. All mutable state lives in this store; nothing
	// survives a restart.
	store := booking.NewStore(booking.WithNotifier(hub))
	hub.Chat = store

	matchingService := &matching.DefaultMatchingService{
		CacheClient: utils.GetCacheClient(),
		CacheTTL:    30 * time.Second,
	}

	searchHandler := handlers.NewSearchHandler(matchingService, store)
	bookingHandler := handlers.NewBookingHandler(store, logger)
	providerHandler := handlers.NewProviderHandler(store, logger)
	paymentHandler := handlers.NewPaymentHandler(store, logger)
	chatHandler := handlers.NewChatHandler(store)
	wsHandler := handlers.NewWSHandler(hub, logger)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Search:          searchHandler.Search,
		ListProviders:   providerHandler.ListProviders,
		GetProvider:     providerHandler.GetProvider,
		PendingRequests: providerHandler.PendingRequests,

		CreateRequest:   bookingHandler.CreateRequest,
		AcceptRequest:   bookingHandler.AcceptRequest,
		RejectRequest:   bookingHandler.RejectRequest,
		CheckStatus:     bookingHandler.CheckStatus,
		UpdateJobStatus: bookingHandler.UpdateJobStatus,
		Reschedule:      bookingHandler.Reschedule,
		Cancel:          bookingHandler.Cancel,
		MyBookings:      bookingHandler.MyBookings,
		SubmitRating:    bookingHandler.SubmitRating,

		ProcessPayment: paymentHandler.ProcessPayment,
		GetReceipt:     paymentHandler.GetReceipt,
		GetReceiptPDF:  paymentHandler.GetReceiptPDF,

		SendMessage:  chatHandler.SendMessage,
		ListMessages: chatHandler.ListMessages,

		Earnings:      providerHandler.Earnings,
		Stats:         providerHandler.Stats,
		GetSchedule:   providerHandler.GetSchedule,
		SetSchedule:   providerHandler.SetSchedule,
		GetProfile:    providerHandler.GetProfile,
		UpdateProfile: providerHandler.UpdateProfile,

		WebSocket: wsHandler.Connect,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting LocalServe server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("forced shutdown: %v", err)
	}
	logger.Info("Server exited")
}
