package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"localserve/config"
	"localserve/database"
	profileRepo "localserve/database/repository/profile"
	"localserve/handlers"
	"localserve/middleware"
	"localserve/routes"
	"localserve/services/profile"
	"localserve/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories and services.
	repo := profileRepo.NewMongoProfileRepo()
	statusRepo := profileRepo.NewMongoStatusRepo()
	profileService := &profile.DefaultProfileService{Repo: repo}

	profileHandler := handlers.NewProfileHandler(profileService, statusRepo, logger)
	routes.RegisterProfileRoutes(router, profileHandler)

	// Start the HTTP server.
	port := config.AppConfig.ProfileAPIPort
	if port == "" {
		port = "8001"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting Profile Plus API on %s...", srv.Addr)
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
	database.CloseDB(ctx)
	logger.Info("Server exited")
}
