package routes

import (
	"net/http"
	"strings"
	"time"

	"localserve/config"
	"localserve/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSearchRoutes registers provider discovery endpoints.
func RegisterSearchRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/search", hb.Search)
		api.GET("/providers", hb.ListProviders)
		api.GET("/provider/:id", hb.GetProvider)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/booking/request", hb.CreateRequest)
		api.POST("/booking/reschedule", hb.Reschedule)
		api.POST("/booking/cancel", hb.Cancel)
		api.GET("/consumer/check-status/:id", hb.CheckStatus)
		api.GET("/consumer/my-bookings", hb.MyBookings)
		api.POST("/job/update-status", hb.UpdateJobStatus)
		api.POST("/rating/submit", hb.SubmitRating)
	}
}

// RegisterProviderRoutes registers the provider inbox, dashboard and
// settings endpoints.
func RegisterProviderRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/provider")
	{
		api.GET("/requests", hb.PendingRequests)
		api.POST("/accept-request", hb.AcceptRequest)
		api.POST("/reject-request", hb.RejectRequest)
		api.GET("/earnings", hb.Earnings)
		api.GET("/stats", hb.Stats)
		api.GET("/schedule", hb.GetSchedule)
		api.POST("/schedule", hb.SetSchedule)
		api.GET("/profile", hb.GetProfile)
		api.PUT("/profile", hb.UpdateProfile)
	}
}

// RegisterPaymentRoutes registers payment and receipt endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payment")
	{
		api.POST("/process", hb.ProcessPayment)
		api.GET("/receipt/:id", hb.GetReceipt)
		api.GET("/receipt/:id/pdf", hb.GetReceiptPDF)
	}
}

// RegisterChatRoutes registers message endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.POST("/send", hb.SendMessage)
		api.GET("/:id", hb.ListMessages)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm LocalServe"})
	})
}

// RegisterRoutes centralizes registration of all marketplace endpoints and
// global middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(corsConfig()))

	RegisterHealthRoute(r)
	RegisterSearchRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterProviderRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterChatRoutes(r, hb)

	r.GET("/ws", hb.WebSocket)
}

func corsConfig() cors.Config {
	origins := strings.Split(config.AppConfig.CORSOrigins, ",")
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
