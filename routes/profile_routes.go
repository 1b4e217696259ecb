package routes

import (
	"localserve/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the Profile Plus API under the /api prefix.
func RegisterProfileRoutes(r *gin.Engine, h *handlers.ProfileHandler) {
	r.Use(cors.New(corsConfig()))

	api := r.Group("/api")
	{
		api.GET("/", h.Root)
		api.GET("/health", h.Health)

		api.POST("/status", h.CreateStatusCheck)
		api.GET("/status", h.ListStatusChecks)

		api.POST("/profiles", h.CreateProfile)
		api.GET("/profiles", h.ListProfiles)
		api.GET("/profiles/:id", h.GetProfile)
		api.PUT("/profiles/:id", h.UpdateProfile)
		api.DELETE("/profiles/:id", h.DeleteProfile)
		api.POST("/profiles/:id/image", h.UploadImage)
	}
}
