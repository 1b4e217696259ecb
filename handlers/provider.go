package handlers

import (
	"net/http"
	"strconv"
	"time"

	"localserve/models"
	"localserve/services/booking"
	"localserve/services/earnings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ProviderHandler serves the provider registry, dashboard and settings
// endpoints.
type ProviderHandler struct {
	Store  *booking.Store
	Logger *zap.Logger
}

// NewProviderHandler creates a ProviderHandler.
func NewProviderHandler(store *booking.Store, logger *zap.Logger) *ProviderHandler {
	return &ProviderHandler{Store: store, Logger: logger}
}

// ListProviders handles GET /api/providers.
func (h *ProviderHandler) ListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.Providers())
}

// GetProvider handles GET /api/provider/:id.
func (h *ProviderHandler) GetProvider(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid provider id"})
		return
	}
	detail, ok := h.Store.ProviderDetail(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Provider not found"})
		return
	}
	c.JSON(http.StatusOK, detail)
}

// PendingRequests handles GET /api/provider/requests.
func (h *ProviderHandler) PendingRequests(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.PendingRequests())
}

// Earnings handles GET /api/provider/earnings.
func (h *ProviderHandler) Earnings(c *gin.Context) {
	period := c.DefaultQuery("period", earnings.PeriodWeekly)
	report := earnings.Report(h.Store.EarningsHistory(), period, time.Now())
	c.JSON(http.StatusOK, report)
}

// Stats handles GET /api/provider/stats.
func (h *ProviderHandler) Stats(c *gin.Context) {
	providerID := intQuery(c, "provider_id", 1)
	c.JSON(http.StatusOK, h.Store.Stats(providerID))
}

// GetSchedule handles GET /api/provider/schedule.
func (h *ProviderHandler) GetSchedule(c *gin.Context) {
	providerID := intQuery(c, "provider_id", 1)
	c.JSON(http.StatusOK, h.Store.Schedule(providerID))
}

// SetSchedule handles POST /api/provider/schedule.
func (h *ProviderHandler) SetSchedule(c *gin.Context) {
	providerID := intQuery(c, "provider_id", 1)

	var sched models.Schedule
	if err := c.ShouldBindJSON(&sched); err != nil {
		h.Logger.Warn("Invalid schedule payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Store.SetSchedule(providerID, sched)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Schedule updated"})
}

// GetProfile handles GET /api/provider/profile.
func (h *ProviderHandler) GetProfile(c *gin.Context) {
	providerID := intQuery(c, "provider_id", 1)
	profile, ok := h.Store.ProviderProfile(providerID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfile handles PUT /api/provider/profile.
func (h *ProviderHandler) UpdateProfile(c *gin.Context) {
	providerID := intQuery(c, "provider_id", 1)

	var update models.ProviderUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		h.Logger.Warn("Invalid provider profile payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Store.UpdateProviderProfile(providerID, update)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Profile updated successfully"})
}

func intQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}
