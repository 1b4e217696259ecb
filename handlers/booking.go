package handlers

import (
	"net/http"
	"strconv"

	"localserve/models"
	"localserve/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the booking-request lifecycle endpoints.
type BookingHandler struct {
	Store  *booking.Store
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(store *booking.Store, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Store: store, Logger: logger}
}

// CreateRequest handles POST /api/booking/request.
func (h *BookingHandler) CreateRequest(c *gin.Context) {
	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.Logger.Warn("Invalid booking request payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req := h.Store.Create(input)
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Booking request sent to provider",
		"request_id": req.ID,
	})
}

// AcceptRequest handles POST /api/provider/accept-request.
func (h *BookingHandler) AcceptRequest(c *gin.Context) {
	var input struct {
		RequestID    int            `json:"request_id"`
		ProviderData map[string]any `json:"provider_data"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Store.Accept(input.RequestID, input.ProviderData)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Request accepted"})
}

// RejectRequest handles POST /api/provider/reject-request.
func (h *BookingHandler) RejectRequest(c *gin.Context) {
	var input struct {
		RequestID int `json:"request_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.Store.Reject(input.RequestID)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Request rejected"})
}

// CheckStatus handles GET /api/consumer/check-status/:id.
func (h *BookingHandler) CheckStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	view, ok := h.Store.StatusOf(id)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"status": "not_found"})
		return
	}
	c.JSON(http.StatusOK, view)
}

// UpdateJobStatus handles POST /api/job/update-status.
func (h *BookingHandler) UpdateJobStatus(c *gin.Context) {
	var input struct {
		RequestID int    `json:"request_id"`
		Status    string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Store.UpdateJobStatus(input.RequestID, input.Status) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Request not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Job status updated to " + input.Status,
	})
}

// Reschedule handles POST /api/booking/reschedule.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	var input struct {
		RequestID int    `json:"request_id"`
		NewDate   string `json:"new_date"`
		NewTime   string `json:"new_time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Store.Reschedule(input.RequestID, input.NewDate, input.NewTime) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Cannot reschedule this booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking rescheduled successfully"})
}

// Cancel handles POST /api/booking/cancel.
func (h *BookingHandler) Cancel(c *gin.Context) {
	var input struct {
		RequestID int    `json:"request_id"`
		Reason    string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Store.Cancel(input.RequestID, input.Reason) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Cannot cancel this booking"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking cancelled"})
}

// MyBookings handles GET /api/consumer/my-bookings.
func (h *BookingHandler) MyBookings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Store.ConsumerBookings())
}

// SubmitRating handles POST /api/rating/submit.
func (h *BookingHandler) SubmitRating(c *gin.Context) {
	var input struct {
		RequestID int    `json:"request_id"`
		Rating    int    `json:"rating"`
		Review    string `json:"review"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !h.Store.Rate(input.RequestID, input.Rating, input.Review) {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Request not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Rating submitted successfully"})
}
