package handlers

import (
	"net/http"
	"strconv"

	"localserve/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment and receipt endpoints.
type PaymentHandler struct {
	Store  *booking.Store
	Logger *zap.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(store *booking.Store, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Store: store, Logger: logger}
}

// ProcessPayment handles POST /api/payment/process.
func (h *PaymentHandler) ProcessPayment(c *gin.Context) {
	var input struct {
		RequestID int `json:"request_id"`
		Amount    int `json:"amount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	receiptID, ok := h.Store.Pay(input.RequestID, input.Amount)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"success": false, "message": "Request not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    "Payment successful",
		"receipt_id": receiptID,
	})
}

// GetReceipt handles GET /api/payment/receipt/:id.
func (h *PaymentHandler) GetReceipt(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	receipt, ok := h.Store.Receipt(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// GetReceiptPDF handles GET /api/payment/receipt/:id/pdf.
func (h *PaymentHandler) GetReceiptPDF(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}

	pdfData, filename, err := h.Store.ReceiptPDF(id)
	if err != nil {
		h.Logger.Warn("Receipt PDF unavailable", zap.Int("request_id", id), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "Receipt not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"pdf_data": pdfData,
		"filename": filename,
	})
}
