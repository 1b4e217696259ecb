package handlers

import (
	"net/http"
	"strconv"

	"localserve/services/booking"

	"github.com/gin-gonic/gin"
)

// ChatHandler serves the message endpoints.
type ChatHandler struct {
	Store *booking.Store
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(store *booking.Store) *ChatHandler {
	return &ChatHandler{Store: store}
}

// SendMessage handles POST /api/messages/send.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var input struct {
		RequestID int    `json:"request_id"`
		Sender    string `json:"sender"`
		Message   string `json:"message"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := h.Store.SendMessage(input.RequestID, input.Sender, input.Message)
	c.JSON(http.StatusOK, gin.H{"success": true, "message_id": msg.ID})
}

// ListMessages handles GET /api/messages/:id.
func (h *ChatHandler) ListMessages(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request id"})
		return
	}
	c.JSON(http.StatusOK, h.Store.MessagesFor(id))
}
