package handlers

import (
	"net/http"

	"localserve/services/realtime"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WSHandler upgrades connections and attaches them to the realtime hub.
type WSHandler struct {
	Hub    *realtime.Hub
	Logger *zap.Logger
}

// NewWSHandler creates a WSHandler.
func NewWSHandler(hub *realtime.Hub, logger *zap.Logger) *WSHandler {
	return &WSHandler{Hub: hub, Logger: logger}
}

// Connect handles GET /ws.
func (h *WSHandler) Connect(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Logger.Warn("WebSocket upgrade failed", zap.Error(err))
		return
	}

	client := realtime.NewClient(h.Hub, conn)
	go client.WritePump()
	go client.ReadPump()
}
