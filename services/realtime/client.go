package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 54 * time.Second
	sendBuffer = 256
)

// Client is one WebSocket connection attached to the hub.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewClient wraps an upgraded connection and registers it with the hub.
// Callers must start WritePump and ReadPump on their own goroutines.
func NewClient(hub *Hub, conn *websocket.Conn) *Client {
	client := &Client{
		hub:  hub,
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}
	hub.register <- client
	return client
}

type joinProviderPayload struct {
	ProviderID int `json:"provider_id"`
}

type joinConsumerPayload struct {
	ConsumerID string `json:"consumer_id"`
}

type joinChatPayload struct {
	RequestID int `json:"request_id"`
}

type sendMessagePayload struct {
	RequestID int    `json:"request_id"`
	Sender    string `json:"sender"`
	Message   string `json:"message"`
}

// ReadPump pumps client events from the connection to the hub.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.logger.Warn("WebSocket read error", zap.Error(err))
			}
			break
		}

		var evt Event
		if err := json.Unmarshal(message, &evt); err != nil {
			c.hub.logger.Warn("Malformed client event", zap.Error(err))
			continue
		}
		c.handleEvent(evt)
	}
}

func (c *Client) handleEvent(evt Event) {
	switch evt.Event {
	case "join_provider":
		var p joinProviderPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil {
			return
		}
		c.hub.JoinRoom(ProviderRoom(p.ProviderID), c)
		c.ack("Joined provider room %d", p.ProviderID)

	case "join_consumer":
		var p joinConsumerPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil {
			return
		}
		c.hub.JoinRoom(ConsumerRoom(p.ConsumerID), c)
		c.ack("Joined consumer room %s", p.ConsumerID)

	case "join_chat":
		var p joinChatPayload
		if err := json.Unmarshal(evt.Data, &p); err != nil {
			return
		}
		c.hub.JoinRoom(ChatRoom(p.RequestID), c)
		c.ack("Joined chat room %d", p.RequestID)

	case "send_message":
		var p sendMessagePayload
		if err := json.Unmarshal(evt.Data, &p); err != nil {
			return
		}
		if c.hub.Chat != nil {
			// Persists the message and broadcasts new_message to the chat room.
			c.hub.Chat.SendMessage(p.RequestID, p.Sender, p.Message)
		}

	default:
		c.hub.logger.Debug("Ignoring unknown client event", zap.String("event", evt.Event))
	}
}

func (c *Client) ack(format string, args ...any) {
	payload, err := json.Marshal(map[string]string{
		"message": fmt.Sprintf(format, args...),
	})
	if err != nil {
		return
	}
	msg, err := json.Marshal(Event{Event: "joined", Data: payload})
	if err != nil {
		return
	}
	select {
	case c.send <- msg:
	default:
	}
}

// WritePump pumps hub messages to the connection and keeps it alive with
// pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
