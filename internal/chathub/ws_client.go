package chathub

import (
	"chatterbox/backend/internal/models"
	"encoding/json"
	"log"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 128 * 1024
)

// WebSocketClient implements the chathub.Client interface on top of a
// gorilla/websocket connection.
type WebSocketClient struct {
	SID  string
	User string
	Conn *websocket.Conn
	Hub  *ManagerService
	Send chan models.OutboundEvent
}

func (c *WebSocketClient) SessionID() string { return c.SID }

func (c *WebSocketClient) UserID() string { return c.User }

func (c *WebSocketClient) SetUserID(id string) { c.User = id }

func (c *WebSocketClient) SendChannel() chan<- models.OutboundEvent { return c.Send }

// Run starts the pumps for the WebSocket connection.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the Send channel, which stops the writePump. The readPump
// stops on its own once the connection is closed.
func (c *WebSocketClient) Close() {
	close(c.Send)
}

func (c *WebSocketClient) readPump() {
	defer func() {
		c.Hub.UnregisterCh <- c
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("error reading message: %v", err)
			}
			break
		}

		var ev models.InboundEvent
		if err := json.Unmarshal(message, &ev); err != nil {
			log.Printf("Error decoding frame from session %s: %v", c.SID, err)
			continue // fire-and-forget path: drop the bad frame
		}

		c.Hub.IncomingCh <- InboundFrame{Session: c, Event: ev}
	}
}

// writePump reads events from the Send channel and writes them to the
// WebSocket, keeping the connection alive with periodic pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case event, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Channel closed by the hub, close the WS connection.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			dataToWrite, err := json.Marshal(event)
			if err != nil {
				log.Printf("Error encoding frame for session %s: %v", c.SID, err)
				continue
			}

			w, err := c.Conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(dataToWrite)

			if err := w.Close(); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
