package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"chatterbox/backend/internal/chathub"
	"chatterbox/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Allows connections from any origin. Tighten for production!
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket upgrades the HTTP connection to a WebSocket session. The
// session starts inert; it identifies itself either with an explicit join
// event or, as a shortcut, with a valid session token in the query string.
func (h *Handler) ServeWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to upgrade connection"})
		return
	}

	client := &chathub.WebSocketClient{
		SID:  uuid.New().String(),
		Conn: conn,
		Hub:  h.Hub,
		Send: make(chan models.OutboundEvent, 256),
	}

	h.Hub.RegisterCh <- client
	client.Run()

	if token := c.Query("token"); token != "" {
		claims, err := h.Tokens.Validate(token)
		if err != nil {
			log.Printf("WARNING: Rejected ws token for session %s: %v", client.SID, err)
			return
		}

		data, _ := json.Marshal(models.JoinPayload{UserID: claims.UserID})
		h.Hub.IncomingCh <- chathub.InboundFrame{
			Session: client,
			Event:   models.InboundEvent{Event: models.EventJoin, Data: data},
		}
	}
}
