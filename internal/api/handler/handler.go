package handler

import (
	"net/http"

	"chatterbox/backend/internal/auth"
	"chatterbox/backend/internal/chathub"
	"chatterbox/backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// Handler carries the hub, the storage layer and the token manager used by
// the HTTP routes.
type Handler struct {
	Hub     *chathub.ManagerService
	Storage storage.Storage
	Tokens  *auth.TokenManager
}

func NewHandler(hub *chathub.ManagerService, s storage.Storage, tokens *auth.TokenManager) *Handler {
	return &Handler{Hub: hub, Storage: s, Tokens: tokens}
}

// Health is the liveness probe.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
