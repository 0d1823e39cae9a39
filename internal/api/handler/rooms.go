package handler

import (
	"net/http"

	"chatterbox/backend/internal/apperr"
	"chatterbox/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RoomsForUser returns every room the given user is a member of.
func (h *Handler) RoomsForUser(c *gin.Context) {
	userID := c.Param("userId")
	if !models.ValidID(userID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrValidation.Error()})
		return
	}

	rooms, err := h.Storage.GetRoomsForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}

	c.JSON(http.StatusOK, rooms)
}
