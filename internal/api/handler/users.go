package handler

import (
	"net/http"

	"chatterbox/backend/internal/apperr"
	"chatterbox/backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type updateUserRequest struct {
	Name        string `json:"name"`
	AvatarImage string `json:"avatarImage"`
}

// ListUsers returns the summary of every registered user.
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.Storage.ListUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	summaries := lo.Map(users, func(u models.User, _ int) models.UserSummary {
		return u.Summary()
	})
	c.JSON(http.StatusOK, summaries)
}

// UpdateUser applies a profile delta (name, avatar) to an existing user.
func (h *Handler) UpdateUser(c *gin.Context) {
	id := c.Param("id")
	if !models.ValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrValidation.Error()})
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrValidation.Error()})
		return
	}

	user, err := h.Storage.GetUserByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": apperr.ErrNotFound.Error()})
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.AvatarImage != "" {
		user.AvatarImage = req.AvatarImage
	}

	if err := h.Storage.SaveUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, user.Summary())
}
