package handler

import (
	"log"
	"net/http"

	"chatterbox/backend/internal/apperr"
	"chatterbox/backend/internal/auth"
	"chatterbox/backend/internal/models"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	AvatarImage string `json:"avatarImage"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account. Duplicate emails are a conflict; the summary
// of the created user, including its assigned id, is returned.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrValidation.Error()})
		return
	}

	existing, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": apperr.ErrEmailTaken.Error()})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		log.Printf("ERROR: Failed to hash password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		AvatarImage:  req.AvatarImage,
	}
	if err := h.Storage.SaveUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, user.Summary())
}

// Login checks the credentials and returns the user summary plus a session
// token. Unknown email and wrong password produce the same response.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": apperr.ErrValidation.Error()})
		return
	}

	user, err := h.Storage.GetUserByEmail(req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	if user == nil || !auth.ComparePassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperr.ErrInvalidCredentials.Error()})
		return
	}

	token, err := h.Tokens.Generate(user.ID)
	if err != nil {
		log.Printf("ERROR: Failed to sign token for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user.Summary(), "token": token})
}
