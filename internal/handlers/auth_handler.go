package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"prothink-api/internal/auth"
	"prothink-api/internal/middleware"
)

type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		respondBindError(c, err)
		return
	}

	token, user, err := h.svc.Login(in.Email, in.Password)
	if err != nil {
		// Never echo the submitted password back.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "incorrect email or password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// GET /api/auth/verify — requires the auth middleware.
func (h *AuthHandler) Verify(c *gin.Context) {
	claims, exists := c.Get(middleware.ClaimsKey)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"valid": true,
		"user":  claims,
	})
}
