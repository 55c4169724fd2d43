package handlers

import (
	"errors"
	"net/http"

	"wordrush/internal/models"
	"wordrush/internal/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields required"})
		return
	}

	user, err := h.userService.Register(req.Username, req.Email, req.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		h.logger.Error("Register error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.logger.Error("Register session error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/game"})
}

func (h *Handler) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password required"})
		return
	}

	user, err := h.userService.Authenticate(req.Email, req.Password, c.ClientIP())
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
			return
		}
		h.logger.Error("Login error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	if err := h.startSession(c, user); err != nil {
		h.logger.Error("Login session error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/game"})
}

func (h *Handler) LogoutUser(c *gin.Context) {
	session := sessions.Default(c)

	if idVal := session.Get("user_id"); idVal != nil {
		if id, ok := idVal.(uint); ok {
			h.auditService.LogAction(&id, "LOGOUT", "", nil, c.ClientIP())
		}
	}

	session.Clear()
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SessionInfo reports who the caller is. It never fails; anonymous
// callers get a null userId.
func (h *Handler) SessionInfo(c *gin.Context) {
	session := sessions.Default(c)
	if idVal := session.Get("user_id"); idVal != nil {
		c.JSON(http.StatusOK, gin.H{"userId": idVal, "username": session.Get("username")})
		return
	}
	c.JSON(http.StatusOK, gin.H{"userId": nil})
}

func (h *Handler) startSession(c *gin.Context, user *models.User) error {
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Set("username", user.Username)
	return session.Save()
}
