package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AuthRequired gates protected routes. API routes get a structured 401,
// page routes are sent back to the landing page.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		user := session.Get("user_id")
		if user == nil {
			// Check for API Key if session is missing
			apiKey := c.GetHeader("X-API-Key")
			if apiKey != "" {
				if u, err := h.userService.FindByAPIKey(apiKey); err == nil {
					c.Set("user_id", u.ID)
					c.Set("username", u.Username)
					c.Next()
					return
				}
			}

			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			} else {
				c.Redirect(http.StatusFound, "/")
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

// currentUser returns the authenticated user's id and username from
// either the API-key context or the session.
func currentUser(c *gin.Context) (uint, string, bool) {
	if val, exists := c.Get("user_id"); exists {
		name, _ := c.Get("username")
		username, _ := name.(string)
		return val.(uint), username, true
	}

	session := sessions.Default(c)
	idVal := session.Get("user_id")
	if idVal == nil {
		return 0, "", false
	}
	username, _ := session.Get("username").(string)
	return idVal.(uint), username, true
}
