package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ShowIndex serves the landing page, or sends players who are already
// signed in straight to the game.
func (h *Handler) ShowIndex(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get("user_id") != nil {
		c.Redirect(http.StatusFound, "/game")
		return
	}

	c.HTML(http.StatusOK, "index.html", nil)
}

func (h *Handler) ShowGame(c *gin.Context) {
	_, username, _ := currentUser(c)
	c.HTML(http.StatusOK, "game.html", gin.H{
		"Username": username,
	})
}

func (h *Handler) ShowDashboard(c *gin.Context) {
	_, username, _ := currentUser(c)
	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Username": username,
	})
}
