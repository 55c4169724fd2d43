package handlers

import (
	"wordrush/internal/repository"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	redisstore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
)

const sessionMaxAge = 24 * 60 * 60 // 24 hours, matching the cookie lifetime contract

func (h *Handler) SetupRouter(templatePath string, staticPath string) *gin.Engine {
	r := gin.Default()

	if templatePath != "" {
		r.LoadHTMLGlob(templatePath)
	}
	if staticPath != "" {
		r.Static("/static", staticPath)
	}

	r.Use(sessions.Sessions("wordrush_session", h.sessionStore()))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	// Public Routes
	r.GET("/", h.ShowIndex)
	r.POST("/api/register", h.RegisterUser)
	r.POST("/api/login", h.LoginUser)
	r.POST("/api/logout", h.LogoutUser)
	r.GET("/api/session", h.SessionInfo)

	// Protected Routes
	authorized := r.Group("/")
	authorized.Use(h.AuthRequired())
	{
		authorized.GET("/game", h.ShowGame)
		authorized.GET("/dashboard", h.ShowDashboard)
		authorized.POST("/api/game-result", h.SaveGameResult)
		authorized.GET("/api/stats", h.GetStats)
	}

	return r
}

// sessionStore prefers a redis-backed store when REDIS_URL is set so
// sessions survive restarts, and falls back to the cookie store
// otherwise.
func (h *Handler) sessionStore() sessions.Store {
	opts := sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
	}

	if h.cfg.RedisURL != "" {
		addr, password, err := repository.ParseRedisURL(h.cfg.RedisURL)
		if err == nil {
			store, storeErr := redisstore.NewStore(10, "tcp", addr, password, []byte(h.cfg.SessionSecret))
			if storeErr == nil {
				store.Options(opts)
				return store
			}
			err = storeErr
		}
		h.logger.Warn("Redis session store unavailable, using cookie store", "error", err)
	}

	store := cookie.NewStore([]byte(h.cfg.SessionSecret))
	store.Options(opts)
	return store
}
