package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats returns the caller's recent history, aggregate stats and the
// global leaderboard in one response.
func (h *Handler) GetStats(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	history, err := h.statsService.HistoryByUser(userID)
	if err != nil {
		h.logger.Error("Stats history error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	stats, err := h.statsService.AggregateByUser(userID)
	if err != nil {
		h.logger.Error("Stats aggregate error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	topScores, err := h.statsService.TopScores()
	if err != nil {
		h.logger.Error("Stats leaderboard error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"history":   history,
		"stats":     stats,
		"topScores": topScores,
	})
}
