package handlers

import (
	"net/http"

	"wordrush/internal/services"

	"github.com/gin-gonic/gin"
)

type GameResultRequest struct {
	Word     string `json:"word" binding:"required"`
	Score    int    `json:"score"`
	Time     int    `json:"time"`
	Attempts int    `json:"attempts"`
	Result   string `json:"result" binding:"required"`
}

// SaveGameResult persists one completed game for the authenticated user.
func (h *Handler) SaveGameResult(c *gin.Context) {
	userID, _, ok := currentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req GameResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := h.gameService.RecordResult(services.GameResultDTO{
		UserID:    userID,
		Word:      req.Word,
		Score:     req.Score,
		TimeTaken: req.Time,
		Attempts:  req.Attempts,
		Result:    req.Result,
		IPAddress: c.ClientIP(),
	})
	if err != nil {
		h.logger.Error("Save game error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save game"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "gameId": record.ID})
}
