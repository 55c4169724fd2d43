package handlers

import (
	"log/slog"

	"wordrush/internal/config"
	"wordrush/internal/services"
)

type Handler struct {
	cfg          config.Config
	logger       *slog.Logger
	userService  *services.UserService
	gameService  *services.GameService
	statsService *services.StatsService
	auditService *services.AuditService
}

func NewHandler(
	cfg config.Config,
	logger *slog.Logger,
	userService *services.UserService,
	gameService *services.GameService,
	statsService *services.StatsService,
	auditService *services.AuditService,
) *Handler {
	return &Handler{
		cfg:          cfg,
		logger:       logger,
		userService:  userService,
		gameService:  gameService,
		statsService: statsService,
		auditService: auditService,
	}
}
