package services

import (
	"wordrush/internal/models"

	"gorm.io/gorm"
)

type GameResultDTO struct {
	UserID    uint
	Word      string
	Score     int
	TimeTaken int
	Attempts  int
	Result    string
	IPAddress string // For Audit Log
}

type GameService struct {
	db           *gorm.DB
	auditService *AuditService
}

func NewGameService(db *gorm.DB, auditService *AuditService) *GameService {
	return &GameService{
		db:           db,
		auditService: auditService,
	}
}

// RecordResult persists one completed game for a user. Records are
// append-only; nothing ever updates them.
func (s *GameService) RecordResult(dto GameResultDTO) (*models.GameRecord, error) {
	record := models.GameRecord{
		UserID:    dto.UserID,
		Word:      dto.Word,
		Score:     dto.Score,
		TimeTaken: dto.TimeTaken,
		Attempts:  dto.Attempts,
		Result:    dto.Result,
	}

	if err := s.db.Create(&record).Error; err != nil {
		return nil, err
	}

	s.auditService.LogAction(&dto.UserID, "GAME_RESULT", record.Word, map[string]interface{}{
		"score":  record.Score,
		"result": record.Result,
	}, dto.IPAddress)

	return &record, nil
}
