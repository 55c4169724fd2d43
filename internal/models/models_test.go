package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModels(t *testing.T) {
	t.Run("GameRecord TableName", func(t *testing.T) {
		record := GameRecord{}
		assert.Equal(t, "game_history", record.TableName())
	})
}
