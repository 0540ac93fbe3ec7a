package storage

import (
	"github.com/samber/lo"

	"workbench/backend/internal/models"
)

// SaveChatMessage appends one message to the chat log. gorm fills in the
// ID and CreatedAt on the passed struct, which the caller needs to build
// the broadcast payload.
func (s *Service) SaveChatMessage(msg *models.ChatMessage) error {
	return s.DB.Create(msg).Error
}

// RecentChatMessages returns the most recent limit messages re-ordered
// into ascending chronological order. Ordering is by id, which is
// monotone with creation time and stable when two rows share a timestamp.
func (s *Service) RecentChatMessages(limit int) ([]models.ChatMessage, error) {
	var msgs []models.ChatMessage
	if err := s.DB.Order("id DESC").Limit(limit).Find(&msgs).Error; err != nil {
		return nil, err
	}
	return lo.Reverse(msgs), nil
}
