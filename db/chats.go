package db

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/consolehq/console/core/types"
	models "github.com/consolehq/console/dbmodels"
)

// UpsertChat replaces the chat row in place when it exists, otherwise
// inserts it.
func (s *Store) UpsertChat(rec *models.Chat) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var existing models.Chat
		err := tx.Where("id = ?", rec.ID).First(&existing).Error
		switch {
		case err == nil:
			existing.Name = rec.Name
			existing.LastModified = rec.LastModified
			existing.ChatData = rec.ChatData
			return tx.Save(&existing).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			return tx.Create(rec).Error
		default:
			return err
		}
	})
}

// FetchChat returns the chat row by id.
func (s *Store) FetchChat(id string) (*models.Chat, error) {
	var rec models.Chat
	if err := s.db.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("chat %s: %w", id, types.ErrChatNotFound)
		}
		return nil, err
	}
	return &rec, nil
}

// ListChats returns all chat rows without their transcript bodies.
func (s *Store) ListChats() ([]models.Chat, error) {
	var recs []models.Chat
	if err := s.db.Select("id", "name", "last_modified").Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

// DeleteChat removes the chat row. Missing rows are a silent no-op.
func (s *Store) DeleteChat(id string) error {
	return s.db.Delete(&models.Chat{}, "id = ?", id).Error
}
