package db

import (
	"errors"

	"gorm.io/gorm"

	"github.com/consolehq/console/core/types"
	models "github.com/consolehq/console/dbmodels"
)

// GetStatus resolves the overlay status for one asset. A project-local row
// wins over a global one; with neither, assets are enabled.
func (s *Store) GetStatus(kind types.AssetKind, id string) (types.AssetStatus, error) {
	for _, global := range []bool{false, true} {
		var rec models.AssetStatus
		err := s.db.Where("asset_type = ? AND asset_id = ? AND global = ?", string(kind), id, global).
			First(&rec).Error
		if err == nil {
			return types.AssetStatus(rec.Status), nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", err
		}
	}
	return types.StatusEnabled, nil
}

// SetStatus upserts the overlay row in the chosen scope.
func (s *Store) SetStatus(kind types.AssetKind, id string, status types.AssetStatus, global bool) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var rec models.AssetStatus
		err := tx.Where("asset_type = ? AND asset_id = ? AND global = ?", string(kind), id, global).
			First(&rec).Error
		switch {
		case err == nil:
			rec.Status = string(status)
			return tx.Save(&rec).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			rec = models.AssetStatus{
				AssetType: string(kind),
				AssetID:   id,
				Global:    global,
				Status:    string(status),
			}
			return tx.Create(&rec).Error
		default:
			return err
		}
	})
}

// ResetStatus clears the project-local override, falling back to the global
// row or the default.
func (s *Store) ResetStatus(kind types.AssetKind, id string) error {
	return s.db.Delete(&models.AssetStatus{},
		"asset_type = ? AND asset_id = ? AND global = ?", string(kind), id, false).Error
}
