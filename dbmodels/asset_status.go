package models

import "time"

// AssetStatus is a status override for one asset, independent of the asset
// row itself. Global rows apply across projects, non-global rows belong to
// the current project and take precedence.
type AssetStatus struct {
	AssetType string    `gorm:"type:varchar(50);primaryKey" json:"asset_type"`
	AssetID   string    `gorm:"type:varchar(255);primaryKey" json:"asset_id"`
	Global    bool      `gorm:"primaryKey" json:"global"`
	Status    string    `gorm:"type:varchar(50);not null" json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}
