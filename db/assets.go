package db

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/consolehq/console/core/types"
	models "github.com/consolehq/console/dbmodels"
	"github.com/consolehq/console/pkg/utils"
)

// SaveAsset performs create-or-update keyed by oldID. If a row with oldID
// exists its version's trailing segment is bumped and the id is kept, no
// matter what id the caller put on the asset. Otherwise a fresh id with the
// kind prefix is generated and the asset is inserted at the initial version.
// The returned asset carries the id and version that were actually stored.
func (s *Store) SaveAsset(asset *types.Asset, oldID string) (*types.Asset, error) {
	if asset.Kind == types.KindAgent && (asset.ID == types.ReservedUserID || oldID == types.ReservedUserID) {
		return nil, types.ErrReservedAgentID
	}

	saved := *asset

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var rec models.Asset
		err := tx.Where("id = ?", oldID).First(&rec).Error
		creating := false
		switch {
		case err == nil:
			bumped, err := types.BumpVersion(rec.Version)
			if err != nil {
				return err
			}
			saved.Version = bumped
			saved.ID = oldID
		case errors.Is(err, gorm.ErrRecordNotFound):
			creating = true
			saved.Version = types.InitialVersion
			saved.ID = utils.UniqueID(asset.Kind.IDPrefix())
		default:
			return err
		}

		examples, err := json.Marshal(saved.UsageExamples)
		if err != nil {
			return fmt.Errorf("failed to encode usage examples: %w", err)
		}

		rec.ID = saved.ID
		rec.Name = saved.Name
		rec.Version = saved.Version
		rec.Usage = saved.Usage
		rec.UsageExamples = datatypes.JSON(examples)
		rec.DefinedIn = string(saved.DefinedIn)
		rec.Type = string(saved.Kind)
		rec.DefaultStatus = string(saved.DefaultStatus)

		switch saved.Kind {
		case types.KindAgent:
			if saved.Agent != nil {
				rec.System = &saved.Agent.System
				if saved.Agent.GPTMode != "" {
					mode := string(saved.Agent.GPTMode)
					rec.GPTMode = &mode
				}
				if saved.Agent.ExecutionMode != "" {
					rec.ExecutionMode = &saved.Agent.ExecutionMode
				}
			}
		case types.KindMaterial:
			if saved.Material != nil {
				rec.ContentType = string(saved.Material.ContentType)
				rec.Content = saved.Material.Content
			}
		}

		if creating {
			return tx.Create(&rec).Error
		}
		return tx.Save(&rec).Error
	})
	if err != nil {
		return nil, err
	}

	return &saved, nil
}

// LoadAsset fetches and materializes a single asset row. The returned asset
// is tagged with the caller-specified location, defaulting to the project
// store.
func (s *Store) LoadAsset(kind types.AssetKind, id string, location *types.AssetLocation) (*types.Asset, error) {
	if kind == types.KindAgent && id == types.ReservedUserID {
		return nil, types.ErrReservedAgentID
	}

	var rec models.Asset
	if err := s.db.Where("id = ?", id).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("asset %s: %w", id, types.ErrAssetNotFound)
		}
		return nil, err
	}

	return materializeAsset(kind, &rec, location)
}

// DeleteAsset removes the asset row. Missing rows are a silent no-op.
func (s *Store) DeleteAsset(id string) error {
	return s.db.Delete(&models.Asset{}, "id = ?", id).Error
}

// ListAssets returns all rows whose stored type matches the kind, in no
// particular order.
func (s *Store) ListAssets(kind types.AssetKind) ([]models.Asset, error) {
	var recs []models.Asset
	if err := s.db.Where("type = ?", string(kind)).Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func materializeAsset(kind types.AssetKind, rec *models.Asset, location *types.AssetLocation) (*types.Asset, error) {
	var examples []string
	if len(rec.UsageExamples) > 0 {
		if err := json.Unmarshal(rec.UsageExamples, &examples); err != nil {
			return nil, fmt.Errorf("asset %s has corrupt usage examples: %w", rec.ID, err)
		}
	}

	definedIn := types.LocationProject
	if location != nil {
		definedIn = *location
	}

	asset := &types.Asset{
		ID:            rec.ID,
		Name:          rec.Name,
		Version:       rec.Version,
		Usage:         rec.Usage,
		UsageExamples: examples,
		DefinedIn:     definedIn,
		DefaultStatus: types.AssetStatus(rec.DefaultStatus),
		Kind:          kind,
	}

	switch kind {
	case types.KindAgent:
		spec := &types.AgentSpec{ExecutionMode: types.DefaultExecutionMode}
		if rec.System != nil {
			spec.System = *rec.System
		}
		if rec.GPTMode != nil && *rec.GPTMode != "" {
			spec.GPTMode = types.GPTMode(*rec.GPTMode)
		}
		if rec.ExecutionMode != nil && *rec.ExecutionMode != "" {
			spec.ExecutionMode = *rec.ExecutionMode
		}
		asset.Agent = spec
	case types.KindMaterial:
		asset.Material = &types.MaterialSpec{
			ContentType: types.ContentType(rec.ContentType),
			Content:     rec.Content,
		}
	default:
		return nil, fmt.Errorf("unknown asset kind %q", kind)
	}

	return asset, nil
}
