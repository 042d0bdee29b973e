package settings

import (
	"fmt"

	"github.com/consolehq/console/core/types"
	"github.com/consolehq/console/db"
)

// Store is the status overlay: per-asset enable switches kept apart from
// the versioned asset body, so flipping a status never touches the asset
// record.
type Store struct {
	db *db.Store
}

func NewStore(database *db.Store) *Store {
	return &Store{db: database}
}

// Status returns the effective overlay status for the asset. An unknown
// kind is a programming error, not a recoverable condition.
func (s *Store) Status(kind types.AssetKind, id string) (types.AssetStatus, error) {
	mustKnowKind(kind)
	return s.db.GetStatus(kind, id)
}

// SetStatus writes the overlay status in the project-local scope, or the
// global one when toGlobal is set.
func (s *Store) SetStatus(kind types.AssetKind, id string, status types.AssetStatus, toGlobal bool) error {
	mustKnowKind(kind)
	return s.db.SetStatus(kind, id, status, toGlobal)
}

// Reset clears the project-local override for the asset.
func (s *Store) Reset(kind types.AssetKind, id string) error {
	mustKnowKind(kind)
	return s.db.ResetStatus(kind, id)
}

// Rename moves the overlay entry from oldID to newID. The asset record and
// any cached variants are untouched; callers rewrite those separately.
func (s *Store) Rename(kind types.AssetKind, oldID, newID string) error {
	mustKnowKind(kind)

	status, err := s.db.GetStatus(kind, oldID)
	if err != nil {
		return err
	}
	if err := s.db.ResetStatus(kind, oldID); err != nil {
		return err
	}
	return s.db.SetStatus(kind, newID, status, false)
}

func mustKnowKind(kind types.AssetKind) {
	if !kind.Valid() {
		panic(fmt.Sprintf("unknown asset kind %q", kind))
	}
}
