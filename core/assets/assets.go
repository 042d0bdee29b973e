package assets

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mudler/xlog"

	"github.com/consolehq/console/core/settings"
	"github.com/consolehq/console/core/sse"
	"github.com/consolehq/console/core/types"
	"github.com/consolehq/console/db"
)

// Assets is the authoritative in-memory view of all assets of one kind,
// reconciled with the record store. The mutex serializes every map
// mutation: callers run on arbitrary goroutines, so unlike a cooperative
// single-threaded runtime nothing else orders the writes.
type Assets struct {
	mu       sync.Mutex
	kind     types.AssetKind
	store    *db.Store
	settings *settings.Store
	manager  sse.Manager
	assets   map[string]*Variants
}

func New(kind types.AssetKind, store *db.Store, overlay *settings.Store, manager sse.Manager) *Assets {
	return &Assets{
		kind:     kind,
		store:    store,
		settings: overlay,
		manager:  manager,
		assets:   make(map[string]*Variants),
	}
}

// Kind returns the asset family this cache holds.
func (a *Assets) Kind() types.AssetKind {
	return a.kind
}

// Get returns a single asset by id. Ids not yet resident are looked up in
// the store once; a failed lookup means absent, never an error. With no
// location the override wins; with a location only a variant defined there
// matches.
func (a *Assets) Get(id string, location *types.AssetLocation) *types.Asset {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry, ok := a.assets[id]
	if !ok {
		asset, err := a.store.LoadAsset(a.kind, id, nil)
		if err != nil {
			xlog.Debug("Asset not found in store", "kind", a.kind, "id", id, "error", err)
			return nil
		}
		entry = &Variants{}
		entry.add(asset)
		a.assets[asset.ID] = entry
	}

	if location == nil {
		return entry.Override
	}
	return entry.byLocation(*location)
}

// Save writes the asset through the record store and installs the stored
// result as the sole variant for its id. Updating is only allowed for
// assets owned by the project store. Exactly one change notification is
// emitted, carrying the number of distinct resident ids.
func (a *Assets) Save(asset *types.Asset, oldID string, create bool) (*types.Asset, error) {
	if !create && asset.DefinedIn != types.LocationProject {
		return nil, fmt.Errorf("cannot save %s: %w", oldID, types.ErrNotEditable)
	}

	saved, err := a.store.SaveAsset(asset, oldID)
	if err != nil {
		return nil, err
	}

	a.mu.Lock()
	if create {
		entry := &Variants{}
		entry.add(saved)
		a.assets[saved.ID] = entry
	} else if _, ok := a.assets[oldID]; ok {
		// Last-writer-wins: an update collapses any override stack for
		// the id down to the stored version.
		entry := &Variants{}
		entry.add(saved)
		a.assets[oldID] = entry
	}
	count := len(a.assets)
	a.mu.Unlock()

	a.notifyUpdated(false, count)
	return saved, nil
}

// Create installs a brand-new asset in the project store under a freshly
// generated id. The requested id must not resolve to an existing asset.
func (a *Assets) Create(requestedID string, asset *types.Asset) (*types.Asset, error) {
	if existing := a.Get(requestedID, nil); existing != nil {
		return nil, fmt.Errorf("asset %s: %w", requestedID, types.ErrAssetExists)
	}
	asset.DefinedIn = types.LocationProject
	return a.Save(asset, requestedID, true)
}

// Update rewrites an existing asset in place, bumping its version and
// keeping its id. The asset inherits the location of the stored record.
func (a *Assets) Update(oldID string, asset *types.Asset) (*types.Asset, error) {
	existing := a.Get(oldID, nil)
	if existing == nil {
		return nil, fmt.Errorf("asset %s: %w", oldID, types.ErrAssetNotFound)
	}
	asset.DefinedIn = existing.DefinedIn
	return a.Save(asset, oldID, false)
}

// Delete removes the asset from memory and from the store. The id is the
// primary key of the record store, so the whole entry goes: there is no
// residual override level to fall back to once the row is gone.
func (a *Assets) Delete(id string) error {
	a.mu.Lock()
	if _, ok := a.assets[id]; !ok {
		a.mu.Unlock()
		return fmt.Errorf("asset %s: %w", id, types.ErrAssetNotFound)
	}
	delete(a.assets, id)
	count := len(a.assets)
	a.mu.Unlock()

	if err := a.store.DeleteAsset(id); err != nil {
		return err
	}

	a.notifyUpdated(false, count)
	return nil
}

// Reload discards the in-memory view and rebuilds it from the store. On
// anything but the initial load a generic reload marker is broadcast.
func (a *Assets) Reload(initial bool) error {
	loaded, err := a.loadAll()
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.assets = loaded
	a.mu.Unlock()

	if !initial {
		a.manager.Send(sse.ReloadMarker())
	}
	return nil
}

// All returns the override of every resident id, sorted by id.
func (a *Assets) All() []*types.Asset {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make([]*types.Asset, 0, len(a.assets))
	for _, entry := range a.assets {
		if entry.Override != nil {
			out = append(out, entry.Override)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out
}

// WithStatus returns all resident overrides whose overlay status matches.
func (a *Assets) WithStatus(status types.AssetStatus) ([]*types.Asset, error) {
	var out []*types.Asset
	for _, asset := range a.All() {
		st, err := a.settings.Status(a.kind, asset.ID)
		if err != nil {
			return nil, err
		}
		if st == status {
			out = append(out, asset)
		}
	}
	return out, nil
}

// Status reads the overlay status for an asset of this cache's kind.
func (a *Assets) Status(id string) (types.AssetStatus, error) {
	return a.settings.Status(a.kind, id)
}

// SetStatus writes the overlay status without touching the asset record.
func (a *Assets) SetStatus(id string, status types.AssetStatus, toGlobal bool) error {
	return a.settings.SetStatus(a.kind, id, status, toGlobal)
}

// Rename moves the overlay entry to a new id. The record store and the
// variant map are left alone; the caller performs the asset rewrite.
func (a *Assets) Rename(oldID, newID string) error {
	return a.settings.Rename(a.kind, oldID, newID)
}

func (a *Assets) notifyUpdated(initial bool, count int) {
	a.manager.Send(sse.AssetsUpdated{
		Initial:   initial,
		AssetType: a.kind,
		Count:     count,
	}.Envelope())
}
