package assets

import (
	"fmt"

	"github.com/mudler/xlog"

	"github.com/consolehq/console/core/sse"
	"github.com/consolehq/console/core/types"
)

// loadAll materializes every stored row of the cache's kind. A row that
// fails to materialize is reported on the notifier and skipped, so one
// corrupt record never takes down the whole load.
func (a *Assets) loadAll() (map[string]*Variants, error) {
	recs, err := a.store.ListAssets(a.kind)
	if err != nil {
		return nil, err
	}

	loaded := make(map[string]*Variants)
	for _, rec := range recs {
		asset, err := a.store.LoadAsset(a.kind, rec.ID, nil)
		if err != nil {
			a.manager.Send(sse.ErrorNotice(fmt.Sprintf("invalid %s %s: %v", a.kind, rec.ID, err)))
			xlog.Warn("Skipping corrupt asset row", "kind", a.kind, "id", rec.ID, "error", err)
			continue
		}

		// Migration for settings written before 0.2.11: the retired
		// forced status becomes enabled.
		status, err := a.settings.Status(a.kind, asset.ID)
		if err != nil {
			return nil, err
		}
		if status == types.StatusForced {
			if err := a.settings.SetStatus(a.kind, asset.ID, types.StatusEnabled, false); err != nil {
				return nil, err
			}
		}

		entry, ok := loaded[asset.ID]
		if !ok {
			entry = &Variants{}
			loaded[asset.ID] = entry
		}
		entry.add(asset)
	}

	return loaded, nil
}
