package sse

import (
	"encoding/json"

	"github.com/consolehq/console/core/types"
)

// Event names carried on the update stream.
const (
	EventAssetsUpdated = "assets.updated"
	EventAssetsReload  = "assets.reload"
	EventError         = "error"
)

// AssetsUpdated announces that the asset set for one kind changed. Count is
// the number of distinct ids resident after the change, not the total
// variant count.
type AssetsUpdated struct {
	Initial   bool            `json:"initial"`
	AssetType types.AssetKind `json:"asset_type"`
	Count     int             `json:"count"`
}

// Envelope encodes the payload as an SSE frame.
func (u AssetsUpdated) Envelope() Envelope {
	data, _ := json.Marshal(u)
	return NewMessage(string(data)).WithEvent(EventAssetsUpdated)
}

// ReloadMarker is the generic "everything changed" notification sent after
// a full reload.
func ReloadMarker() Envelope {
	return NewMessage("{}").WithEvent(EventAssetsReload)
}

// ErrorNotice carries a live diagnostic, e.g. a corrupt record skipped
// during a bulk load.
func ErrorNotice(text string) Envelope {
	data, _ := json.Marshal(struct {
		Error string `json:"error"`
	}{Error: text})
	return NewMessage(string(data)).WithEvent(EventError)
}
