package types

import "errors"

var (
	// ErrAssetNotFound is returned when a referenced asset id has no
	// matching record in the cache or the store.
	ErrAssetNotFound = errors.New("asset not found")

	// ErrChatNotFound is returned when a chat id has no matching row.
	ErrChatNotFound = errors.New("chat not found")

	// ErrAssetExists is returned when creating an asset whose id already
	// resolves to an existing record.
	ErrAssetExists = errors.New("asset already exists")

	// ErrReservedAgentID is returned when the synthetic user identity is
	// used where a real agent id is required.
	ErrReservedAgentID = errors.New("\"user\" is a reserved agent id")

	// ErrNotEditable is returned when an update targets an asset that is
	// not defined in the project-editable store.
	ErrNotEditable = errors.New("asset is not defined in the project store")
)
