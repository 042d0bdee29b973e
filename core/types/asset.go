package types

import "fmt"

// AssetKind discriminates the two asset families the project manages.
type AssetKind string

const (
	KindAgent    AssetKind = "agent"
	KindMaterial AssetKind = "material"
)

// AssetLocation tags where the authoritative copy of an asset lives.
type AssetLocation string

const (
	// LocationProject is the project-editable store. Only assets defined
	// here can be updated in place.
	LocationProject AssetLocation = "project"
	// LocationSystem marks assets shipped with the application.
	LocationSystem AssetLocation = "system"
)

// AssetStatus is the per-asset enable switch kept in the settings overlay.
type AssetStatus string

const (
	StatusEnabled  AssetStatus = "enabled"
	StatusDisabled AssetStatus = "disabled"
	// StatusForced is legacy (pre 0.2.11) and is rewritten to enabled
	// when encountered during a bulk load.
	StatusForced AssetStatus = "forced"
)

// GPTMode selects the model tier an agent runs on.
type GPTMode string

const (
	GPTModeQuality GPTMode = "quality"
	GPTModeSpeed   GPTMode = "speed"
)

// ContentType describes how a material body is interpreted.
type ContentType string

const (
	ContentStaticText  ContentType = "static_text"
	ContentDynamicText ContentType = "dynamic_text"
	ContentAPI         ContentType = "api"
)

// DefaultExecutionMode is used for agents that do not set one explicitly.
const DefaultExecutionMode = "normal"

// ReservedUserID is the synthetic identity representing the human user in
// chats. It is never a valid agent id, on reads or writes.
const ReservedUserID = "user"

// AgentSpec carries the agent-only payload of an asset.
type AgentSpec struct {
	System        string  `json:"system"`
	GPTMode       GPTMode `json:"gpt_mode,omitempty"`
	ExecutionMode string  `json:"execution_mode"`
}

// MaterialSpec carries the material-only payload of an asset.
type MaterialSpec struct {
	ContentType ContentType `json:"content_type"`
	Content     string      `json:"content"`
}

// Asset is an agent or material definition. Exactly one of Agent or
// Material is non-nil, matching Kind.
type Asset struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Version       string        `json:"version"`
	Usage         string        `json:"usage"`
	UsageExamples []string      `json:"usage_examples"`
	DefinedIn     AssetLocation `json:"defined_in"`
	DefaultStatus AssetStatus   `json:"default_status"`
	Kind          AssetKind     `json:"type"`

	Agent    *AgentSpec    `json:"agent,omitempty"`
	Material *MaterialSpec `json:"material,omitempty"`
}

// IDPrefix returns the generated-id prefix for a kind.
func (k AssetKind) IDPrefix() string {
	switch k {
	case KindAgent:
		return "agent_"
	case KindMaterial:
		return "material_"
	}
	panic(fmt.Sprintf("unknown asset kind %q", k))
}

// Valid reports whether the kind is one of the two known families.
func (k AssetKind) Valid() bool {
	return k == KindAgent || k == KindMaterial
}
