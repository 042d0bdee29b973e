package chat

import "time"

// Chat is a full conversation transcript. The aggregate is persisted
// wholesale as one JSON document; ordering of groups, messages and tool
// calls is conversation order and must survive a round trip untouched.
type Chat struct {
	ID                   string         `json:"id"`
	Name                 string         `json:"name"`
	TitleEdited          bool           `json:"title_edited"`
	LastModified         time.Time      `json:"last_modified"`
	Options              ChatOptions    `json:"chat_options"`
	IsAnalysisInProgress bool           `json:"is_analysis_in_progress"`
	MessageGroups        []MessageGroup `json:"message_groups"`
}

// ChatOptions is the per-chat configuration the frontend edits.
type ChatOptions struct {
	AgentID                string   `json:"agent_id"`
	MaterialsIDs           []string `json:"materials_ids"`
	AICanAddExtraMaterials bool     `json:"ai_can_add_extra_materials"`
	DraftCommand           string   `json:"draft_command"`
}

// ActorID references who produced a message group.
type ActorID struct {
	Type string `json:"type"`
	ID   string `json:"id"`
}

// MessageGroup is one turn of the conversation.
type MessageGroup struct {
	ID           string    `json:"id"`
	ActorID      ActorID   `json:"actor_id"`
	Role         string    `json:"role"`
	Task         string    `json:"task"`
	Analysis     string    `json:"analysis"`
	MaterialsIDs []string  `json:"materials_ids"`
	Messages     []Message `json:"messages"`
}

// Message is a single utterance inside a group. Timestamp is kept as the
// opaque string the frontend wrote.
type Message struct {
	ID              string     `json:"id"`
	Content         string     `json:"content"`
	Timestamp       string     `json:"timestamp"`
	RequestedFormat string     `json:"requested_format"`
	IsStreaming     bool       `json:"is_streaming"`
	ToolCalls       []ToolCall `json:"tool_calls"`
}

// ToolCall is one tool invocation attached to a message.
type ToolCall struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
}

// Summary is the lightweight listing shape: no transcript body.
type Summary struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LastModified time.Time `json:"last_modified"`
}
