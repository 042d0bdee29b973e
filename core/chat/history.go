package chat

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/consolehq/console/core/types"
	"github.com/consolehq/console/db"
	models "github.com/consolehq/console/dbmodels"
)

// History persists chat transcripts. Each chat is one row with the whole
// aggregate flattened into a JSON blob; there is no per-message relational
// normalization.
type History struct {
	store *db.Store
}

func NewHistory(store *db.Store) *History {
	return &History{store: store}
}

// Save stamps the chat as modified now and upserts it by id.
func (h *History) Save(chat *Chat) error {
	chat.LastModified = time.Now().UTC()

	data, err := json.Marshal(chat)
	if err != nil {
		return fmt.Errorf("failed to encode chat %s: %w", chat.ID, err)
	}

	return h.store.UpsertChat(&models.Chat{
		ID:           chat.ID,
		Name:         chat.Name,
		LastModified: chat.LastModified,
		ChatData:     string(data),
	})
}

// Load reconstructs the full aggregate by id. A missing chat is absent,
// not an error.
func (h *History) Load(id string) (*Chat, error) {
	rec, err := h.store.FetchChat(id)
	if err != nil {
		if errors.Is(err, types.ErrChatNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var chat Chat
	if err := json.Unmarshal([]byte(rec.ChatData), &chat); err != nil {
		return nil, fmt.Errorf("chat %s has a corrupt transcript: %w", id, err)
	}
	return &chat, nil
}

// List returns summaries of every stored chat.
func (h *History) List() ([]Summary, error) {
	recs, err := h.store.ListChats()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, Summary{
			ID:           rec.ID,
			Name:         rec.Name,
			LastModified: rec.LastModified,
		})
	}
	return summaries, nil
}

// Delete removes the chat row; deleting an unknown id is a no-op.
func (h *History) Delete(id string) error {
	return h.store.DeleteChat(id)
}
