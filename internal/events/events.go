// Package events pushes engine-side state changes to the UI shell over a
// small pub/sub hub, serialized as JSON envelopes for SSE delivery.
package events

import (
	"encoding/json"
	"time"
)

// Event types published by the engine.
const (
	TypeDatasetRefreshed = "dataset_refreshed"
	TypeFavoriteToggled  = "favorite_toggled"
	TypeThemeChanged     = "theme_changed"
	TypeSearchCommitted  = "search_committed"
	TypePageTransition   = "page_transition"
)

type Event struct {
	Type      string          `json:"type"`
	Version   int             `json:"v"`
	At        time.Time       `json:"at"`
	RequestID string          `json:"request_id,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
}

func MakeEvent(reqID, typ string, v int, data any) string {
	var raw json.RawMessage
	if data != nil {
		b, _ := json.Marshal(data)
		raw = b
	}
	e := Event{
		Type:      typ,
		Version:   v,
		At:        time.Now().UTC(),
		RequestID: reqID,
		Data:      raw,
	}
	b, _ := json.Marshal(e)
	return string(b)
}
