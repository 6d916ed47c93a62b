package server

import (
	"github.com/tjflores/guaha/internal/lexicon"
)

// UpdateMessage is pushed to clients via WebSocket: a full "snapshot" right
// after connecting, then an "update" with the change set after each reload.
type UpdateMessage struct {
	Type  string         `json:"type"`
	Stats *LexiconStats  `json:"stats,omitempty"`
	Delta *lexicon.Delta `json:"delta,omitempty"`
}

// searchRequest is a live-search frame received from a WebSocket client.
type searchRequest struct {
	Type  string `json:"type"`
	ID    int    `json:"id"`
	Query string `json:"query"`
	N     int    `json:"n"`
	Strip bool   `json:"strip"`
}

// searchResponse answers a searchRequest. The ID echoes the request so the
// client can discard results for superseded keystrokes.
type searchResponse struct {
	Type    string          `json:"type"`
	ID      int             `json:"id"`
	Query   string          `json:"query"`
	Matches []lexicon.Match `json:"matches"`
}
