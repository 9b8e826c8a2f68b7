package domain

import (
	"encoding/json"
	"time"
)

// HistoryRecord is one calculation served by the API.
type HistoryRecord struct {
	ID        string          `json:"id"`
	Operation string          `json:"operation"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}
