package dto

import (
	"encoding/json"
	"time"

	"copilot-be/pkg/reply"
)

type ChatRequest struct {
	// single user message; the key must be present but the empty string is a
	// valid prompt, the generator has blank-prompt fallbacks
	Content *string `json:"content" validate:"required"`
}

type MessageItem struct {
	Id        string                 `json:"id"`
	SessionId string                 `json:"session_id"`
	Role      string                 `json:"role"`
	Content   string                 `json:"content"`
	Meta      map[string]interface{} `json:"meta,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt *time.Time             `json:"updated_at"`
}

type ListMessagesResponse struct {
	Items []MessageItem `json:"items"`
}

type ChatResponse struct {
	SessionId string         `json:"session_id"`
	Messages  []MessageItem  `json:"messages"`
	Preview   *reply.Preview `json:"preview"`
}

// GetPreviewResponse carries the stored preview content verbatim; Preview is
// null when the session has no preview yet.
type GetPreviewResponse struct {
	SessionId string          `json:"session_id"`
	Preview   json.RawMessage `json:"preview"`
}
