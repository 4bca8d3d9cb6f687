// Package events defines the topics and payloads published on the in-process
// bus. Payloads are marshaled to JSON before publishing.
package events

import "time"

const (
	TopicSessionCreated   = "copilot.session.created"
	TopicPreviewGenerated = "copilot.preview.generated"
)

type SessionCreated struct {
	SessionId  string    `json:"session_id"`
	Mode       string    `json:"mode"`
	OccurredAt time.Time `json:"occurred_at"`
}

type PreviewGenerated struct {
	SessionId   string    `json:"session_id"`
	Mode        string    `json:"mode"`
	PreviewType string    `json:"preview_type"`
	OccurredAt  time.Time `json:"occurred_at"`
}
