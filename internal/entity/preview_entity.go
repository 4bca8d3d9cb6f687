package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Preview is a structured side artifact of one chat exchange. Content holds
// the mode-dependent union payload exactly as it was generated.
type Preview struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Mode      string
	Content   json.RawMessage
	CreatedAt time.Time
	UpdatedAt *time.Time
}
