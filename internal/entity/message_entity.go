package entity

import (
	"time"

	"github.com/google/uuid"
)

type Message struct {
	Id        uuid.UUID
	SessionId uuid.UUID
	Role      string
	Content   string
	Meta      map[string]interface{}
	CreatedAt time.Time
	UpdatedAt *time.Time
}
