package entity

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id        uuid.UUID
	UserId    *string
	Mode      string
	Title     *string
	Status    string
	CreatedAt time.Time
	UpdatedAt *time.Time
}
