package model

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    *string   `gorm:"type:varchar(64);index"`
	Mode      string    `gorm:"type:varchar(20);not null"`
	Title     *string   `gorm:"type:text"`
	Status    string    `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Collection name kept singular to match the store layout.
func (Session) TableName() string {
	return "session"
}
