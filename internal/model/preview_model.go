package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Preview struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId uuid.UUID      `gorm:"type:uuid;not null;index"`
	Mode      string         `gorm:"type:varchar(20);not null"`
	Content   datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Preview) TableName() string {
	return "preview"
}
