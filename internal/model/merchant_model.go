package model

import (
	"time"

	"github.com/google/uuid"
)

type Merchant struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	ApiKey    string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time
}

func (Merchant) TableName() string {
	return "merchants"
}
