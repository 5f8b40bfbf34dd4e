package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ReturnItem struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ReturnId     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductName  string          `gorm:"type:varchar(255);not null"`
	ProductSku   string          `gorm:"type:varchar(100);not null"`
	Quantity     int             `gorm:"not null;default:1"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	ReturnReason string          `gorm:"type:varchar(20);not null"`
	Condition    *string         `gorm:"type:varchar(20)"`
	CreatedAt    time.Time       `gorm:"not null"`
}

func (ReturnItem) TableName() string {
	return "return_items"
}
