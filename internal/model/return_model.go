package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Return rows are never physically deleted; CANCELLED is a terminal status,
// not a deletion. Lifecycle timestamps are written explicitly by the service
// layer rather than via GORM auto-timestamps.
type Return struct {
	Id                uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	MerchantId        uuid.UUID       `gorm:"type:uuid;not null;index:idx_returns_merchant_status,priority:1"`
	ConsumerId        uuid.UUID       `gorm:"type:uuid;not null;index"`
	OrderNumber       string          `gorm:"type:varchar(100);not null"`
	AuthorizationCode string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	RefundAmount      decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Status            string          `gorm:"type:varchar(20);not null;index:idx_returns_merchant_status,priority:2"`
	InitiatedAt       time.Time       `gorm:"not null"`
	CompletedAt       *time.Time
	CreatedAt         time.Time `gorm:"not null;autoCreateTime:false"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false"`

	// Relations
	Merchant Merchant     `gorm:"foreignKey:MerchantId;constraint:OnDelete:CASCADE"`
	Consumer Consumer     `gorm:"foreignKey:ConsumerId;constraint:OnDelete:CASCADE"`
	Items    []ReturnItem `gorm:"foreignKey:ReturnId;constraint:OnDelete:CASCADE"`
}

func (Return) TableName() string {
	return "returns"
}
