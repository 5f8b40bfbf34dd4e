package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnStatus is the closed set of lifecycle states for a return.
type ReturnStatus string

const (
	StatusInitiated  ReturnStatus = "INITIATED"
	StatusAuthorized ReturnStatus = "AUTHORIZED"
	StatusDroppedOff ReturnStatus = "DROPPED_OFF"
	StatusProcessing ReturnStatus = "PROCESSING"
	StatusCompleted  ReturnStatus = "COMPLETED"
	StatusCancelled  ReturnStatus = "CANCELLED"
)

// Valid reports whether s is a member of the status enumeration.
func (s ReturnStatus) Valid() bool {
	switch s {
	case StatusInitiated, StatusAuthorized, StatusDroppedOff,
		StatusProcessing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s ReturnStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Return is a single merchandise-return transaction tied to one order, one
// merchant and one consumer. Status is mutated only through the lifecycle
// engine; InitiatedAt is set once at creation and CompletedAt only on the
// transition into COMPLETED.
type Return struct {
	Id                uuid.UUID
	MerchantId        uuid.UUID
	ConsumerId        uuid.UUID
	OrderNumber       string
	AuthorizationCode string
	RefundAmount      decimal.Decimal
	Status            ReturnStatus
	InitiatedAt       time.Time
	CompletedAt       *time.Time
	CreatedAt         time.Time
	UpdatedAt         *time.Time

	Items []*ReturnItem
}
