package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReturnReason is why the consumer is sending the product back.
type ReturnReason string

const (
	ReasonDefective      ReturnReason = "DEFECTIVE"
	ReasonWrongItem      ReturnReason = "WRONG_ITEM"
	ReasonNotAsDescribed ReturnReason = "NOT_AS_DESCRIBED"
	ReasonUnwanted       ReturnReason = "UNWANTED"
	ReasonOther          ReturnReason = "OTHER"
)

func (r ReturnReason) Valid() bool {
	switch r {
	case ReasonDefective, ReasonWrongItem, ReasonNotAsDescribed, ReasonUnwanted, ReasonOther:
		return true
	}
	return false
}

// ItemCondition is the declared physical state of a returned product.
// The field is optional on items; an absent condition is represented by nil.
type ItemCondition string

const (
	ConditionNew     ItemCondition = "NEW"
	ConditionLikeNew ItemCondition = "LIKE_NEW"
	ConditionGood    ItemCondition = "GOOD"
	ConditionDamaged ItemCondition = "DAMAGED"
)

func (c ItemCondition) Valid() bool {
	switch c {
	case ConditionNew, ConditionLikeNew, ConditionGood, ConditionDamaged:
		return true
	}
	return false
}

// ReturnItem is one product line within a return. Items are created
// atomically with their parent return, never re-parented and never updated.
type ReturnItem struct {
	Id           uuid.UUID
	ReturnId     uuid.UUID
	ProductName  string
	ProductSku   string
	Quantity     int
	UnitPrice    decimal.Decimal
	ReturnReason ReturnReason
	Condition    *ItemCondition
	CreatedAt    time.Time
}
