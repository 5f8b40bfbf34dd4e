package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateReturnItemRequest struct {
	ProductName  string          `json:"product_name" validate:"required,max=255"`
	ProductSku   string          `json:"product_sku" validate:"required,max=100"`
	Quantity     int             `json:"quantity" validate:"required,min=1"`
	UnitPrice    decimal.Decimal `json:"unit_price" validate:"required"`
	ReturnReason string          `json:"return_reason" validate:"required"`
	Condition    *string         `json:"condition"`
}

type CreateReturnRequest struct {
	Merchant          uuid.UUID                 `json:"merchant" validate:"required"`
	Consumer          uuid.UUID                 `json:"consumer" validate:"required"`
	OrderNumber       string                    `json:"order_number" validate:"required,max=100"`
	AuthorizationCode string                    `json:"authorization_code" validate:"required,max=50"`
	RefundAmount      decimal.Decimal           `json:"refund_amount" validate:"required"`
	Items             []CreateReturnItemRequest `json:"items" validate:"required,min=1,dive"`
}

// ListReturnsFilter carries the two supported query parameters.
type ListReturnsFilter struct {
	Status   string
	Merchant *uuid.UUID
}

type ReturnItemResponse struct {
	Id           uuid.UUID       `json:"id"`
	ProductName  string          `json:"product_name"`
	ProductSku   string          `json:"product_sku"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	ReturnReason string          `json:"return_reason"`
	Condition    *string         `json:"condition"`
	CreatedAt    time.Time       `json:"created_at"`
}

type ReturnResponse struct {
	Id                uuid.UUID            `json:"id"`
	Merchant          uuid.UUID            `json:"merchant"`
	Consumer          uuid.UUID            `json:"consumer"`
	OrderNumber       string               `json:"order_number"`
	Status            string               `json:"status"`
	AuthorizationCode string               `json:"authorization_code"`
	RefundAmount      decimal.Decimal      `json:"refund_amount"`
	Items             []ReturnItemResponse `json:"items"`
	InitiatedAt       time.Time            `json:"initiated_at"`
	CompletedAt       *time.Time           `json:"completed_at"`
	CreatedAt         time.Time            `json:"created_at"`
	UpdatedAt         *time.Time           `json:"updated_at"`
}

// ReturnStatusChangedMessage is the in-process notification payload published
// after a lifecycle transition commits.
type ReturnStatusChangedMessage struct {
	ReturnId          uuid.UUID `json:"return_id"`
	AuthorizationCode string    `json:"authorization_code"`
	Status            string    `json:"status"`
	ConsumerEmail     string    `json:"consumer_email"`
	ConsumerName      string    `json:"consumer_name"`
}
