package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMerchantRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email"`
}

// MerchantResponse deliberately omits the api_key column.
type MerchantResponse struct {
	Id        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at"`
}

type UpdateMerchantRequest struct {
	Id       uuid.UUID
	IsActive *bool `json:"is_active" validate:"required"`
}
