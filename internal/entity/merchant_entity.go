package entity

import (
	"time"

	"github.com/google/uuid"
)

// Merchant is a business that issues return authorizations on the platform.
// ApiKey is assigned server-side at creation and must never appear in API
// responses.
type Merchant struct {
	Id        uuid.UUID
	Name      string
	Email     string
	ApiKey    string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt *time.Time
}
