package entity

import (
	"time"

	"github.com/google/uuid"
)

// Consumer is the end customer who initiates returns.
type Consumer struct {
	Id        uuid.UUID
	Email     string
	FirstName string
	LastName  string
	CreatedAt time.Time
}
