package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered account that owns submissions.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
}
