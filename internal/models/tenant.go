package models

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is one dairy business (company). Every record in the system is
// scoped to exactly one tenant.
type Tenant struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	OwnerName string    `json:"owner_name" db:"owner_name"`
	Phone     string    `json:"phone" db:"phone"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
