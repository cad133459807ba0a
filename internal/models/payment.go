package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment directions. "Paid" is money going out to a party, "Received" is
// money coming in from a party.
const (
	PaymentPaid     = "Paid"
	PaymentReceived = "Received"
)

// Payment is a cash/bank settlement against a party's running balance.
type Payment struct {
	ID        uuid.UUID `json:"id" db:"id"`
	TenantID  uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Date      time.Time `json:"date" db:"date"`
	PartyName string    `json:"party_name" db:"party_name"`
	Type      string    `json:"type" db:"type"`
	Amount    float64   `json:"amount" db:"amount"`
	Mode      *string   `json:"mode" db:"mode"`
	Notes     *string   `json:"notes" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
