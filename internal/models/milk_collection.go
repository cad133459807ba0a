package models

import (
	"time"

	"github.com/google/uuid"
)

// Milk collection shifts
const (
	ShiftMorning = "Morning"
	ShiftEvening = "Evening"
)

// MilkCollection records milk received from a supplier party. The party is
// referenced by name, which is the join key used in ledger reconstruction.
type MilkCollection struct {
	ID               uuid.UUID `json:"id" db:"id"`
	TenantID         uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Date             time.Time `json:"date" db:"date"`
	PartyName        string    `json:"party_name" db:"party_name"`
	Shift            string    `json:"shift" db:"shift"`
	QuantityLtr      float64   `json:"quantity_ltr" db:"quantity_ltr"`
	FatPct           *float64  `json:"fat_pct" db:"fat_pct"`
	RatePerLtr       float64   `json:"rate_per_ltr" db:"rate_per_ltr"`
	NetAmountPayable float64   `json:"net_amount_payable" db:"net_amount_payable"`
	Notes            *string   `json:"notes" db:"notes"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}
