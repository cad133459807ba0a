package models

import (
	"time"

	"github.com/google/uuid"
)

// Party types. Milk suppliers are recorded as customers because they hold a
// running account with the dairy like any other counterparty.
const (
	PartyTypeCustomer = "Customer"
	PartyTypeSupplier = "Supplier"
	PartyTypeEmployee = "Employee"
)

// Party is a customer, supplier or employee with a running account balance.
// A positive opening balance means the party owes the business; a negative
// one means the business owes the party.
type Party struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	TenantID           uuid.UUID  `json:"tenant_id" db:"tenant_id"`
	Name               string     `json:"name" db:"name"`
	Type               string     `json:"type" db:"type"`
	ContactPhone       *string    `json:"contact_phone" db:"contact_phone"`
	Address            *string    `json:"address" db:"address"`
	OpeningBalance     float64    `json:"opening_balance" db:"opening_balance"`
	OpeningBalanceDate *time.Time `json:"opening_balance_date" db:"opening_balance_date"`
	CreatedAt          time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// PartySearchFilter holds search and filter criteria for party queries
type PartySearchFilter struct {
	Query     string  `json:"query,omitempty"`      // Name/phone substring search
	Type      *string `json:"type,omitempty"`       // Party type filter
	SortBy    string  `json:"sort_by,omitempty"`    // Sort field: name, created_at, opening_balance
	SortOrder string  `json:"sort_order,omitempty"` // asc, desc
	Limit     int     `json:"limit,omitempty"`
	Offset    int     `json:"offset,omitempty"`
}
