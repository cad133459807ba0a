package models

import (
	"time"

	"github.com/google/uuid"
)

// BulkSale is a wholesale milk sale to a dairy or vendor party.
type BulkSale struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TenantID     uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Date         time.Time `json:"date" db:"date"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	QuantityLtr  float64   `json:"quantity_ltr" db:"quantity_ltr"`
	RatePerLtr   float64   `json:"rate_per_ltr" db:"rate_per_ltr"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
	PaymentType  string    `json:"payment_type" db:"payment_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
