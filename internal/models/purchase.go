package models

import (
	"time"

	"github.com/google/uuid"
)

// CategoryPashuAahar tags cattle-feed purchases. Feed product names are
// free text, so the profit-loss classifier discovers the feed vocabulary
// from purchases carrying this category.
const CategoryPashuAahar = "Pashu Aahar"

// CategoryGhee tags ghee stock purchases.
const CategoryGhee = "Ghee"

// Purchase is inward stock (ghee, cattle feed, supplies) from a supplier.
type Purchase struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TenantID     uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Date         time.Time `json:"date" db:"date"`
	SupplierName string    `json:"supplier_name" db:"supplier_name"`
	ProductName  string    `json:"product_name" db:"product_name"`
	Category     string    `json:"category" db:"category"`
	Unit         string    `json:"unit" db:"unit"`
	Quantity     float64   `json:"quantity" db:"quantity"`
	Rate         float64   `json:"rate" db:"rate"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
	PaymentType  string    `json:"payment_type" db:"payment_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
