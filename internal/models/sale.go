package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment settlement types shared by sales, purchases and bulk sales.
const (
	PaymentTypeCash   = "Cash"
	PaymentTypeCredit = "Credit"
)

// Product units used for product-line classification.
const (
	UnitLtr = "Ltr"
	UnitKg  = "Kg"
	UnitBag = "Bag"
)

// Sale is a retail counter sale (milk, ghee or cattle feed) to a customer.
type Sale struct {
	ID           uuid.UUID `json:"id" db:"id"`
	TenantID     uuid.UUID `json:"tenant_id" db:"tenant_id"`
	Date         time.Time `json:"date" db:"date"`
	CustomerName string    `json:"customer_name" db:"customer_name"`
	ProductName  string    `json:"product_name" db:"product_name"`
	Unit         string    `json:"unit" db:"unit"`
	Quantity     float64   `json:"quantity" db:"quantity"`
	Rate         float64   `json:"rate" db:"rate"`
	TotalAmount  float64   `json:"total_amount" db:"total_amount"`
	PaymentType  string    `json:"payment_type" db:"payment_type"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
