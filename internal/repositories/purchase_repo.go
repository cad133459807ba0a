package repositories

import (
	"context"
	"time"

	"dairybook/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PurchaseRepository interface {
	Create(ctx context.Context, purchase *models.Purchase) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Purchase, error)
	Update(ctx context.Context, purchase *models.Purchase) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Purchase, error)
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.Purchase, error)
	ListBySupplierName(ctx context.Context, tenantID uuid.UUID, supplierName string) ([]*models.Purchase, error)
}

type purchaseRepo struct {
	db DB
}

func NewPurchaseRepo(db DB) PurchaseRepository {
	return &purchaseRepo{db: db}
}

const purchaseColumns = `id, tenant_id, date, supplier_name, product_name, category, unit, quantity, rate, total_amount, payment_type, created_at, updated_at`

func (r *purchaseRepo) Create(ctx context.Context, purchase *models.Purchase) error {
	query := `
		INSERT INTO purchases (id, tenant_id, date, supplier_name, product_name, category, unit, quantity, rate, total_amount, payment_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, purchase.ID, purchase.TenantID, purchase.Date, purchase.SupplierName, purchase.ProductName, purchase.Category, purchase.Unit, purchase.Quantity, purchase.Rate, purchase.TotalAmount, purchase.PaymentType)
	return err
}

func (r *purchaseRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE tenant_id = $1 AND id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *purchaseRepo) Update(ctx context.Context, purchase *models.Purchase) error {
	query := `
		UPDATE purchases
		SET date = $1, supplier_name = $2, product_name = $3, category = $4, unit = $5, quantity = $6, rate = $7, total_amount = $8, payment_type = $9, updated_at = NOW()
		WHERE tenant_id = $10 AND id = $11
	`
	_, err := r.db.Exec(ctx, query, purchase.Date, purchase.SupplierName, purchase.ProductName, purchase.Category, purchase.Unit, purchase.Quantity, purchase.Rate, purchase.TotalAmount, purchase.PaymentType, purchase.TenantID, purchase.ID)
	return err
}

func (r *purchaseRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM purchases WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *purchaseRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE tenant_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *purchaseRepo) ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE tenant_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`
	rows, err := r.db.Query(ctx, query, tenantID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *purchaseRepo) ListBySupplierName(ctx context.Context, tenantID uuid.UUID, supplierName string) ([]*models.Purchase, error) {
	query := `
		SELECT ` + purchaseColumns + `
		FROM purchases
		WHERE tenant_id = $1 AND supplier_name = $2
		ORDER BY date ASC
	`
	rows, err := r.db.Query(ctx, query, tenantID, supplierName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *purchaseRepo) scanOne(row pgx.Row) (*models.Purchase, error) {
	purchase := &models.Purchase{}
	err := row.Scan(&purchase.ID, &purchase.TenantID, &purchase.Date, &purchase.SupplierName, &purchase.ProductName, &purchase.Category, &purchase.Unit, &purchase.Quantity, &purchase.Rate, &purchase.TotalAmount, &purchase.PaymentType, &purchase.CreatedAt, &purchase.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

func (r *purchaseRepo) scanMany(rows pgx.Rows) ([]*models.Purchase, error) {
	var purchases []*models.Purchase
	for rows.Next() {
		purchase := &models.Purchase{}
		if err := rows.Scan(&purchase.ID, &purchase.TenantID, &purchase.Date, &purchase.SupplierName, &purchase.ProductName, &purchase.Category, &purchase.Unit, &purchase.Quantity, &purchase.Rate, &purchase.TotalAmount, &purchase.PaymentType, &purchase.CreatedAt, &purchase.UpdatedAt); err != nil {
			return nil, err
		}
		purchases = append(purchases, purchase)
	}
	return purchases, nil
}
