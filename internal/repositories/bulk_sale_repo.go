package repositories

import (
	"context"
	"time"

	"dairybook/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BulkSaleRepository interface {
	Create(ctx context.Context, bs *models.BulkSale) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.BulkSale, error)
	Update(ctx context.Context, bs *models.BulkSale) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.BulkSale, error)
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.BulkSale, error)
	ListByCustomerName(ctx context.Context, tenantID uuid.UUID, customerName string) ([]*models.BulkSale, error)
}

type bulkSaleRepo struct {
	db DB
}

func NewBulkSaleRepo(db DB) BulkSaleRepository {
	return &bulkSaleRepo{db: db}
}

const bulkSaleColumns = `id, tenant_id, date, customer_name, quantity_ltr, rate_per_ltr, total_amount, payment_type, created_at, updated_at`

func (r *bulkSaleRepo) Create(ctx context.Context, bs *models.BulkSale) error {
	query := `
		INSERT INTO bulk_sales (id, tenant_id, date, customer_name, quantity_ltr, rate_per_ltr, total_amount, payment_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, bs.ID, bs.TenantID, bs.Date, bs.CustomerName, bs.QuantityLtr, bs.RatePerLtr, bs.TotalAmount, bs.PaymentType)
	return err
}

func (r *bulkSaleRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.BulkSale, error) {
	query := `SELECT ` + bulkSaleColumns + ` FROM bulk_sales WHERE tenant_id = $1 AND id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *bulkSaleRepo) Update(ctx context.Context, bs *models.BulkSale) error {
	query := `
		UPDATE bulk_sales
		SET date = $1, customer_name = $2, quantity_ltr = $3, rate_per_ltr = $4, total_amount = $5, payment_type = $6, updated_at = NOW()
		WHERE tenant_id = $7 AND id = $8
	`
	_, err := r.db.Exec(ctx, query, bs.Date, bs.CustomerName, bs.QuantityLtr, bs.RatePerLtr, bs.TotalAmount, bs.PaymentType, bs.TenantID, bs.ID)
	return err
}

func (r *bulkSaleRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM bulk_sales WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *bulkSaleRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.BulkSale, error) {
	query := `
		SELECT ` + bulkSaleColumns + `
		FROM bulk_sales
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

func (r *bulkSaleRepo) ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.BulkSale, error) {
	query := `
		SELECT ` + bulkSaleColumns + `
		FROM bulk_sales
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

func (r *bulkSaleRepo) ListByCustomerName(ctx context.Context, tenantID uuid.UUID, customerName string) ([]*models.BulkSale, error) {
	query := `
		SELECT ` + bulkSaleColumns + `
		FROM bulk_sales
		WHERE tenant_id = $1 AND customer_name = $2
		ORDER BY date ASC
	`
	rows, err := r.db.Query(ctx, query, tenantID, customerName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *bulkSaleRepo) scanOne(row pgx.Row) (*models.BulkSale, error) {
	bs := &models.BulkSale{}
	err := row.Scan(&bs.ID, &bs.TenantID, &bs.Date, &bs.CustomerName, &bs.QuantityLtr, &bs.RatePerLtr, &bs.TotalAmount, &bs.PaymentType, &bs.CreatedAt, &bs.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return bs, nil
}

func (r *bulkSaleRepo) scanMany(rows pgx.Rows) ([]*models.BulkSale, error) {
	var bulkSales []*models.BulkSale
	for rows.Next() {
		bs := &models.BulkSale{}
		if err := rows.Scan(&bs.ID, &bs.TenantID, &bs.Date, &bs.CustomerName, &bs.QuantityLtr, &bs.RatePerLtr, &bs.TotalAmount, &bs.PaymentType, &bs.CreatedAt, &bs.UpdatedAt); err != nil {
			return nil, err
		}
		bulkSales = append(bulkSales, bs)
	}
	return bulkSales, nil
}
