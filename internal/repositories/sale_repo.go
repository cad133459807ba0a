package repositories

import (
	"context"
	"time"

	"dairybook/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *models.Sale) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Sale, error)
	Update(ctx context.Context, sale *models.Sale) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Sale, error)
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.Sale, error)
	ListByCustomerName(ctx context.Context, tenantID uuid.UUID, customerName string) ([]*models.Sale, error)
}

type saleRepo struct {
	db DB
}

func NewSaleRepo(db DB) SaleRepository {
	return &saleRepo{db: db}
}

const saleColumns = `id, tenant_id, date, customer_name, product_name, unit, quantity, rate, total_amount, payment_type, created_at, updated_at`

func (r *saleRepo) Create(ctx context.Context, sale *models.Sale) error {
	query := `
		INSERT INTO sales (id, tenant_id, date, customer_name, product_name, unit, quantity, rate, total_amount, payment_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, sale.ID, sale.TenantID, sale.Date, sale.CustomerName, sale.ProductName, sale.Unit, sale.Quantity, sale.Rate, sale.TotalAmount, sale.PaymentType)
	return err
}

func (r *saleRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE tenant_id = $1 AND id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *saleRepo) Update(ctx context.Context, sale *models.Sale) error {
	query := `
		UPDATE sales
		SET date = $1, customer_name = $2, product_name = $3, unit = $4, quantity = $5, rate = $6, total_amount = $7, payment_type = $8, updated_at = NOW()
		WHERE tenant_id = $9 AND id = $10
	`
	_, err := r.db.Exec(ctx, query, sale.Date, sale.CustomerName, sale.ProductName, sale.Unit, sale.Quantity, sale.Rate, sale.TotalAmount, sale.PaymentType, sale.TenantID, sale.ID)
	return err
}

func (r *saleRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM sales WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *saleRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
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

func (r *saleRepo) ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
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

func (r *saleRepo) ListByCustomerName(ctx context.Context, tenantID uuid.UUID, customerName string) ([]*models.Sale, error) {
	query := `
		SELECT ` + saleColumns + `
		FROM sales
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

func (r *saleRepo) scanOne(row pgx.Row) (*models.Sale, error) {
	sale := &models.Sale{}
	err := row.Scan(&sale.ID, &sale.TenantID, &sale.Date, &sale.CustomerName, &sale.ProductName, &sale.Unit, &sale.Quantity, &sale.Rate, &sale.TotalAmount, &sale.PaymentType, &sale.CreatedAt, &sale.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return sale, nil
}

func (r *saleRepo) scanMany(rows pgx.Rows) ([]*models.Sale, error) {
	var sales []*models.Sale
	for rows.Next() {
		sale := &models.Sale{}
		if err := rows.Scan(&sale.ID, &sale.TenantID, &sale.Date, &sale.CustomerName, &sale.ProductName, &sale.Unit, &sale.Quantity, &sale.Rate, &sale.TotalAmount, &sale.PaymentType, &sale.CreatedAt, &sale.UpdatedAt); err != nil {
			return nil, err
		}
		sales = append(sales, sale)
	}
	return sales, nil
}
