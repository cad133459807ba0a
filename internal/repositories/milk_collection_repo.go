package repositories

import (
	"context"
	"time"

	"dairybook/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MilkCollectionRepository interface {
	Create(ctx context.Context, mc *models.MilkCollection) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.MilkCollection, error)
	Update(ctx context.Context, mc *models.MilkCollection) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MilkCollection, error)
	ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.MilkCollection, error)
	ListByPartyName(ctx context.Context, tenantID uuid.UUID, partyName string) ([]*models.MilkCollection, error)
}

type milkCollectionRepo struct {
	db DB
}

func NewMilkCollectionRepo(db DB) MilkCollectionRepository {
	return &milkCollectionRepo{db: db}
}

const milkCollectionColumns = `id, tenant_id, date, party_name, shift, quantity_ltr, fat_pct, rate_per_ltr, net_amount_payable, notes, created_at, updated_at`

func (r *milkCollectionRepo) Create(ctx context.Context, mc *models.MilkCollection) error {
	query := `
		INSERT INTO milk_collections (id, tenant_id, date, party_name, shift, quantity_ltr, fat_pct, rate_per_ltr, net_amount_payable, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, mc.ID, mc.TenantID, mc.Date, mc.PartyName, mc.Shift, mc.QuantityLtr, mc.FatPct, mc.RatePerLtr, mc.NetAmountPayable, mc.Notes)
	return err
}

func (r *milkCollectionRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.MilkCollection, error) {
	query := `SELECT ` + milkCollectionColumns + ` FROM milk_collections WHERE tenant_id = $1 AND id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *milkCollectionRepo) Update(ctx context.Context, mc *models.MilkCollection) error {
	query := `
		UPDATE milk_collections
		SET date = $1, party_name = $2, shift = $3, quantity_ltr = $4, fat_pct = $5, rate_per_ltr = $6, net_amount_payable = $7, notes = $8, updated_at = NOW()
		WHERE tenant_id = $9 AND id = $10
	`
	_, err := r.db.Exec(ctx, query, mc.Date, mc.PartyName, mc.Shift, mc.QuantityLtr, mc.FatPct, mc.RatePerLtr, mc.NetAmountPayable, mc.Notes, mc.TenantID, mc.ID)
	return err
}

func (r *milkCollectionRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM milk_collections WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *milkCollectionRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MilkCollection, error) {
	query := `
		SELECT ` + milkCollectionColumns + `
		FROM milk_collections
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

func (r *milkCollectionRepo) ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.MilkCollection, error) {
	query := `
		SELECT ` + milkCollectionColumns + `
		FROM milk_collections
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

func (r *milkCollectionRepo) ListByPartyName(ctx context.Context, tenantID uuid.UUID, partyName string) ([]*models.MilkCollection, error) {
	query := `
		SELECT ` + milkCollectionColumns + `
		FROM milk_collections
		WHERE tenant_id = $1 AND party_name = $2
		ORDER BY date ASC
	`
	rows, err := r.db.Query(ctx, query, tenantID, partyName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *milkCollectionRepo) scanOne(row pgx.Row) (*models.MilkCollection, error) {
	mc := &models.MilkCollection{}
	err := row.Scan(&mc.ID, &mc.TenantID, &mc.Date, &mc.PartyName, &mc.Shift, &mc.QuantityLtr, &mc.FatPct, &mc.RatePerLtr, &mc.NetAmountPayable, &mc.Notes, &mc.CreatedAt, &mc.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return mc, nil
}

func (r *milkCollectionRepo) scanMany(rows pgx.Rows) ([]*models.MilkCollection, error) {
	var collections []*models.MilkCollection
	for rows.Next() {
		mc := &models.MilkCollection{}
		if err := rows.Scan(&mc.ID, &mc.TenantID, &mc.Date, &mc.PartyName, &mc.Shift, &mc.QuantityLtr, &mc.FatPct, &mc.RatePerLtr, &mc.NetAmountPayable, &mc.Notes, &mc.CreatedAt, &mc.UpdatedAt); err != nil {
			return nil, err
		}
		collections = append(collections, mc)
	}
	return collections, nil
}
