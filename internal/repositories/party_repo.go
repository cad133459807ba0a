package repositories

import (
	"context"
	"fmt"
	"strings"

	"dairybook/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PartyRepository interface {
	Create(ctx context.Context, party *models.Party) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Party, error)
	GetByName(ctx context.Context, tenantID uuid.UUID, name string) (*models.Party, error)
	Update(ctx context.Context, party *models.Party) error
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Party, error)
	ListAll(ctx context.Context, tenantID uuid.UUID) ([]*models.Party, error)
	Search(ctx context.Context, tenantID uuid.UUID, filter *models.PartySearchFilter) ([]*models.Party, error)
}

type partyRepo struct {
	db DB
}

func NewPartyRepo(db DB) PartyRepository {
	return &partyRepo{db: db}
}

const partyColumns = `id, tenant_id, name, type, contact_phone, address, opening_balance, opening_balance_date, created_at, updated_at`

func (r *partyRepo) Create(ctx context.Context, party *models.Party) error {
	query := `
		INSERT INTO parties (id, tenant_id, name, type, contact_phone, address, opening_balance, opening_balance_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, party.ID, party.TenantID, party.Name, party.Type, party.ContactPhone, party.Address, party.OpeningBalance, party.OpeningBalanceDate)
	return err
}

func (r *partyRepo) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE tenant_id = $1 AND id = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, tenantID, id))
}

func (r *partyRepo) GetByName(ctx context.Context, tenantID uuid.UUID, name string) (*models.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE tenant_id = $1 AND name = $2`
	return r.scanOne(r.db.QueryRow(ctx, query, tenantID, name))
}

func (r *partyRepo) Update(ctx context.Context, party *models.Party) error {
	query := `
		UPDATE parties
		SET name = $1, type = $2, contact_phone = $3, address = $4, opening_balance = $5, opening_balance_date = $6, updated_at = NOW()
		WHERE tenant_id = $7 AND id = $8
	`
	_, err := r.db.Exec(ctx, query, party.Name, party.Type, party.ContactPhone, party.Address, party.OpeningBalance, party.OpeningBalanceDate, party.TenantID, party.ID)
	return err
}

func (r *partyRepo) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	query := `DELETE FROM parties WHERE tenant_id = $1 AND id = $2`
	_, err := r.db.Exec(ctx, query, tenantID, id)
	return err
}

func (r *partyRepo) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Party, error) {
	query := `
		SELECT ` + partyColumns + `
		FROM parties
		WHERE tenant_id = $1
		ORDER BY name ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.db.Query(ctx, query, tenantID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// ListAll returns every party of the tenant; the dashboard aggregator needs
// all opening balances at once.
func (r *partyRepo) ListAll(ctx context.Context, tenantID uuid.UUID) ([]*models.Party, error) {
	query := `SELECT ` + partyColumns + ` FROM parties WHERE tenant_id = $1 ORDER BY name ASC`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

// Search performs filtered party lookup with validated sort fields
func (r *partyRepo) Search(ctx context.Context, tenantID uuid.UUID, filter *models.PartySearchFilter) ([]*models.Party, error) {
	if filter.Limit == 0 {
		filter.Limit = 50
	}

	queryBase := `SELECT ` + partyColumns + ` FROM parties WHERE tenant_id = $1`
	args := []any{tenantID}
	conditionCount := 1

	if filter.Query != "" {
		conditionCount++
		queryBase += fmt.Sprintf(` AND (name ILIKE $%d OR COALESCE(contact_phone, '') ILIKE $%d)`, conditionCount, conditionCount)
		args = append(args, "%"+filter.Query+"%")
	}
	if filter.Type != nil {
		conditionCount++
		queryBase += fmt.Sprintf(` AND type = $%d`, conditionCount)
		args = append(args, *filter.Type)
	}

	validSortFields := map[string]bool{"name": true, "created_at": true, "opening_balance": true}
	sortField := "name"
	if validSortFields[filter.SortBy] {
		sortField = filter.SortBy
	}
	sortOrder := "ASC"
	if strings.ToLower(filter.SortOrder) == "desc" {
		sortOrder = "DESC"
	}
	queryBase += fmt.Sprintf(` ORDER BY %s %s`, sortField, sortOrder)

	conditionCount++
	queryBase += fmt.Sprintf(` LIMIT $%d`, conditionCount)
	args = append(args, filter.Limit)
	if filter.Offset > 0 {
		conditionCount++
		queryBase += fmt.Sprintf(` OFFSET $%d`, conditionCount)
		args = append(args, filter.Offset)
	}

	rows, err := r.db.Query(ctx, queryBase, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanMany(rows)
}

func (r *partyRepo) scanOne(row pgx.Row) (*models.Party, error) {
	party := &models.Party{}
	err := row.Scan(&party.ID, &party.TenantID, &party.Name, &party.Type, &party.ContactPhone, &party.Address, &party.OpeningBalance, &party.OpeningBalanceDate, &party.CreatedAt, &party.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return party, nil
}

func (r *partyRepo) scanMany(rows pgx.Rows) ([]*models.Party, error) {
	var parties []*models.Party
	for rows.Next() {
		party := &models.Party{}
		if err := rows.Scan(&party.ID, &party.TenantID, &party.Name, &party.Type, &party.ContactPhone, &party.Address, &party.OpeningBalance, &party.OpeningBalanceDate, &party.CreatedAt, &party.UpdatedAt); err != nil {
			return nil, err
		}
		parties = append(parties, party)
	}
	return parties, nil
}
