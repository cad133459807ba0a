package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dairybook/internal/ledger"
	"dairybook/internal/models"
	"dairybook/internal/repositories"

	"github.com/google/uuid"
)

// CreatePartyRequest represents the party creation payload
type CreatePartyRequest struct {
	Name               string     `json:"name"`
	Type               string     `json:"type"`
	ContactPhone       *string    `json:"contact_phone"`
	Address            *string    `json:"address"`
	OpeningBalance     float64    `json:"opening_balance"`
	OpeningBalanceDate *time.Time `json:"opening_balance_date"`
}

// UpdatePartyRequest represents the party update payload
type UpdatePartyRequest struct {
	Name               *string    `json:"name"`
	Type               *string    `json:"type"`
	ContactPhone       *string    `json:"contact_phone"`
	Address            *string    `json:"address"`
	OpeningBalance     *float64   `json:"opening_balance"`
	OpeningBalanceDate *time.Time `json:"opening_balance_date"`
}

type PartyService interface {
	Create(ctx context.Context, tenantID uuid.UUID, req *CreatePartyRequest) (*models.Party, error)
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Party, error)
	Update(ctx context.Context, tenantID, id uuid.UUID, req *UpdatePartyRequest) (*models.Party, error)
	Delete(ctx context.Context, tenantID, id uuid.UUID) error
	List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Party, error)
	Search(ctx context.Context, tenantID uuid.UUID, filter *models.PartySearchFilter) ([]*models.Party, error)
	GetLedger(ctx context.Context, tenantID, partyID uuid.UUID) ([]ledger.Entry, error)
}

type partyService struct {
	partyRepo          repositories.PartyRepository
	milkCollectionRepo repositories.MilkCollectionRepository
	saleRepo           repositories.SaleRepository
	bulkSaleRepo       repositories.BulkSaleRepository
	purchaseRepo       repositories.PurchaseRepository
	paymentRepo        repositories.PaymentRepository
}

func NewPartyService(
	partyRepo repositories.PartyRepository,
	milkCollectionRepo repositories.MilkCollectionRepository,
	saleRepo repositories.SaleRepository,
	bulkSaleRepo repositories.BulkSaleRepository,
	purchaseRepo repositories.PurchaseRepository,
	paymentRepo repositories.PaymentRepository,
) PartyService {
	return &partyService{
		partyRepo:          partyRepo,
		milkCollectionRepo: milkCollectionRepo,
		saleRepo:           saleRepo,
		bulkSaleRepo:       bulkSaleRepo,
		purchaseRepo:       purchaseRepo,
		paymentRepo:        paymentRepo,
	}
}

var validPartyTypes = map[string]bool{
	models.PartyTypeCustomer: true,
	models.PartyTypeSupplier: true,
	models.PartyTypeEmployee: true,
}

func (s *partyService) Create(ctx context.Context, tenantID uuid.UUID, req *CreatePartyRequest) (*models.Party, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errors.New("party name is required")
	}
	if !validPartyTypes[req.Type] {
		return nil, fmt.Errorf("invalid party type %q", req.Type)
	}

	// Names are the ledger join key, so duplicates would merge two parties'
	// transaction histories.
	if existing, err := s.partyRepo.GetByName(ctx, tenantID, name); err == nil && existing != nil {
		return nil, fmt.Errorf("party %q already exists", name)
	}

	party := &models.Party{
		ID:                 uuid.New(),
		TenantID:           tenantID,
		Name:               name,
		Type:               req.Type,
		ContactPhone:       req.ContactPhone,
		Address:            req.Address,
		OpeningBalance:     req.OpeningBalance,
		OpeningBalanceDate: req.OpeningBalanceDate,
	}
	if err := s.partyRepo.Create(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

func (s *partyService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Party, error) {
	return s.partyRepo.GetByID(ctx, tenantID, id)
}

func (s *partyService) Update(ctx context.Context, tenantID, id uuid.UUID, req *UpdatePartyRequest) (*models.Party, error) {
	party, err := s.partyRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, errors.New("party name cannot be empty")
		}
		party.Name = name
	}
	if req.Type != nil {
		if !validPartyTypes[*req.Type] {
			return nil, fmt.Errorf("invalid party type %q", *req.Type)
		}
		party.Type = *req.Type
	}
	if req.ContactPhone != nil {
		party.ContactPhone = req.ContactPhone
	}
	if req.Address != nil {
		party.Address = req.Address
	}
	if req.OpeningBalance != nil {
		party.OpeningBalance = *req.OpeningBalance
	}
	if req.OpeningBalanceDate != nil {
		party.OpeningBalanceDate = req.OpeningBalanceDate
	}

	if err := s.partyRepo.Update(ctx, party); err != nil {
		return nil, err
	}
	return party, nil
}

func (s *partyService) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	return s.partyRepo.Delete(ctx, tenantID, id)
}

func (s *partyService) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Party, error) {
	return s.partyRepo.List(ctx, tenantID, limit, offset)
}

func (s *partyService) Search(ctx context.Context, tenantID uuid.UUID, filter *models.PartySearchFilter) ([]*models.Party, error) {
	return s.partyRepo.Search(ctx, tenantID, filter)
}

// GetLedger reconstructs the party's running-balance ledger by fetching all
// transaction streams that reference the party by name and replaying them
// through the accumulator. Milk collections are fetched only for
// Customer-type parties.
func (s *partyService) GetLedger(ctx context.Context, tenantID, partyID uuid.UUID) ([]ledger.Entry, error) {
	party, err := s.partyRepo.GetByID(ctx, tenantID, partyID)
	if err != nil {
		return nil, err
	}

	set := ledger.TransactionSet{}

	if party.Type == models.PartyTypeCustomer {
		set.MilkCollections, err = s.milkCollectionRepo.ListByPartyName(ctx, tenantID, party.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch milk collections: %w", err)
		}
	}

	set.Sales, err = s.saleRepo.ListByCustomerName(ctx, tenantID, party.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales: %w", err)
	}
	set.BulkSales, err = s.bulkSaleRepo.ListByCustomerName(ctx, tenantID, party.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bulk sales: %w", err)
	}
	set.Purchases, err = s.purchaseRepo.ListBySupplierName(ctx, tenantID, party.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch purchases: %w", err)
	}
	set.Payments, err = s.paymentRepo.ListByPartyName(ctx, tenantID, party.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	return ledger.BuildLedger(party, set), nil
}
