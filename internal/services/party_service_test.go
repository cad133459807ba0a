package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"dairybook/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PartyServiceTestSuite struct {
	suite.Suite
	partyRepo          *MockPartyRepository
	milkCollectionRepo *MockMilkCollectionRepository
	saleRepo           *MockSaleRepository
	bulkSaleRepo       *MockBulkSaleRepository
	purchaseRepo       *MockPurchaseRepository
	paymentRepo        *MockPaymentRepository
	service            PartyService
	tenantID           uuid.UUID
	ctx                context.Context
}

func (s *PartyServiceTestSuite) SetupTest() {
	s.partyRepo = new(MockPartyRepository)
	s.milkCollectionRepo = new(MockMilkCollectionRepository)
	s.saleRepo = new(MockSaleRepository)
	s.bulkSaleRepo = new(MockBulkSaleRepository)
	s.purchaseRepo = new(MockPurchaseRepository)
	s.paymentRepo = new(MockPaymentRepository)
	s.service = NewPartyService(s.partyRepo, s.milkCollectionRepo, s.saleRepo, s.bulkSaleRepo, s.purchaseRepo, s.paymentRepo)
	s.tenantID = uuid.New()
	s.ctx = context.Background()
}

func (s *PartyServiceTestSuite) TestCreateParty_Success() {
	s.partyRepo.On("GetByName", s.ctx, s.tenantID, "Ramesh").Return(nil, errors.New("not found"))
	s.partyRepo.On("Create", s.ctx, mock.AnythingOfType("*models.Party")).Return(nil)

	party, err := s.service.Create(s.ctx, s.tenantID, &CreatePartyRequest{
		Name:           "  Ramesh  ",
		Type:           models.PartyTypeCustomer,
		OpeningBalance: 500,
	})

	s.NoError(err)
	s.Equal("Ramesh", party.Name)
	s.Equal(s.tenantID, party.TenantID)
	s.Equal(500.0, party.OpeningBalance)
	s.partyRepo.AssertExpectations(s.T())
}

func (s *PartyServiceTestSuite) TestCreateParty_EmptyName() {
	_, err := s.service.Create(s.ctx, s.tenantID, &CreatePartyRequest{Name: "   ", Type: models.PartyTypeCustomer})
	s.Error(err)
	s.partyRepo.AssertNotCalled(s.T(), "Create")
}

func (s *PartyServiceTestSuite) TestCreateParty_InvalidType() {
	_, err := s.service.Create(s.ctx, s.tenantID, &CreatePartyRequest{Name: "Ramesh", Type: "Vendor"})
	s.Error(err)
}

func (s *PartyServiceTestSuite) TestCreateParty_DuplicateName() {
	existing := &models.Party{ID: uuid.New(), Name: "Ramesh"}
	s.partyRepo.On("GetByName", s.ctx, s.tenantID, "Ramesh").Return(existing, nil)

	_, err := s.service.Create(s.ctx, s.tenantID, &CreatePartyRequest{Name: "Ramesh", Type: models.PartyTypeCustomer})
	s.Error(err)
	s.Contains(err.Error(), "already exists")
	s.partyRepo.AssertNotCalled(s.T(), "Create")
}

func (s *PartyServiceTestSuite) TestUpdateParty_PartialFields() {
	id := uuid.New()
	existing := &models.Party{ID: id, TenantID: s.tenantID, Name: "Ramesh", Type: models.PartyTypeCustomer, OpeningBalance: 100}
	s.partyRepo.On("GetByID", s.ctx, s.tenantID, id).Return(existing, nil)
	s.partyRepo.On("Update", s.ctx, mock.AnythingOfType("*models.Party")).Return(nil)

	newBalance := 250.0
	party, err := s.service.Update(s.ctx, s.tenantID, id, &UpdatePartyRequest{OpeningBalance: &newBalance})

	s.NoError(err)
	s.Equal("Ramesh", party.Name)
	s.Equal(250.0, party.OpeningBalance)
}

func (s *PartyServiceTestSuite) TestUpdateParty_InvalidType() {
	id := uuid.New()
	existing := &models.Party{ID: id, TenantID: s.tenantID, Name: "Ramesh", Type: models.PartyTypeCustomer}
	s.partyRepo.On("GetByID", s.ctx, s.tenantID, id).Return(existing, nil)

	badType := "Vendor"
	_, err := s.service.Update(s.ctx, s.tenantID, id, &UpdatePartyRequest{Type: &badType})
	s.Error(err)
	s.partyRepo.AssertNotCalled(s.T(), "Update")
}

func (s *PartyServiceTestSuite) TestGetLedger_CustomerReplaysAllStreams() {
	id := uuid.New()
	openingDate := time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
	party := &models.Party{
		ID: id, TenantID: s.tenantID, Name: "Ramesh", Type: models.PartyTypeCustomer,
		OpeningBalance: 500, OpeningBalanceDate: &openingDate,
	}
	s.partyRepo.On("GetByID", s.ctx, s.tenantID, id).Return(party, nil)
	s.milkCollectionRepo.On("ListByPartyName", s.ctx, s.tenantID, "Ramesh").Return([]*models.MilkCollection{}, nil)
	s.saleRepo.On("ListByCustomerName", s.ctx, s.tenantID, "Ramesh").Return([]*models.Sale{
		{Date: time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC), CustomerName: "Ramesh", ProductName: "Milk", Unit: models.UnitLtr, Quantity: 5, TotalAmount: 200},
	}, nil)
	s.bulkSaleRepo.On("ListByCustomerName", s.ctx, s.tenantID, "Ramesh").Return([]*models.BulkSale{}, nil)
	s.purchaseRepo.On("ListBySupplierName", s.ctx, s.tenantID, "Ramesh").Return([]*models.Purchase{}, nil)
	s.paymentRepo.On("ListByPartyName", s.ctx, s.tenantID, "Ramesh").Return([]*models.Payment{
		{Date: time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), PartyName: "Ramesh", Type: models.PaymentReceived, Amount: 100},
	}, nil)

	entries, err := s.service.GetLedger(s.ctx, s.tenantID, id)

	s.NoError(err)
	s.Len(entries, 3)
	s.Equal(500.0, entries[0].Balance)
	s.Equal(700.0, entries[1].Balance)
	s.Equal(600.0, entries[2].Balance)
}

func (s *PartyServiceTestSuite) TestGetLedger_SupplierSkipsMilkCollections() {
	id := uuid.New()
	party := &models.Party{ID: id, TenantID: s.tenantID, Name: "Feeds Co", Type: models.PartyTypeSupplier}
	s.partyRepo.On("GetByID", s.ctx, s.tenantID, id).Return(party, nil)
	s.saleRepo.On("ListByCustomerName", s.ctx, s.tenantID, "Feeds Co").Return([]*models.Sale{}, nil)
	s.bulkSaleRepo.On("ListByCustomerName", s.ctx, s.tenantID, "Feeds Co").Return([]*models.BulkSale{}, nil)
	s.purchaseRepo.On("ListBySupplierName", s.ctx, s.tenantID, "Feeds Co").Return([]*models.Purchase{
		{Date: time.Date(2025, time.April, 2, 0, 0, 0, 0, time.UTC), SupplierName: "Feeds Co", ProductName: "Churi", Unit: models.UnitBag, Quantity: 4, TotalAmount: 4800},
	}, nil)
	s.paymentRepo.On("ListByPartyName", s.ctx, s.tenantID, "Feeds Co").Return([]*models.Payment{}, nil)

	entries, err := s.service.GetLedger(s.ctx, s.tenantID, id)

	s.NoError(err)
	s.Len(entries, 1)
	s.Equal(-4800.0, entries[0].Balance)
	s.milkCollectionRepo.AssertNotCalled(s.T(), "ListByPartyName")
}

func (s *PartyServiceTestSuite) TestGetLedger_PartyNotFound() {
	id := uuid.New()
	s.partyRepo.On("GetByID", s.ctx, s.tenantID, id).Return(nil, errors.New("no rows"))

	_, err := s.service.GetLedger(s.ctx, s.tenantID, id)
	s.Error(err)
}

func TestPartyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyServiceTestSuite))
}
