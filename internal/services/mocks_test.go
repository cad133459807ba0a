package services

import (
	"context"
	"time"

	"dairybook/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockPartyRepository mocks the PartyRepository interface for testing
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) Create(ctx context.Context, party *models.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Party, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Party), args.Error(1)
}

func (m *MockPartyRepository) GetByName(ctx context.Context, tenantID uuid.UUID, name string) (*models.Party, error) {
	args := m.Called(ctx, tenantID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Party), args.Error(1)
}

func (m *MockPartyRepository) Update(ctx context.Context, party *models.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockPartyRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Party, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Party), args.Error(1)
}

func (m *MockPartyRepository) ListAll(ctx context.Context, tenantID uuid.UUID) ([]*models.Party, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).([]*models.Party), args.Error(1)
}

func (m *MockPartyRepository) Search(ctx context.Context, tenantID uuid.UUID, filter *models.PartySearchFilter) ([]*models.Party, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).([]*models.Party), args.Error(1)
}

// MockMilkCollectionRepository mocks the MilkCollectionRepository interface for testing
type MockMilkCollectionRepository struct {
	mock.Mock
}

func (m *MockMilkCollectionRepository) Create(ctx context.Context, mc *models.MilkCollection) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}

func (m *MockMilkCollectionRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.MilkCollection, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MilkCollection), args.Error(1)
}

func (m *MockMilkCollectionRepository) Update(ctx context.Context, mc *models.MilkCollection) error {
	args := m.Called(ctx, mc)
	return args.Error(0)
}

func (m *MockMilkCollectionRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockMilkCollectionRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.MilkCollection, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.MilkCollection), args.Error(1)
}

func (m *MockMilkCollectionRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.MilkCollection, error) {
	args := m.Called(ctx, tenantID, startDate, endDate)
	return args.Get(0).([]*models.MilkCollection), args.Error(1)
}

func (m *MockMilkCollectionRepository) ListByPartyName(ctx context.Context, tenantID uuid.UUID, partyName string) ([]*models.MilkCollection, error) {
	args := m.Called(ctx, tenantID, partyName)
	return args.Get(0).([]*models.MilkCollection), args.Error(1)
}

// MockSaleRepository mocks the SaleRepository interface for testing
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) Create(ctx context.Context, sale *models.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Sale, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Sale), args.Error(1)
}

func (m *MockSaleRepository) Update(ctx context.Context, sale *models.Sale) error {
	args := m.Called(ctx, sale)
	return args.Error(0)
}

func (m *MockSaleRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockSaleRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Sale, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.Sale, error) {
	args := m.Called(ctx, tenantID, startDate, endDate)
	return args.Get(0).([]*models.Sale), args.Error(1)
}

func (m *MockSaleRepository) ListByCustomerName(ctx context.Context, tenantID uuid.UUID, customerName string) ([]*models.Sale, error) {
	args := m.Called(ctx, tenantID, customerName)
	return args.Get(0).([]*models.Sale), args.Error(1)
}

// MockBulkSaleRepository mocks the BulkSaleRepository interface for testing
type MockBulkSaleRepository struct {
	mock.Mock
}

func (m *MockBulkSaleRepository) Create(ctx context.Context, bs *models.BulkSale) error {
	args := m.Called(ctx, bs)
	return args.Error(0)
}

func (m *MockBulkSaleRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.BulkSale, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BulkSale), args.Error(1)
}

func (m *MockBulkSaleRepository) Update(ctx context.Context, bs *models.BulkSale) error {
	args := m.Called(ctx, bs)
	return args.Error(0)
}

func (m *MockBulkSaleRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockBulkSaleRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.BulkSale, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.BulkSale), args.Error(1)
}

func (m *MockBulkSaleRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.BulkSale, error) {
	args := m.Called(ctx, tenantID, startDate, endDate)
	return args.Get(0).([]*models.BulkSale), args.Error(1)
}

func (m *MockBulkSaleRepository) ListByCustomerName(ctx context.Context, tenantID uuid.UUID, customerName string) ([]*models.BulkSale, error) {
	args := m.Called(ctx, tenantID, customerName)
	return args.Get(0).([]*models.BulkSale), args.Error(1)
}

// MockPurchaseRepository mocks the PurchaseRepository interface for testing
type MockPurchaseRepository struct {
	mock.Mock
}

func (m *MockPurchaseRepository) Create(ctx context.Context, purchase *models.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Purchase, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) Update(ctx context.Context, purchase *models.Purchase) error {
	args := m.Called(ctx, purchase)
	return args.Error(0)
}

func (m *MockPurchaseRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockPurchaseRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Purchase, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.Purchase, error) {
	args := m.Called(ctx, tenantID, startDate, endDate)
	return args.Get(0).([]*models.Purchase), args.Error(1)
}

func (m *MockPurchaseRepository) ListBySupplierName(ctx context.Context, tenantID uuid.UUID, supplierName string) ([]*models.Purchase, error) {
	args := m.Called(ctx, tenantID, supplierName)
	return args.Get(0).([]*models.Purchase), args.Error(1)
}

// MockPaymentRepository mocks the PaymentRepository interface for testing
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) Create(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Payment, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) Update(ctx context.Context, payment *models.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentRepository) Delete(ctx context.Context, tenantID, id uuid.UUID) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockPaymentRepository) List(ctx context.Context, tenantID uuid.UUID, limit, offset int) ([]*models.Payment, error) {
	args := m.Called(ctx, tenantID, limit, offset)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByDateRange(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) ([]*models.Payment, error) {
	args := m.Called(ctx, tenantID, startDate, endDate)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListByPartyName(ctx context.Context, tenantID uuid.UUID, partyName string) ([]*models.Payment, error) {
	args := m.Called(ctx, tenantID, partyName)
	return args.Get(0).([]*models.Payment), args.Error(1)
}

// MockCacheService mocks the caching.CacheService interface for testing
type MockCacheService struct {
	mock.Mock
}

func (m *MockCacheService) GetReport(ctx context.Context, tenantID uuid.UUID, report, rangeKey string) ([]byte, error) {
	args := m.Called(ctx, tenantID, report, rangeKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheService) SetReport(ctx context.Context, tenantID uuid.UUID, report, rangeKey string, payload interface{}, ttl time.Duration) error {
	args := m.Called(ctx, tenantID, report, rangeKey, payload, ttl)
	return args.Error(0)
}

func (m *MockCacheService) InvalidateTenantReports(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

func (m *MockCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheService) GetString(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheService) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheService) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
