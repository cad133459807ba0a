package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"dairybook/internal/caching"
	"dairybook/internal/ledger"
	"dairybook/internal/reports"
	"dairybook/internal/repositories"

	"github.com/google/uuid"
)

// DashboardReport bundles the period summary with its daily chart series
type DashboardReport struct {
	Summary     *reports.DashboardSummary `json:"summary"`
	ChartSeries []reports.ChartPoint      `json:"chart_series"`
}

// ProfitLossReport bundles the period P&L with its daily chart series
type ProfitLossReport struct {
	Summary     *reports.ProfitLossSummary `json:"summary"`
	ChartSeries []reports.PLChartPoint     `json:"chart_series"`
}

type ReportService interface {
	Dashboard(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) (*DashboardReport, error)
	ProfitLoss(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) (*ProfitLossReport, error)
	// RefreshTenantReports recomputes and re-caches the current-month
	// reports, used by the background scheduler.
	RefreshTenantReports(ctx context.Context, tenantID uuid.UUID) error
}

type reportService struct {
	partyRepo          repositories.PartyRepository
	milkCollectionRepo repositories.MilkCollectionRepository
	saleRepo           repositories.SaleRepository
	bulkSaleRepo       repositories.BulkSaleRepository
	purchaseRepo       repositories.PurchaseRepository
	paymentRepo        repositories.PaymentRepository
	cacheService       caching.CacheService
	cacheTTL           time.Duration
}

func NewReportService(
	partyRepo repositories.PartyRepository,
	milkCollectionRepo repositories.MilkCollectionRepository,
	saleRepo repositories.SaleRepository,
	bulkSaleRepo repositories.BulkSaleRepository,
	purchaseRepo repositories.PurchaseRepository,
	paymentRepo repositories.PaymentRepository,
	cacheService caching.CacheService,
	cacheTTL time.Duration,
) ReportService {
	return &reportService{
		partyRepo:          partyRepo,
		milkCollectionRepo: milkCollectionRepo,
		saleRepo:           saleRepo,
		bulkSaleRepo:       bulkSaleRepo,
		purchaseRepo:       purchaseRepo,
		paymentRepo:        paymentRepo,
		cacheService:       cacheService,
		cacheTTL:           cacheTTL,
	}
}

func rangeKey(startDate, endDate time.Time) string {
	return fmt.Sprintf("%s_%s", startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
}

// Dashboard returns the period aggregation for the tenant, serving from
// cache when possible. A missing tenant id yields an empty report rather
// than an error: the dashboard must never crash.
func (s *reportService) Dashboard(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) (*DashboardReport, error) {
	if tenantID == uuid.Nil {
		return &DashboardReport{Summary: &reports.DashboardSummary{}, ChartSeries: []reports.ChartPoint{}}, nil
	}

	key := rangeKey(startDate, endDate)
	if data, _ := s.cacheService.GetReport(ctx, tenantID, "dashboard", key); data != nil {
		cached := &DashboardReport{}
		if err := json.Unmarshal(data, cached); err == nil {
			return cached, nil
		}
		log.Printf("WARN: discarding unreadable cached dashboard for tenant %s", tenantID.String())
	}

	report, err := s.computeDashboard(ctx, tenantID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetReport(ctx, tenantID, "dashboard", key, report, s.cacheTTL); err != nil {
		log.Printf("WARN: failed to cache dashboard for tenant %s: %v", tenantID.String(), err)
	}
	return report, nil
}

func (s *reportService) computeDashboard(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) (*DashboardReport, error) {
	parties, err := s.partyRepo.ListAll(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch parties: %w", err)
	}
	set, err := s.fetchTransactions(ctx, tenantID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary, series := reports.AggregateDashboard(startDate, endDate, parties, set)
	return &DashboardReport{Summary: summary, ChartSeries: series}, nil
}

// ProfitLoss returns the period P&L for the tenant, serving from cache when
// possible.
func (s *reportService) ProfitLoss(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) (*ProfitLossReport, error) {
	if tenantID == uuid.Nil {
		return &ProfitLossReport{Summary: &reports.ProfitLossSummary{}, ChartSeries: []reports.PLChartPoint{}}, nil
	}

	key := rangeKey(startDate, endDate)
	if data, _ := s.cacheService.GetReport(ctx, tenantID, "profit-loss", key); data != nil {
		cached := &ProfitLossReport{}
		if err := json.Unmarshal(data, cached); err == nil {
			return cached, nil
		}
		log.Printf("WARN: discarding unreadable cached profit-loss for tenant %s", tenantID.String())
	}

	report, err := s.computeProfitLoss(ctx, tenantID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetReport(ctx, tenantID, "profit-loss", key, report, s.cacheTTL); err != nil {
		log.Printf("WARN: failed to cache profit-loss for tenant %s: %v", tenantID.String(), err)
	}
	return report, nil
}

func (s *reportService) computeProfitLoss(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) (*ProfitLossReport, error) {
	set, err := s.fetchTransactions(ctx, tenantID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	summary, series := reports.ComputeProfitLoss(startDate, endDate, set)
	return &ProfitLossReport{Summary: summary, ChartSeries: series}, nil
}

func (s *reportService) fetchTransactions(ctx context.Context, tenantID uuid.UUID, startDate, endDate time.Time) (ledger.TransactionSet, error) {
	set := ledger.TransactionSet{}
	var err error

	set.MilkCollections, err = s.milkCollectionRepo.ListByDateRange(ctx, tenantID, startDate, endDate)
	if err != nil {
		return set, fmt.Errorf("failed to fetch milk collections: %w", err)
	}
	set.Sales, err = s.saleRepo.ListByDateRange(ctx, tenantID, startDate, endDate)
	if err != nil {
		return set, fmt.Errorf("failed to fetch sales: %w", err)
	}
	set.BulkSales, err = s.bulkSaleRepo.ListByDateRange(ctx, tenantID, startDate, endDate)
	if err != nil {
		return set, fmt.Errorf("failed to fetch bulk sales: %w", err)
	}
	set.Purchases, err = s.purchaseRepo.ListByDateRange(ctx, tenantID, startDate, endDate)
	if err != nil {
		return set, fmt.Errorf("failed to fetch purchases: %w", err)
	}
	set.Payments, err = s.paymentRepo.ListByDateRange(ctx, tenantID, startDate, endDate)
	if err != nil {
		return set, fmt.Errorf("failed to fetch payments: %w", err)
	}

	return set, nil
}

// RefreshTenantReports recomputes the current month's reports and
// overwrites the cache, keeping frequent dashboard loads warm.
func (s *reportService) RefreshTenantReports(ctx context.Context, tenantID uuid.UUID) error {
	now := time.Now()
	startDate := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endDate := startDate.AddDate(0, 1, 0).Add(-time.Second)

	dashboard, err := s.computeDashboard(ctx, tenantID, startDate, endDate)
	if err != nil {
		return err
	}
	if err := s.cacheService.SetReport(ctx, tenantID, "dashboard", rangeKey(startDate, endDate), dashboard, s.cacheTTL); err != nil {
		return err
	}

	profitLoss, err := s.computeProfitLoss(ctx, tenantID, startDate, endDate)
	if err != nil {
		return err
	}
	return s.cacheService.SetReport(ctx, tenantID, "profit-loss", rangeKey(startDate, endDate), profitLoss, s.cacheTTL)
}
