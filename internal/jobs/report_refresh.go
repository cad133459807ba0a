package jobs

import (
	"context"
	"log"
	"time"

	"dairybook/internal/repositories"
	"dairybook/internal/services"

	"github.com/google/uuid"
)

// ReportRefreshService recomputes cached reports so that dashboard loads
// stay warm between writes.
type ReportRefreshService struct {
	reportService services.ReportService
	tenantRepo    repositories.TenantRepository
}

type ReportRefreshResult struct {
	TenantsProcessed int
	TenantsFailed    int
	LastRefreshAt    time.Time
}

func NewReportRefreshService(reportService services.ReportService, tenantRepo repositories.TenantRepository) *ReportRefreshService {
	return &ReportRefreshService{
		reportService: reportService,
		tenantRepo:    tenantRepo,
	}
}

func (r *ReportRefreshService) RefreshReportsForTenant(ctx context.Context, tenantID uuid.UUID) error {
	log.Printf("Refreshing reports for tenant: %s", tenantID.String())

	if err := r.reportService.RefreshTenantReports(ctx, tenantID); err != nil {
		log.Printf("Failed to refresh reports for tenant %s: %v", tenantID.String(), err)
		return err
	}
	return nil
}

func (r *ReportRefreshService) RefreshAllTenantsReports(ctx context.Context) (*ReportRefreshResult, error) {
	log.Println("Starting report refresh for all active tenants")

	tenants, err := r.tenantRepo.ListActive(ctx)
	if err != nil {
		log.Printf("Failed to get tenants for report refresh: %v", err)
		return nil, err
	}

	result := &ReportRefreshResult{LastRefreshAt: time.Now()}
	for _, tenant := range tenants {
		if err := r.RefreshReportsForTenant(ctx, tenant.ID); err != nil {
			result.TenantsFailed++
			continue
		}
		result.TenantsProcessed++
	}

	log.Printf("Completed report refresh: %d processed, %d failed",
		result.TenantsProcessed, result.TenantsFailed)
	return result, nil
}

// ScheduledReportRefresh is the entry point invoked by the job scheduler.
func (r *ReportRefreshService) ScheduledReportRefresh(ctx context.Context) error {
	startTime := time.Now()
	defer func() {
		log.Printf("Scheduled report refresh completed in %v", time.Since(startTime))
	}()

	_, err := r.RefreshAllTenantsReports(ctx)
	return err
}
