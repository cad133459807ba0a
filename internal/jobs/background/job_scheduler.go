package background

import (
	"context"
	"log"
	"sync"
	"time"

	"dairybook/internal/jobs"
	"dairybook/internal/repositories"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
)

// JobScheduler manages recurring background jobs
type JobScheduler struct {
	scheduler       gocron.Scheduler
	refreshSvc      *jobs.ReportRefreshService
	tenantRepo      repositories.TenantRepository
	refreshInterval time.Duration
	registered      map[string]gocron.Job
	mu              sync.RWMutex
}

// NewJobScheduler creates a new job scheduler
func NewJobScheduler(refreshSvc *jobs.ReportRefreshService, tenantRepo repositories.TenantRepository,
	refreshInterval time.Duration) *JobScheduler {

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	js := &JobScheduler{
		scheduler:       scheduler,
		refreshSvc:      refreshSvc,
		tenantRepo:      tenantRepo,
		refreshInterval: refreshInterval,
		registered:      make(map[string]gocron.Job),
	}

	js.registerJobs()

	return js
}

// Start starts the job scheduler
func (js *JobScheduler) Start() error {
	log.Printf("Starting background job scheduler")
	js.scheduler.Start()
	return nil
}

// Stop stops the job scheduler
func (js *JobScheduler) Stop() error {
	log.Printf("Stopping background job scheduler")
	return js.scheduler.Shutdown()
}

// registerJobs registers all background jobs
func (js *JobScheduler) registerJobs() {
	refreshJob, err := js.scheduler.NewJob(
		gocron.DurationJob(js.refreshInterval),
		gocron.NewTask(js.refreshTenantReports, context.Background()),
		gocron.WithName("tenant-report-refresh"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		log.Printf("Failed to create report refresh job: %v", err)
	} else {
		js.registered["report-refresh"] = refreshJob
	}

	sweepJob, err := js.scheduler.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(js.sweepCache),
		gocron.WithName("cache-sweep"),
	)
	if err != nil {
		log.Printf("Failed to create cache sweep job: %v", err)
	} else {
		js.registered["cache-sweep"] = sweepJob
	}

	log.Printf("Registered %d background jobs", len(js.registered))
}

// sweepCache is a periodic checkpoint; Redis expires report keys by TTL,
// so there is nothing to delete here yet.
func (js *JobScheduler) sweepCache() error {
	log.Printf("Cache sweep completed (report keys expire by TTL)")
	return nil
}

// refreshTenantReports refreshes cached reports for all active tenants
func (js *JobScheduler) refreshTenantReports(ctx context.Context) error {
	log.Printf("Starting tenant report refresh")

	tenants, err := js.tenantRepo.ListActive(ctx)
	if err != nil {
		log.Printf("Failed to get tenants for report refresh: %v", err)
		return err
	}

	// Process tenants in parallel with concurrency control
	semaphore := make(chan struct{}, 5)
	var wg sync.WaitGroup

	for _, tenant := range tenants {
		wg.Add(1)
		go func(tenantID uuid.UUID) {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := js.refreshSvc.RefreshReportsForTenant(ctx, tenantID); err != nil {
				log.Printf("Failed to refresh reports for tenant %s: %v", tenantID.String(), err)
			}
		}(tenant.ID)
	}

	wg.Wait()
	log.Printf("Completed tenant report refresh for %d tenants", len(tenants))
	return nil
}

// AddJob adds a custom job to the scheduler
func (js *JobScheduler) AddJob(name string, interval time.Duration, taskFn interface{}, params ...interface{}) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	job, err := js.scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(taskFn, params...),
		gocron.WithName(name),
	)
	if err != nil {
		return err
	}

	js.registered[name] = job
	log.Printf("Added custom job: %s", name)
	return nil
}

// RemoveJob removes a job from the scheduler
func (js *JobScheduler) RemoveJob(name string) error {
	js.mu.Lock()
	defer js.mu.Unlock()

	if job, exists := js.registered[name]; exists {
		err := js.scheduler.RemoveJob(job.ID())
		delete(js.registered, name)
		return err
	}

	return nil
}

// GetJobStatus returns information about scheduled jobs
func (js *JobScheduler) GetJobStatus() map[string]interface{} {
	js.mu.RLock()
	defer js.mu.RUnlock()

	names := make([]string, 0, len(js.registered))
	for name := range js.registered {
		names = append(names, name)
	}

	return map[string]interface{}{
		"total_jobs": len(js.registered),
		"jobs":       names,
	}
}
