package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"dairybook/internal/caching"
	"dairybook/internal/config"
	"dairybook/internal/handlers"
	"dairybook/internal/jobs"
	"dairybook/internal/jobs/background"
	"dairybook/internal/middleware"
	"dairybook/internal/repositories"
	"dairybook/internal/services"
	"dairybook/pkg/database"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create database connection pool
	pool, err := database.NewPool(cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// JWT configuration
	jwtSecret := cfg.Auth.JWTSecret
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generate random secret for development
		log.Printf("WARNING: Using generated JWT secret: %s", jwtSecret)
	}

	// Create cache service
	cacheSvc := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)

	// Create repositories
	tenantRepo := repositories.NewTenantRepo(pool)
	partyRepo := repositories.NewPartyRepo(pool)
	milkCollectionRepo := repositories.NewMilkCollectionRepo(pool)
	saleRepo := repositories.NewSaleRepo(pool)
	bulkSaleRepo := repositories.NewBulkSaleRepo(pool)
	purchaseRepo := repositories.NewPurchaseRepo(pool)
	paymentRepo := repositories.NewPaymentRepo(pool)

	// Create services
	partySvc := services.NewPartyService(partyRepo, milkCollectionRepo, saleRepo, bulkSaleRepo, purchaseRepo, paymentRepo)
	reportSvc := services.NewReportService(
		partyRepo, milkCollectionRepo, saleRepo, bulkSaleRepo, purchaseRepo, paymentRepo,
		cacheSvc, time.Duration(cfg.Reports.CacheTTLMinutes)*time.Minute,
	)

	// Create handlers
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)
	partyHandlers := handlers.NewPartyHandlers(partySvc)
	milkCollectionHandlers := handlers.NewMilkCollectionHandlers(milkCollectionRepo, cacheSvc)
	saleHandlers := handlers.NewSaleHandlers(saleRepo, cacheSvc)
	bulkSaleHandlers := handlers.NewBulkSaleHandlers(bulkSaleRepo, cacheSvc)
	purchaseHandlers := handlers.NewPurchaseHandlers(purchaseRepo, cacheSvc)
	paymentHandlers := handlers.NewPaymentHandlers(paymentRepo, cacheSvc)
	reportHandlers := handlers.NewReportHandlers(reportSvc)

	// Background report refresh
	refreshSvc := jobs.NewReportRefreshService(reportSvc, tenantRepo)
	scheduler := background.NewJobScheduler(refreshSvc, tenantRepo,
		time.Duration(cfg.Reports.RefreshIntervalMinutes)*time.Minute)
	if err := scheduler.Start(); err != nil {
		log.Printf("Failed to start job scheduler: %v", err)
	}
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// JWT middleware configuration
	jwtConfig := echojwt.Config{
		SigningKey: []byte(jwtSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(middleware.JWTCustomClaims)
		},
		SuccessHandler: middleware.TenantContext,
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(401, "Invalid token")
		},
	}

	// Protected routes (require JWT)
	v1 := e.Group("/v1")
	v1.Use(echojwt.WithConfig(jwtConfig))

	// Party routes
	v1.GET("/parties", partyHandlers.ListParties)
	v1.POST("/parties", partyHandlers.CreateParty)
	v1.GET("/parties/search", partyHandlers.SearchParties)
	v1.GET("/parties/:id", partyHandlers.GetParty)
	v1.PUT("/parties/:id", partyHandlers.UpdateParty)
	v1.DELETE("/parties/:id", partyHandlers.DeleteParty)
	v1.GET("/parties/:id/ledger", partyHandlers.GetPartyLedger)

	// Milk collection routes
	v1.GET("/milk-collections", milkCollectionHandlers.ListMilkCollections)
	v1.POST("/milk-collections", milkCollectionHandlers.CreateMilkCollection)
	v1.GET("/milk-collections/:id", milkCollectionHandlers.GetMilkCollection)
	v1.PUT("/milk-collections/:id", milkCollectionHandlers.UpdateMilkCollection)
	v1.DELETE("/milk-collections/:id", milkCollectionHandlers.DeleteMilkCollection)

	// Sale routes
	v1.GET("/sales", saleHandlers.ListSales)
	v1.POST("/sales", saleHandlers.CreateSale)
	v1.GET("/sales/:id", saleHandlers.GetSale)
	v1.PUT("/sales/:id", saleHandlers.UpdateSale)
	v1.DELETE("/sales/:id", saleHandlers.DeleteSale)

	// Bulk sale routes
	v1.GET("/bulk-sales", bulkSaleHandlers.ListBulkSales)
	v1.POST("/bulk-sales", bulkSaleHandlers.CreateBulkSale)
	v1.GET("/bulk-sales/:id", bulkSaleHandlers.GetBulkSale)
	v1.PUT("/bulk-sales/:id", bulkSaleHandlers.UpdateBulkSale)
	v1.DELETE("/bulk-sales/:id", bulkSaleHandlers.DeleteBulkSale)

	// Purchase routes
	v1.GET("/purchases", purchaseHandlers.ListPurchases)
	v1.POST("/purchases", purchaseHandlers.CreatePurchase)
	v1.GET("/purchases/:id", purchaseHandlers.GetPurchase)
	v1.PUT("/purchases/:id", purchaseHandlers.UpdatePurchase)
	v1.DELETE("/purchases/:id", purchaseHandlers.DeletePurchase)

	// Payment routes
	v1.GET("/payments", paymentHandlers.ListPayments)
	v1.POST("/payments", paymentHandlers.CreatePayment)
	v1.GET("/payments/:id", paymentHandlers.GetPayment)
	v1.PUT("/payments/:id", paymentHandlers.UpdatePayment)
	v1.DELETE("/payments/:id", paymentHandlers.DeletePayment)

	// Report routes
	v1.GET("/reports/dashboard", reportHandlers.GetDashboard)
	v1.GET("/reports/profit-loss", reportHandlers.GetProfitLoss)

	log.Printf("Dairybook server v%s starting on port %d", version, cfg.Server.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Server.Port)))
}
