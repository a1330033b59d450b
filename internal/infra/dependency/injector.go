// Package dependency provides dependency injection for the application.
package dependency

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/config"
	"github.com/finance-planner/backend/internal/application/usecase/installment"
	"github.com/finance-planner/backend/internal/application/usecase/investment"
	"github.com/finance-planner/backend/internal/application/usecase/ledger"
	"github.com/finance-planner/backend/internal/application/usecase/patrimony"
	"github.com/finance-planner/backend/internal/application/usecase/recurrence"
	"github.com/finance-planner/backend/internal/application/usecase/simulation"
	"github.com/finance-planner/backend/internal/infra/server/router"
	"github.com/finance-planner/backend/internal/integration/cache"
	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/finance-planner/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Injector {
	// Create repositories
	obligationRepo := persistence.NewRecurringObligationRepository(db)
	purchaseRepo := persistence.NewInstallmentPurchaseRepository(db)
	ledgerRepo := persistence.NewLedgerRepository(db)
	investmentRepo := persistence.NewInvestmentRepository(db)
	assetRepo := persistence.NewPatrimonyAssetRepository(db)

	// Create cache
	seriesCache := cache.NewPatrimonySeriesCache(redisClient, cfg.Projection.HistoryCacheTTL)

	// Create recurrence use cases
	createObligationUseCase := recurrence.NewCreateObligationUseCase(obligationRepo, ledgerRepo)
	listObligationsUseCase := recurrence.NewListObligationsUseCase(obligationRepo)
	updateObligationUseCase := recurrence.NewUpdateObligationUseCase(obligationRepo)
	setObligationActiveUseCase := recurrence.NewSetObligationActiveUseCase(obligationRepo)
	deleteObligationUseCase := recurrence.NewDeleteObligationUseCase(obligationRepo)

	// Create installment use cases
	createPurchaseUseCase := installment.NewCreatePurchaseUseCase(purchaseRepo, ledgerRepo)
	listPurchasesUseCase := installment.NewListPurchasesUseCase(purchaseRepo)
	payInstallmentUseCase := installment.NewPayInstallmentUseCase(purchaseRepo)
	updatePurchaseUseCase := installment.NewUpdatePurchaseUseCase(purchaseRepo)
	deletePurchaseUseCase := installment.NewDeletePurchaseUseCase(purchaseRepo)

	// Create ledger use cases
	createEntryUseCase := ledger.NewCreateEntryUseCase(ledgerRepo)
	listEntriesUseCase := ledger.NewListEntriesUseCase(ledgerRepo)
	updateEntryUseCase := ledger.NewUpdateEntryUseCase(ledgerRepo)
	deleteEntryUseCase := ledger.NewDeleteEntryUseCase(ledgerRepo)
	deleteFutureEntriesUseCase := ledger.NewDeleteFutureEntriesUseCase(ledgerRepo, obligationRepo, purchaseRepo)

	// Create investment use cases
	createInvestmentUseCase := investment.NewCreateInvestmentUseCase(investmentRepo, seriesCache)
	listInvestmentsUseCase := investment.NewListInvestmentsUseCase(investmentRepo)
	contributeUseCase := investment.NewContributeUseCase(investmentRepo, seriesCache)
	withdrawUseCase := investment.NewWithdrawUseCase(investmentRepo, seriesCache)
	updateInvestmentUseCase := investment.NewUpdateInvestmentUseCase(investmentRepo, seriesCache)
	deleteInvestmentUseCase := investment.NewDeleteInvestmentUseCase(investmentRepo, seriesCache)

	// Create patrimony use cases
	createAssetUseCase := patrimony.NewCreateAssetUseCase(assetRepo, seriesCache)
	listAssetsUseCase := patrimony.NewListAssetsUseCase(assetRepo)
	updateAssetUseCase := patrimony.NewUpdateAssetUseCase(assetRepo, seriesCache)
	deleteAssetUseCase := patrimony.NewDeleteAssetUseCase(assetRepo, seriesCache)
	reconstructHistoryUseCase := patrimony.NewReconstructHistoryUseCase(investmentRepo, assetRepo, seriesCache)

	// Create simulation use cases
	projectGrowthUseCase := simulation.NewProjectGrowthUseCase()
	requiredPaymentUseCase := simulation.NewRequiredPaymentUseCase()

	// Create controllers
	healthController := controller.NewHealthController(func() bool {
		sqlDB, err := db.DB()
		if err != nil {
			return false
		}
		return sqlDB.Ping() == nil
	})

	recurringController := controller.NewRecurringController(
		createObligationUseCase,
		listObligationsUseCase,
		updateObligationUseCase,
		setObligationActiveUseCase,
		deleteObligationUseCase,
	)

	installmentController := controller.NewInstallmentController(
		createPurchaseUseCase,
		listPurchasesUseCase,
		payInstallmentUseCase,
		updatePurchaseUseCase,
		deletePurchaseUseCase,
	)

	ledgerController := controller.NewLedgerController(
		createEntryUseCase,
		listEntriesUseCase,
		updateEntryUseCase,
		deleteEntryUseCase,
		deleteFutureEntriesUseCase,
	)

	investmentController := controller.NewInvestmentController(
		createInvestmentUseCase,
		listInvestmentsUseCase,
		contributeUseCase,
		withdrawUseCase,
		updateInvestmentUseCase,
		deleteInvestmentUseCase,
	)

	patrimonyController := controller.NewPatrimonyController(
		createAssetUseCase,
		listAssetsUseCase,
		updateAssetUseCase,
		deleteAssetUseCase,
		reconstructHistoryUseCase,
	)

	simulationController := controller.NewSimulationController(
		projectGrowthUseCase,
		requiredPaymentUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var simulationRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		simulationRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		simulationRateLimiter = middleware.NewRateLimiter()
	}

	// Create router
	r := router.NewRouter(
		healthController,
		recurringController,
		installmentController,
		ledgerController,
		investmentController,
		patrimonyController,
		simulationController,
		simulationRateLimiter,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}
}
