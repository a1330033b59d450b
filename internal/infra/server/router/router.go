// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-planner/backend/internal/integration/entrypoint/controller"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	recurringController   *controller.RecurringController
	installmentController *controller.InstallmentController
	ledgerController      *controller.LedgerController
	investmentController  *controller.InvestmentController
	patrimonyController   *controller.PatrimonyController
	simulationController  *controller.SimulationController
	simulationRateLimiter *middleware.RateLimiter
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	recurringController *controller.RecurringController,
	installmentController *controller.InstallmentController,
	ledgerController *controller.LedgerController,
	investmentController *controller.InvestmentController,
	patrimonyController *controller.PatrimonyController,
	simulationController *controller.SimulationController,
	simulationRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		recurringController:   recurringController,
		installmentController: installmentController,
		ledgerController:      ledgerController,
		investmentController:  investmentController,
		patrimonyController:   patrimonyController,
		simulationController:  simulationController,
		simulationRateLimiter: simulationRateLimiter,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Every /api/v1 route
// requires a caller identity.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(middleware.UserContext())
	{
		// Recurring obligation routes
		if r.recurringController != nil {
			recurring := v1.Group("/recurring")
			{
				recurring.GET("", r.recurringController.List)
				recurring.POST("", r.recurringController.Create)
				recurring.PATCH("/:id", r.recurringController.Update)
				recurring.PATCH("/:id/active", r.recurringController.SetActive)
				recurring.DELETE("/:id", r.recurringController.Delete)
			}
		}

		// Installment purchase routes
		if r.installmentController != nil {
			installments := v1.Group("/installments")
			{
				installments.GET("", r.installmentController.List)
				installments.POST("", r.installmentController.Create)
				installments.POST("/:id/pay", r.installmentController.Pay)
				installments.PATCH("/:id", r.installmentController.Update)
				installments.DELETE("/:id", r.installmentController.Delete)
			}
		}

		// Ledger entry routes
		if r.ledgerController != nil {
			entries := v1.Group("/entries")
			{
				entries.GET("", r.ledgerController.List)
				entries.POST("", r.ledgerController.Create)
				entries.POST("/delete-future", r.ledgerController.DeleteFuture)
				entries.PATCH("/:id", r.ledgerController.Update)
				entries.DELETE("/:id", r.ledgerController.Delete)
			}
		}

		// Investment routes
		if r.investmentController != nil {
			investments := v1.Group("/investments")
			{
				investments.GET("", r.investmentController.List)
				investments.POST("", r.investmentController.Create)
				investments.POST("/:id/contribute", r.investmentController.Contribute)
				investments.POST("/:id/withdraw", r.investmentController.Withdraw)
				investments.PATCH("/:id", r.investmentController.Update)
				investments.DELETE("/:id", r.investmentController.Delete)
			}
		}

		// Patrimony asset and history routes
		if r.patrimonyController != nil {
			patrimony := v1.Group("/patrimony")
			{
				patrimony.GET("/assets", r.patrimonyController.List)
				patrimony.POST("/assets", r.patrimonyController.Create)
				patrimony.PATCH("/assets/:id", r.patrimonyController.Update)
				patrimony.DELETE("/assets/:id", r.patrimonyController.Delete)
				patrimony.GET("/history", r.patrimonyController.History)
			}
		}

		// Simulation routes (rate limited when a limiter is available)
		if r.simulationController != nil {
			simulations := v1.Group("/simulations")
			if r.simulationRateLimiter != nil {
				simulations.Use(r.simulationRateLimiter.Middleware())
			}
			{
				simulations.POST("/growth", r.simulationController.ProjectGrowth)
				simulations.POST("/required-payment", r.simulationController.RequiredPayment)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
