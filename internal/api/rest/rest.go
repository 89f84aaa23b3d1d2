package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/cfd-platform/cfd-backend/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")

	dividends := v1.Group("/dividends")
	{
		// Public read access
		dividends.GET("/info/:wallet", handler.GetDividendInfo)
		dividends.GET("/projection/:wallet", handler.GetProjection)
		dividends.GET("/distributions", handler.ListDistributions)
		dividends.GET("/stats", handler.GetStats)

		// Claims move money, the caller must own the wallet or be an operator
		dividends.POST("/claim", middleware.Auth(authCfg), handler.ClaimDividends)
	}

	admin := dividends.Group("/admin", middleware.Auth(authCfg), middleware.RequireAdmin())
	{
		admin.POST("/distributions", handler.CreateDistribution)
		admin.GET("/distributions/:id", handler.GetDistribution)
		admin.GET("/eligible-holders", handler.GetEligibleHolders)
		admin.POST("/simulate", handler.SimulateDistribution)
		admin.GET("/chain-holders", handler.GetChainHolders)
	}

	icoRoutes := v1.Group("/ico")
	{
		icoRoutes.GET("/status", handler.GetICOStatus)
		icoRoutes.GET("/stats", handler.GetICOStats)
		icoRoutes.GET("/is-active", handler.IsICOActive)
		icoRoutes.GET("/purchases/:wallet", handler.ListICOPurchases)

		// Purchases are reported by the payment watcher, an operator
		icoRoutes.POST("/purchase", middleware.Auth(authCfg), middleware.RequireAdmin(), handler.RecordICOPurchase)
	}

	icoAdmin := icoRoutes.Group("/admin", middleware.Auth(authCfg), middleware.RequireAdmin())
	{
		icoAdmin.POST("/activate-next-phase", handler.ActivateNextICOPhase)
		icoAdmin.PUT("/phase/:phase", handler.UpdateICOPhase)
	}

	wallets := v1.Group("/wallets", middleware.Auth(authCfg))
	{
		wallets.GET("/:wallet/transactions", handler.ListWalletTransactions)
	}
}
