package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cfd-platform/cfd-backend/internal/api/middleware"
	"github.com/cfd-platform/cfd-backend/internal/api/shared/dto"
	"github.com/cfd-platform/cfd-backend/internal/api/shared/executor"
	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetDividendInfo returns a wallet's dividend position
	// GET /api/v1/dividends/info/:wallet
	GetDividendInfo(c *gin.Context)

	// ClaimDividends pays out unclaimed entries (requires the wallet's token or admin)
	// POST /api/v1/dividends/claim
	ClaimDividends(c *gin.Context)

	// GetProjection estimates dividend income for a wallet
	// GET /api/v1/dividends/projection/:wallet?monthly_profit=<amount>
	GetProjection(c *gin.Context)

	// ListDistributions returns a page of distributions newest first
	// GET /api/v1/dividends/distributions?page=<page>&limit=<limit>
	ListDistributions(c *gin.Context)

	// GetStats returns aggregated dividend activity
	// GET /api/v1/dividends/stats
	GetStats(c *gin.Context)

	// CreateDistribution creates a distribution (requires authentication)
	// POST /api/v1/dividends/admin/distributions
	CreateDistribution(c *gin.Context)

	// GetDistribution returns a distribution with its snapshot and entries (requires authentication)
	// GET /api/v1/dividends/admin/distributions/:id
	GetDistribution(c *gin.Context)

	// GetEligibleHolders returns the current eligibility snapshot (requires authentication)
	// GET /api/v1/dividends/admin/eligible-holders
	GetEligibleHolders(c *gin.Context)

	// SimulateDistribution calculates a distribution without persisting it (requires authentication)
	// POST /api/v1/dividends/admin/simulate
	SimulateDistribution(c *gin.Context)

	// GetChainHolders lists holders found in on-chain transfer history (requires authentication)
	// GET /api/v1/dividends/admin/chain-holders
	GetChainHolders(c *gin.Context)

	// GetICOStatus returns the token sale status
	// GET /api/v1/ico/status
	GetICOStatus(c *gin.Context)

	// RecordICOPurchase records a purchase against its phase (requires authentication)
	// POST /api/v1/ico/purchase
	RecordICOPurchase(c *gin.Context)

	// GetICOStats returns sale totals
	// GET /api/v1/ico/stats
	GetICOStats(c *gin.Context)

	// IsICOActive reports whether a phase is currently selling
	// GET /api/v1/ico/is-active
	IsICOActive(c *gin.Context)

	// ListICOPurchases returns a page of a wallet's purchases
	// GET /api/v1/ico/purchases/:wallet?page=<page>&limit=<limit>
	ListICOPurchases(c *gin.Context)

	// ActivateNextICOPhase opens the next phase (requires admin)
	// POST /api/v1/ico/admin/activate-next-phase
	ActivateNextICOPhase(c *gin.Context)

	// UpdateICOPhase edits a phase's settings (requires admin)
	// PUT /api/v1/ico/admin/phase/:phase
	UpdateICOPhase(c *gin.Context)

	// ListWalletTransactions returns a page of the wallet's ledger (requires the wallet's token or admin)
	// GET /api/v1/wallets/:wallet/transactions?type=<type>&page=<page>&limit=<limit>
	ListWalletTransactions(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// GetDividendInfo returns a wallet's dividend position
func (h *handler) GetDividendInfo(c *gin.Context) {
	wallet := c.Param("wallet")
	if wallet == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	info, err := h.executor.GetDividendInfo(c.Request.Context(), wallet)
	if err != nil {
		respondError(c, err, "Failed to get dividend info")
		return
	}

	c.JSON(http.StatusOK, info)
}

// ClaimDividends pays out the wallet's unclaimed entries
func (h *handler) ClaimDividends(c *gin.Context) {
	var req dto.ClaimDividendsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	if !middleware.CallerFrom(c).CanAccessWallet(req.WalletAddress) {
		respondForbidden(c, "Cannot claim for another wallet")
		return
	}

	result, err := h.executor.ClaimDividends(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to claim dividends")
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetProjection estimates dividend income for a wallet
func (h *handler) GetProjection(c *gin.Context) {
	wallet := c.Param("wallet")
	if wallet == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	monthlyProfit, err := ParseMonthlyProfit(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	projection, err := h.executor.GetProjection(c.Request.Context(), wallet, monthlyProfit)
	if err != nil {
		respondError(c, err, "Failed to calculate projection")
		return
	}

	c.JSON(http.StatusOK, projection)
}

// ListDistributions returns a page of distributions
func (h *handler) ListDistributions(c *gin.Context) {
	params, err := ParseListDistributionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	page, err := h.executor.ListDistributions(c.Request.Context(), params.Page, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list distributions")
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetStats returns aggregated dividend activity
func (h *handler) GetStats(c *gin.Context) {
	stats, err := h.executor.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get dividend stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CreateDistribution creates a distribution attributed to the authenticated principal
func (h *handler) CreateDistribution(c *gin.Context) {
	var req dto.CreateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	distribution, err := h.executor.CreateDistribution(c.Request.Context(), req, middleware.Principal(c))
	if err != nil {
		respondError(c, err, "Failed to create distribution")
		return
	}

	c.JSON(http.StatusCreated, distribution)
}

// GetDistribution returns a distribution with its snapshot and entries
func (h *handler) GetDistribution(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		respondBadRequest(c, "Distribution ID is required")
		return
	}

	distribution, err := h.executor.GetDistribution(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "Failed to get distribution")
		return
	}

	c.JSON(http.StatusOK, distribution)
}

// GetEligibleHolders returns the current eligibility snapshot
func (h *handler) GetEligibleHolders(c *gin.Context) {
	holders, err := h.executor.GetEligibleHolders(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get eligible holders")
		return
	}

	c.JSON(http.StatusOK, holders)
}

// SimulateDistribution calculates a distribution without persisting it
func (h *handler) SimulateDistribution(c *gin.Context) {
	var req dto.SimulateDistributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	simulation, err := h.executor.SimulateDistribution(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to simulate distribution")
		return
	}

	c.JSON(http.StatusOK, simulation)
}

// GetChainHolders lists holders found in on-chain transfer history
func (h *handler) GetChainHolders(c *gin.Context) {
	holders, err := h.executor.GetChainHolders(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get chain holders")
		return
	}

	c.JSON(http.StatusOK, holders)
}

// GetICOStatus returns the token sale status
func (h *handler) GetICOStatus(c *gin.Context) {
	status, err := h.executor.GetICOStatus(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get ICO status")
		return
	}

	c.JSON(http.StatusOK, status)
}

// RecordICOPurchase records a purchase against its phase
func (h *handler) RecordICOPurchase(c *gin.Context) {
	var req dto.ICOPurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	result, err := h.executor.RecordICOPurchase(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Failed to record purchase")
		return
	}

	c.JSON(http.StatusCreated, result)
}

// GetICOStats returns sale totals
func (h *handler) GetICOStats(c *gin.Context) {
	stats, err := h.executor.GetICOStats(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get ICO stats")
		return
	}

	c.JSON(http.StatusOK, stats)
}

// IsICOActive reports whether a phase is currently selling
func (h *handler) IsICOActive(c *gin.Context) {
	activity, err := h.executor.IsICOActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to check ICO activity")
		return
	}

	c.JSON(http.StatusOK, activity)
}

// ListICOPurchases returns a page of a wallet's purchases
func (h *handler) ListICOPurchases(c *gin.Context) {
	wallet := c.Param("wallet")
	if wallet == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	params, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	page, err := h.executor.ListICOPurchases(c.Request.Context(), wallet, params.Page, params.Limit)
	if err != nil {
		respondError(c, err, "Failed to list purchases")
		return
	}

	c.JSON(http.StatusOK, page)
}

// ActivateNextICOPhase completes the active phase and opens the next one
func (h *handler) ActivateNextICOPhase(c *gin.Context) {
	phase, err := h.executor.ActivateNextICOPhase(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to activate next phase")
		return
	}

	c.JSON(http.StatusOK, phase)
}

// UpdateICOPhase edits a phase's settings
func (h *handler) UpdateICOPhase(c *gin.Context) {
	number, err := ParseICOPhaseNumber(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var req dto.UpdateICOPhaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	phase, err := h.executor.UpdateICOPhase(c.Request.Context(), number, req)
	if err != nil {
		respondError(c, err, "Failed to update phase")
		return
	}

	c.JSON(http.StatusOK, phase)
}

// ListWalletTransactions returns a page of the wallet's ledger entries
func (h *handler) ListWalletTransactions(c *gin.Context) {
	wallet := c.Param("wallet")
	if wallet == "" {
		respondBadRequest(c, "Wallet address is required")
		return
	}

	if !middleware.CallerFrom(c).CanAccessWallet(wallet) {
		respondForbidden(c, "Cannot read another wallet's transactions")
		return
	}

	params, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	page, err := h.executor.ListWalletTransactions(c.Request.Context(), domain.TransactionFilter{
		WalletAddress: wallet,
		Type:          params.TransactionType(),
		Page:          params.Page,
		Limit:         params.Limit,
	})
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, page)
}

// HealthCheck returns the health status of the API and its database
func (h *handler) HealthCheck(c *gin.Context) {
	resp := dto.HealthResponse{
		Status:   "ok",
		Service:  "cfd-api",
		Database: "ok",
	}

	if err := h.executor.Ping(c.Request.Context()); err != nil {
		resp.Status = "degraded"
		resp.Database = "unreachable"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
