package executor

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/cfd-platform/cfd-backend/internal/api/shared/constants"
	"github.com/cfd-platform/cfd-backend/internal/api/shared/dto"
	"github.com/cfd-platform/cfd-backend/internal/dividend"
	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/ico"
	"github.com/cfd-platform/cfd-backend/internal/store"
)

// Executor is the interface for the API executor
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/mock_api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor
type Executor interface {
	// Ping checks that the database is reachable
	Ping(ctx context.Context) error

	// GetDividendInfo returns a wallet's dividend position
	GetDividendInfo(ctx context.Context, walletAddress string) (*domain.DividendInfo, error)

	// ClaimDividends pays out a wallet's unclaimed entries
	ClaimDividends(ctx context.Context, req dto.ClaimDividendsRequest) (*dto.ClaimDividendsResponse, error)

	// GetProjection estimates dividend income for a wallet
	GetProjection(ctx context.Context, walletAddress string, monthlyProfit *decimal.Decimal) (*domain.Projection, error)

	// ListDistributions returns a page of distributions
	ListDistributions(ctx context.Context, page, limit int) (*domain.DistributionPage, error)

	// GetStats returns aggregated dividend activity
	GetStats(ctx context.Context) (*domain.DividendStats, error)

	// CreateDistribution creates a distribution on behalf of principal
	CreateDistribution(ctx context.Context, req dto.CreateDistributionRequest, principal string) (*domain.Distribution, error)

	// GetDistribution returns a distribution with its snapshot and entries
	GetDistribution(ctx context.Context, id string) (*domain.Distribution, error)

	// GetEligibleHolders returns the current eligibility snapshot
	GetEligibleHolders(ctx context.Context) (*dto.EligibleHoldersResponse, error)

	// SimulateDistribution calculates a distribution without persisting it
	SimulateDistribution(ctx context.Context, req dto.SimulateDistributionRequest) (*domain.DistributionSimulation, error)

	// GetChainHolders returns holders discovered from transfer history
	GetChainHolders(ctx context.Context) (*dto.ChainHoldersResponse, error)

	// GetICOStatus returns the token sale status
	GetICOStatus(ctx context.Context) (*domain.ICOStatus, error)

	// RecordICOPurchase records a purchase against its phase
	RecordICOPurchase(ctx context.Context, req dto.ICOPurchaseRequest) (*domain.PurchaseResult, error)

	// GetICOStats returns sale totals without per-phase detail
	GetICOStats(ctx context.Context) (*dto.ICOStatsResponse, error)

	// IsICOActive reports whether a phase is currently selling
	IsICOActive(ctx context.Context) (*domain.ICOActivity, error)

	// ListICOPurchases returns a page of a wallet's ico purchases
	ListICOPurchases(ctx context.Context, walletAddress string, page, limit int) (*domain.TransactionPage, error)

	// ActivateNextICOPhase completes the active phase and opens the next one
	ActivateNextICOPhase(ctx context.Context) (*domain.ICOPhase, error)

	// UpdateICOPhase edits a phase's settings
	UpdateICOPhase(ctx context.Context, phase int, req dto.UpdateICOPhaseRequest) (*domain.ICOPhase, error)

	// ListWalletTransactions returns a page of a wallet's ledger entries
	ListWalletTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

type executor struct {
	store     store.Store
	dividends dividend.Service
	ico       ico.Service
}

func NewExecutor(store store.Store, dividends dividend.Service, icoService ico.Service) Executor {
	return &executor{store: store, dividends: dividends, ico: icoService}
}

func (e *executor) Ping(ctx context.Context) error {
	return e.store.Ping(ctx)
}

func (e *executor) GetDividendInfo(ctx context.Context, walletAddress string) (*domain.DividendInfo, error) {
	return e.dividends.GetInfo(ctx, walletAddress)
}

func (e *executor) ClaimDividends(ctx context.Context, req dto.ClaimDividendsRequest) (*dto.ClaimDividendsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result, err := e.dividends.Claim(ctx, req.ToDomain())
	if err != nil {
		return nil, err
	}

	return &dto.ClaimDividendsResponse{
		ClaimResult: result,
		Message:     fmt.Sprintf("%s %s claimed successfully", result.TotalClaimed.StringFixed(6), domain.DIVIDEND_CURRENCY),
	}, nil
}

func (e *executor) GetProjection(ctx context.Context, walletAddress string, monthlyProfit *decimal.Decimal) (*domain.Projection, error) {
	return e.dividends.ProjectDividends(ctx, walletAddress, monthlyProfit)
}

func (e *executor) ListDistributions(ctx context.Context, page, limit int) (*domain.DistributionPage, error) {
	if page < 1 {
		page = constants.DEFAULT_PAGE
	}
	if limit < 1 {
		limit = constants.DEFAULT_DISTRIBUTIONS_LIMIT
	}
	if limit > constants.MAX_DISTRIBUTIONS_LIMIT {
		limit = constants.MAX_DISTRIBUTIONS_LIMIT
	}
	return e.dividends.ListDistributions(ctx, page, limit)
}

func (e *executor) GetStats(ctx context.Context) (*domain.DividendStats, error) {
	return e.dividends.GetStats(ctx)
}

func (e *executor) CreateDistribution(ctx context.Context, req dto.CreateDistributionRequest, principal string) (*domain.Distribution, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	return e.dividends.CreateDistribution(ctx, domain.CreateDistributionInput{
		TotalAmount: req.TotalAmount,
		Notes:       req.Notes,
		CreatedBy:   principal,
	})
}

func (e *executor) GetDistribution(ctx context.Context, id string) (*domain.Distribution, error) {
	return e.dividends.GetDistribution(ctx, id)
}

func (e *executor) GetEligibleHolders(ctx context.Context) (*dto.EligibleHoldersResponse, error) {
	snapshot, err := e.dividends.EligibleHolders(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.EligibleHoldersResponse{Snapshot: snapshot, Count: snapshot.EligibleCount()}, nil
}

func (e *executor) SimulateDistribution(ctx context.Context, req dto.SimulateDistributionRequest) (*domain.DistributionSimulation, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return e.dividends.SimulateDistribution(ctx, req.TotalAmount)
}

func (e *executor) GetChainHolders(ctx context.Context) (*dto.ChainHoldersResponse, error) {
	holders, err := e.dividends.DiscoverChainHolders(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ChainHoldersResponse{Holders: holders, Count: len(holders)}, nil
}

func (e *executor) GetICOStatus(ctx context.Context) (*domain.ICOStatus, error) {
	return e.ico.GetStatus(ctx)
}

func (e *executor) RecordICOPurchase(ctx context.Context, req dto.ICOPurchaseRequest) (*domain.PurchaseResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return e.ico.ProcessPurchase(ctx, req.ToDomain())
}

func (e *executor) GetICOStats(ctx context.Context) (*dto.ICOStatsResponse, error) {
	status, err := e.ico.GetStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.ICOStatsResponse{
		TotalPhases:        status.TotalPhases,
		CompletedPhases:    status.CompletedPhases,
		TotalTokensSold:    status.TotalTokensSold,
		TotalRaised:        status.TotalRaised,
		TotalTokensForSale: status.TotalTokensForSale,
		OverallProgress:    status.OverallProgress,
	}
	if status.CurrentPhase != nil {
		phase := status.CurrentPhase.Phase
		stats.ActivePhase = &phase
	}
	return stats, nil
}

func (e *executor) IsICOActive(ctx context.Context) (*domain.ICOActivity, error) {
	return e.ico.IsActive(ctx)
}

func (e *executor) ListICOPurchases(ctx context.Context, walletAddress string, page, limit int) (*domain.TransactionPage, error) {
	purchases := domain.TransactionTypeICOPurchase
	return e.ListWalletTransactions(ctx, domain.TransactionFilter{
		WalletAddress: walletAddress,
		Type:          &purchases,
		Page:          page,
		Limit:         limit,
	})
}

func (e *executor) ActivateNextICOPhase(ctx context.Context) (*domain.ICOPhase, error) {
	return e.ico.ActivateNextPhase(ctx)
}

func (e *executor) UpdateICOPhase(ctx context.Context, phase int, req dto.UpdateICOPhaseRequest) (*domain.ICOPhase, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return e.ico.UpdatePhase(ctx, phase, req.ToDomain())
}

func (e *executor) ListWalletTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	if filter.Page < 1 {
		filter.Page = constants.DEFAULT_PAGE
	}
	if filter.Limit < 1 {
		filter.Limit = constants.DEFAULT_TRANSACTIONS_LIMIT
	}
	if filter.Limit > constants.MAX_TRANSACTIONS_LIMIT {
		filter.Limit = constants.MAX_TRANSACTIONS_LIMIT
	}
	return e.ico.ListTransactions(ctx, filter)
}
