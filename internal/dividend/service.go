package dividend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cfd-platform/cfd-backend/internal/adapter"
	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/messaging"
	"github.com/cfd-platform/cfd-backend/internal/metrics"
	"github.com/cfd-platform/cfd-backend/internal/store"
)

const (
	// DefaultPageLimit is used when a list request names no limit
	DefaultPageLimit = 10
	// MaxPageLimit caps the page size of list requests
	MaxPageLimit = 100
)

// Service is the dividend engine
//
//go:generate mockgen -source=service.go -destination=../mocks/dividend_service.go -package=mocks -mock_names=Service=MockDividendService
type Service interface {
	// CreateDistribution snapshots eligible holders, splits totalAmount across them
	// and commits the distribution as calculated
	CreateDistribution(ctx context.Context, input domain.CreateDistributionInput) (*domain.Distribution, error)

	// GetDistribution returns a distribution with its snapshot and entries
	GetDistribution(ctx context.Context, id string) (*domain.Distribution, error)

	// ListDistributions returns a page of distributions newest first
	ListDistributions(ctx context.Context, page, limit int) (*domain.DistributionPage, error)

	// GetInfo summarizes a wallet's dividend position
	GetInfo(ctx context.Context, walletAddress string) (*domain.DividendInfo, error)

	// Claim pays out the wallet's unclaimed entries of the given distributions
	Claim(ctx context.Context, req domain.ClaimRequest) (*domain.ClaimResult, error)

	// ProjectDividends estimates dividend income for a wallet's current balance.
	// A nil monthlyProfit uses the configured default.
	ProjectDividends(ctx context.Context, walletAddress string, monthlyProfit *decimal.Decimal) (*domain.Projection, error)

	// SimulateDistribution calculates a distribution without persisting it
	SimulateDistribution(ctx context.Context, totalAmount decimal.Decimal) (*domain.DistributionSimulation, error)

	// EligibleHolders builds and returns the current eligibility snapshot
	EligibleHolders(ctx context.Context) (*domain.Snapshot, error)

	// GetStats aggregates distribution and payout activity
	GetStats(ctx context.Context) (*domain.DividendStats, error)

	// DiscoverChainHolders lists holders found in on-chain transfer history
	DiscoverChainHolders(ctx context.Context) ([]domain.ChainHolder, error)
}

type service struct {
	cfg       Config
	store     store.Store
	oracle    Oracle
	snapshots *SnapshotBuilder
	publisher messaging.Publisher
	clock     adapter.Clock
}

// NewService creates the dividend service. The store doubles as the purchase ledger.
func NewService(cfg Config, st store.Store, oracle Oracle, snapshots *SnapshotBuilder, publisher messaging.Publisher, clock adapter.Clock) Service {
	return &service{
		cfg:       cfg.withDefaults(),
		store:     st,
		oracle:    oracle,
		snapshots: snapshots,
		publisher: publisher,
		clock:     clock,
	}
}

// CreateDistribution snapshots, calculates and persists a distribution
func (s *service) CreateDistribution(ctx context.Context, input domain.CreateDistributionInput) (*domain.Distribution, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.CreatedBy == "" {
		input.CreatedBy = domain.SYSTEM_PRINCIPAL
	}

	snapshot, err := s.snapshots.Build(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := Calculate(input.TotalAmount, snapshot.Balances())
	if err != nil {
		return nil, err
	}

	entryInputs := make([]store.CreateDividendEntryInput, 0, len(entries))
	for _, e := range entries {
		entryInputs = append(entryInputs, store.CreateDividendEntryInput{
			WalletAddress:   e.WalletAddress,
			Balance:         e.Balance,
			SharePercentage: e.SharePercentage,
			DividendAmount:  e.DividendAmount,
		})
	}

	row, err := s.store.CreateDistribution(ctx, store.CreateDistributionInput{
		TotalAmount:         input.TotalAmount,
		Currency:            domain.DIVIDEND_CURRENCY,
		TotalTokensEligible: snapshot.TotalTokensEligible,
		AmountPerToken:      AmountPerToken(input.TotalAmount, snapshot.TotalTokensEligible),
		Notes:               input.Notes,
		CreatedBy:           input.CreatedBy,
		DistributionDate:    snapshot.TakenAt,
		Snapshot:            snapshot.Holders,
		Entries:             entryInputs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist distribution: %w", err)
	}

	distribution, err := store.ToDomainDistribution(*row)
	if err != nil {
		return nil, err
	}

	metrics.DistributionsCreatedTotal.Inc()
	logger.InfoCtx(ctx, "Dividend distribution created",
		zap.String("distributionID", distribution.ID),
		zap.String("totalAmount", distribution.TotalAmount.String()),
		zap.Int("eligibleHolders", distribution.EligibleHolders),
		zap.String("createdBy", distribution.CreatedBy))

	s.publish(ctx, &domain.DividendEvent{
		EventType:      domain.EventTypeDistributionCreated,
		DistributionID: distribution.ID,
		Amount:         distribution.TotalAmount.String(),
		Currency:       distribution.Currency,
	})

	return distribution, nil
}

// GetDistribution returns a distribution or ErrDistributionNotFound
func (s *service) GetDistribution(ctx context.Context, id string) (*domain.Distribution, error) {
	row, err := s.store.GetDistribution(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}
	if row == nil {
		return nil, domain.ErrDistributionNotFound
	}
	return store.ToDomainDistribution(*row)
}

// ListDistributions returns a page of distribution summaries
func (s *service) ListDistributions(ctx context.Context, page, limit int) (*domain.DistributionPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	rows, total, err := s.store.ListDistributions(ctx, (page-1)*limit, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list distributions: %w", err)
	}

	items := make([]domain.DistributionSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, store.ToDomainDistributionSummary(row))
	}

	return &domain.DistributionPage{
		Items:      items,
		Pagination: domain.NewPagination(page, limit, total),
	}, nil
}

// GetInfo summarizes a wallet's entries in visible distributions.
// Holding period and eligibility come from the oracle on a best-effort basis.
func (s *service) GetInfo(ctx context.Context, walletAddress string) (*domain.DividendInfo, error) {
	address, err := domain.ValidateAddress("walletAddress", walletAddress)
	if err != nil {
		return nil, err
	}

	entries, err := s.store.ListWalletEntries(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet entries: %w", err)
	}

	info := &domain.DividendInfo{
		WalletAddress:      address,
		TotalReceived:      decimal.Zero,
		AvailableDividends: decimal.Zero,
		History:            make([]domain.DividendHistoryItem, 0, len(entries)),
	}

	for _, e := range entries {
		info.History = append(info.History, domain.DividendHistoryItem{
			DistributionID:  e.DistributionID,
			Date:            e.DistributionDate,
			Amount:          e.DividendAmount,
			SharePercentage: e.SharePercentage,
			Claimed:         e.Claimed,
			ClaimedAt:       e.ClaimedAt,
			Notes:           e.Notes,
		})
		if e.Claimed {
			info.TotalReceived = info.TotalReceived.Add(e.DividendAmount)
		} else {
			info.AvailableDividends = info.AvailableDividends.Add(e.DividendAmount)
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.OracleTimeout)
	defer cancel()
	first, err := s.oracle.GetFirstTransferTimestamp(callCtx, address)
	switch {
	case err != nil:
		logger.WarnCtx(ctx, "Failed to get holding period, reporting wallet as not eligible",
			zap.String("wallet", address),
			zap.Error(err))
	case first != nil:
		info.HoldingPeriodDays = HoldingDays(*first, s.clock.Now())
		info.Eligible = info.HoldingPeriodDays >= s.cfg.MinHoldingDays
	}

	return info, nil
}

// Claim pays each requested entry at most once. Unknown or malformed
// distribution ids and entries that are already claimed are skipped. A store
// failure on one id does not undo entries already paid in the same call; it
// is only returned when nothing was paid.
func (s *service) Claim(ctx context.Context, req domain.ClaimRequest) (*domain.ClaimResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	result := &domain.ClaimResult{
		WalletAddress: req.WalletAddress,
		TotalClaimed:  decimal.Zero,
		Claimed:       []domain.ClaimedDividend{},
	}

	var firstErr error
	seen := make(map[string]struct{}, len(req.DistributionIDs))
	for _, id := range req.DistributionIDs {
		if _, ok := seen[id]; ok {
			metrics.ClaimsTotal.WithLabelValues(metrics.ClaimOutcomeDuplicate).Inc()
			continue
		}
		seen[id] = struct{}{}

		if _, err := uuid.Parse(id); err != nil {
			logger.DebugCtx(ctx, "Skipping malformed distribution id", zap.String("distributionID", id))
			metrics.ClaimsTotal.WithLabelValues(metrics.ClaimOutcomeSkipped).Inc()
			continue
		}

		claimedAt := s.clock.Now()
		txHash := paymentReference(id, req.WalletAddress)
		entry, err := s.store.ClaimEntry(ctx, store.ClaimEntryInput{
			DistributionID: id,
			WalletAddress:  req.WalletAddress,
			ClaimTxHash:    txHash,
			ClaimedAt:      claimedAt,
		})
		if err != nil {
			err = fmt.Errorf("failed to claim distribution %s: %w", id, err)
			logger.ErrorCtx(ctx, err, zap.String("wallet", req.WalletAddress))
			metrics.ClaimsTotal.WithLabelValues(metrics.ClaimOutcomeFailed).Inc()
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if entry == nil {
			metrics.ClaimsTotal.WithLabelValues(metrics.ClaimOutcomeSkipped).Inc()
			continue
		}

		metrics.ClaimsTotal.WithLabelValues(metrics.ClaimOutcomePaid).Inc()
		result.TotalClaimed = result.TotalClaimed.Add(entry.DividendAmount)
		result.Claimed = append(result.Claimed, domain.ClaimedDividend{
			DistributionID:  id,
			Amount:          entry.DividendAmount,
			SharePercentage: entry.SharePercentage,
			TxHash:          txHash,
			ClaimedAt:       claimedAt,
		})

		s.publish(ctx, &domain.DividendEvent{
			EventType:      domain.EventTypeDividendClaimed,
			DistributionID: id,
			WalletAddress:  req.WalletAddress,
			Amount:         entry.DividendAmount.String(),
			Currency:       domain.DIVIDEND_CURRENCY,
		})
	}

	if !result.TotalClaimed.IsPositive() {
		if firstErr != nil {
			return nil, firstErr
		}
		return nil, domain.ErrNothingToClaim
	}

	logger.InfoCtx(ctx, "Dividends claimed",
		zap.String("wallet", req.WalletAddress),
		zap.Int("distributions", len(result.Claimed)),
		zap.String("totalClaimed", result.TotalClaimed.String()))

	return result, nil
}

// ProjectDividends estimates income from the wallet's on-chain balance
func (s *service) ProjectDividends(ctx context.Context, walletAddress string, monthlyProfit *decimal.Decimal) (*domain.Projection, error) {
	address, err := domain.ValidateAddress("walletAddress", walletAddress)
	if err != nil {
		return nil, err
	}

	profit := s.cfg.DefaultMonthlyProfit
	if monthlyProfit != nil {
		if !monthlyProfit.IsPositive() {
			return nil, domain.NewValidationError("monthlyProfit", "monthly profit must be greater than zero")
		}
		profit = *monthlyProfit
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.OracleTimeout)
	defer cancel()
	balance, err := s.oracle.GetBalance(callCtx, address)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to get token balance: %w", domain.ErrCollaboratorUnavailable, err)
	}
	if !balance.IsPositive() {
		return nil, domain.ErrNoTokenBalance
	}

	supply, err := s.oracle.TotalSupply(callCtx)
	if err != nil || !supply.IsPositive() {
		logger.WarnCtx(ctx, "Failed to get total supply, using default",
			zap.String("default", s.cfg.DefaultTotalSupply.String()),
			zap.Error(err))
		supply = s.cfg.DefaultTotalSupply
	}

	projection := Project(ProjectionInput{
		WalletAddress:     address,
		Balance:           balance,
		TotalSupply:       supply,
		MonthlyProfit:     profit,
		DistributionRate:  s.cfg.DistributionRate,
		AverageTokenPrice: s.cfg.AverageTokenPrice,
	})
	return &projection, nil
}

// SimulateDistribution runs the snapshot and calculator without persisting
func (s *service) SimulateDistribution(ctx context.Context, totalAmount decimal.Decimal) (*domain.DistributionSimulation, error) {
	if !totalAmount.IsPositive() {
		return nil, domain.NewValidationError("totalAmount", "total amount must be greater than zero")
	}

	snapshot, err := s.snapshots.Build(ctx)
	if err != nil {
		return nil, err
	}

	entries, err := Calculate(totalAmount, snapshot.Balances())
	if err != nil {
		return nil, err
	}

	return &domain.DistributionSimulation{
		TotalAmount:         totalAmount,
		TotalTokensEligible: snapshot.TotalTokensEligible,
		AmountPerToken:      AmountPerToken(totalAmount, snapshot.TotalTokensEligible),
		EligibleHolders:     snapshot.EligibleCount(),
		Entries:             entries,
		SimulatedAt:         snapshot.TakenAt,
	}, nil
}

// EligibleHolders builds the current eligibility snapshot
func (s *service) EligibleHolders(ctx context.Context) (*domain.Snapshot, error) {
	return s.snapshots.Build(ctx)
}

// GetStats aggregates distribution and payout activity
func (s *service) GetStats(ctx context.Context) (*domain.DividendStats, error) {
	stats, err := s.store.GetDividendStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get dividend stats: %w", err)
	}

	result := &domain.DividendStats{
		TotalDistributions:  stats.TotalDistributions,
		TotalDistributed:    stats.TotalDistributed,
		TotalClaimed:        stats.TotalClaimed,
		AverageDistribution: decimal.Zero,
		UniqueRecipients:    stats.UniqueRecipients,
	}
	if stats.TotalDistributions > 0 {
		result.AverageDistribution = stats.TotalDistributed.DivRound(decimal.NewFromInt(stats.TotalDistributions), divisionPlace)
	}
	if stats.LastDistribution != nil {
		last := store.ToDomainDistributionSummary(*stats.LastDistribution)
		result.LastDistribution = &last
	}

	return result, nil
}

// DiscoverChainHolders lists addresses from on-chain transfers with their balances.
// Addresses whose lookups fail are skipped.
func (s *service) DiscoverChainHolders(ctx context.Context) ([]domain.ChainHolder, error) {
	addresses, err := s.oracle.ListHolderAddresses(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list holder addresses: %w", domain.ErrCollaboratorUnavailable, err)
	}

	now := s.clock.Now()
	holders := make([]domain.ChainHolder, 0, len(addresses))
	for _, address := range addresses {
		holder, err := s.chainHolder(ctx, address, now)
		if err != nil {
			logger.WarnCtx(ctx, "Skipping chain holder", zap.String("wallet", address), zap.Error(err))
			continue
		}
		if !holder.Balance.IsPositive() {
			continue
		}
		holders = append(holders, *holder)
	}

	sort.SliceStable(holders, func(i, j int) bool {
		if c := holders[i].Balance.Cmp(holders[j].Balance); c != 0 {
			return c > 0
		}
		return holders[i].WalletAddress < holders[j].WalletAddress
	})

	return holders, nil
}

func (s *service) chainHolder(ctx context.Context, address string, now time.Time) (*domain.ChainHolder, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.OracleTimeout)
	defer cancel()

	balance, err := s.oracle.GetBalance(callCtx, address)
	if err != nil {
		return nil, err
	}

	holder := &domain.ChainHolder{
		WalletAddress: domain.NormalizeAddress(address),
		Balance:       balance,
	}
	if !balance.IsPositive() {
		return holder, nil
	}

	first, err := s.oracle.GetFirstTransferTimestamp(callCtx, address)
	if err != nil {
		return nil, err
	}
	if first != nil {
		holder.FirstTransferAt = first
		holder.HoldingPeriodDays = HoldingDays(*first, now)
		holder.Eligible = holder.HoldingPeriodDays >= s.cfg.MinHoldingDays
	}

	return holder, nil
}

// publish sends an event without failing the caller
func (s *service) publish(ctx context.Context, event *domain.DividendEvent) {
	event.ID = ulid.MustNewDefault(s.clock.Now()).String()
	event.Timestamp = s.clock.Now()

	if err := s.publisher.PublishEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish dividend event",
			zap.String("eventType", string(event.EventType)),
			zap.String("distributionID", event.DistributionID),
			zap.Error(err))
	}
}

// paymentReference is the unique payout reference of a (distribution, wallet) pair
func paymentReference(distributionID, walletAddress string) string {
	return fmt.Sprintf("dividend:%s:%s", distributionID, walletAddress)
}
