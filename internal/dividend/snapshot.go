package dividend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cfd-platform/cfd-backend/internal/adapter"
	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/metrics"
)

// balanceResult is the outcome of one oracle balance verification
type balanceResult struct {
	balance decimal.Decimal
	err     error
}

// SnapshotBuilder builds eligibility snapshots from the purchase ledger,
// verifying each eligible wallet against the oracle.
type SnapshotBuilder struct {
	cfg    Config
	ledger Ledger
	oracle Oracle
	clock  adapter.Clock
	pool   pond.ResultPool[*balanceResult]
}

// NewSnapshotBuilder creates a snapshot builder with its own oracle worker pool
func NewSnapshotBuilder(cfg Config, ledger Ledger, oracle Oracle, clock adapter.Clock) *SnapshotBuilder {
	cfg = cfg.withDefaults()
	return &SnapshotBuilder{
		cfg:    cfg,
		ledger: ledger,
		oracle: oracle,
		clock:  clock,
		pool:   pond.NewResultPool[*balanceResult](cfg.OracleMaxWorkers),
	}
}

// Close stops the worker pool and waits for in-flight oracle calls
func (b *SnapshotBuilder) Close() {
	b.pool.StopAndWait()
}

// Build folds confirmed purchases into holding records, keeps the wallets that
// satisfy the holding period and replaces their balances with the oracle's.
// Wallets whose verification fails or reports zero are excluded.
func (b *SnapshotBuilder) Build(ctx context.Context) (*domain.Snapshot, error) {
	start := time.Now()
	defer func() {
		metrics.SnapshotBuildDuration.Observe(time.Since(start).Seconds())
	}()

	purchases, err := b.ledger.ListConfirmedPurchases(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read purchase ledger: %w", domain.ErrCollaboratorUnavailable, err)
	}

	now := b.clock.Now()
	records := FoldPurchases(purchases, now, b.cfg.MinHoldingDays)

	candidates := make([]domain.HoldingRecord, 0, len(records))
	for _, r := range records {
		if r.Eligible {
			candidates = append(candidates, r)
		}
	}

	results := b.verifyBalances(ctx, candidates)

	snapshot := &domain.Snapshot{
		Holders:             make([]domain.HoldingRecord, 0, len(candidates)),
		TotalTokensEligible: decimal.Zero,
		TakenAt:             now,
	}
	for i, holder := range candidates {
		result := results[i]
		switch {
		case result.err != nil:
			logger.WarnCtx(ctx, "Excluding wallet from snapshot, balance verification failed",
				zap.String("wallet", holder.WalletAddress),
				zap.Error(result.err))
			metrics.SnapshotExclusionsTotal.WithLabelValues(metrics.ExclusionOracleError).Inc()
			continue
		case !result.balance.IsPositive():
			logger.DebugCtx(ctx, "Excluding wallet from snapshot, on-chain balance is zero",
				zap.String("wallet", holder.WalletAddress))
			metrics.SnapshotExclusionsTotal.WithLabelValues(metrics.ExclusionZeroBalance).Inc()
			continue
		}

		holder.Balance = result.balance
		holder.Provenance = domain.ProvenanceBlockchainVerified
		snapshot.Holders = append(snapshot.Holders, holder)
		snapshot.TotalTokensEligible = snapshot.TotalTokensEligible.Add(holder.Balance)
	}

	logger.InfoCtx(ctx, "Eligibility snapshot built",
		zap.Int("purchases", len(purchases)),
		zap.Int("wallets", len(records)),
		zap.Int("candidates", len(candidates)),
		zap.Int("eligible", snapshot.EligibleCount()),
		zap.String("total_tokens", snapshot.TotalTokensEligible.String()))

	return snapshot, nil
}

// verifyBalances queries the oracle for every holder on the worker pool.
// Results are returned in input order.
func (b *SnapshotBuilder) verifyBalances(ctx context.Context, holders []domain.HoldingRecord) []*balanceResult {
	tasks := make([]pond.Result[*balanceResult], 0, len(holders))
	for _, holder := range holders {
		address := holder.WalletAddress
		tasks = append(tasks, b.pool.Submit(func() *balanceResult {
			callCtx, cancel := context.WithTimeout(ctx, b.cfg.OracleTimeout)
			defer cancel()

			balance, err := b.oracle.GetBalance(callCtx, address)
			return &balanceResult{balance: balance, err: err}
		}))
	}

	results := make([]*balanceResult, len(tasks))
	for i, task := range tasks {
		result, err := task.Wait()
		if err != nil {
			// the pool panicked or was stopped before the task ran
			result = &balanceResult{err: err}
		}
		results[i] = result
	}
	return results
}

// FoldPurchases aggregates purchases per wallet in ascending first-purchase order.
// A wallet becomes eligible once any fold step sees a holding period of at least
// minHoldingDays and stays eligible afterwards.
func FoldPurchases(purchases []domain.Purchase, now time.Time, minHoldingDays int) []domain.HoldingRecord {
	index := make(map[string]int)
	records := make([]domain.HoldingRecord, 0)

	for _, p := range purchases {
		address := domain.NormalizeAddress(p.WalletAddress)
		i, ok := index[address]
		if !ok {
			records = append(records, domain.HoldingRecord{
				WalletAddress:     address,
				Balance:           decimal.Zero,
				TotalInvested:     decimal.Zero,
				FirstPurchaseDate: p.Timestamp,
				Provenance:        domain.ProvenanceLedgerDerived,
			})
			i = len(records) - 1
			index[address] = i
		}

		r := &records[i]
		r.Balance = r.Balance.Add(p.TokensReceived)
		r.TotalInvested = r.TotalInvested.Add(p.AmountPaid)
		r.PurchaseCount++
		if p.Timestamp.Before(r.FirstPurchaseDate) {
			r.FirstPurchaseDate = p.Timestamp
		}
		r.HoldingPeriodDays = HoldingDays(r.FirstPurchaseDate, now)
		if r.HoldingPeriodDays >= minHoldingDays {
			r.Eligible = true
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].FirstPurchaseDate.Before(records[j].FirstPurchaseDate)
	})

	return records
}

// HoldingDays returns the whole days elapsed between since and now, never negative
func HoldingDays(since, now time.Time) int {
	if now.Before(since) {
		return 0
	}
	return int(now.Sub(since) / (24 * time.Hour))
}
