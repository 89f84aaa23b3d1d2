package dividend

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// Oracle answers on-chain balance and transfer-history questions about the token
//
//go:generate mockgen -source=dividend.go -destination=../mocks/dividend.go -package=mocks -mock_names=Oracle=MockOracle,Ledger=MockLedger
type Oracle interface {
	// GetBalance returns the current token balance of address
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)

	// GetFirstTransferTimestamp returns the first incoming transfer time, nil if none
	GetFirstTransferTimestamp(ctx context.Context, address string) (*time.Time, error)

	// ListHolderAddresses returns every address that ever received tokens
	ListHolderAddresses(ctx context.Context) ([]string, error)

	// TotalSupply returns the token total supply
	TotalSupply(ctx context.Context) (decimal.Decimal, error)
}

// Ledger is the read side of the purchase ledger
type Ledger interface {
	// ListConfirmedPurchases returns confirmed purchases ordered by timestamp ascending
	ListConfirmedPurchases(ctx context.Context) ([]domain.Purchase, error)
}

// Config holds the dividend engine settings
type Config struct {
	// MinHoldingDays is the holding period a purchase needs before its wallet is eligible
	MinHoldingDays int

	// DistributionRate is the share of monthly profit paid to holders in projections
	DistributionRate decimal.Decimal

	// DefaultTotalSupply is used by projections when the oracle cannot report supply
	DefaultTotalSupply decimal.Decimal

	// AverageTokenPrice is the assumed acquisition price for yield estimates
	AverageTokenPrice decimal.Decimal

	// DefaultMonthlyProfit is used when a projection request names no profit
	DefaultMonthlyProfit decimal.Decimal

	// OracleTimeout bounds each oracle call made while building a snapshot
	OracleTimeout time.Duration

	// OracleMaxWorkers caps concurrent oracle calls
	OracleMaxWorkers int
}

// DefaultConfig returns the production defaults
func DefaultConfig() Config {
	return Config{
		MinHoldingDays:       domain.MIN_HOLDING_PERIOD_DAYS,
		DistributionRate:     domain.DistributionRate,
		DefaultTotalSupply:   decimal.NewFromInt(domain.DEFAULT_TOTAL_SUPPLY),
		AverageTokenPrice:    domain.AverageTokenPrice,
		DefaultMonthlyProfit: decimal.NewFromInt(domain.DEFAULT_MONTHLY_PROFIT),
		OracleTimeout:        10 * time.Second,
		OracleMaxWorkers:     8,
	}
}

func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.MinHoldingDays <= 0 {
		c.MinHoldingDays = d.MinHoldingDays
	}
	if !c.DistributionRate.IsPositive() {
		c.DistributionRate = d.DistributionRate
	}
	if !c.DefaultTotalSupply.IsPositive() {
		c.DefaultTotalSupply = d.DefaultTotalSupply
	}
	if !c.AverageTokenPrice.IsPositive() {
		c.AverageTokenPrice = d.AverageTokenPrice
	}
	if !c.DefaultMonthlyProfit.IsPositive() {
		c.DefaultMonthlyProfit = d.DefaultMonthlyProfit
	}
	if c.OracleTimeout <= 0 {
		c.OracleTimeout = d.OracleTimeout
	}
	if c.OracleMaxWorkers <= 0 {
		c.OracleMaxWorkers = d.OracleMaxWorkers
	}
	return c
}
