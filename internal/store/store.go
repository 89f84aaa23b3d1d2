package store

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/store/schema"
)

// CreateDistributionInput represents the data needed to persist a calculated distribution
type CreateDistributionInput struct {
	// ID is optional, a UUID is generated when empty
	ID                  string
	TotalAmount         decimal.Decimal
	Currency            domain.Currency
	TotalTokensEligible decimal.Decimal
	AmountPerToken      decimal.Decimal
	Notes               string
	CreatedBy           string
	DistributionDate    time.Time
	Snapshot            []domain.HoldingRecord
	Entries             []CreateDividendEntryInput
}

// CreateDividendEntryInput represents one holder's computed share
type CreateDividendEntryInput struct {
	WalletAddress   string
	Balance         decimal.Decimal
	SharePercentage decimal.Decimal
	DividendAmount  decimal.Decimal
}

// ClaimEntryInput represents the data needed to claim one distribution entry
type ClaimEntryInput struct {
	DistributionID string
	WalletAddress  string
	ClaimTxHash    string
	ClaimedAt      time.Time
}

// TransactionListFilter selects a page of one wallet's ledger entries
type TransactionListFilter struct {
	WalletAddress string
	// Type is optional, nil lists every type
	Type   *domain.TransactionType
	Offset int
	Limit  int
}

// WalletEntry is a dividend entry joined with its distribution's date and notes
type WalletEntry struct {
	schema.DividendEntry
	DistributionDate time.Time `gorm:"column:distribution_date"`
	Notes            string    `gorm:"column:notes"`
}

// DividendStats holds aggregated distribution and payout figures
type DividendStats struct {
	TotalDistributions int64
	TotalDistributed   decimal.Decimal
	TotalClaimed       decimal.Decimal
	UniqueRecipients   int64
	LastDistribution   *schema.DividendDistribution
}

// RecordPurchaseInput represents an ICO purchase to apply to a phase and the ledger
type RecordPurchaseInput struct {
	Request   domain.PurchaseRequest
	Timestamp time.Time
}

// RecordPurchaseResult is the outcome of RecordPurchase
type RecordPurchaseResult struct {
	Quote          domain.PurchaseQuote
	Phase          schema.ICOPhase
	PhaseCompleted bool
}

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// Ping checks database connectivity
	Ping(ctx context.Context) error

	// =============================================================================
	// Ledger
	// =============================================================================

	// GetTransactionByHash retrieves a ledger entry by hash, nil if not found
	GetTransactionByHash(ctx context.Context, txHash string) (*schema.Transaction, error)
	// ListWalletTransactions returns a page of the wallet's ledger entries newest first and the total count
	ListWalletTransactions(ctx context.Context, filter TransactionListFilter) ([]schema.Transaction, int64, error)
	// ListConfirmedPurchases returns confirmed ico_purchase entries ordered by timestamp ascending
	ListConfirmedPurchases(ctx context.Context) ([]domain.Purchase, error)

	// =============================================================================
	// Distributions
	// =============================================================================

	// CreateDistribution persists a distribution as pending with its snapshot,
	// inserts its entries and transitions it to calculated in one transaction
	CreateDistribution(ctx context.Context, input CreateDistributionInput) (*schema.DividendDistribution, error)
	// GetDistribution retrieves a distribution with its entries, nil if not found
	GetDistribution(ctx context.Context, id string) (*schema.DividendDistribution, error)
	// ListDistributions returns a page of distributions newest first, without entries, and the total count
	ListDistributions(ctx context.Context, offset, limit int) ([]schema.DividendDistribution, int64, error)
	// ListWalletEntries returns the wallet's entries in calculated or completed distributions, newest first
	ListWalletEntries(ctx context.Context, walletAddress string) ([]WalletEntry, error)
	// ClaimEntry marks an unclaimed entry as claimed and appends its payment record.
	// Returns nil when the id is malformed, the entry does not exist or is already
	// claimed, its amount is zero, or its distribution is not claimable.
	ClaimEntry(ctx context.Context, input ClaimEntryInput) (*schema.DividendEntry, error)
	// GetDividendStats aggregates calculated and completed distributions and payouts
	GetDividendStats(ctx context.Context) (*DividendStats, error)

	// =============================================================================
	// ICO phases
	// =============================================================================

	// ListICOPhases returns all phases ordered by phase number
	ListICOPhases(ctx context.Context) ([]schema.ICOPhase, error)
	// InsertMissingICOPhases inserts phases that do not exist yet and returns how many were inserted
	InsertMissingICOPhases(ctx context.Context, phases []schema.ICOPhase) (int64, error)
	// RecordPurchase applies a purchase to its phase under a row lock and appends
	// the ico_purchase ledger entry in the same transaction
	RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*RecordPurchaseResult, error)
	// ActivateNextICOPhase completes the active phase and activates the next one.
	// Returns domain.ErrNoNextPhase when there is none.
	ActivateNextICOPhase(ctx context.Context) (*schema.ICOPhase, error)
	// UpdateICOPhase applies admin settings to a phase. Returns domain.ErrPhaseNotFound for unknown phases.
	UpdateICOPhase(ctx context.Context, phase int, update domain.ICOPhaseUpdate) (*schema.ICOPhase, error)
}
