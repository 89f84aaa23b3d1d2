package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Provenance tags where a holding balance came from
type Provenance string

const (
	ProvenanceLedgerDerived      Provenance = "ledger_derived"
	ProvenanceBlockchainVerified Provenance = "blockchain_verified"
)

// HoldingRecord is the per-wallet view folded from the purchase ledger
type HoldingRecord struct {
	WalletAddress     string          `json:"walletAddress"`
	Balance           decimal.Decimal `json:"cfdBalance"`
	TotalInvested     decimal.Decimal `json:"totalInvested"`
	PurchaseCount     int             `json:"purchaseCount"`
	FirstPurchaseDate time.Time       `json:"firstPurchaseDate"`
	HoldingPeriodDays int             `json:"holdingPeriodDays"`
	Eligible          bool            `json:"isEligibleForDividends"`
	Provenance        Provenance      `json:"source"`
}

// Snapshot is an immutable point-in-time set of eligible holders
type Snapshot struct {
	Holders             []HoldingRecord `json:"holders"`
	TotalTokensEligible decimal.Decimal `json:"totalTokensEligible"`
	TakenAt             time.Time       `json:"takenAt"`
}

// EligibleCount returns the number of holders in the snapshot
func (s *Snapshot) EligibleCount() int {
	return len(s.Holders)
}

// Balances returns the holder balances used by the calculator
func (s *Snapshot) Balances() []HolderBalance {
	balances := make([]HolderBalance, 0, len(s.Holders))
	for _, h := range s.Holders {
		balances = append(balances, HolderBalance{WalletAddress: h.WalletAddress, Balance: h.Balance})
	}
	return balances
}

// HolderBalance is a calculator input row
type HolderBalance struct {
	WalletAddress string          `json:"walletAddress"`
	Balance       decimal.Decimal `json:"cfdBalance"`
}

// DistributionStatus represents the lifecycle state of a distribution
type DistributionStatus string

const (
	DistributionStatusPending    DistributionStatus = "pending"
	DistributionStatusCalculated DistributionStatus = "calculated"
	DistributionStatusProcessing DistributionStatus = "processing"
	DistributionStatusCompleted  DistributionStatus = "completed"
	DistributionStatusFailed     DistributionStatus = "failed"
)

// Visible reports whether entries of a distribution in this state can be read or claimed
func (s DistributionStatus) Visible() bool {
	return s == DistributionStatusCalculated || s == DistributionStatusCompleted
}

// DividendEntry is one holder's computed share of a distribution
type DividendEntry struct {
	WalletAddress   string          `json:"walletAddress"`
	Balance         decimal.Decimal `json:"cfdBalance"`
	SharePercentage decimal.Decimal `json:"sharePercentage"`
	DividendAmount  decimal.Decimal `json:"dividendAmount"`
	Claimed         bool            `json:"claimed"`
	ClaimTxRef      *string         `json:"claimTxHash,omitempty"`
	ClaimedAt       *time.Time      `json:"claimDate,omitempty"`
}

// DistributionSummary is a distribution without its snapshot and entries
type DistributionSummary struct {
	ID                  string             `json:"distributionId"`
	TotalAmount         decimal.Decimal    `json:"totalAmount"`
	Currency            Currency           `json:"currency"`
	Status              DistributionStatus `json:"status"`
	EligibleHolders     int                `json:"eligibleHolders"`
	TotalTokensEligible decimal.Decimal    `json:"totalCFDTokensEligible"`
	AmountPerToken      decimal.Decimal    `json:"amountPerToken"`
	Notes               string             `json:"notes,omitempty"`
	CreatedBy           string             `json:"createdBy"`
	DistributionDate    time.Time          `json:"distributionDate"`
}

// Distribution is one payout event with its frozen snapshot and entries
type Distribution struct {
	DistributionSummary
	Snapshot []HoldingRecord `json:"snapshot"`
	Entries  []DividendEntry `json:"recipients"`
}

// EntryFor returns the wallet's entry or nil
func (d *Distribution) EntryFor(walletAddress string) *DividendEntry {
	walletAddress = NormalizeAddress(walletAddress)
	for i := range d.Entries {
		if d.Entries[i].WalletAddress == walletAddress {
			return &d.Entries[i]
		}
	}
	return nil
}

// CreateDistributionInput is the input to distribution creation
type CreateDistributionInput struct {
	TotalAmount decimal.Decimal
	Notes       string
	CreatedBy   string
}

// Validate checks the creation input
func (in *CreateDistributionInput) Validate() error {
	if !in.TotalAmount.IsPositive() {
		return NewValidationError("totalAmount", "total amount must be greater than zero")
	}
	if len(in.Notes) > 1000 {
		return NewValidationError("notes", "notes must be at most 1000 characters")
	}
	return nil
}

// DividendHistoryItem is one distribution from a wallet's point of view
type DividendHistoryItem struct {
	DistributionID  string          `json:"distributionId"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	SharePercentage decimal.Decimal `json:"sharePercentage"`
	Claimed         bool            `json:"claimed"`
	ClaimedAt       *time.Time      `json:"claimedAt,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// DividendInfo summarizes a wallet's dividend position
type DividendInfo struct {
	WalletAddress      string                `json:"walletAddress"`
	Eligible           bool                  `json:"isEligible"`
	HoldingPeriodDays  int                   `json:"holdingPeriodDays"`
	TotalReceived      decimal.Decimal       `json:"totalReceived"`
	AvailableDividends decimal.Decimal       `json:"availableDividends"`
	History            []DividendHistoryItem `json:"dividendHistory"`
}

// ClaimRequest is the input to a claim
type ClaimRequest struct {
	WalletAddress   string
	DistributionIDs []string
}

// Validate checks the claim input and normalizes the wallet address
func (r *ClaimRequest) Validate() error {
	address, err := ValidateAddress("walletAddress", r.WalletAddress)
	if err != nil {
		return err
	}
	r.WalletAddress = address
	if len(r.DistributionIDs) == 0 {
		return NewValidationError("distributionIds", "at least one distribution id is required")
	}
	return nil
}

// ClaimedDividend is one newly paid entry
type ClaimedDividend struct {
	DistributionID  string          `json:"distributionId"`
	Amount          decimal.Decimal `json:"amount"`
	SharePercentage decimal.Decimal `json:"sharePercentage"`
	TxHash          string          `json:"txHash"`
	ClaimedAt       time.Time       `json:"claimedAt"`
}

// ClaimResult is the outcome of a claim request
type ClaimResult struct {
	WalletAddress string            `json:"walletAddress"`
	TotalClaimed  decimal.Decimal   `json:"totalClaimed"`
	Claimed       []ClaimedDividend `json:"claimedDistributions"`
}

// Projection is an estimate of dividend income, not a contractual payout
type Projection struct {
	WalletAddress            string          `json:"walletAddress"`
	CFDBalance               decimal.Decimal `json:"cfdBalance"`
	TotalSupply              decimal.Decimal `json:"totalSupply"`
	UserSharePercentage      decimal.Decimal `json:"userSharePercentage"`
	MonthlyProfit            decimal.Decimal `json:"monthlyProfit"`
	MonthlyDistribution      decimal.Decimal `json:"monthlyDistribution"`
	ProjectedMonthlyDividend decimal.Decimal `json:"projectedMonthlyDividend"`
	ProjectedYearlyDividend  decimal.Decimal `json:"projectedYearlyDividend"`
	AverageTokenPrice        decimal.Decimal `json:"averageTokenPrice"`
	EstimatedInvestment      decimal.Decimal `json:"estimatedInvestment"`
	AnnualYieldPercentage    decimal.Decimal `json:"annualYieldPercentage"`
	Disclaimer               string          `json:"disclaimer"`
}

// DividendStats aggregates distribution activity
type DividendStats struct {
	TotalDistributions  int64                `json:"totalDistributions"`
	TotalDistributed    decimal.Decimal      `json:"totalDistributed"`
	TotalClaimed        decimal.Decimal      `json:"totalClaimed"`
	AverageDistribution decimal.Decimal      `json:"averageDistribution"`
	UniqueRecipients    int64                `json:"uniqueRecipients"`
	LastDistribution    *DistributionSummary `json:"lastDistribution"`
}

// Pagination describes a page of results
type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
	HasNext     bool  `json:"hasNext"`
	HasPrev     bool  `json:"hasPrev"`
}

// NewPagination computes pagination fields for a page/limit over total items
func NewPagination(page, limit int, total int64) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}

// DistributionPage is a page of distribution summaries
type DistributionPage struct {
	Items      []DistributionSummary `json:"distributions"`
	Pagination Pagination            `json:"pagination"`
}

// DistributionSimulation is a calculated but unpersisted distribution
type DistributionSimulation struct {
	TotalAmount         decimal.Decimal `json:"totalAmount"`
	TotalTokensEligible decimal.Decimal `json:"totalCFDTokensEligible"`
	AmountPerToken      decimal.Decimal `json:"amountPerToken"`
	EligibleHolders     int             `json:"eligibleHolders"`
	Entries             []DividendEntry `json:"recipients"`
	SimulatedAt         time.Time       `json:"simulatedAt"`
}

// ChainHolder is a token holder discovered from on-chain transfer history
type ChainHolder struct {
	WalletAddress     string          `json:"walletAddress"`
	Balance           decimal.Decimal `json:"cfdBalance"`
	FirstTransferAt   *time.Time      `json:"firstTransferAt,omitempty"`
	HoldingPeriodDays int             `json:"holdingPeriodDays"`
	Eligible          bool            `json:"isEligible"`
}
