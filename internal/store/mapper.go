package store

import (
	"encoding/json"
	"fmt"

	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/store/schema"
)

// ToDomainDistributionSummary maps a distribution row without its snapshot and entries
func ToDomainDistributionSummary(d schema.DividendDistribution) domain.DistributionSummary {
	return domain.DistributionSummary{
		ID:                  d.ID,
		TotalAmount:         d.TotalAmount,
		Currency:            d.Currency,
		Status:              d.Status,
		EligibleHolders:     d.EligibleHolders,
		TotalTokensEligible: d.TotalTokensEligible,
		AmountPerToken:      d.AmountPerToken,
		Notes:               d.Notes,
		CreatedBy:           d.CreatedBy,
		DistributionDate:    d.DistributionDate,
	}
}

// ToDomainDistribution maps a distribution row with its snapshot and loaded entries
func ToDomainDistribution(d schema.DividendDistribution) (*domain.Distribution, error) {
	distribution := &domain.Distribution{
		DistributionSummary: ToDomainDistributionSummary(d),
		Snapshot:            []domain.HoldingRecord{},
		Entries:             make([]domain.DividendEntry, 0, len(d.Entries)),
	}

	if len(d.Snapshot) > 0 {
		if err := json.Unmarshal(d.Snapshot, &distribution.Snapshot); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot of distribution %s: %w", d.ID, err)
		}
	}

	for _, e := range d.Entries {
		distribution.Entries = append(distribution.Entries, ToDomainDividendEntry(e))
	}

	return distribution, nil
}

// ToDomainDividendEntry maps a dividend entry row
func ToDomainDividendEntry(e schema.DividendEntry) domain.DividendEntry {
	return domain.DividendEntry{
		WalletAddress:   e.WalletAddress,
		Balance:         e.Balance,
		SharePercentage: e.SharePercentage,
		DividendAmount:  e.DividendAmount,
		Claimed:         e.Claimed,
		ClaimTxRef:      e.ClaimTxHash,
		ClaimedAt:       e.ClaimedAt,
	}
}

// ToDomainLedgerEntry maps a transaction row, decoding its metadata
func ToDomainLedgerEntry(t schema.Transaction) (domain.LedgerEntry, error) {
	entry := domain.LedgerEntry{
		TxHash:           t.TxHash,
		BlockNumber:      t.BlockNumber,
		WalletAddress:    t.WalletAddress,
		Type:             t.Type,
		Amount:           t.Amount,
		Currency:         t.Currency,
		Status:           t.Status,
		ICOPhase:         t.ICOPhase,
		TokenPrice:       t.TokenPrice,
		TokensReceived:   t.TokensReceived,
		BonusTokens:      t.BonusTokens,
		AffiliateAddress: t.AffiliateAddress,
		CreatedAt:        t.CreatedAt,
	}

	if len(t.Metadata) > 0 {
		if err := json.Unmarshal(t.Metadata, &entry.Metadata); err != nil {
			return entry, fmt.Errorf("failed to decode metadata of transaction %s: %w", t.TxHash, err)
		}
	}

	return entry, nil
}

// ToDomainICOPhase maps a phase row to its domain type
func ToDomainICOPhase(p schema.ICOPhase) domain.ICOPhase {
	return domain.ICOPhase{
		Phase:              p.Phase,
		Name:               p.Name,
		Description:        p.Description,
		TokenPrice:         p.TokenPrice,
		TotalTokens:        p.TotalTokens,
		TokensSold:         p.TokensSold,
		TotalRaised:        p.TotalRaised,
		PercentageOfSupply: p.PercentageOfSupply,
		BonusPercentage:    p.BonusPercentage,
		MinPurchase:        p.MinPurchase,
		MaxPurchase:        p.MaxPurchase,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		IsActive:           p.IsActive,
		IsCompleted:        p.IsCompleted,
	}
}

// ToSchemaICOPhase maps a domain phase to its row
func ToSchemaICOPhase(p domain.ICOPhase) schema.ICOPhase {
	return schema.ICOPhase{
		Phase:              p.Phase,
		Name:               p.Name,
		Description:        p.Description,
		TokenPrice:         p.TokenPrice,
		TotalTokens:        p.TotalTokens,
		TokensSold:         p.TokensSold,
		TotalRaised:        p.TotalRaised,
		PercentageOfSupply: p.PercentageOfSupply,
		BonusPercentage:    p.BonusPercentage,
		MinPurchase:        p.MinPurchase,
		MaxPurchase:        p.MaxPurchase,
		StartDate:          p.StartDate,
		EndDate:            p.EndDate,
		IsActive:           p.IsActive,
		IsCompleted:        p.IsCompleted,
	}
}
