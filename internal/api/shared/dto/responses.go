package dto

import (
	"github.com/shopspring/decimal"

	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status   string `json:"status"`
	Service  string `json:"service"`
	Database string `json:"database"`
}

// EligibleHoldersResponse represents the current eligibility snapshot
type EligibleHoldersResponse struct {
	Snapshot *domain.Snapshot `json:"snapshot"`
	Count    int              `json:"count"`
}

// ChainHoldersResponse represents holders discovered from transfer history
type ChainHoldersResponse struct {
	Holders []domain.ChainHolder `json:"holders"`
	Count   int                  `json:"count"`
}

// ClaimDividendsResponse represents a successful claim
type ClaimDividendsResponse struct {
	*domain.ClaimResult
	Message string `json:"message"`
}

// ICOStatsResponse summarizes the token sale without per-phase detail
type ICOStatsResponse struct {
	TotalPhases        int             `json:"totalPhases"`
	CompletedPhases    int             `json:"completedPhases"`
	ActivePhase        *int            `json:"activePhase"`
	TotalTokensSold    decimal.Decimal `json:"totalTokensSold"`
	TotalRaised        decimal.Decimal `json:"totalRaised"`
	TotalTokensForSale decimal.Decimal `json:"totalTokensForSale"`
	OverallProgress    decimal.Decimal `json:"overallProgress"`
}
