package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cfd-platform/cfd-backend/internal/api/shared/constants"
	apierrors "github.com/cfd-platform/cfd-backend/internal/api/shared/errors"
	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// ClaimDividendsRequest represents the request body for claiming dividends
type ClaimDividendsRequest struct {
	WalletAddress   string   `json:"walletAddress"`
	DistributionIDs []string `json:"distributionIds"`
}

// Validate validates the request body
func (r *ClaimDividendsRequest) Validate() error {
	if !domain.IsHexAddress(r.WalletAddress) {
		return apierrors.NewValidationError("walletAddress must be a valid address")
	}

	if len(r.DistributionIDs) == 0 {
		return apierrors.NewValidationError("distributionIds is required")
	}

	if len(r.DistributionIDs) > constants.MAX_CLAIM_DISTRIBUTIONS {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d distribution ids allowed", constants.MAX_CLAIM_DISTRIBUTIONS))
	}

	for _, id := range r.DistributionIDs {
		if strings.TrimSpace(id) == "" {
			return apierrors.NewValidationError("distributionIds must not contain empty ids")
		}
	}

	return nil
}

// ToDomain converts the request to a claim request
func (r *ClaimDividendsRequest) ToDomain() domain.ClaimRequest {
	ids := make([]string, 0, len(r.DistributionIDs))
	for _, id := range r.DistributionIDs {
		ids = append(ids, strings.TrimSpace(id))
	}
	return domain.ClaimRequest{
		WalletAddress:   r.WalletAddress,
		DistributionIDs: ids,
	}
}

// CreateDistributionRequest represents the request body for creating a distribution
type CreateDistributionRequest struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
	Notes       string          `json:"notes"`
}

// Validate validates the request body
func (r *CreateDistributionRequest) Validate() error {
	if !r.TotalAmount.IsPositive() {
		return apierrors.NewValidationError("totalAmount must be greater than zero")
	}

	if len(r.Notes) > constants.MAX_NOTES_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("notes must be at most %d characters", constants.MAX_NOTES_LENGTH))
	}

	return nil
}

// SimulateDistributionRequest represents the request body for a distribution simulation
type SimulateDistributionRequest struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

// Validate validates the request body
func (r *SimulateDistributionRequest) Validate() error {
	if !r.TotalAmount.IsPositive() {
		return apierrors.NewValidationError("totalAmount must be greater than zero")
	}
	return nil
}

// ICOPurchaseRequest represents the request body for recording an ICO purchase
type ICOPurchaseRequest struct {
	WalletAddress    string          `json:"walletAddress"`
	Amount           decimal.Decimal `json:"amount"`
	Phase            int             `json:"phase"`
	TxHash           string          `json:"txHash"`
	BlockNumber      uint64          `json:"blockNumber"`
	AffiliateAddress *string         `json:"affiliateAddress,omitempty"`
}

// Validate validates the request body
func (r *ICOPurchaseRequest) Validate() error {
	if !domain.IsHexAddress(r.WalletAddress) {
		return apierrors.NewValidationError("walletAddress must be a valid address")
	}

	if !r.Amount.IsPositive() {
		return apierrors.NewValidationError("amount must be greater than zero")
	}

	if r.Phase < 1 || r.Phase > 3 {
		return apierrors.NewValidationError("phase must be between 1 and 3")
	}

	if strings.TrimSpace(r.TxHash) == "" {
		return apierrors.NewValidationError("txHash is required")
	}

	if r.AffiliateAddress != nil && !domain.IsHexAddress(*r.AffiliateAddress) {
		return apierrors.NewValidationError("affiliateAddress must be a valid address")
	}

	return nil
}

// ToDomain converts the request to a purchase request
func (r *ICOPurchaseRequest) ToDomain() domain.PurchaseRequest {
	return domain.PurchaseRequest{
		WalletAddress:    r.WalletAddress,
		AmountPaid:       r.Amount,
		Phase:            r.Phase,
		TxHash:           strings.TrimSpace(r.TxHash),
		BlockNumber:      r.BlockNumber,
		AffiliateAddress: r.AffiliateAddress,
	}
}

// UpdateICOPhaseRequest represents the request body for editing a phase. Omitted fields are left unchanged.
type UpdateICOPhaseRequest struct {
	Name            *string          `json:"name"`
	Description     *string          `json:"description"`
	TokenPrice      *decimal.Decimal `json:"tokenPrice"`
	TotalTokens     *decimal.Decimal `json:"totalTokens"`
	BonusPercentage *decimal.Decimal `json:"bonusPercentage"`
	MinPurchase     *decimal.Decimal `json:"minPurchase"`
	MaxPurchase     *decimal.Decimal `json:"maxPurchase"`
	StartDate       *time.Time       `json:"startDate"`
	EndDate         *time.Time       `json:"endDate"`
}

// Validate validates the request body
func (r *UpdateICOPhaseRequest) Validate() error {
	update := r.ToDomain()
	if update.IsEmpty() {
		return apierrors.NewValidationError("at least one phase field is required")
	}

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		return apierrors.NewValidationError("name must not be empty")
	}

	return nil
}

// ToDomain converts the request to a phase update
func (r *UpdateICOPhaseRequest) ToDomain() domain.ICOPhaseUpdate {
	return domain.ICOPhaseUpdate{
		Name:            r.Name,
		Description:     r.Description,
		TokenPrice:      r.TokenPrice,
		TotalTokens:     r.TotalTokens,
		BonusPercentage: r.BonusPercentage,
		MinPurchase:     r.MinPurchase,
		MaxPurchase:     r.MaxPurchase,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
	}
}
