package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ICOPhase is one sale phase with its pricing and supply
type ICOPhase struct {
	Phase              int             `json:"phase"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	TokenPrice         decimal.Decimal `json:"tokenPrice"`
	TotalTokens        decimal.Decimal `json:"totalTokens"`
	TokensSold         decimal.Decimal `json:"tokensSold"`
	TotalRaised        decimal.Decimal `json:"totalRaised"`
	PercentageOfSupply int             `json:"percentageOfSupply"`
	BonusPercentage    decimal.Decimal `json:"bonusPercentage"`
	MinPurchase        decimal.Decimal `json:"minPurchase"`
	MaxPurchase        decimal.Decimal `json:"maxPurchase"`
	StartDate          time.Time       `json:"startDate"`
	EndDate            time.Time       `json:"endDate"`
	IsActive           bool            `json:"isActive"`
	IsCompleted        bool            `json:"isCompleted"`
	ProgressPercent    decimal.Decimal `json:"progress"`
}

// TokensRemaining returns the unsold supply of the phase
func (p *ICOPhase) TokensRemaining() decimal.Decimal {
	remaining := p.TotalTokens.Sub(p.TokensSold)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}

// Progress returns the sold percentage rounded to two decimals
func (p *ICOPhase) Progress() decimal.Decimal {
	if !p.TotalTokens.IsPositive() {
		return decimal.Zero
	}
	return p.TokensSold.Div(p.TotalTokens).Mul(decimal.NewFromInt(100)).Round(2)
}

// PurchaseQuote is the token allocation for an amount paid in a phase
type PurchaseQuote struct {
	BaseTokens  decimal.Decimal
	BonusTokens decimal.Decimal
	TotalTokens decimal.Decimal
}

// Quote prices amountPaid against the phase and checks limits and remaining supply
func (p *ICOPhase) Quote(amountPaid decimal.Decimal) (PurchaseQuote, error) {
	if !p.IsActive || p.IsCompleted {
		return PurchaseQuote{}, ErrPhaseNotActive
	}
	if amountPaid.LessThan(p.MinPurchase) {
		return PurchaseQuote{}, NewValidationError("amount", "minimum purchase is "+p.MinPurchase.String())
	}
	if amountPaid.GreaterThan(p.MaxPurchase) {
		return PurchaseQuote{}, NewValidationError("amount", "maximum purchase is "+p.MaxPurchase.String())
	}
	if !p.TokenPrice.IsPositive() {
		return PurchaseQuote{}, NewValidationError("tokenPrice", "phase has no token price")
	}

	base := amountPaid.DivRound(p.TokenPrice, 18)
	bonus := base.Mul(p.BonusPercentage).Div(decimal.NewFromInt(100))
	total := base.Add(bonus)

	if total.GreaterThan(p.TokensRemaining()) {
		return PurchaseQuote{}, ErrInsufficientPhaseSupply
	}

	return PurchaseQuote{BaseTokens: base, BonusTokens: bonus, TotalTokens: total}, nil
}

// DefaultICOPhases returns the three sale phases seeded on first start
func DefaultICOPhases() []ICOPhase {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	return []ICOPhase{
		{
			Phase:              1,
			Name:               "Phase 1 - Early Bird",
			Description:        "First ICO phase with the largest discount",
			TokenPrice:         decimal.RequireFromString("0.01"),
			TotalTokens:        decimal.NewFromInt(1680000),
			PercentageOfSupply: 8,
			BonusPercentage:    decimal.NewFromInt(20),
			MinPurchase:        decimal.RequireFromString("0.01"),
			MaxPurchase:        decimal.NewFromInt(1000),
			StartDate:          date(2024, time.January, 1),
			EndDate:            date(2024, time.June, 30),
			IsActive:           true,
		},
		{
			Phase:              2,
			Name:               "Phase 2 - Public Sale",
			Description:        "Second ICO phase open to the general public",
			TokenPrice:         decimal.RequireFromString("0.05"),
			TotalTokens:        decimal.NewFromInt(4200000),
			PercentageOfSupply: 20,
			BonusPercentage:    decimal.NewFromInt(10),
			MinPurchase:        decimal.RequireFromString("0.01"),
			MaxPurchase:        decimal.NewFromInt(500),
			StartDate:          date(2024, time.July, 1),
			EndDate:            date(2024, time.December, 31),
		},
		{
			Phase:              3,
			Name:               "Phase 3 - Final Sale",
			Description:        "Final ICO phase after launch",
			TokenPrice:         decimal.NewFromInt(1),
			TotalTokens:        decimal.NewFromInt(2100000),
			PercentageOfSupply: 10,
			BonusPercentage:    decimal.Zero,
			MinPurchase:        decimal.RequireFromString("0.01"),
			MaxPurchase:        decimal.NewFromInt(100),
			StartDate:          date(2025, time.January, 1),
			EndDate:            date(2025, time.June, 30),
		},
	}
}

// PurchaseRequest is the input to an ICO purchase
type PurchaseRequest struct {
	WalletAddress    string
	AmountPaid       decimal.Decimal
	Phase            int
	TxHash           string
	BlockNumber      uint64
	AffiliateAddress *string
}

// Validate checks the purchase input and normalizes addresses
func (r *PurchaseRequest) Validate() error {
	address, err := ValidateAddress("walletAddress", r.WalletAddress)
	if err != nil {
		return err
	}
	r.WalletAddress = address

	if !r.AmountPaid.IsPositive() {
		return NewValidationError("amount", "amount must be greater than zero")
	}
	if r.Phase < 1 || r.Phase > 3 {
		return NewValidationError("phase", "phase must be between 1 and 3")
	}
	if r.TxHash == "" {
		return NewValidationError("txHash", "transaction hash is required")
	}
	if r.AffiliateAddress != nil {
		affiliate, err := ValidateAddress("affiliateAddress", *r.AffiliateAddress)
		if err != nil {
			return err
		}
		if affiliate == r.WalletAddress {
			return NewValidationError("affiliateAddress", "affiliate cannot be the purchaser")
		}
		r.AffiliateAddress = &affiliate
	}
	return nil
}

// PurchaseResult is the outcome of an ICO purchase
type PurchaseResult struct {
	WalletAddress  string          `json:"walletAddress"`
	AmountPaid     decimal.Decimal `json:"amountPaid"`
	Phase          int             `json:"phase"`
	BaseTokens     decimal.Decimal `json:"baseTokens"`
	BonusTokens    decimal.Decimal `json:"bonusTokens"`
	TotalTokens    decimal.Decimal `json:"totalTokens"`
	TokenPrice     decimal.Decimal `json:"tokenPrice"`
	TxHash         string          `json:"txHash"`
	PhaseCompleted bool            `json:"phaseCompleted"`
}

// ICOStatus summarizes the sale across phases
type ICOStatus struct {
	CurrentPhase       *ICOPhase       `json:"currentPhase"`
	TotalPhases        int             `json:"totalPhases"`
	CompletedPhases    int             `json:"completedPhases"`
	Phases             []ICOPhase      `json:"phases"`
	TotalTokensSold    decimal.Decimal `json:"totalTokensSold"`
	TotalRaised        decimal.Decimal `json:"totalRaised"`
	TotalTokensForSale decimal.Decimal `json:"totalTokensForSale"`
	OverallProgress    decimal.Decimal `json:"overallProgress"`
}

// ICOActivity reports whether a phase is currently selling
type ICOActivity struct {
	IsActive    bool      `json:"isActive"`
	ActivePhase *ICOPhase `json:"activePhase"`
}

// ICOPhaseUpdate holds the admin-editable phase settings. Nil fields are left unchanged.
type ICOPhaseUpdate struct {
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

// IsEmpty reports whether the update changes nothing
func (u *ICOPhaseUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.TokenPrice == nil && u.TotalTokens == nil &&
		u.BonusPercentage == nil && u.MinPurchase == nil && u.MaxPurchase == nil &&
		u.StartDate == nil && u.EndDate == nil
}

// Apply validates the update against the current phase and returns the updated phase
func (u *ICOPhaseUpdate) Apply(p ICOPhase) (ICOPhase, error) {
	if u.IsEmpty() {
		return p, NewValidationError("", "no phase fields to update")
	}

	if u.Name != nil {
		if *u.Name == "" {
			return p, NewValidationError("name", "name must not be empty")
		}
		p.Name = *u.Name
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.TokenPrice != nil {
		if !u.TokenPrice.IsPositive() {
			return p, NewValidationError("tokenPrice", "token price must be greater than zero")
		}
		p.TokenPrice = *u.TokenPrice
	}
	if u.TotalTokens != nil {
		if u.TotalTokens.LessThan(p.TokensSold) {
			return p, NewValidationError("totalTokens", "total tokens cannot be below tokens already sold")
		}
		p.TotalTokens = *u.TotalTokens
	}
	if u.BonusPercentage != nil {
		if u.BonusPercentage.IsNegative() || u.BonusPercentage.GreaterThan(decimal.NewFromInt(100)) {
			return p, NewValidationError("bonusPercentage", "bonus percentage must be between 0 and 100")
		}
		p.BonusPercentage = *u.BonusPercentage
	}
	if u.MinPurchase != nil {
		p.MinPurchase = *u.MinPurchase
	}
	if u.MaxPurchase != nil {
		p.MaxPurchase = *u.MaxPurchase
	}
	if !p.MinPurchase.IsPositive() || p.MaxPurchase.LessThan(p.MinPurchase) {
		return p, NewValidationError("minPurchase", "purchase limits must satisfy 0 < min <= max")
	}
	if u.StartDate != nil {
		p.StartDate = u.StartDate.UTC()
	}
	if u.EndDate != nil {
		p.EndDate = u.EndDate.UTC()
	}
	if p.EndDate.Before(p.StartDate) {
		return p, NewValidationError("endDate", "end date must not be before start date")
	}

	return p, nil
}
