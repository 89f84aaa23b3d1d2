package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType discriminates ledger entry variants
type TransactionType string

const (
	TransactionTypeICOPurchase      TransactionType = "ico_purchase"
	TransactionTypeDividendPayment  TransactionType = "dividend_payment"
	TransactionTypeAffiliatePayment TransactionType = "affiliate_payment"
)

// Valid checks if the transaction type is known
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeICOPurchase, TransactionTypeDividendPayment, TransactionTypeAffiliatePayment:
		return true
	}
	return false
}

// Currency represents the unit an amount is denominated in
type Currency string

const (
	CurrencyCFD   Currency = "CFD"
	CurrencyUSDT  Currency = "USDT"
	CurrencyMATIC Currency = "MATIC"
	CurrencyETH   Currency = "ETH"
)

// Valid checks if the currency is supported
func (c Currency) Valid() bool {
	switch c {
	case CurrencyCFD, CurrencyUSDT, CurrencyMATIC, CurrencyETH:
		return true
	}
	return false
}

// TransactionStatus represents the settlement state of a ledger entry
type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusConfirmed TransactionStatus = "confirmed"
	TransactionStatusFailed    TransactionStatus = "failed"
)

// Transaction is an append-only ledger entry.
// Exactly one variant payload is set and it must match Type.
type Transaction struct {
	TxHash        string
	BlockNumber   uint64
	WalletAddress string
	Type          TransactionType
	Amount        decimal.Decimal
	Currency      Currency
	Status        TransactionStatus
	GasUsed       *uint64
	GasFee        *decimal.Decimal
	CreatedAt     time.Time

	Purchase         *PurchaseDetails
	DividendPayment  *DividendPaymentDetails
	AffiliatePayment *AffiliatePaymentDetails
}

// PurchaseDetails carries the fields required by an ico_purchase entry
type PurchaseDetails struct {
	ICOPhase         int
	TokenPrice       decimal.Decimal
	TokensReceived   decimal.Decimal
	BonusTokens      decimal.Decimal
	AffiliateAddress *string
}

// DividendPaymentDetails carries the fields required by a dividend_payment entry
type DividendPaymentDetails struct {
	DistributionID  string          `json:"distributionId"`
	SharePercentage decimal.Decimal `json:"sharePercentage"`
	CFDBalance      decimal.Decimal `json:"cfdBalance"`
}

// AffiliatePaymentDetails carries the fields required by an affiliate_payment entry
type AffiliatePaymentDetails struct {
	AffiliateAddress string          `json:"affiliateAddress"`
	Commission       decimal.Decimal `json:"commission"`
	SourceTxHash     string          `json:"sourceTxHash"`
}

// Validate checks the common fields and the variant payload selected by Type
func (t *Transaction) Validate() error {
	if t.TxHash == "" {
		return NewValidationError("txHash", "transaction hash is required")
	}
	if _, err := ValidateAddress("walletAddress", t.WalletAddress); err != nil {
		return err
	}
	if !t.Type.Valid() {
		return NewValidationError("type", "unknown transaction type")
	}
	if !t.Currency.Valid() {
		return NewValidationError("currency", "unsupported currency")
	}
	if !t.Amount.IsPositive() {
		return NewValidationError("amount", "amount must be greater than zero")
	}

	variants := 0
	for _, set := range []bool{t.Purchase != nil, t.DividendPayment != nil, t.AffiliatePayment != nil} {
		if set {
			variants++
		}
	}
	if variants != 1 {
		return NewValidationError("type", "exactly one variant payload must be set")
	}

	switch t.Type {
	case TransactionTypeICOPurchase:
		if t.Purchase == nil {
			return NewValidationError("purchase", "purchase details are required")
		}
		return t.Purchase.Validate()
	case TransactionTypeDividendPayment:
		if t.DividendPayment == nil {
			return NewValidationError("dividendPayment", "dividend payment details are required")
		}
		return t.DividendPayment.Validate()
	case TransactionTypeAffiliatePayment:
		if t.AffiliatePayment == nil {
			return NewValidationError("affiliatePayment", "affiliate payment details are required")
		}
		return t.AffiliatePayment.Validate()
	}

	return nil
}

// Validate checks the purchase variant fields
func (p *PurchaseDetails) Validate() error {
	if p.ICOPhase < 1 || p.ICOPhase > 3 {
		return NewValidationError("icoPhase", "phase must be between 1 and 3")
	}
	if !p.TokenPrice.IsPositive() {
		return NewValidationError("tokenPrice", "token price must be greater than zero")
	}
	if !p.TokensReceived.IsPositive() {
		return NewValidationError("tokensReceived", "tokens received must be greater than zero")
	}
	if p.BonusTokens.IsNegative() {
		return NewValidationError("bonusTokens", "bonus tokens cannot be negative")
	}
	if p.AffiliateAddress != nil {
		if _, err := ValidateAddress("affiliateAddress", *p.AffiliateAddress); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the dividend payment variant fields
func (d *DividendPaymentDetails) Validate() error {
	if d.DistributionID == "" {
		return NewValidationError("distributionId", "distribution id is required")
	}
	if d.SharePercentage.IsNegative() || d.SharePercentage.GreaterThan(decimal.NewFromInt(100)) {
		return NewValidationError("sharePercentage", "share percentage must be between 0 and 100")
	}
	if !d.CFDBalance.IsPositive() {
		return NewValidationError("cfdBalance", "balance must be greater than zero")
	}
	return nil
}

// Validate checks the affiliate payment variant fields
func (a *AffiliatePaymentDetails) Validate() error {
	if _, err := ValidateAddress("affiliateAddress", a.AffiliateAddress); err != nil {
		return err
	}
	if !a.Commission.IsPositive() {
		return NewValidationError("commission", "commission must be greater than zero")
	}
	if a.SourceTxHash == "" {
		return NewValidationError("sourceTxHash", "source transaction hash is required")
	}
	return nil
}

// Purchase is a confirmed ico_purchase read back from the ledger
type Purchase struct {
	WalletAddress  string
	TokensReceived decimal.Decimal
	AmountPaid     decimal.Decimal
	Timestamp      time.Time
}

// LedgerEntry is a ledger row as exposed to wallet owners
type LedgerEntry struct {
	TxHash           string            `json:"txHash"`
	BlockNumber      uint64            `json:"blockNumber"`
	WalletAddress    string            `json:"walletAddress"`
	Type             TransactionType   `json:"type"`
	Amount           decimal.Decimal   `json:"amount"`
	Currency         Currency          `json:"currency"`
	Status           TransactionStatus `json:"status"`
	ICOPhase         *int              `json:"icoPhase,omitempty"`
	TokenPrice       *decimal.Decimal  `json:"tokenPrice,omitempty"`
	TokensReceived   *decimal.Decimal  `json:"tokensReceived,omitempty"`
	BonusTokens      *decimal.Decimal  `json:"bonusTokens,omitempty"`
	AffiliateAddress *string           `json:"affiliateAddress,omitempty"`
	Metadata         map[string]any    `json:"metadata,omitempty"`
	CreatedAt        time.Time         `json:"createdAt"`
}

// TransactionFilter selects a page of one wallet's ledger entries
type TransactionFilter struct {
	WalletAddress string
	// Type is optional, nil lists every type
	Type  *TransactionType
	Page  int
	Limit int
}

// Validate checks the filter and normalizes the wallet address
func (f *TransactionFilter) Validate() error {
	address, err := ValidateAddress("walletAddress", f.WalletAddress)
	if err != nil {
		return err
	}
	f.WalletAddress = address

	if f.Type != nil && !f.Type.Valid() {
		return NewValidationError("type", "unknown transaction type")
	}
	return nil
}

// TransactionPage is a page of ledger entries newest first
type TransactionPage struct {
	Items      []LedgerEntry `json:"transactions"`
	Pagination Pagination    `json:"pagination"`
}
