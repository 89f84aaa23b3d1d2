package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// Transaction represents the transactions table - append-only ledger of purchases and payouts
type Transaction struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TxHash is the on-chain hash, or a generated reference for off-chain payouts
	TxHash string `gorm:"column:tx_hash;not null;type:varchar(255);uniqueIndex:idx_transactions_tx_hash"`
	// BlockNumber is the block the transaction was mined in, 0 for off-chain payouts
	BlockNumber uint64 `gorm:"column:block_number;not null;default:0"`
	// WalletAddress is the normalized wallet the entry belongs to
	WalletAddress string `gorm:"column:wallet_address;not null;type:varchar(42);index:idx_transactions_wallet"`
	// Type discriminates the variant: ico_purchase, dividend_payment, affiliate_payment
	Type domain.TransactionType `gorm:"column:type;not null;type:varchar(32);index:idx_transactions_type_status,priority:1"`
	// Amount is the paid or received amount in Currency
	Amount decimal.Decimal `gorm:"column:amount;not null;type:numeric(38,18)"`
	// Currency is the unit of Amount
	Currency domain.Currency `gorm:"column:currency;not null;type:varchar(10)"`
	// Status is the settlement state
	Status domain.TransactionStatus `gorm:"column:status;not null;type:varchar(20);index:idx_transactions_type_status,priority:2"`
	// ICOPhase is set on ico_purchase entries
	ICOPhase *int `gorm:"column:ico_phase"`
	// TokenPrice is set on ico_purchase entries
	TokenPrice *decimal.Decimal `gorm:"column:token_price;type:numeric(38,18)"`
	// TokensReceived is set on ico_purchase entries and includes bonus tokens
	TokensReceived *decimal.Decimal `gorm:"column:tokens_received;type:numeric(38,18)"`
	// BonusTokens is set on ico_purchase entries
	BonusTokens *decimal.Decimal `gorm:"column:bonus_tokens;type:numeric(38,18)"`
	// AffiliateAddress is the referring wallet, if any
	AffiliateAddress *string `gorm:"column:affiliate_address;type:varchar(42)"`
	// GasUsed is the gas consumed by the on-chain transaction
	GasUsed *uint64 `gorm:"column:gas_used"`
	// GasFee is the fee paid for the on-chain transaction
	GasFee *decimal.Decimal `gorm:"column:gas_fee;type:numeric(38,18)"`
	// Metadata holds variant details that have no dedicated column
	Metadata datatypes.JSON `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is the ledger timestamp of the entry
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz;index:idx_transactions_created_at"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
