package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// DividendEntry represents the dividend_entries table - one holder's share of a distribution
type DividendEntry struct {
	// ID is the internal database primary key
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// DistributionID references the distribution
	DistributionID string `gorm:"column:distribution_id;not null;type:uuid;uniqueIndex:idx_dividend_entries_distribution_wallet,priority:1"`
	// WalletAddress is the normalized holder address
	WalletAddress string `gorm:"column:wallet_address;not null;type:varchar(42);uniqueIndex:idx_dividend_entries_distribution_wallet,priority:2;index:idx_dividend_entries_wallet"`
	// Balance is the holder's snapshot balance
	Balance decimal.Decimal `gorm:"column:balance;not null;type:numeric(38,18)"`
	// SharePercentage is balance / total eligible * 100
	SharePercentage decimal.Decimal `gorm:"column:share_percentage;not null;type:numeric(38,18)"`
	// DividendAmount is the holder's payout
	DividendAmount decimal.Decimal `gorm:"column:dividend_amount;not null;type:numeric(38,18)"`
	// Claimed flips to true exactly once
	Claimed bool `gorm:"column:claimed;not null;default:false"`
	// ClaimTxHash is the payout reference recorded at claim time
	ClaimTxHash *string `gorm:"column:claim_tx_hash;type:varchar(255)"`
	// ClaimedAt is when the entry was claimed
	ClaimedAt *time.Time `gorm:"column:claimed_at;type:timestamptz"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Distribution *DividendDistribution `gorm:"foreignKey:DistributionID"`
}

// TableName specifies the table name for the DividendEntry model
func (DividendEntry) TableName() string {
	return "dividend_entries"
}
