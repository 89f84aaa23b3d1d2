package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// DividendDistribution represents the dividend_distributions table - one payout event with its frozen snapshot
type DividendDistribution struct {
	// ID is a UUID assigned at creation
	ID string `gorm:"column:id;primaryKey;type:uuid"`
	// TotalAmount is the amount being distributed
	TotalAmount decimal.Decimal `gorm:"column:total_amount;not null;type:numeric(38,18)"`
	// Currency is the payout currency
	Currency domain.Currency `gorm:"column:currency;not null;type:varchar(10)"`
	// TotalTokensEligible is the sum of eligible balances in the snapshot
	TotalTokensEligible decimal.Decimal `gorm:"column:total_tokens_eligible;not null;type:numeric(38,18)"`
	// AmountPerToken is TotalAmount / TotalTokensEligible
	AmountPerToken decimal.Decimal `gorm:"column:amount_per_token;not null;type:numeric(38,18)"`
	// EligibleHolders is the number of holders in the snapshot
	EligibleHolders int `gorm:"column:eligible_holders;not null;default:0"`
	// Status is the lifecycle state: pending, calculated, processing, completed, failed
	Status domain.DistributionStatus `gorm:"column:status;not null;type:varchar(20);index:idx_dividend_distributions_status_date,priority:1"`
	// Notes is free text supplied by the creator
	Notes string `gorm:"column:notes;type:text"`
	// CreatedBy is the principal that created the distribution
	CreatedBy string `gorm:"column:created_by;not null;type:varchar(255)"`
	// Snapshot is the frozen list of eligible holding records
	Snapshot datatypes.JSON `gorm:"column:snapshot;not null;type:jsonb"`
	// DistributionDate is when the distribution was created
	DistributionDate time.Time `gorm:"column:distribution_date;not null;type:timestamptz;index:idx_dividend_distributions_status_date,priority:2,sort:desc"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Entries []DividendEntry `gorm:"foreignKey:DistributionID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the DividendDistribution model
func (DividendDistribution) TableName() string {
	return "dividend_distributions"
}
