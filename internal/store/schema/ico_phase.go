package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// ICOPhase represents the ico_phases table - pricing and supply per sale phase
type ICOPhase struct {
	// Phase is the phase number and primary key
	Phase int `gorm:"column:phase;primaryKey"`
	// Name is the display name
	Name string `gorm:"column:name;not null;type:varchar(255)"`
	// Description is the display description
	Description string `gorm:"column:description;type:text"`
	// TokenPrice is the price of one token in the purchase currency
	TokenPrice decimal.Decimal `gorm:"column:token_price;not null;type:numeric(38,18)"`
	// TotalTokens is the phase supply
	TotalTokens decimal.Decimal `gorm:"column:total_tokens;not null;type:numeric(38,18)"`
	// TokensSold includes bonus tokens
	TokensSold decimal.Decimal `gorm:"column:tokens_sold;not null;default:0;type:numeric(38,18)"`
	// TotalRaised is the sum of amounts paid
	TotalRaised decimal.Decimal `gorm:"column:total_raised;not null;default:0;type:numeric(38,18)"`
	// PercentageOfSupply is the share of the total token supply sold in this phase
	PercentageOfSupply int `gorm:"column:percentage_of_supply;not null"`
	// BonusPercentage is added on top of the base tokens
	BonusPercentage decimal.Decimal `gorm:"column:bonus_percentage;not null;default:0;type:numeric(10,4)"`
	// MinPurchase is the smallest accepted amount
	MinPurchase decimal.Decimal `gorm:"column:min_purchase;not null;type:numeric(38,18)"`
	// MaxPurchase is the largest accepted amount
	MaxPurchase decimal.Decimal `gorm:"column:max_purchase;not null;type:numeric(38,18)"`
	// StartDate is the scheduled start
	StartDate time.Time `gorm:"column:start_date;not null;type:timestamptz"`
	// EndDate is the scheduled end
	EndDate time.Time `gorm:"column:end_date;not null;type:timestamptz"`
	// IsActive marks the phase currently accepting purchases
	IsActive bool `gorm:"column:is_active;not null;default:false"`
	// IsCompleted is set once the supply is sold out
	IsCompleted bool `gorm:"column:is_completed;not null;default:false"`
	// CreatedAt is the timestamp when this row was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this row was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the ICOPhase model
func (ICOPhase) TableName() string {
	return "ico_phases"
}
