package domain

import "github.com/shopspring/decimal"

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Dividend constants
	MIN_HOLDING_PERIOD_DAYS = 30
	DIVIDEND_CURRENCY       = CurrencyUSDT
	SYSTEM_PRINCIPAL        = "system"

	// Projection constants
	DEFAULT_MONTHLY_PROFIT = 100000
	DEFAULT_TOTAL_SUPPLY   = 21000000
)

var (
	// DistributionRate is the fraction of monthly profit paid out to holders
	DistributionRate = decimal.RequireFromString("0.6")

	// AverageTokenPrice is the assumed acquisition price used for yield estimates
	AverageTokenPrice = decimal.RequireFromString("0.05")

	// DistributionTolerance is the relative tolerance for Σ dividendAmount == totalAmount
	DistributionTolerance = decimal.New(1, -6)
)
