package dividend

import (
	"github.com/shopspring/decimal"

	"github.com/cfd-platform/cfd-backend/internal/domain"
)

const projectionDisclaimer = "Projection is an estimate based on the given monthly profit and current balance. Actual dividends may differ."

var monthsPerYear = decimal.NewFromInt(12)

// ProjectionInput is the input to Project
type ProjectionInput struct {
	WalletAddress     string
	Balance           decimal.Decimal
	TotalSupply       decimal.Decimal
	MonthlyProfit     decimal.Decimal
	DistributionRate  decimal.Decimal
	AverageTokenPrice decimal.Decimal
}

// Project estimates monthly and yearly dividends for a balance. It has no side effects.
func Project(in ProjectionInput) domain.Projection {
	share := decimal.Zero
	if in.TotalSupply.IsPositive() {
		share = in.Balance.Mul(hundred).DivRound(in.TotalSupply, divisionPlace)
	}

	monthlyDistribution := in.MonthlyProfit.Mul(in.DistributionRate)
	monthly := monthlyDistribution.Mul(share).DivRound(hundred, divisionPlace)
	yearly := monthly.Mul(monthsPerYear)
	investment := in.Balance.Mul(in.AverageTokenPrice)

	annualYield := decimal.Zero
	if investment.IsPositive() {
		annualYield = yearly.Mul(hundred).DivRound(investment, divisionPlace)
	}

	return domain.Projection{
		WalletAddress:            in.WalletAddress,
		CFDBalance:               in.Balance,
		TotalSupply:              in.TotalSupply,
		UserSharePercentage:      share,
		MonthlyProfit:            in.MonthlyProfit,
		MonthlyDistribution:      monthlyDistribution,
		ProjectedMonthlyDividend: monthly,
		ProjectedYearlyDividend:  yearly,
		AverageTokenPrice:        in.AverageTokenPrice,
		EstimatedInvestment:      investment,
		AnnualYieldPercentage:    annualYield,
		Disclaimer:               projectionDisclaimer,
	}
}
