package dividend

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cfd-platform/cfd-backend/internal/domain"
)

// divisionPlace is the number of decimal places kept by share and amount divisions
const divisionPlace = 18

var hundred = decimal.NewFromInt(100)

// Calculate splits totalAmount across holders pro rata to their balances.
// Every amount is floored to divisionPlace decimals and the non-negative
// residual goes to the largest holder so that the amounts sum to totalAmount
// exactly. Entries are returned sorted by amount descending, ties broken by
// wallet address.
func Calculate(totalAmount decimal.Decimal, holders []domain.HolderBalance) ([]domain.DividendEntry, error) {
	if !totalAmount.IsPositive() {
		return nil, domain.NewValidationError("totalAmount", "total amount must be greater than zero")
	}
	if len(holders) == 0 {
		return nil, domain.ErrNoEligibleHolders
	}

	totalTokens := decimal.Zero
	for _, h := range holders {
		if !h.Balance.IsPositive() {
			return nil, domain.NewValidationError("balance", "holder balance must be greater than zero: "+h.WalletAddress)
		}
		totalTokens = totalTokens.Add(h.Balance)
	}

	entries := make([]domain.DividendEntry, 0, len(holders))
	allocated := decimal.Zero
	for _, h := range holders {
		// QuoRem truncates, so no holder is ever allocated more than its exact share
		amount, _ := totalAmount.Mul(h.Balance).QuoRem(totalTokens, divisionPlace)
		allocated = allocated.Add(amount)

		entries = append(entries, domain.DividendEntry{
			WalletAddress:   domain.NormalizeAddress(h.WalletAddress),
			Balance:         h.Balance,
			SharePercentage: h.Balance.Mul(hundred).DivRound(totalTokens, divisionPlace),
			DividendAmount:  amount,
		})
	}

	SortEntries(entries)
	entries[0].DividendAmount = entries[0].DividendAmount.Add(totalAmount.Sub(allocated))
	return entries, nil
}

// SortEntries orders entries by dividend amount descending, then wallet address ascending
func SortEntries(entries []domain.DividendEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if c := entries[i].DividendAmount.Cmp(entries[j].DividendAmount); c != 0 {
			return c > 0
		}
		return entries[i].WalletAddress < entries[j].WalletAddress
	})
}

// AmountPerToken returns totalAmount divided by the eligible token total
func AmountPerToken(totalAmount, totalTokens decimal.Decimal) decimal.Decimal {
	if !totalTokens.IsPositive() {
		return decimal.Zero
	}
	return totalAmount.DivRound(totalTokens, divisionPlace)
}
