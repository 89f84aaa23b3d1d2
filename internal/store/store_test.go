package store

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/store/schema"
)

// StoreTestSuite provides the interface for running store tests against different implementations
type StoreTestSuite struct {
	Store Store
	// InitDB should be called before each test to initialize the database
	InitDB func(t *testing.T) Store
	// CleanupDB should be called after each test to clean up the database
	CleanupDB func(t *testing.T)
}

// =============================================================================
// Test Data Builders
// =============================================================================

// testAddress returns a deterministic, valid, lowercase address for n
func testAddress(n int) string {
	return fmt.Sprintf("0x%040x", n)
}

// buildTestPurchase creates a confirmed ico_purchase ledger entry
func buildTestPurchase(wallet, txHash string, tokens int64, at time.Time) domain.Transaction {
	return domain.Transaction{
		TxHash:        txHash,
		BlockNumber:   100,
		WalletAddress: wallet,
		Type:          domain.TransactionTypeICOPurchase,
		Amount:        decimal.NewFromInt(tokens).Mul(decimal.RequireFromString("0.01")),
		Currency:      domain.CurrencyMATIC,
		Status:        domain.TransactionStatusConfirmed,
		CreatedAt:     at,
		Purchase: &domain.PurchaseDetails{
			ICOPhase:       1,
			TokenPrice:     decimal.RequireFromString("0.01"),
			TokensReceived: decimal.NewFromInt(tokens),
			BonusTokens:    decimal.Zero,
		},
	}
}

// buildTestDistribution creates a distribution input splitting total across wallets by balance
func buildTestDistribution(total int64, balances map[string]int64, at time.Time) CreateDistributionInput {
	totalTokens := decimal.Zero
	for _, b := range balances {
		totalTokens = totalTokens.Add(decimal.NewFromInt(b))
	}

	input := CreateDistributionInput{
		TotalAmount:         decimal.NewFromInt(total),
		Currency:            domain.CurrencyUSDT,
		TotalTokensEligible: totalTokens,
		AmountPerToken:      decimal.Zero,
		Notes:               "test distribution",
		CreatedBy:           domain.SYSTEM_PRINCIPAL,
		DistributionDate:    at,
	}
	if totalTokens.IsZero() {
		return input
	}
	input.AmountPerToken = decimal.NewFromInt(total).Div(totalTokens)

	for wallet, b := range balances {
		balance := decimal.NewFromInt(b)
		input.Snapshot = append(input.Snapshot, domain.HoldingRecord{
			WalletAddress: wallet,
			Balance:       balance,
			Eligible:      true,
			Provenance:    domain.ProvenanceBlockchainVerified,
		})
		input.Entries = append(input.Entries, CreateDividendEntryInput{
			WalletAddress:   wallet,
			Balance:         balance,
			SharePercentage: balance.Div(totalTokens).Mul(decimal.NewFromInt(100)),
			DividendAmount:  decimal.NewFromInt(total).Mul(balance).Div(totalTokens),
		})
	}

	return input
}

// buildTestPhases returns the default phases as rows
func buildTestPhases() []schema.ICOPhase {
	var rows []schema.ICOPhase
	for _, p := range domain.DefaultICOPhases() {
		rows = append(rows, ToSchemaICOPhase(p))
	}
	return rows
}

// =============================================================================
// Ledger
// =============================================================================

// seedTransactions appends ledger entries through the same row mapping the
// purchase and claim paths use
func seedTransactions(t *testing.T, store Store, txs ...domain.Transaction) {
	t.Helper()
	pg, ok := store.(*pgStore)
	require.True(t, ok, "seeding needs the postgres store")

	for _, tx := range txs {
		row, err := toTransactionRow(tx)
		require.NoError(t, err)
		require.NoError(t, pg.db.Create(row).Error)
	}
}

func testTransactionLedger(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("purchase maps variant columns", func(t *testing.T) {
		wallet := testAddress(0x1001)
		seedTransactions(t, store, buildTestPurchase(wallet, "0xtx1001", 1000, now))

		got, err := store.GetTransactionByHash(ctx, "0xtx1001")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, wallet, got.WalletAddress)
		assert.Equal(t, domain.TransactionTypeICOPurchase, got.Type)
		require.NotNil(t, got.ICOPhase)
		assert.Equal(t, 1, *got.ICOPhase)
		require.NotNil(t, got.TokensReceived)
		assert.True(t, decimal.NewFromInt(1000).Equal(*got.TokensReceived))

		entry, err := ToDomainLedgerEntry(*got)
		require.NoError(t, err)
		assert.Nil(t, entry.Metadata)
		assert.Equal(t, "0xtx1001", entry.TxHash)
	})

	t.Run("missing variant is a validation error", func(t *testing.T) {
		tx := buildTestPurchase(testAddress(0x1003), "0xtx1003", 10, now)
		tx.Purchase = nil
		_, err := toTransactionRow(tx)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("dividend payment metadata is stored as json", func(t *testing.T) {
		wallet := testAddress(0x1004)
		seedTransactions(t, store, domain.Transaction{
			TxHash:        "dividend:test:" + wallet,
			WalletAddress: wallet,
			Type:          domain.TransactionTypeDividendPayment,
			Amount:        decimal.NewFromInt(5),
			Currency:      domain.CurrencyUSDT,
			Status:        domain.TransactionStatusConfirmed,
			DividendPayment: &domain.DividendPaymentDetails{
				DistributionID:  "test",
				SharePercentage: decimal.NewFromInt(50),
				CFDBalance:      decimal.NewFromInt(100),
			},
		})

		got, err := store.GetTransactionByHash(ctx, "dividend:test:"+wallet)
		require.NoError(t, err)
		require.NotNil(t, got)

		var meta map[string]any
		require.NoError(t, json.Unmarshal(got.Metadata, &meta))
		assert.Equal(t, "test", meta["distributionId"])
		assert.Nil(t, got.ICOPhase)

		entry, err := ToDomainLedgerEntry(*got)
		require.NoError(t, err)
		assert.Equal(t, "test", entry.Metadata["distributionId"])
	})

	t.Run("get unknown hash returns nil", func(t *testing.T) {
		got, err := store.GetTransactionByHash(ctx, "0xdoesnotexist")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testListWalletTransactions(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	wallet := testAddress(0x1101)

	seedTransactions(t, store,
		buildTestPurchase(wallet, "0xtx1101", 100, now.Add(-3*time.Hour)),
		buildTestPurchase(wallet, "0xtx1102", 200, now.Add(-2*time.Hour)),
		domain.Transaction{
			TxHash:        "dividend:list:" + wallet,
			WalletAddress: wallet,
			Type:          domain.TransactionTypeDividendPayment,
			Amount:        decimal.NewFromInt(5),
			Currency:      domain.CurrencyUSDT,
			Status:        domain.TransactionStatusConfirmed,
			CreatedAt:     now.Add(-time.Hour),
			DividendPayment: &domain.DividendPaymentDetails{
				DistributionID: "list",
				CFDBalance:     decimal.NewFromInt(300),
			},
		},
		buildTestPurchase(testAddress(0x1102), "0xtx1103", 50, now),
	)

	t.Run("newest first with total", func(t *testing.T) {
		rows, total, err := store.ListWalletTransactions(ctx, TransactionListFilter{WalletAddress: wallet, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, rows, 2)
		assert.Equal(t, "dividend:list:"+wallet, rows[0].TxHash)
		assert.Equal(t, "0xtx1102", rows[1].TxHash)
	})

	t.Run("offset reaches the last page", func(t *testing.T) {
		rows, total, err := store.ListWalletTransactions(ctx, TransactionListFilter{WalletAddress: wallet, Offset: 2, Limit: 2})
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, rows, 1)
		assert.Equal(t, "0xtx1101", rows[0].TxHash)
	})

	t.Run("type filter", func(t *testing.T) {
		purchaseType := domain.TransactionTypeICOPurchase
		rows, total, err := store.ListWalletTransactions(ctx, TransactionListFilter{
			WalletAddress: wallet,
			Type:          &purchaseType,
			Limit:         10,
		})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		for _, row := range rows {
			assert.Equal(t, domain.TransactionTypeICOPurchase, row.Type)
			assert.Equal(t, wallet, row.WalletAddress)
		}
	})

	t.Run("unknown wallet is empty", func(t *testing.T) {
		rows, total, err := store.ListWalletTransactions(ctx, TransactionListFilter{WalletAddress: testAddress(0x1199), Limit: 10})
		require.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, rows)
	})
}

func testListConfirmedPurchases(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	walletA := testAddress(0x2001)
	walletB := testAddress(0x2002)

	pending := buildTestPurchase(walletA, "0xtx2003", 300, now)
	pending.Status = domain.TransactionStatusPending
	seedTransactions(t, store,
		buildTestPurchase(walletB, "0xtx2002", 200, now.Add(-24*time.Hour)),
		buildTestPurchase(walletA, "0xtx2001", 100, now.Add(-48*time.Hour)),
		pending,
	)

	purchases, err := store.ListConfirmedPurchases(ctx)
	require.NoError(t, err)

	var ours []domain.Purchase
	for _, p := range purchases {
		if p.WalletAddress == walletA || p.WalletAddress == walletB {
			ours = append(ours, p)
		}
	}

	require.Len(t, ours, 2)
	assert.Equal(t, walletA, ours[0].WalletAddress)
	assert.True(t, decimal.NewFromInt(100).Equal(ours[0].TokensReceived))
	assert.Equal(t, walletB, ours[1].WalletAddress)
	assert.True(t, ours[0].Timestamp.Before(ours[1].Timestamp))
}

// =============================================================================
// Distributions
// =============================================================================

func testCreateDistribution(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	t.Run("persists calculated distribution with entries and snapshot", func(t *testing.T) {
		walletA := testAddress(0x3001)
		walletB := testAddress(0x3002)
		input := buildTestDistribution(10000, map[string]int64{walletA: 1000, walletB: 3000}, now)

		created, err := store.CreateDistribution(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, domain.DistributionStatusCalculated, created.Status)
		assert.Equal(t, 2, created.EligibleHolders)
		assert.Len(t, created.Entries, 2)

		got, err := store.GetDistribution(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.DistributionStatusCalculated, got.Status)
		assert.True(t, decimal.NewFromInt(10000).Equal(got.TotalAmount))
		assert.True(t, decimal.NewFromInt(4000).Equal(got.TotalTokensEligible))
		require.Len(t, got.Entries, 2)

		// Entries come back sorted by amount desc
		assert.Equal(t, walletB, got.Entries[0].WalletAddress)
		assert.True(t, decimal.NewFromInt(7500).Equal(got.Entries[0].DividendAmount))
		assert.Equal(t, walletA, got.Entries[1].WalletAddress)
		assert.True(t, decimal.NewFromInt(2500).Equal(got.Entries[1].DividendAmount))
		assert.False(t, got.Entries[0].Claimed)

		var snapshot []domain.HoldingRecord
		require.NoError(t, json.Unmarshal(got.Snapshot, &snapshot))
		assert.Len(t, snapshot, 2)
	})

	t.Run("uses caller supplied id", func(t *testing.T) {
		id := uuid.NewString()
		input := buildTestDistribution(100, map[string]int64{testAddress(0x3003): 1}, now)
		input.ID = id

		created, err := store.CreateDistribution(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, id, created.ID)
	})

	t.Run("empty entries is rejected", func(t *testing.T) {
		input := buildTestDistribution(100, map[string]int64{}, now)
		_, err := store.CreateDistribution(ctx, input)
		assert.ErrorIs(t, err, domain.ErrNoEligibleHolders)
	})
}

func testGetDistribution(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("unknown id returns nil", func(t *testing.T) {
		got, err := store.GetDistribution(ctx, uuid.NewString())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("malformed id returns nil", func(t *testing.T) {
		got, err := store.GetDistribution(ctx, "not-a-uuid")
		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func testListDistributions(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	var ids []string
	for i := range 3 {
		input := buildTestDistribution(int64(100*(i+1)), map[string]int64{testAddress(0x4000 + i): 10}, base.Add(time.Duration(i)*time.Hour))
		created, err := store.CreateDistribution(ctx, input)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	page, total, err := store.ListDistributions(ctx, 0, 2)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, int64(3))
	require.Len(t, page, 2)

	// Newest first
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)
	assert.Empty(t, page[0].Entries)

	page, _, err = store.ListDistributions(ctx, 2, 2)
	require.NoError(t, err)
	require.NotEmpty(t, page)
	assert.Equal(t, ids[0], page[0].ID)
}

func testClaimEntry(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	walletA := testAddress(0x5001)
	walletB := testAddress(0x5002)
	created, err := store.CreateDistribution(ctx, buildTestDistribution(1000, map[string]int64{walletA: 1, walletB: 3}, now))
	require.NoError(t, err)

	claimInput := func(wallet string) ClaimEntryInput {
		return ClaimEntryInput{
			DistributionID: created.ID,
			WalletAddress:  wallet,
			ClaimTxHash:    fmt.Sprintf("dividend:%s:%s", created.ID, wallet),
			ClaimedAt:      now,
		}
	}

	t.Run("first claim marks entry and records payment", func(t *testing.T) {
		entry, err := store.ClaimEntry(ctx, claimInput(walletA))
		require.NoError(t, err)
		require.NotNil(t, entry)
		assert.True(t, entry.Claimed)
		require.NotNil(t, entry.ClaimedAt)
		assert.True(t, decimal.NewFromInt(250).Equal(entry.DividendAmount))

		payment, err := store.GetTransactionByHash(ctx, claimInput(walletA).ClaimTxHash)
		require.NoError(t, err)
		require.NotNil(t, payment)
		assert.Equal(t, domain.TransactionTypeDividendPayment, payment.Type)
		assert.Equal(t, domain.CurrencyUSDT, payment.Currency)
		assert.Equal(t, domain.TransactionStatusConfirmed, payment.Status)
		assert.True(t, decimal.NewFromInt(250).Equal(payment.Amount))
	})

	t.Run("second claim is a no-op", func(t *testing.T) {
		entry, err := store.ClaimEntry(ctx, claimInput(walletA))
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("wallet without entry is a no-op", func(t *testing.T) {
		entry, err := store.ClaimEntry(ctx, claimInput(testAddress(0x5999)))
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("malformed distribution id is a no-op", func(t *testing.T) {
		input := claimInput(walletB)
		input.DistributionID = "stale-id"
		entry, err := store.ClaimEntry(ctx, input)
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("unknown distribution id is a no-op", func(t *testing.T) {
		input := claimInput(walletB)
		input.DistributionID = uuid.NewString()
		entry, err := store.ClaimEntry(ctx, input)
		require.NoError(t, err)
		assert.Nil(t, entry)

		payment, err := store.GetTransactionByHash(ctx, input.ClaimTxHash)
		require.NoError(t, err)
		assert.Nil(t, payment)
	})

	t.Run("zero amount entry is never claimed", func(t *testing.T) {
		dust := testAddress(0x5003)
		input := buildTestDistribution(1000, map[string]int64{walletA: 1, dust: 1}, now)
		for i := range input.Entries {
			if input.Entries[i].WalletAddress == dust {
				input.Entries[i].DividendAmount = decimal.Zero
			}
		}
		zeroDist, err := store.CreateDistribution(ctx, input)
		require.NoError(t, err)

		entry, err := store.ClaimEntry(ctx, ClaimEntryInput{
			DistributionID: zeroDist.ID,
			WalletAddress:  dust,
			ClaimTxHash:    fmt.Sprintf("dividend:%s:%s", zeroDist.ID, dust),
			ClaimedAt:      now,
		})
		require.NoError(t, err)
		assert.Nil(t, entry)
	})

	t.Run("claim leaves other entries untouched", func(t *testing.T) {
		got, err := store.GetDistribution(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		for _, e := range got.Entries {
			switch e.WalletAddress {
			case walletA:
				assert.True(t, e.Claimed)
			case walletB:
				assert.False(t, e.Claimed)
			}
		}
	})
}

func testListWalletEntries(t *testing.T, store Store) {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	wallet := testAddress(0x6001)
	older, err := store.CreateDistribution(ctx, buildTestDistribution(100, map[string]int64{wallet: 1}, base.Add(-time.Hour)))
	require.NoError(t, err)
	newer, err := store.CreateDistribution(ctx, buildTestDistribution(200, map[string]int64{wallet: 1, testAddress(0x6002): 1}, base))
	require.NoError(t, err)

	entries, err := store.ListWalletEntries(ctx, wallet)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, newer.ID, entries[0].DistributionID)
	assert.Equal(t, older.ID, entries[1].DistributionID)
	assert.Equal(t, "test distribution", entries[0].Notes)
	assert.True(t, decimal.NewFromInt(100).Equal(entries[0].DividendAmount))

	none, err := store.ListWalletEntries(ctx, testAddress(0x6999))
	require.NoError(t, err)
	assert.Empty(t, none)
}

func testGetDividendStats(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	before, err := store.GetDividendStats(ctx)
	require.NoError(t, err)

	wallet := testAddress(0x7001)
	first, err := store.CreateDistribution(ctx, buildTestDistribution(300, map[string]int64{wallet: 1}, now.Add(-time.Hour)))
	require.NoError(t, err)
	latest, err := store.CreateDistribution(ctx, buildTestDistribution(500, map[string]int64{wallet: 1}, now.Add(time.Hour)))
	require.NoError(t, err)

	_, err = store.ClaimEntry(ctx, ClaimEntryInput{
		DistributionID: first.ID,
		WalletAddress:  wallet,
		ClaimTxHash:    "dividend:" + first.ID + ":" + wallet,
		ClaimedAt:      now,
	})
	require.NoError(t, err)

	stats, err := store.GetDividendStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, before.TotalDistributions+2, stats.TotalDistributions)
	assert.True(t, before.TotalDistributed.Add(decimal.NewFromInt(800)).Equal(stats.TotalDistributed))
	assert.True(t, before.TotalClaimed.Add(decimal.NewFromInt(300)).Equal(stats.TotalClaimed))
	assert.GreaterOrEqual(t, stats.UniqueRecipients, int64(1))
	require.NotNil(t, stats.LastDistribution)
	assert.Equal(t, latest.ID, stats.LastDistribution.ID)
}

// =============================================================================
// ICO phases
// =============================================================================

func testICOPhases(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	inserted, err := store.InsertMissingICOPhases(ctx, buildTestPhases())
	require.NoError(t, err)
	assert.Equal(t, int64(3), inserted)

	t.Run("seeding is idempotent", func(t *testing.T) {
		inserted, err := store.InsertMissingICOPhases(ctx, buildTestPhases())
		require.NoError(t, err)
		assert.Equal(t, int64(0), inserted)

		phases, err := store.ListICOPhases(ctx)
		require.NoError(t, err)
		require.Len(t, phases, 3)
		assert.Equal(t, 1, phases[0].Phase)
		assert.True(t, phases[0].IsActive)
		assert.False(t, phases[1].IsActive)
	})

	t.Run("purchase applies bonus and appends ledger entry", func(t *testing.T) {
		wallet := testAddress(0x8001)
		result, err := store.RecordPurchase(ctx, RecordPurchaseInput{
			Request: domain.PurchaseRequest{
				WalletAddress: wallet,
				AmountPaid:    decimal.NewFromInt(10),
				Phase:         1,
				TxHash:        "0xtx8001",
				BlockNumber:   42,
			},
			Timestamp: now,
		})
		require.NoError(t, err)
		require.NotNil(t, result)

		// 10 / 0.01 = 1000 base, 20% bonus
		assert.True(t, decimal.NewFromInt(1000).Equal(result.Quote.BaseTokens))
		assert.True(t, decimal.NewFromInt(200).Equal(result.Quote.BonusTokens))
		assert.True(t, decimal.NewFromInt(1200).Equal(result.Quote.TotalTokens))
		assert.True(t, decimal.NewFromInt(1200).Equal(result.Phase.TokensSold))
		assert.False(t, result.PhaseCompleted)

		purchases, err := store.ListConfirmedPurchases(ctx)
		require.NoError(t, err)
		var found bool
		for _, p := range purchases {
			if p.WalletAddress == wallet {
				found = true
				assert.True(t, decimal.NewFromInt(1200).Equal(p.TokensReceived))
			}
		}
		assert.True(t, found)
	})

	t.Run("duplicate tx hash is rejected", func(t *testing.T) {
		_, err := store.RecordPurchase(ctx, RecordPurchaseInput{
			Request: domain.PurchaseRequest{
				WalletAddress: testAddress(0x8002),
				AmountPaid:    decimal.NewFromInt(1),
				Phase:         1,
				TxHash:        "0xtx8001",
			},
			Timestamp: now,
		})
		assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
	})

	t.Run("inactive phase is rejected", func(t *testing.T) {
		_, err := store.RecordPurchase(ctx, RecordPurchaseInput{
			Request: domain.PurchaseRequest{
				WalletAddress: testAddress(0x8003),
				AmountPaid:    decimal.NewFromInt(1),
				Phase:         2,
				TxHash:        "0xtx8003",
			},
			Timestamp: now,
		})
		assert.ErrorIs(t, err, domain.ErrPhaseNotActive)
	})

	t.Run("amount above phase maximum is a validation error", func(t *testing.T) {
		_, err := store.RecordPurchase(ctx, RecordPurchaseInput{
			Request: domain.PurchaseRequest{
				WalletAddress: testAddress(0x8004),
				AmountPaid:    decimal.NewFromInt(1001),
				Phase:         1,
				TxHash:        "0xtx8004",
			},
			Timestamp: now,
		})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func testICOPhaseCompletion(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	// A tiny phase 1 so a single purchase sells it out
	phases := buildTestPhases()
	phases[0].TotalTokens = decimal.NewFromInt(120)
	_, err := store.InsertMissingICOPhases(ctx, phases)
	require.NoError(t, err)

	t.Run("purchase beyond remaining supply is rejected", func(t *testing.T) {
		_, err := store.RecordPurchase(ctx, RecordPurchaseInput{
			Request: domain.PurchaseRequest{
				WalletAddress: testAddress(0x9001),
				AmountPaid:    decimal.NewFromInt(2),
				Phase:         1,
				TxHash:        "0xtx9001",
			},
			Timestamp: now,
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientPhaseSupply)
	})

	t.Run("selling out completes the phase and activates the next", func(t *testing.T) {
		result, err := store.RecordPurchase(ctx, RecordPurchaseInput{
			Request: domain.PurchaseRequest{
				WalletAddress: testAddress(0x9002),
				AmountPaid:    decimal.NewFromInt(1),
				Phase:         1,
				TxHash:        "0xtx9002",
			},
			Timestamp: now,
		})
		require.NoError(t, err)
		assert.True(t, result.PhaseCompleted)

		rows, err := store.ListICOPhases(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.True(t, rows[0].IsCompleted)
		assert.False(t, rows[0].IsActive)
		assert.True(t, rows[1].IsActive)
		assert.False(t, rows[2].IsActive)
	})
}

func testActivateNextICOPhase(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.InsertMissingICOPhases(ctx, buildTestPhases())
	require.NoError(t, err)

	t.Run("completes the active phase and activates the next", func(t *testing.T) {
		next, err := store.ActivateNextICOPhase(ctx)
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, 2, next.Phase)
		assert.True(t, next.IsActive)

		rows, err := store.ListICOPhases(ctx)
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.True(t, rows[0].IsCompleted)
		assert.False(t, rows[0].IsActive)
		assert.True(t, rows[1].IsActive)
	})

	t.Run("last phase cannot advance", func(t *testing.T) {
		next, err := store.ActivateNextICOPhase(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, next.Phase)

		_, err = store.ActivateNextICOPhase(ctx)
		assert.ErrorIs(t, err, domain.ErrNoNextPhase)

		// the failed attempt rolls back and phase 3 stays open
		rows, err := store.ListICOPhases(ctx)
		require.NoError(t, err)
		assert.True(t, rows[2].IsActive)
		assert.False(t, rows[2].IsCompleted)
	})
}

func testUpdateICOPhase(t *testing.T, store Store) {
	ctx := context.Background()

	_, err := store.InsertMissingICOPhases(ctx, buildTestPhases())
	require.NoError(t, err)

	t.Run("updates only the given fields", func(t *testing.T) {
		price := decimal.RequireFromString("0.02")
		maxPurchase := decimal.NewFromInt(2000)
		row, err := store.UpdateICOPhase(ctx, 1, domain.ICOPhaseUpdate{TokenPrice: &price, MaxPurchase: &maxPurchase})
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.True(t, price.Equal(row.TokenPrice))

		rows, err := store.ListICOPhases(ctx)
		require.NoError(t, err)
		assert.True(t, price.Equal(rows[0].TokenPrice))
		assert.True(t, maxPurchase.Equal(rows[0].MaxPurchase))
		assert.Equal(t, "Phase 1 - Early Bird", rows[0].Name)
		assert.True(t, decimal.NewFromInt(20).Equal(rows[0].BonusPercentage))
	})

	t.Run("invalid limits are rejected", func(t *testing.T) {
		minPurchase := decimal.NewFromInt(600)
		_, err := store.UpdateICOPhase(ctx, 2, domain.ICOPhaseUpdate{MinPurchase: &minPurchase})
		assert.ErrorIs(t, err, domain.ErrValidation)

		rows, err := store.ListICOPhases(ctx)
		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("0.01").Equal(rows[1].MinPurchase))
	})

	t.Run("unknown phase", func(t *testing.T) {
		name := "Phase 9"
		_, err := store.UpdateICOPhase(ctx, 9, domain.ICOPhaseUpdate{Name: &name})
		assert.ErrorIs(t, err, domain.ErrPhaseNotFound)
	})
}

// RunStoreTests runs all store tests with the given store implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"TransactionLedger", testTransactionLedger},
		{"ListWalletTransactions", testListWalletTransactions},
		{"ListConfirmedPurchases", testListConfirmedPurchases},
		{"CreateDistribution", testCreateDistribution},
		{"GetDistribution", testGetDistribution},
		{"ListDistributions", testListDistributions},
		{"ClaimEntry", testClaimEntry},
		{"ListWalletEntries", testListWalletEntries},
		{"GetDividendStats", testGetDividendStats},
		{"ICOPhases", testICOPhases},
		{"ICOPhaseCompletion", testICOPhaseCompletion},
		{"ActivateNextICOPhase", testActivateNextICOPhase},
		{"UpdateICOPhase", testUpdateICOPhase},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
