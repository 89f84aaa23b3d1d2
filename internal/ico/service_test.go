package ico_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/ico"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/mocks"
	"github.com/cfd-platform/cfd-backend/internal/store"
	"github.com/cfd-platform/cfd-backend/internal/store/schema"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

const testWallet = "0x1111111111111111111111111111111111111111"

var testNow = time.Date(2024, time.March, 15, 9, 30, 0, 0, time.UTC)

func setupTestService(t *testing.T) (ico.Service, *mocks.MockStore) {
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	return ico.NewService(st, clock), st
}

func TestService_InitializePhases(t *testing.T) {
	svc, st := setupTestService(t)

	st.EXPECT().InsertMissingICOPhases(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, phases []schema.ICOPhase) (int64, error) {
			require.Len(t, phases, 3)
			assert.Equal(t, 1, phases[0].Phase)
			assert.True(t, phases[0].TokenPrice.Equal(decimal.RequireFromString("0.01")))
			assert.Equal(t, 3, phases[2].Phase)
			return 3, nil
		})

	assert.NoError(t, svc.InitializePhases(context.Background()))
}

func TestService_InitializePhases_StoreError(t *testing.T) {
	svc, st := setupTestService(t)

	st.EXPECT().InsertMissingICOPhases(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("relation does not exist"))

	assert.Error(t, svc.InitializePhases(context.Background()))
}

func TestService_GetStatus(t *testing.T) {
	svc, st := setupTestService(t)

	st.EXPECT().ListICOPhases(gomock.Any()).Return([]schema.ICOPhase{
		{
			Phase:       1,
			TokenPrice:  decimal.RequireFromString("0.01"),
			TotalTokens: decimal.NewFromInt(1000),
			TokensSold:  decimal.NewFromInt(1000),
			TotalRaised: decimal.NewFromInt(8),
			IsActive:    true,
			IsCompleted: true,
		},
		{
			Phase:       2,
			TokenPrice:  decimal.RequireFromString("0.02"),
			TotalTokens: decimal.NewFromInt(2000),
			TokensSold:  decimal.NewFromInt(500),
			TotalRaised: decimal.NewFromInt(10),
			IsActive:    true,
		},
		{
			Phase:       3,
			TokenPrice:  decimal.RequireFromString("0.03"),
			TotalTokens: decimal.NewFromInt(3000),
			TokensSold:  decimal.Zero,
			TotalRaised: decimal.Zero,
		},
	}, nil)

	status, err := svc.GetStatus(context.Background())
	require.NoError(t, err)

	require.Len(t, status.Phases, 3)
	assert.True(t, status.Phases[0].ProgressPercent.Equal(decimal.NewFromInt(100)))
	assert.True(t, status.Phases[1].ProgressPercent.Equal(decimal.NewFromInt(25)))
	assert.True(t, status.Phases[2].ProgressPercent.IsZero())

	require.NotNil(t, status.CurrentPhase)
	assert.Equal(t, 2, status.CurrentPhase.Phase)

	assert.True(t, status.TotalTokensSold.Equal(decimal.NewFromInt(1500)))
	assert.True(t, status.TotalRaised.Equal(decimal.NewFromInt(18)))
	assert.True(t, status.TotalTokensForSale.Equal(decimal.NewFromInt(6000)))
	assert.True(t, status.OverallProgress.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, 3, status.TotalPhases)
	assert.Equal(t, 1, status.CompletedPhases)
}

func TestService_GetStatus_NoPhases(t *testing.T) {
	svc, st := setupTestService(t)

	st.EXPECT().ListICOPhases(gomock.Any()).Return(nil, nil)

	status, err := svc.GetStatus(context.Background())
	require.NoError(t, err)
	assert.Nil(t, status.CurrentPhase)
	assert.Empty(t, status.Phases)
	assert.True(t, status.OverallProgress.IsZero())
}

func TestService_ProcessPurchase(t *testing.T) {
	svc, st := setupTestService(t)

	st.EXPECT().GetTransactionByHash(gomock.Any(), "0xabc").Return(nil, nil)
	st.EXPECT().RecordPurchase(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in store.RecordPurchaseInput) (*store.RecordPurchaseResult, error) {
			assert.Equal(t, testWallet, in.Request.WalletAddress)
			assert.Equal(t, testNow, in.Timestamp)
			return &store.RecordPurchaseResult{
				Quote: domain.PurchaseQuote{
					BaseTokens:  decimal.NewFromInt(10000),
					BonusTokens: decimal.NewFromInt(2000),
					TotalTokens: decimal.NewFromInt(12000),
				},
				Phase: schema.ICOPhase{Phase: 1, TokenPrice: decimal.RequireFromString("0.01")},
			}, nil
		})

	result, err := svc.ProcessPurchase(context.Background(), domain.PurchaseRequest{
		WalletAddress: "0x1111111111111111111111111111111111111111",
		AmountPaid:    decimal.NewFromInt(100),
		Phase:         1,
		TxHash:        "0xabc",
	})
	require.NoError(t, err)

	assert.Equal(t, testWallet, result.WalletAddress)
	assert.True(t, result.TotalTokens.Equal(decimal.NewFromInt(12000)))
	assert.True(t, result.BonusTokens.Equal(decimal.NewFromInt(2000)))
	assert.True(t, result.TokenPrice.Equal(decimal.RequireFromString("0.01")))
	assert.False(t, result.PhaseCompleted)
}

func TestService_ProcessPurchase_Errors(t *testing.T) {
	tests := []struct {
		name     string
		req      domain.PurchaseRequest
		storeErr error
		wantErr  error
	}{
		{
			name:    "invalid wallet",
			req:     domain.PurchaseRequest{WalletAddress: "wallet", AmountPaid: decimal.NewFromInt(1), Phase: 1, TxHash: "0x1"},
			wantErr: domain.ErrValidation,
		},
		{
			name:    "unknown phase",
			req:     domain.PurchaseRequest{WalletAddress: testWallet, AmountPaid: decimal.NewFromInt(1), Phase: 4, TxHash: "0x1"},
			wantErr: domain.ErrValidation,
		},
		{
			name:     "inactive phase",
			req:      domain.PurchaseRequest{WalletAddress: testWallet, AmountPaid: decimal.NewFromInt(1), Phase: 3, TxHash: "0x1"},
			storeErr: domain.ErrPhaseNotActive,
			wantErr:  domain.ErrPhaseNotActive,
		},
		{
			name:     "duplicate transaction",
			req:      domain.PurchaseRequest{WalletAddress: testWallet, AmountPaid: decimal.NewFromInt(1), Phase: 1, TxHash: "0x1"},
			storeErr: domain.ErrDuplicateTransaction,
			wantErr:  domain.ErrDuplicateTransaction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, st := setupTestService(t)
			if tt.storeErr != nil {
				st.EXPECT().GetTransactionByHash(gomock.Any(), tt.req.TxHash).Return(nil, nil)
				st.EXPECT().RecordPurchase(gomock.Any(), gomock.Any()).Return(nil, tt.storeErr)
			}

			result, err := svc.ProcessPurchase(context.Background(), tt.req)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_ProcessPurchase_KnownHashSkipsPhaseLock(t *testing.T) {
	svc, st := setupTestService(t)

	st.EXPECT().GetTransactionByHash(gomock.Any(), "0xabc").Return(&schema.Transaction{TxHash: "0xabc"}, nil)

	result, err := svc.ProcessPurchase(context.Background(), domain.PurchaseRequest{
		WalletAddress: testWallet,
		AmountPaid:    decimal.NewFromInt(1),
		Phase:         1,
		TxHash:        "0xabc",
	})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrDuplicateTransaction)
}

func TestService_IsActive(t *testing.T) {
	t.Run("active phase", func(t *testing.T) {
		svc, st := setupTestService(t)
		st.EXPECT().ListICOPhases(gomock.Any()).Return([]schema.ICOPhase{
			{Phase: 1, IsCompleted: true},
			{Phase: 2, IsActive: true, TotalTokens: decimal.NewFromInt(10)},
		}, nil)

		activity, err := svc.IsActive(context.Background())
		require.NoError(t, err)
		assert.True(t, activity.IsActive)
		require.NotNil(t, activity.ActivePhase)
		assert.Equal(t, 2, activity.ActivePhase.Phase)
	})

	t.Run("sale finished", func(t *testing.T) {
		svc, st := setupTestService(t)
		st.EXPECT().ListICOPhases(gomock.Any()).Return([]schema.ICOPhase{
			{Phase: 1, IsCompleted: true},
			{Phase: 2, IsCompleted: true},
		}, nil)

		activity, err := svc.IsActive(context.Background())
		require.NoError(t, err)
		assert.False(t, activity.IsActive)
		assert.Nil(t, activity.ActivePhase)
	})
}

func TestService_ActivateNextPhase(t *testing.T) {
	t.Run("activated", func(t *testing.T) {
		svc, st := setupTestService(t)
		st.EXPECT().ActivateNextICOPhase(gomock.Any()).Return(&schema.ICOPhase{
			Phase:       2,
			IsActive:    true,
			TotalTokens: decimal.NewFromInt(100),
			TokensSold:  decimal.NewFromInt(10),
		}, nil)

		phase, err := svc.ActivateNextPhase(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, phase.Phase)
		assert.True(t, phase.IsActive)
		assert.True(t, phase.ProgressPercent.Equal(decimal.NewFromInt(10)))
	})

	t.Run("last phase", func(t *testing.T) {
		svc, st := setupTestService(t)
		st.EXPECT().ActivateNextICOPhase(gomock.Any()).Return(nil, domain.ErrNoNextPhase)

		phase, err := svc.ActivateNextPhase(context.Background())
		assert.Nil(t, phase)
		assert.ErrorIs(t, err, domain.ErrNoNextPhase)
	})
}

func TestService_UpdatePhase(t *testing.T) {
	price := decimal.RequireFromString("0.02")

	t.Run("updated", func(t *testing.T) {
		svc, st := setupTestService(t)
		st.EXPECT().UpdateICOPhase(gomock.Any(), 2, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, update domain.ICOPhaseUpdate) (*schema.ICOPhase, error) {
				require.NotNil(t, update.TokenPrice)
				return &schema.ICOPhase{Phase: 2, TokenPrice: *update.TokenPrice}, nil
			})

		phase, err := svc.UpdatePhase(context.Background(), 2, domain.ICOPhaseUpdate{TokenPrice: &price})
		require.NoError(t, err)
		assert.True(t, phase.TokenPrice.Equal(price))
	})

	t.Run("empty update", func(t *testing.T) {
		svc, _ := setupTestService(t)

		_, err := svc.UpdatePhase(context.Background(), 2, domain.ICOPhaseUpdate{})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("unknown phase", func(t *testing.T) {
		svc, st := setupTestService(t)
		st.EXPECT().UpdateICOPhase(gomock.Any(), 9, gomock.Any()).Return(nil, domain.ErrPhaseNotFound)

		_, err := svc.UpdatePhase(context.Background(), 9, domain.ICOPhaseUpdate{TokenPrice: &price})
		assert.ErrorIs(t, err, domain.ErrPhaseNotFound)
	})
}

func TestService_ListTransactions(t *testing.T) {
	purchaseType := domain.TransactionTypeICOPurchase

	t.Run("filters and paginates", func(t *testing.T) {
		svc, st := setupTestService(t)
		phase := 1
		st.EXPECT().ListWalletTransactions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f store.TransactionListFilter) ([]schema.Transaction, int64, error) {
				assert.Equal(t, testWallet, f.WalletAddress)
				require.NotNil(t, f.Type)
				assert.Equal(t, purchaseType, *f.Type)
				assert.Equal(t, 10, f.Offset)
				assert.Equal(t, 5, f.Limit)
				return []schema.Transaction{{
					TxHash:        "0xabc",
					WalletAddress: testWallet,
					Type:          purchaseType,
					Amount:        decimal.NewFromInt(3),
					ICOPhase:      &phase,
					Metadata:      []byte(`{"source":"wallet"}`),
				}}, 11, nil
			})

		page, err := svc.ListTransactions(context.Background(), domain.TransactionFilter{
			WalletAddress: "0x1111111111111111111111111111111111111111",
			Type:          &purchaseType,
			Page:          3,
			Limit:         5,
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "0xabc", page.Items[0].TxHash)
		assert.Equal(t, "wallet", page.Items[0].Metadata["source"])
		assert.Equal(t, 3, page.Pagination.CurrentPage)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.False(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
	})

	t.Run("limit is capped", func(t *testing.T) {
		svc, st := setupTestService(t)
		st.EXPECT().ListWalletTransactions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, f store.TransactionListFilter) ([]schema.Transaction, int64, error) {
				assert.Nil(t, f.Type)
				assert.Equal(t, 0, f.Offset)
				assert.Equal(t, ico.MaxPageLimit, f.Limit)
				return nil, 0, nil
			})

		page, err := svc.ListTransactions(context.Background(), domain.TransactionFilter{WalletAddress: testWallet, Limit: 1000})
		require.NoError(t, err)
		assert.Empty(t, page.Items)
	})

	t.Run("invalid filter", func(t *testing.T) {
		svc, _ := setupTestService(t)
		unknown := domain.TransactionType("token_transfer")

		_, err := svc.ListTransactions(context.Background(), domain.TransactionFilter{WalletAddress: "nope"})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = svc.ListTransactions(context.Background(), domain.TransactionFilter{WalletAddress: testWallet, Type: &unknown})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
