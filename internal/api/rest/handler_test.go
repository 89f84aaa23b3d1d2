package rest_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfd-platform/cfd-backend/internal/api/middleware"
	"github.com/cfd-platform/cfd-backend/internal/api/rest"
	"github.com/cfd-platform/cfd-backend/internal/api/shared/dto"
	apierrors "github.com/cfd-platform/cfd-backend/internal/api/shared/errors"
	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}
	gin.SetMode(gin.TestMode)

	testSigningKey, err = rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		panic(err)
	}
	der, err := x509.MarshalPKIXPublicKey(&testSigningKey.PublicKey)
	if err != nil {
		panic(err)
	}
	testPublicKeyPEM = string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))

	code := m.Run()
	os.Exit(code)
}

const (
	testAPIKey  = "test-admin-key-9f3a"
	testWallet  = "0x3333333333333333333333333333333333333333"
	otherWallet = "0x4444444444444444444444444444444444444444"
)

var (
	testSigningKey   *rsa.PrivateKey
	testPublicKeyPEM string
)

// walletToken returns an Authorization value for a wallet holder
func walletToken(t *testing.T, wallet string) string {
	claims := middleware.Claims{
		RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
		Wallet:           wallet,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(testSigningKey)
	require.NoError(t, err)
	return "Bearer " + token
}

func setupTestRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	ctrl := gomock.NewController(t)
	exec := mocks.NewMockAPIExecutor(ctrl)

	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec), middleware.AuthConfig{
		JWTPublicKey: testPublicKeyPEM,
		APIKeys:      []string{testAPIKey},
	})
	return router, exec
}

func doRequest(router *gin.Engine, method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	authorization := ""
	if authenticated {
		authorization = "ApiKey " + testAPIKey
	}
	return doRequestAs(router, method, path, body, authorization)
}

func doRequestAs(router *gin.Engine, method, path, body, authorization string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeAPIError(t *testing.T, w *httptest.ResponseRecorder) apierrors.APIError {
	var apiErr apierrors.APIError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
	return apiErr
}

func TestHealthCheck(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().Ping(gomock.Any()).Return(nil)

		w := doRequest(router, http.MethodGet, "/health", "", false)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp.Status)
	})

	t.Run("database down", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))

		w := doRequest(router, http.MethodGet, "/health", "", false)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp dto.HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "unreachable", resp.Database)
	})
}

func TestGetDividendInfo(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().GetDividendInfo(gomock.Any(), testWallet).Return(&domain.DividendInfo{
		WalletAddress:      testWallet,
		Eligible:           true,
		HoldingPeriodDays:  42,
		TotalReceived:      decimal.NewFromInt(60),
		AvailableDividends: decimal.NewFromInt(40),
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/dividends/info/"+testWallet, "", false)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["isEligible"])
	assert.Equal(t, float64(42), body["holdingPeriodDays"])
}

func TestGetDividendInfo_InvalidWallet(t *testing.T) {
	router, exec := setupTestRouter(t)

	exec.EXPECT().GetDividendInfo(gomock.Any(), "0xnope").
		Return(nil, domain.NewValidationError("walletAddress", "invalid address"))

	w := doRequest(router, http.MethodGet, "/api/v1/dividends/info/0xnope", "", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeValidationFailed, decodeAPIError(t, w).Code)
}

func TestGetProjection(t *testing.T) {
	t.Run("custom monthly profit", func(t *testing.T) {
		router, exec := setupTestRouter(t)

		exec.EXPECT().GetProjection(gomock.Any(), testWallet, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, profit *decimal.Decimal) (*domain.Projection, error) {
				require.NotNil(t, profit)
				assert.True(t, profit.Equal(decimal.NewFromInt(250000)))
				return &domain.Projection{WalletAddress: testWallet, MonthlyProfit: *profit}, nil
			})

		w := doRequest(router, http.MethodGet, "/api/v1/dividends/projection/"+testWallet+"?monthly_profit=250000", "", false)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid monthly profit", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(router, http.MethodGet, "/api/v1/dividends/projection/"+testWallet+"?monthly_profit=lots", "", false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("no tokens", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().GetProjection(gomock.Any(), testWallet, nil).Return(nil, domain.ErrNoTokenBalance)

		w := doRequest(router, http.MethodGet, "/api/v1/dividends/projection/"+testWallet, "", false)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, apierrors.ErrCodeDomainError, decodeAPIError(t, w).Code)
	})
}

func TestListDistributions(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{name: "defaults", query: "", wantPage: 1, wantLimit: 10},
		{name: "explicit", query: "?page=3&limit=25", wantPage: 3, wantLimit: 25},
		{name: "clamped", query: "?page=0&limit=1000", wantPage: 1, wantLimit: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, exec := setupTestRouter(t)
			exec.EXPECT().ListDistributions(gomock.Any(), tt.wantPage, tt.wantLimit).
				Return(&domain.DistributionPage{Items: []domain.DistributionSummary{}}, nil)

			w := doRequest(router, http.MethodGet, "/api/v1/dividends/distributions"+tt.query, "", false)
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestListDistributions_InvalidQuery(t *testing.T) {
	router, _ := setupTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/dividends/distributions?page=abc", "", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStats_InternalError(t *testing.T) {
	router, exec := setupTestRouter(t)
	exec.EXPECT().GetStats(gomock.Any()).Return(nil, errors.New("pq: relation \"dividend_payments\" does not exist"))

	w := doRequest(router, http.MethodGet, "/api/v1/dividends/stats", "", false)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	apiErr := decodeAPIError(t, w)
	assert.Equal(t, apierrors.ErrCodeInternalError, apiErr.Code)
	assert.NotContains(t, w.Body.String(), "dividend_payments")
}

func TestClaimDividends(t *testing.T) {
	body := `{"walletAddress":"` + testWallet + `","distributionIds":["d1"]}`

	t.Run("requires authentication", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(router, http.MethodPost, "/api/v1/dividends/claim", body, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("claimed", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ClaimDividends(gomock.Any(), dto.ClaimDividendsRequest{
			WalletAddress:   testWallet,
			DistributionIDs: []string{"d1"},
		}).Return(&dto.ClaimDividendsResponse{
			ClaimResult: &domain.ClaimResult{WalletAddress: testWallet, TotalClaimed: decimal.NewFromInt(10)},
			Message:     "10.000000 USDT claimed successfully",
		}, nil)

		w := doRequest(router, http.MethodPost, "/api/v1/dividends/claim", body, true)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "10.000000 USDT claimed successfully", resp["message"])
		assert.Equal(t, testWallet, resp["walletAddress"])
	})

	t.Run("nothing to claim", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ClaimDividends(gomock.Any(), gomock.Any()).Return(nil, domain.ErrNothingToClaim)

		w := doRequest(router, http.MethodPost, "/api/v1/dividends/claim", body, true)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(router, http.MethodPost, "/api/v1/dividends/claim", `{"walletAddress":`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, apierrors.ErrCodeBadRequest, decodeAPIError(t, w).Code)
	})
}

func TestCreateDistribution(t *testing.T) {
	t.Run("attributed to the api key", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().CreateDistribution(gomock.Any(), gomock.Any(), "apikey:9f3a").
			DoAndReturn(func(_ context.Context, req dto.CreateDistributionRequest, principal string) (*domain.Distribution, error) {
				assert.True(t, req.TotalAmount.Equal(decimal.NewFromInt(10000)))
				assert.Equal(t, "Q1", req.Notes)
				return &domain.Distribution{
					DistributionSummary: domain.DistributionSummary{
						ID:          "dist-1",
						TotalAmount: req.TotalAmount,
						Status:      domain.DistributionStatusCalculated,
						CreatedBy:   principal,
					},
				}, nil
			})

		w := doRequest(router, http.MethodPost, "/api/v1/dividends/admin/distributions", `{"totalAmount":10000,"notes":"Q1"}`, true)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "dist-1", resp["distributionId"])
		assert.Equal(t, "calculated", resp["status"])
	})

	t.Run("no eligible holders", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().CreateDistribution(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrNoEligibleHolders)

		w := doRequest(router, http.MethodPost, "/api/v1/dividends/admin/distributions", `{"totalAmount":"500"}`, true)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decodeAPIError(t, w).Message, "no eligible holders")
	})

	t.Run("requires authentication", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(router, http.MethodPost, "/api/v1/dividends/admin/distributions", `{"totalAmount":1}`, false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetDistribution_NotFound(t *testing.T) {
	router, exec := setupTestRouter(t)
	exec.EXPECT().GetDistribution(gomock.Any(), "missing").Return(nil, domain.ErrDistributionNotFound)

	w := doRequest(router, http.MethodGet, "/api/v1/dividends/admin/distributions/missing", "", true)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, apierrors.ErrCodeNotFound, decodeAPIError(t, w).Code)
}

func TestSimulateDistribution_OracleUnavailable(t *testing.T) {
	router, exec := setupTestRouter(t)
	exec.EXPECT().SimulateDistribution(gomock.Any(), gomock.Any()).
		Return(nil, errors.Join(domain.ErrCollaboratorUnavailable, errors.New("dial tcp: timeout")))

	w := doRequest(router, http.MethodPost, "/api/v1/dividends/admin/simulate", `{"totalAmount":100}`, true)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, apierrors.ErrCodeServiceError, decodeAPIError(t, w).Code)
}

func TestGetEligibleHolders(t *testing.T) {
	router, exec := setupTestRouter(t)
	exec.EXPECT().GetEligibleHolders(gomock.Any()).Return(&dto.EligibleHoldersResponse{
		Snapshot: &domain.Snapshot{TotalTokensEligible: decimal.NewFromInt(1000)},
		Count:    0,
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/dividends/admin/eligible-holders", "", true)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetChainHolders(t *testing.T) {
	router, exec := setupTestRouter(t)
	exec.EXPECT().GetChainHolders(gomock.Any()).Return(&dto.ChainHoldersResponse{
		Holders: []domain.ChainHolder{{WalletAddress: testWallet, Balance: decimal.NewFromInt(5)}},
		Count:   1,
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/dividends/admin/chain-holders", "", true)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, float64(1), resp["count"])
}

func TestGetICOStatus(t *testing.T) {
	router, exec := setupTestRouter(t)
	exec.EXPECT().GetICOStatus(gomock.Any()).Return(&domain.ICOStatus{
		Phases:          []domain.ICOPhase{{Phase: 1, IsActive: true}},
		OverallProgress: decimal.NewFromInt(25),
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/ico/status", "", false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecordICOPurchase(t *testing.T) {
	body := `{"walletAddress":"` + testWallet + `","amount":"100","phase":1,"txHash":"0xabc"}`

	t.Run("recorded", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().RecordICOPurchase(gomock.Any(), gomock.Any()).
			Return(&domain.PurchaseResult{WalletAddress: testWallet, TotalTokens: decimal.NewFromInt(12000)}, nil)

		w := doRequest(router, http.MethodPost, "/api/v1/ico/purchase", body, true)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("duplicate transaction", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().RecordICOPurchase(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateTransaction)

		w := doRequest(router, http.MethodPost, "/api/v1/ico/purchase", body, true)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("inactive phase", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().RecordICOPurchase(gomock.Any(), gomock.Any()).Return(nil, domain.ErrPhaseNotActive)

		w := doRequest(router, http.MethodPost, "/api/v1/ico/purchase", body, true)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})
}

func TestClaimDividends_WalletOwnership(t *testing.T) {
	body := `{"walletAddress":"` + testWallet + `","distributionIds":["6f1c2b9e-7d1a-4c55-9a7e-3f0e8a1d2b44"]}`

	t.Run("holder claims own wallet", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ClaimDividends(gomock.Any(), gomock.Any()).Return(&dto.ClaimDividendsResponse{
			ClaimResult: &domain.ClaimResult{WalletAddress: testWallet, TotalClaimed: decimal.NewFromInt(3)},
		}, nil)

		w := doRequestAs(router, http.MethodPost, "/api/v1/dividends/claim", body, walletToken(t, testWallet))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("holder cannot claim another wallet", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequestAs(router, http.MethodPost, "/api/v1/dividends/claim", body, walletToken(t, otherWallet))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, apierrors.ErrCodeForbidden, decodeAPIError(t, w).Code)
	})
}

func TestAdminRoutes_RejectWalletHolders(t *testing.T) {
	router, _ := setupTestRouter(t)
	token := walletToken(t, testWallet)

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/v1/dividends/admin/eligible-holders", ""},
		{http.MethodPost, "/api/v1/dividends/admin/distributions", `{"totalAmount":"10"}`},
		{http.MethodPost, "/api/v1/ico/purchase", `{"walletAddress":"` + testWallet + `","amount":"1","phase":1,"txHash":"0x1"}`},
		{http.MethodPost, "/api/v1/ico/admin/activate-next-phase", ""},
		{http.MethodPut, "/api/v1/ico/admin/phase/1", `{"name":"x"}`},
	}

	for _, r := range routes {
		w := doRequestAs(router, r.method, r.path, r.body, token)
		assert.Equal(t, http.StatusForbidden, w.Code, r.path)
	}
}

func TestGetICOStats(t *testing.T) {
	router, exec := setupTestRouter(t)
	active := 2
	exec.EXPECT().GetICOStats(gomock.Any()).Return(&dto.ICOStatsResponse{
		TotalPhases:     3,
		CompletedPhases: 1,
		ActivePhase:     &active,
		OverallProgress: decimal.NewFromInt(25),
	}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/ico/stats", "", false)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, float64(3), body["totalPhases"])
	assert.Equal(t, float64(2), body["activePhase"])
}

func TestIsICOActive(t *testing.T) {
	router, exec := setupTestRouter(t)
	exec.EXPECT().IsICOActive(gomock.Any()).Return(&domain.ICOActivity{IsActive: false}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/ico/is-active", "", false)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["isActive"])
	assert.Nil(t, body["activePhase"])
}

func TestListICOPurchases(t *testing.T) {
	t.Run("paginated", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ListICOPurchases(gomock.Any(), testWallet, 2, 5).Return(&domain.TransactionPage{
			Items:      []domain.LedgerEntry{{TxHash: "0xabc", Type: domain.TransactionTypeICOPurchase}},
			Pagination: domain.NewPagination(2, 5, 6),
		}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/ico/purchases/"+testWallet+"?page=2&limit=5", "", false)
		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Len(t, body["transactions"], 1)
	})

	t.Run("limit is capped", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ListICOPurchases(gomock.Any(), testWallet, 1, 100).Return(&domain.TransactionPage{}, nil)

		w := doRequest(router, http.MethodGet, "/api/v1/ico/purchases/"+testWallet+"?limit=5000", "", false)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid wallet", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ListICOPurchases(gomock.Any(), "0xnope", 1, 20).
			Return(nil, domain.NewValidationError("walletAddress", "invalid address"))

		w := doRequest(router, http.MethodGet, "/api/v1/ico/purchases/0xnope", "", false)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestActivateNextICOPhase(t *testing.T) {
	t.Run("activated", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ActivateNextICOPhase(gomock.Any()).Return(&domain.ICOPhase{Phase: 2, IsActive: true}, nil)

		w := doRequest(router, http.MethodPost, "/api/v1/ico/admin/activate-next-phase", "", true)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("no next phase", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ActivateNextICOPhase(gomock.Any()).Return(nil, domain.ErrNoNextPhase)

		w := doRequest(router, http.MethodPost, "/api/v1/ico/admin/activate-next-phase", "", true)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(router, http.MethodPost, "/api/v1/ico/admin/activate-next-phase", "", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestUpdateICOPhase(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().UpdateICOPhase(gomock.Any(), 2, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ int, req dto.UpdateICOPhaseRequest) (*domain.ICOPhase, error) {
				require.NotNil(t, req.TokenPrice)
				return &domain.ICOPhase{Phase: 2, TokenPrice: *req.TokenPrice}, nil
			})

		w := doRequest(router, http.MethodPut, "/api/v1/ico/admin/phase/2", `{"tokenPrice":"0.06"}`, true)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("phase is not a number", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(router, http.MethodPut, "/api/v1/ico/admin/phase/first", `{"tokenPrice":"0.06"}`, true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown phase", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().UpdateICOPhase(gomock.Any(), 7, gomock.Any()).Return(nil, domain.ErrPhaseNotFound)

		w := doRequest(router, http.MethodPut, "/api/v1/ico/admin/phase/7", `{"tokenPrice":"0.06"}`, true)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListWalletTransactions(t *testing.T) {
	path := "/api/v1/wallets/" + testWallet + "/transactions?type=dividend_payment&page=1&limit=10"

	t.Run("holder reads own ledger", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ListWalletTransactions(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
				assert.Equal(t, testWallet, filter.WalletAddress)
				require.NotNil(t, filter.Type)
				assert.Equal(t, domain.TransactionTypeDividendPayment, *filter.Type)
				assert.Equal(t, 10, filter.Limit)
				return &domain.TransactionPage{Pagination: domain.NewPagination(1, 10, 0)}, nil
			})

		w := doRequestAs(router, http.MethodGet, path, "", walletToken(t, testWallet))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("operator reads any ledger", func(t *testing.T) {
		router, exec := setupTestRouter(t)
		exec.EXPECT().ListWalletTransactions(gomock.Any(), gomock.Any()).Return(&domain.TransactionPage{}, nil)

		w := doRequest(router, http.MethodGet, path, "", true)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other holder is forbidden", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequestAs(router, http.MethodGet, path, "", walletToken(t, otherWallet))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(router, http.MethodGet, path, "", false)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		router, _ := setupTestRouter(t)

		w := doRequest(router, http.MethodGet, "/api/v1/wallets/"+testWallet+"/transactions?type=swap", "", true)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
