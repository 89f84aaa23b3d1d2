package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"os"
	"testing"
	"time"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/mocks"
	"github.com/cfd-platform/cfd-backend/internal/providers/ethereum"
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

const (
	testTokenAddress = "0x2222222222222222222222222222222222222222"
	testHolder       = "0x3333333333333333333333333333333333333333"
)

var transferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))

// testOracleMocks contains all the mocks needed for testing the token oracle
type testOracleMocks struct {
	ctrl   *gomock.Controller
	client *mocks.MockEthClient
	blocks *mocks.MockBlockProvider
}

func setupTestOracle(t *testing.T, cfg ethereum.Config) (ethereum.TokenOracle, *testOracleMocks) {
	ctrl := gomock.NewController(t)
	m := &testOracleMocks{
		ctrl:   ctrl,
		client: mocks.NewMockEthClient(ctrl),
		blocks: mocks.NewMockBlockProvider(ctrl),
	}

	return ethereum.NewTokenOracle(cfg, m.client, m.blocks, nil), m
}

func defaultOracleConfig() ethereum.Config {
	return ethereum.Config{
		TokenAddress:         testTokenAddress,
		Decimals:             18,
		CallTimeout:          time.Second,
		MaxRetries:           0,
		RetryInitialInterval: time.Millisecond,
	}
}

// uint256 encodes whole tokens as an ABI uint256 with 18 decimals
func uint256(tokens int64) []byte {
	raw := new(big.Int).Mul(big.NewInt(tokens), new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil))
	return common.LeftPadBytes(raw.Bytes(), 32)
}

func transferLog(from, to string, blockNumber uint64, index uint) types.Log {
	return types.Log{
		Address: common.HexToAddress(testTokenAddress),
		Topics: []common.Hash{
			transferTopic,
			common.BytesToHash(common.HexToAddress(from).Bytes()),
			common.BytesToHash(common.HexToAddress(to).Bytes()),
		},
		BlockNumber: blockNumber,
		Index:       index,
	}
}

func TestTokenOracle_GetBalance(t *testing.T) {
	oracle, m := setupTestOracle(t, defaultOracleConfig())

	m.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, msg goethereum.CallMsg, _ *big.Int) ([]byte, error) {
			require.NotNil(t, msg.To)
			assert.Equal(t, common.HexToAddress(testTokenAddress), *msg.To)
			// balanceOf selector
			assert.Equal(t, []byte{0x70, 0xa0, 0x82, 0x31}, msg.Data[:4])
			return uint256(1000), nil
		})

	balance, err := oracle.GetBalance(context.Background(), testHolder)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(1000)), balance.String())
}

func TestTokenOracle_GetBalance_InvalidAddress(t *testing.T) {
	oracle, _ := setupTestOracle(t, defaultOracleConfig())

	_, err := oracle.GetBalance(context.Background(), "not-an-address")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTokenOracle_GetBalance_RetriesTransientFailures(t *testing.T) {
	cfg := defaultOracleConfig()
	cfg.MaxRetries = 2
	oracle, m := setupTestOracle(t, cfg)

	gomock.InOrder(
		m.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(nil, errors.New("502 bad gateway")),
		m.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(uint256(5), nil),
	)

	balance, err := oracle.GetBalance(context.Background(), testHolder)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(5)))
}

func TestTokenOracle_GetBalance_Failure(t *testing.T) {
	oracle, m := setupTestOracle(t, defaultOracleConfig())

	m.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(nil, errors.New("connection refused"))

	_, err := oracle.GetBalance(context.Background(), testHolder)
	assert.Error(t, err)
}

func TestTokenOracle_TotalSupply(t *testing.T) {
	oracle, m := setupTestOracle(t, defaultOracleConfig())

	m.client.EXPECT().CallContract(gomock.Any(), gomock.Any(), nil).Return(uint256(21000000), nil)

	supply, err := oracle.TotalSupply(context.Background())
	require.NoError(t, err)
	assert.True(t, supply.Equal(decimal.NewFromInt(21000000)))
}

func TestTokenOracle_GetFirstTransferTimestamp(t *testing.T) {
	oracle, m := setupTestOracle(t, defaultOracleConfig())

	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(1000), nil)
	m.client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q goethereum.FilterQuery) ([]types.Log, error) {
			assert.Equal(t, int64(0), q.FromBlock.Int64())
			assert.Equal(t, int64(1000), q.ToBlock.Int64())
			require.Len(t, q.Topics, 3)
			assert.Equal(t, common.BytesToHash(common.HexToAddress(testHolder).Bytes()), q.Topics[2][0])

			removed := transferLog(testTokenAddress, testHolder, 100, 0)
			removed.Removed = true
			return []types.Log{
				transferLog(testTokenAddress, testHolder, 500, 1),
				transferLog(testTokenAddress, testHolder, 300, 4),
				transferLog(testTokenAddress, testHolder, 300, 2),
				removed,
			}, nil
		})

	blockTime := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	m.blocks.EXPECT().GetBlockTimestamp(gomock.Any(), uint64(300)).Return(blockTime, nil)

	first, err := oracle.GetFirstTransferTimestamp(context.Background(), testHolder)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.Equal(t, blockTime, *first)
}

func TestTokenOracle_GetFirstTransferTimestamp_NoTransfers(t *testing.T) {
	cfg := defaultOracleConfig()
	cfg.LookbackBlocks = 200
	oracle, m := setupTestOracle(t, cfg)

	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(1000), nil)
	m.client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q goethereum.FilterQuery) ([]types.Log, error) {
			assert.Equal(t, int64(800), q.FromBlock.Int64())
			return nil, nil
		})

	first, err := oracle.GetFirstTransferTimestamp(context.Background(), testHolder)
	require.NoError(t, err)
	assert.Nil(t, first)
}

func TestTokenOracle_GetFirstTransferTimestamp_ShrinksPages(t *testing.T) {
	cfg := defaultOracleConfig()
	cfg.LogPageSize = 32
	oracle, m := setupTestOracle(t, cfg)

	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(31), nil)

	var ranges [][2]int64
	record := func(_ context.Context, q goethereum.FilterQuery) {
		ranges = append(ranges, [2]int64{q.FromBlock.Int64(), q.ToBlock.Int64()})
	}
	gomock.InOrder(
		m.client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
			Do(record).Return(nil, errors.New("query returned more than 10000 results")),
		m.client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
			Do(record).Return(nil, nil),
		m.client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).
			Do(record).Return([]types.Log{transferLog(testTokenAddress, testHolder, 20, 0)}, nil),
	)
	m.blocks.EXPECT().GetBlockTimestamp(gomock.Any(), uint64(20)).Return(time.Unix(1700000000, 0).UTC(), nil)

	first, err := oracle.GetFirstTransferTimestamp(context.Background(), testHolder)
	require.NoError(t, err)
	require.NotNil(t, first)

	assert.Equal(t, [][2]int64{{0, 31}, {0, 15}, {16, 31}}, ranges)
}

func TestTokenOracle_GetFirstTransferTimestamp_HeadUnavailable(t *testing.T) {
	oracle, m := setupTestOracle(t, defaultOracleConfig())

	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(0), errors.New("no head"))

	_, err := oracle.GetFirstTransferTimestamp(context.Background(), testHolder)
	assert.Error(t, err)
}

func TestTokenOracle_ListHolderAddresses(t *testing.T) {
	oracle, m := setupTestOracle(t, defaultOracleConfig())

	other := "0x4444444444444444444444444444444444444444"
	mint := "0x0000000000000000000000000000000000000000"

	m.blocks.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(10), nil)
	m.client.EXPECT().FilterLogs(gomock.Any(), gomock.Any()).Return([]types.Log{
		transferLog(mint, other, 1, 0),
		transferLog(mint, testHolder, 2, 0),
		transferLog(other, testHolder, 3, 0),
		// Burn
		transferLog(testHolder, mint, 4, 0),
	}, nil)

	holders, err := oracle.ListHolderAddresses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{testHolder, other}, holders)
}
