package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfd-platform/cfd-backend/internal/mocks"
	"github.com/cfd-platform/cfd-backend/internal/providers/ethereum"
)

func TestBlockFetcher_FetchLatestBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	limiter := mocks.NewMockLimiter(ctrl)

	limiter.EXPECT().Wait(gomock.Any()).Return(nil)
	client.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(&types.Header{Number: big.NewInt(123456)}, nil)

	fetcher := ethereum.NewBlockFetcher(client, limiter, mocks.NewMockClock(ctrl))

	latest, err := fetcher.FetchLatestBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(123456), latest)
}

func TestBlockFetcher_FetchBlockTimestamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockEthClient(ctrl)
	clock := mocks.NewMockClock(ctrl)

	client.EXPECT().HeaderByNumber(gomock.Any(), big.NewInt(42)).
		Return(&types.Header{Number: big.NewInt(42), Time: 1700000000}, nil)
	want := time.Unix(1700000000, 0).UTC()
	clock.EXPECT().Unix(int64(1700000000), int64(0)).Return(want)

	fetcher := ethereum.NewBlockFetcher(client, nil, clock)

	ts, err := fetcher.FetchBlockTimestamp(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, want, ts)
}

func TestBlockFetcher_Errors(t *testing.T) {
	t.Run("rpc error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockEthClient(ctrl)
		client.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(nil, errors.New("dial tcp: i/o timeout"))

		_, err := ethereum.NewBlockFetcher(client, nil, nil).FetchLatestBlock(context.Background())
		assert.Error(t, err)
	})

	t.Run("empty header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockEthClient(ctrl)
		client.EXPECT().HeaderByNumber(gomock.Any(), nil).Return(&types.Header{}, nil)

		_, err := ethereum.NewBlockFetcher(client, nil, nil).FetchLatestBlock(context.Background())
		assert.Error(t, err)
	})

	t.Run("limiter error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		client := mocks.NewMockEthClient(ctrl)
		limiter := mocks.NewMockLimiter(ctrl)
		limiter.EXPECT().Wait(gomock.Any()).Return(context.Canceled)

		_, err := ethereum.NewBlockFetcher(client, limiter, nil).FetchLatestBlock(context.Background())
		assert.ErrorIs(t, err, context.Canceled)
	})
}
