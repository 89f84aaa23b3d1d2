package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"

	"github.com/cfd-platform/cfd-backend/internal/adapter"
	"github.com/cfd-platform/cfd-backend/internal/block"
	"github.com/cfd-platform/cfd-backend/internal/ratelimit"
)

// blockFetcher implements block.BlockFetcher using headers only
type blockFetcher struct {
	client  adapter.EthClient
	limiter ratelimit.Limiter
	clock   adapter.Clock
}

// NewBlockFetcher creates a block.BlockFetcher backed by the RPC client.
// Every request goes through the shared RPC limiter.
func NewBlockFetcher(client adapter.EthClient, limiter ratelimit.Limiter, clock adapter.Clock) block.BlockFetcher {
	return &blockFetcher{
		client:  client,
		limiter: limiter,
		clock:   clock,
	}
}

// FetchLatestBlock fetches the latest block number
func (f *blockFetcher) FetchLatestBlock(ctx context.Context) (uint64, error) {
	header, err := f.headerByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// FetchBlockTimestamp fetches the timestamp for a given block number
func (f *blockFetcher) FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	header, err := f.headerByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get block %d: %w", blockNumber, err)
	}
	return f.clock.Unix(int64(header.Time), 0), nil //nolint:gosec,G115
}

func (f *blockFetcher) headerByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	header, err := ratelimit.Do(ctx, f.limiter, func(ctx context.Context) (*types.Header, error) {
		return f.client.HeaderByNumber(ctx, number)
	})
	if err != nil {
		return nil, err
	}
	if header == nil || header.Number == nil {
		return nil, fmt.Errorf("empty header returned")
	}
	return header, nil
}
