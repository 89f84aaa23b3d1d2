package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"sort"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cfd-platform/cfd-backend/internal/adapter"
	"github.com/cfd-platform/cfd-backend/internal/block"
	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/metrics"
	"github.com/cfd-platform/cfd-backend/internal/ratelimit"
)

const erc20ABIJSON = `[
{"constant":true,"inputs":[{"name":"account","type":"address"}],"name":"balanceOf","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"},
{"constant":true,"inputs":[],"name":"totalSupply","outputs":[{"name":"","type":"uint256"}],"payable":false,"stateMutability":"view","type":"function"}
]`

// logScanTimeout bounds a full transfer-log scan across the lookback window
const logScanTimeout = time.Minute

var (
	erc20ABI = mustParseABI(erc20ABIJSON)

	// transferEventSignature is keccak256("Transfer(address,address,uint256)")
	transferEventSignature = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
)

// Oracle method names used for metrics and logs
const (
	methodBalanceOf     = "balance_of"
	methodTotalSupply   = "total_supply"
	methodFirstTransfer = "first_transfer"
	methodListHolders   = "list_holders"
)

// TokenOracle reads balances and transfer history of the CFD ERC-20 token.
// All methods are fallible and time-bounded per call.
//
//go:generate mockgen -source=oracle.go -destination=../../mocks/token_oracle.go -package=mocks -mock_names=TokenOracle=MockTokenOracle
type TokenOracle interface {
	// GetBalance returns the current token balance of address in whole tokens
	GetBalance(ctx context.Context, address string) (decimal.Decimal, error)

	// GetFirstTransferTimestamp returns the time of the first incoming transfer
	// to address within the lookback window, or nil if there is none
	GetFirstTransferTimestamp(ctx context.Context, address string) (*time.Time, error)

	// ListHolderAddresses returns every address that received tokens within
	// the lookback window, sorted and without the zero address
	ListHolderAddresses(ctx context.Context) ([]string, error)

	// TotalSupply returns the token total supply in whole tokens
	TotalSupply(ctx context.Context) (decimal.Decimal, error)

	// Close closes the underlying RPC connection
	Close()
}

// Config holds the token oracle configuration
type Config struct {
	TokenAddress string
	Decimals     int32

	// LookbackBlocks bounds transfer-log scans to the most recent blocks, 0 scans from genesis
	LookbackBlocks uint64

	// LogPageSize is the initial number of blocks per eth_getLogs call
	LogPageSize uint64

	// CallTimeout bounds each balance or supply call
	CallTimeout time.Duration

	// MaxRetries for transient RPC failures
	MaxRetries uint64

	// RetryInitialInterval is the first backoff interval
	RetryInitialInterval time.Duration
}

type tokenOracle struct {
	cfg     Config
	token   common.Address
	client  adapter.EthClient
	blocks  block.BlockProvider
	limiter ratelimit.Limiter
}

// NewTokenOracle creates a TokenOracle for the configured token contract
func NewTokenOracle(cfg Config, client adapter.EthClient, blocks block.BlockProvider, limiter ratelimit.Limiter) TokenOracle {
	if cfg.LogPageSize == 0 {
		cfg.LogPageSize = 100000
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 10 * time.Second
	}
	if cfg.RetryInitialInterval <= 0 {
		cfg.RetryInitialInterval = 200 * time.Millisecond
	}

	return &tokenOracle{
		cfg:     cfg,
		token:   common.HexToAddress(cfg.TokenAddress),
		client:  client,
		blocks:  blocks,
		limiter: limiter,
	}
}

// GetBalance returns the current token balance of address
func (o *tokenOracle) GetBalance(ctx context.Context, address string) (decimal.Decimal, error) {
	if !common.IsHexAddress(address) {
		return decimal.Zero, domain.NewValidationError("walletAddress", "invalid address: "+address)
	}

	var raw *big.Int
	err := o.observe(methodBalanceOf, func() error {
		data, err := erc20ABI.Pack("balanceOf", common.HexToAddress(address))
		if err != nil {
			return fmt.Errorf("failed to pack data: %w", err)
		}

		raw, err = o.callUint256(ctx, "balanceOf", data)
		return err
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get balance of %s: %w", address, err)
	}

	return o.toTokens(raw), nil
}

// TotalSupply returns the token total supply
func (o *tokenOracle) TotalSupply(ctx context.Context) (decimal.Decimal, error) {
	var raw *big.Int
	err := o.observe(methodTotalSupply, func() error {
		data, err := erc20ABI.Pack("totalSupply")
		if err != nil {
			return fmt.Errorf("failed to pack data: %w", err)
		}

		raw, err = o.callUint256(ctx, "totalSupply", data)
		return err
	})
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get total supply: %w", err)
	}

	return o.toTokens(raw), nil
}

// GetFirstTransferTimestamp scans incoming transfers in ascending pages and
// stops at the first page that contains one
func (o *tokenOracle) GetFirstTransferTimestamp(ctx context.Context, address string) (*time.Time, error) {
	if !common.IsHexAddress(address) {
		return nil, domain.NewValidationError("walletAddress", "invalid address: "+address)
	}

	var result *time.Time
	err := o.observe(methodFirstTransfer, func() error {
		scanCtx, cancel := context.WithTimeout(ctx, logScanTimeout)
		defer cancel()

		fromBlock, toBlock, err := o.window(scanCtx)
		if err != nil {
			return err
		}

		query := ethereum.FilterQuery{
			Addresses: []common.Address{o.token},
			Topics: [][]common.Hash{
				{transferEventSignature},
				nil,
				{common.BytesToHash(common.HexToAddress(address).Bytes())},
			},
		}

		var first *types.Log
		err = o.scanLogs(scanCtx, query, fromBlock, toBlock, o.cfg.LogPageSize, func(logs []types.Log) bool {
			first = earliestLog(logs)
			return first == nil
		})
		if err != nil {
			return fmt.Errorf("failed to scan transfer logs: %w", err)
		}
		if first == nil {
			return nil
		}

		ts, err := o.blocks.GetBlockTimestamp(scanCtx, first.BlockNumber)
		if err != nil {
			return fmt.Errorf("failed to get block timestamp: %w", err)
		}
		result = &ts
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get first transfer of %s: %w", address, err)
	}

	return result, nil
}

// ListHolderAddresses collects every recipient of a Transfer within the lookback window
func (o *tokenOracle) ListHolderAddresses(ctx context.Context) ([]string, error) {
	var holders []string
	err := o.observe(methodListHolders, func() error {
		scanCtx, cancel := context.WithTimeout(ctx, logScanTimeout)
		defer cancel()

		fromBlock, toBlock, err := o.window(scanCtx)
		if err != nil {
			return err
		}

		query := ethereum.FilterQuery{
			Addresses: []common.Address{o.token},
			Topics:    [][]common.Hash{{transferEventSignature}},
		}

		seen := make(map[string]struct{})
		err = o.scanLogs(scanCtx, query, fromBlock, toBlock, o.cfg.LogPageSize, func(logs []types.Log) bool {
			for _, l := range logs {
				if l.Removed || len(l.Topics) < 3 {
					continue
				}
				to := domain.NormalizeAddress(common.BytesToAddress(l.Topics[2].Bytes()).Hex())
				if domain.IsZeroAddress(to) {
					continue
				}
				seen[to] = struct{}{}
			}
			return true
		})
		if err != nil {
			return fmt.Errorf("failed to scan transfer logs: %w", err)
		}

		holders = make([]string, 0, len(seen))
		for addr := range seen {
			holders = append(holders, addr)
		}
		sort.Strings(holders)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list holder addresses: %w", err)
	}

	return holders, nil
}

// Close closes the underlying RPC connection
func (o *tokenOracle) Close() {
	o.client.Close()
}

// callUint256 performs a read-only contract call with per-attempt timeout,
// rate limiting and exponential backoff on transient failures
func (o *tokenOracle) callUint256(ctx context.Context, method string, data []byte) (*big.Int, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = o.cfg.RetryInitialInterval
	b.MaxInterval = 5 * time.Second
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	bo := backoff.WithMaxRetries(b, o.cfg.MaxRetries)

	var value *big.Int
	operation := func() error {
		callCtx, cancel := context.WithTimeout(ctx, o.cfg.CallTimeout)
		defer cancel()

		result, err := ratelimit.Do(callCtx, o.limiter, func(ctx context.Context) ([]byte, error) {
			return o.client.CallContract(ctx, ethereum.CallMsg{
				To:   &o.token,
				Data: data,
			}, nil)
		})
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("failed to call contract: %w", err)
		}

		var out *big.Int
		if err := erc20ABI.UnpackIntoInterface(&out, method, result); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to unpack result: %w", err))
		}
		value = out
		return nil
	}

	var attemptCount int
	notifyOnError := func(err error, duration time.Duration) {
		attemptCount++
		logger.WarnCtx(ctx, "Token contract call failed, retrying",
			zap.String("method", method),
			zap.Error(err),
			zap.Int("attempt", attemptCount),
			zap.Duration("next_retry_in", duration),
		)
	}

	if err := backoff.RetryNotify(operation, backoff.WithContext(bo, ctx), notifyOnError); err != nil {
		return nil, err
	}

	return value, nil
}

// window returns the block range covered by transfer-log scans
func (o *tokenOracle) window(ctx context.Context) (uint64, uint64, error) {
	latest, err := o.blocks.GetLatestBlock(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get latest block: %w", err)
	}

	var fromBlock uint64
	if o.cfg.LookbackBlocks > 0 && latest > o.cfg.LookbackBlocks {
		fromBlock = latest - o.cfg.LookbackBlocks
	}
	return fromBlock, latest, nil
}

// observe records call count and latency for an oracle method
func (o *tokenOracle) observe(method string, fn func() error) error {
	start := time.Now()
	err := fn()

	status := "success"
	if err != nil {
		status = "error"
		if errors.Is(err, context.DeadlineExceeded) {
			status = "timeout"
		}
	}
	metrics.OracleCallsTotal.WithLabelValues(method, status).Inc()
	metrics.OracleCallDuration.WithLabelValues(method).Observe(time.Since(start).Seconds())

	return err
}

// toTokens converts a raw uint256 amount into whole tokens
func (o *tokenOracle) toTokens(raw *big.Int) decimal.Decimal {
	if raw == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(raw, -o.cfg.Decimals)
}

// earliestLog returns the lowest (block, index) log that was not removed by a reorg
func earliestLog(logs []types.Log) *types.Log {
	var first *types.Log
	for i := range logs {
		l := &logs[i]
		if l.Removed {
			continue
		}
		if first == nil ||
			l.BlockNumber < first.BlockNumber ||
			(l.BlockNumber == first.BlockNumber && l.Index < first.Index) {
			first = l
		}
	}
	return first
}

func mustParseABI(raw string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(raw))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ABI: %v", err))
	}
	return parsed
}
