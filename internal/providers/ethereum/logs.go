package ethereum

import (
	"context"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/ratelimit"
)

const minLogStepSize = 16

// pageVisitor is called with the logs of each page, in ascending block order.
// Returning false stops the scan.
type pageVisitor func(logs []types.Log) bool

// scanLogs walks [fromBlock, toBlock] in ascending pages of at most stepSize
// blocks. The step is halved whenever the node rejects a page for returning
// too many results.
func (o *tokenOracle) scanLogs(ctx context.Context, query ethereum.FilterQuery, fromBlock, toBlock, stepSize uint64, visit pageVisitor) error {
	currentStepSize := max(stepSize, 1)
	currentFrom := fromBlock

	for currentFrom <= toBlock {
		currentTo := currentFrom + currentStepSize - 1
		if currentTo > toBlock || currentTo < currentFrom {
			currentTo = toBlock
		}

		queryCopy := query
		queryCopy.FromBlock = new(big.Int).SetUint64(currentFrom)
		queryCopy.ToBlock = new(big.Int).SetUint64(currentTo)

		logs, err := ratelimit.Do(ctx, o.limiter, func(ctx context.Context) ([]types.Log, error) {
			return o.client.FilterLogs(ctx, queryCopy)
		})
		if err == nil {
			if !visit(logs) {
				return nil
			}
			if currentTo == toBlock {
				return nil
			}
			currentFrom = currentTo + 1
			continue
		}

		if !isTooManyResultsError(err) || currentStepSize <= minLogStepSize {
			return err
		}

		currentStepSize = currentStepSize / 2

		logger.WarnCtx(ctx, "Too many results, reducing step size",
			zap.Uint64("oldStepSize", currentStepSize*2),
			zap.Uint64("newStepSize", currentStepSize),
			zap.Uint64("fromBlock", currentFrom),
			zap.Uint64("toBlock", currentTo))
	}

	return nil
}

// isTooManyResultsError checks if the error is related to too many results
func isTooManyResultsError(err error) bool {
	if err == nil {
		return false
	}

	errStr := err.Error()
	return strings.Contains(errStr, "query returned more than 10000 results") ||
		strings.Contains(errStr, "query timeout exceeded") ||
		strings.Contains(errStr, "too many results") ||
		strings.Contains(errStr, "exceeded maximum") ||
		strings.Contains(errStr, "block range is too wide")
}
