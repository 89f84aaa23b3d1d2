package domain

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainPolygonMainnet Chain = "eip155:137"
	ChainPolygonAmoy    Chain = "eip155:80002"
	ChainEthereumMain   Chain = "eip155:1"
)

// EventType represents the type of dividend event published to the message broker
type EventType string

const (
	EventTypeDistributionCreated EventType = "distribution.created"
	EventTypeDividendClaimed     EventType = "dividend.claimed"
)

// DividendEvent is the message published when distribution state changes
type DividendEvent struct {
	ID             string    `json:"id"`              // ULID
	EventType      EventType `json:"event_type"`      // distribution.created, dividend.claimed
	DistributionID string    `json:"distribution_id"` // originating distribution
	WalletAddress  string    `json:"wallet_address,omitempty"`
	Amount         string    `json:"amount"`   // decimal string
	Currency       Currency  `json:"currency"` // USDT
	Timestamp      time.Time `json:"timestamp"`
}

// NormalizeAddress normalizes an EVM address to its lowercase hex form
func NormalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	if common.IsHexAddress(address) {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	return strings.ToLower(address)
}

// ValidateAddress checks that address is a 20-byte hex address and returns it normalized
func ValidateAddress(field, address string) (string, error) {
	if strings.TrimSpace(address) == "" {
		return "", NewValidationError(field, "address is required")
	}
	if !common.IsHexAddress(strings.TrimSpace(address)) {
		return "", NewValidationError(field, "invalid wallet address")
	}
	return NormalizeAddress(address), nil
}

// IsZeroAddress checks if the address is the zero address
func IsZeroAddress(address string) bool {
	return NormalizeAddress(address) == ETHEREUM_ZERO_ADDRESS
}

// IsHexAddress reports whether address is a 20-byte hex address
func IsHexAddress(address string) bool {
	return common.IsHexAddress(strings.TrimSpace(address))
}
