package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation is matched by every ValidationError
	ErrValidation = errors.New("validation failed")

	// ErrNoEligibleHolders is returned when a snapshot has no eligible wallets
	ErrNoEligibleHolders = errors.New("no eligible holders")

	// ErrNothingToClaim is returned when a claim request pays nothing new
	ErrNothingToClaim = errors.New("nothing to claim")

	// ErrDistributionNotFound is returned when a distribution does not exist
	ErrDistributionNotFound = errors.New("distribution not found")

	// ErrNoTokenBalance is returned when a wallet holds no tokens
	ErrNoTokenBalance = errors.New("wallet has no tokens")

	// ErrCollaboratorUnavailable is returned when the ledger or oracle cannot be reached
	ErrCollaboratorUnavailable = errors.New("collaborator unavailable")

	// ErrPhaseNotActive is returned when a purchase targets an inactive ICO phase
	ErrPhaseNotActive = errors.New("ico phase not found or not active")

	// ErrPhaseNotFound is returned when an ICO phase number does not exist
	ErrPhaseNotFound = errors.New("ico phase not found")

	// ErrNoNextPhase is returned when there is no further ICO phase to activate
	ErrNoNextPhase = errors.New("no next ico phase available")

	// ErrInsufficientPhaseSupply is returned when a purchase exceeds the phase's remaining tokens
	ErrInsufficientPhaseSupply = errors.New("insufficient tokens in phase")

	// ErrDuplicateTransaction is returned when a ledger entry with the same tx hash exists
	ErrDuplicateTransaction = errors.New("transaction already recorded")
)

// ValidationError describes malformed or missing input
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is reports whether target is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError creates a new validation error for a field
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsDomainError reports whether err is a domain outcome rather than a failure
func IsDomainError(err error) bool {
	return errors.Is(err, ErrNoEligibleHolders) ||
		errors.Is(err, ErrNothingToClaim) ||
		errors.Is(err, ErrDistributionNotFound) ||
		errors.Is(err, ErrNoTokenBalance) ||
		errors.Is(err, ErrPhaseNotActive) ||
		errors.Is(err, ErrNoNextPhase) ||
		errors.Is(err, ErrInsufficientPhaseSupply) ||
		errors.Is(err, ErrDuplicateTransaction)
}
