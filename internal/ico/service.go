package ico

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/cfd-platform/cfd-backend/internal/adapter"
	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/store"
	"github.com/cfd-platform/cfd-backend/internal/store/schema"
)

const (
	// DefaultPageLimit is used when a history request names no limit
	DefaultPageLimit = 20
	// MaxPageLimit caps the page size of history requests
	MaxPageLimit = 100
)

// Service manages the token sale phases, writes purchases to the ledger and
// serves wallet ledger history
//
//go:generate mockgen -source=service.go -destination=../mocks/ico_service.go -package=mocks -mock_names=Service=MockICOService
type Service interface {
	// InitializePhases inserts the default phases that do not exist yet
	InitializePhases(ctx context.Context) error

	// GetStatus returns every phase with its progress and the sale totals
	GetStatus(ctx context.Context) (*domain.ICOStatus, error)

	// ProcessPurchase prices a purchase against its phase and records it
	ProcessPurchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResult, error)

	// IsActive reports whether a phase is currently selling
	IsActive(ctx context.Context) (*domain.ICOActivity, error)

	// ActivateNextPhase completes the active phase and activates the next one
	ActivateNextPhase(ctx context.Context) (*domain.ICOPhase, error)

	// UpdatePhase applies admin settings to a phase
	UpdatePhase(ctx context.Context, phase int, update domain.ICOPhaseUpdate) (*domain.ICOPhase, error)

	// ListTransactions returns a page of a wallet's ledger entries newest first
	ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error)
}

type service struct {
	store store.Store
	clock adapter.Clock
}

// NewService creates the ICO service
func NewService(st store.Store, clock adapter.Clock) Service {
	return &service{store: st, clock: clock}
}

// InitializePhases seeds the default phases
func (s *service) InitializePhases(ctx context.Context) error {
	defaults := domain.DefaultICOPhases()
	rows := make([]schema.ICOPhase, 0, len(defaults))
	for _, p := range defaults {
		rows = append(rows, store.ToSchemaICOPhase(p))
	}

	inserted, err := s.store.InsertMissingICOPhases(ctx, rows)
	if err != nil {
		return fmt.Errorf("failed to initialize ico phases: %w", err)
	}
	if inserted > 0 {
		logger.InfoCtx(ctx, "ICO phases initialized", zap.Int64("inserted", inserted))
	}
	return nil
}

// GetStatus returns phases with their progress and the current active phase
func (s *service) GetStatus(ctx context.Context) (*domain.ICOStatus, error) {
	rows, err := s.store.ListICOPhases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ico phases: %w", err)
	}

	status := &domain.ICOStatus{
		Phases:             make([]domain.ICOPhase, 0, len(rows)),
		TotalTokensSold:    decimal.Zero,
		TotalRaised:        decimal.Zero,
		TotalTokensForSale: decimal.Zero,
		OverallProgress:    decimal.Zero,
	}

	for _, row := range rows {
		phase := store.ToDomainICOPhase(row)
		phase.ProgressPercent = phase.Progress()
		status.Phases = append(status.Phases, phase)

		status.TotalTokensSold = status.TotalTokensSold.Add(phase.TokensSold)
		status.TotalRaised = status.TotalRaised.Add(phase.TotalRaised)
		status.TotalTokensForSale = status.TotalTokensForSale.Add(phase.TotalTokens)
		if phase.IsCompleted {
			status.CompletedPhases++
		}
	}
	status.TotalPhases = len(status.Phases)

	for i := range status.Phases {
		if status.Phases[i].IsActive && !status.Phases[i].IsCompleted {
			status.CurrentPhase = &status.Phases[i]
			break
		}
	}

	if status.TotalTokensForSale.IsPositive() {
		status.OverallProgress = status.TotalTokensSold.Div(status.TotalTokensForSale).Mul(decimal.NewFromInt(100)).Round(2)
	}

	return status, nil
}

// ProcessPurchase validates the request and records it against its phase
func (s *service) ProcessPurchase(ctx context.Context, req domain.PurchaseRequest) (*domain.PurchaseResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.store.GetTransactionByHash(ctx, req.TxHash)
	if err != nil {
		return nil, fmt.Errorf("failed to check transaction hash: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrDuplicateTransaction, req.TxHash)
	}

	recorded, err := s.store.RecordPurchase(ctx, store.RecordPurchaseInput{
		Request:   req,
		Timestamp: s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	if recorded.PhaseCompleted {
		logger.InfoCtx(ctx, "ICO phase completed", zap.Int("phase", recorded.Phase.Phase))
	}
	logger.InfoCtx(ctx, "ICO purchase recorded",
		zap.String("wallet", req.WalletAddress),
		zap.Int("phase", req.Phase),
		zap.String("amount", req.AmountPaid.String()),
		zap.String("tokens", recorded.Quote.TotalTokens.String()),
		zap.String("txHash", req.TxHash))

	return &domain.PurchaseResult{
		WalletAddress:  req.WalletAddress,
		AmountPaid:     req.AmountPaid,
		Phase:          req.Phase,
		BaseTokens:     recorded.Quote.BaseTokens,
		BonusTokens:    recorded.Quote.BonusTokens,
		TotalTokens:    recorded.Quote.TotalTokens,
		TokenPrice:     recorded.Phase.TokenPrice,
		TxHash:         req.TxHash,
		PhaseCompleted: recorded.PhaseCompleted,
	}, nil
}

// IsActive reports the phase that is active and not completed, if any
func (s *service) IsActive(ctx context.Context) (*domain.ICOActivity, error) {
	status, err := s.GetStatus(ctx)
	if err != nil {
		return nil, err
	}
	return &domain.ICOActivity{
		IsActive:    status.CurrentPhase != nil,
		ActivePhase: status.CurrentPhase,
	}, nil
}

// ActivateNextPhase moves the sale to the next phase
func (s *service) ActivateNextPhase(ctx context.Context) (*domain.ICOPhase, error) {
	row, err := s.store.ActivateNextICOPhase(ctx)
	if err != nil {
		return nil, err
	}

	phase := store.ToDomainICOPhase(*row)
	phase.ProgressPercent = phase.Progress()
	logger.InfoCtx(ctx, "ICO phase activated", zap.Int("phase", phase.Phase))
	return &phase, nil
}

// UpdatePhase applies admin settings to a phase
func (s *service) UpdatePhase(ctx context.Context, number int, update domain.ICOPhaseUpdate) (*domain.ICOPhase, error) {
	if number < 1 {
		return nil, domain.NewValidationError("phase", "phase must be a positive number")
	}
	if update.IsEmpty() {
		return nil, domain.NewValidationError("", "no phase fields to update")
	}

	row, err := s.store.UpdateICOPhase(ctx, number, update)
	if err != nil {
		return nil, err
	}

	phase := store.ToDomainICOPhase(*row)
	phase.ProgressPercent = phase.Progress()
	logger.InfoCtx(ctx, "ICO phase updated", zap.Int("phase", phase.Phase))
	return &phase, nil
}

// ListTransactions returns a page of the wallet's ledger entries
func (s *service) ListTransactions(ctx context.Context, filter domain.TransactionFilter) (*domain.TransactionPage, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = DefaultPageLimit
	}
	if filter.Limit > MaxPageLimit {
		filter.Limit = MaxPageLimit
	}

	rows, total, err := s.store.ListWalletTransactions(ctx, store.TransactionListFilter{
		WalletAddress: filter.WalletAddress,
		Type:          filter.Type,
		Offset:        (filter.Page - 1) * filter.Limit,
		Limit:         filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet transactions: %w", err)
	}

	items := make([]domain.LedgerEntry, 0, len(rows))
	for _, row := range rows {
		entry, err := store.ToDomainLedgerEntry(row)
		if err != nil {
			return nil, err
		}
		items = append(items, entry)
	}

	return &domain.TransactionPage{
		Items:      items,
		Pagination: domain.NewPagination(filter.Page, filter.Limit, total),
	}, nil
}
