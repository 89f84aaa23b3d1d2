package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"

	"github.com/cfd-platform/cfd-backend/internal/domain"
	"github.com/cfd-platform/cfd-backend/internal/logger"
	"github.com/cfd-platform/cfd-backend/internal/store/schema"
)

// visibleStatuses are the distribution states whose entries can be read and claimed
var visibleStatuses = []domain.DistributionStatus{
	domain.DistributionStatusCalculated,
	domain.DistributionStatusCompleted,
}

type pgStore struct {
	db *gorm.DB
}

func hasDBResolver(db *gorm.DB) bool {
	return db != nil && db.Callback().Query().Get("gorm:db_resolver") != nil
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// calculateSafeBatchSize computes the batch size for bulk inserts that keeps a
// single statement under PostgreSQL's 65535 bind parameter limit
func calculateSafeBatchSize(totalRecords int, fieldsPerRecord int) int {
	const maxParams = 65535
	const totalHeadroom = 1000

	availableParams := maxParams - totalHeadroom
	safeBatchSize := max(availableParams/fieldsPerRecord, 1)

	if safeBatchSize > totalRecords {
		return totalRecords
	}

	return safeBatchSize
}

// Ping checks database connectivity
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// =============================================================================
// Ledger
// =============================================================================

// GetTransactionByHash retrieves a ledger entry by hash
func (s *pgStore) GetTransactionByHash(ctx context.Context, txHash string) (*schema.Transaction, error) {
	var row schema.Transaction
	err := s.db.WithContext(ctx).Where("tx_hash = ?", txHash).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return &row, nil
}

// ListWalletTransactions returns a page of the wallet's ledger entries newest first and the total count
func (s *pgStore) ListWalletTransactions(ctx context.Context, filter TransactionListFilter) ([]schema.Transaction, int64, error) {
	query := func() *gorm.DB {
		q := s.db.WithContext(ctx).Model(&schema.Transaction{}).Where("wallet_address = ?", filter.WalletAddress)
		if filter.Type != nil {
			q = q.Where("type = ?", *filter.Type)
		}
		return q
	}

	var total int64
	if err := query().Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	var rows []schema.Transaction
	err := query().
		Order("created_at DESC, id DESC").
		Offset(filter.Offset).
		Limit(filter.Limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}

	return rows, total, nil
}

// ListConfirmedPurchases returns confirmed ico_purchase entries ordered by timestamp ascending
func (s *pgStore) ListConfirmedPurchases(ctx context.Context) ([]domain.Purchase, error) {
	var rows []schema.Transaction
	err := s.db.WithContext(ctx).
		Where("type = ? AND status = ?", domain.TransactionTypeICOPurchase, domain.TransactionStatusConfirmed).
		Order("created_at ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list confirmed purchases: %w", err)
	}

	purchases := make([]domain.Purchase, 0, len(rows))
	for _, row := range rows {
		tokens := decimal.Zero
		if row.TokensReceived != nil {
			tokens = *row.TokensReceived
		}
		purchases = append(purchases, domain.Purchase{
			WalletAddress:  row.WalletAddress,
			TokensReceived: tokens,
			AmountPaid:     row.Amount,
			Timestamp:      row.CreatedAt,
		})
	}

	return purchases, nil
}

// =============================================================================
// Distributions
// =============================================================================

// CreateDistribution persists a distribution and its entries in one transaction
func (s *pgStore) CreateDistribution(ctx context.Context, input CreateDistributionInput) (*schema.DividendDistribution, error) {
	if len(input.Entries) == 0 {
		return nil, domain.ErrNoEligibleHolders
	}

	id := input.ID
	if id == "" {
		id = uuid.NewString()
	}

	snapshot, err := json.Marshal(input.Snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	distribution := schema.DividendDistribution{
		ID:                  id,
		TotalAmount:         input.TotalAmount,
		Currency:            input.Currency,
		TotalTokensEligible: input.TotalTokensEligible,
		AmountPerToken:      input.AmountPerToken,
		EligibleHolders:     len(input.Snapshot),
		Status:              domain.DistributionStatusPending,
		Notes:               input.Notes,
		CreatedBy:           input.CreatedBy,
		Snapshot:            datatypes.JSON(snapshot),
		DistributionDate:    input.DistributionDate,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Omit associations so entries are inserted explicitly below
		if err := tx.Omit(clause.Associations).Create(&distribution).Error; err != nil {
			return fmt.Errorf("failed to create distribution: %w", err)
		}

		entries := make([]schema.DividendEntry, 0, len(input.Entries))
		for _, e := range input.Entries {
			entries = append(entries, schema.DividendEntry{
				DistributionID:  id,
				WalletAddress:   e.WalletAddress,
				Balance:         e.Balance,
				SharePercentage: e.SharePercentage,
				DividendAmount:  e.DividendAmount,
			})
		}

		batchSize := calculateSafeBatchSize(len(entries), 8)
		if err := tx.CreateInBatches(&entries, batchSize).Error; err != nil {
			return fmt.Errorf("failed to create dividend entries: %w", err)
		}

		result := tx.Model(&schema.DividendDistribution{}).
			Where("id = ? AND status = ?", id, domain.DistributionStatusPending).
			Updates(map[string]any{
				"status":     domain.DistributionStatusCalculated,
				"updated_at": gorm.Expr("now()"),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to mark distribution calculated: %w", result.Error)
		}
		if result.RowsAffected != 1 {
			return fmt.Errorf("distribution %s left pending state concurrently", id)
		}

		distribution.Status = domain.DistributionStatusCalculated
		distribution.Entries = entries
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &distribution, nil
}

// GetDistribution retrieves a distribution with its entries
func (s *pgStore) GetDistribution(ctx context.Context, id string) (*schema.DividendDistribution, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, nil
	}

	query := func(db *gorm.DB) (*schema.DividendDistribution, error) {
		var distribution schema.DividendDistribution
		err := db.WithContext(ctx).
			Preload("Entries", func(db *gorm.DB) *gorm.DB {
				return db.Order("dividend_amount DESC, wallet_address ASC")
			}).
			Where("id = ?", id).
			First(&distribution).Error
		if err != nil {
			return nil, err
		}
		return &distribution, nil
	}

	distribution, err := query(s.db)
	if err == nil {
		return distribution, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get distribution: %w", err)
	}
	if !hasDBResolver(s.db) {
		return nil, nil
	}

	// Replica can lag behind primary; retry on primary before returning not found.
	distribution, err = query(s.db.Clauses(dbresolver.Write))
	if err == nil {
		return distribution, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return nil, fmt.Errorf("failed to get distribution: %w", err)
}

// ListDistributions returns a page of distributions newest first without their entries
func (s *pgStore) ListDistributions(ctx context.Context, offset, limit int) ([]schema.DividendDistribution, int64, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&schema.DividendDistribution{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count distributions: %w", err)
	}

	var distributions []schema.DividendDistribution
	err := s.db.WithContext(ctx).
		Omit("snapshot").
		Order("distribution_date DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&distributions).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list distributions: %w", err)
	}

	return distributions, total, nil
}

// ListWalletEntries returns the wallet's entries in calculated or completed distributions, newest first
func (s *pgStore) ListWalletEntries(ctx context.Context, walletAddress string) ([]WalletEntry, error) {
	var entries []WalletEntry
	err := s.db.WithContext(ctx).
		Table("dividend_entries AS e").
		Select("e.*, d.distribution_date, d.notes").
		Joins("JOIN dividend_distributions d ON d.id = e.distribution_id").
		Where("e.wallet_address = ? AND d.status IN ?", walletAddress, visibleStatuses).
		Order("d.distribution_date DESC, e.distribution_id ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet entries: %w", err)
	}
	return entries, nil
}

// ClaimEntry marks an entry as claimed with a compare-and-set on claimed = false
// and appends its dividend_payment ledger entry in the same transaction.
// Entries with a zero amount are never claimable.
func (s *pgStore) ClaimEntry(ctx context.Context, input ClaimEntryInput) (*schema.DividendEntry, error) {
	if _, err := uuid.Parse(input.DistributionID); err != nil {
		return nil, nil
	}

	var claimed *schema.DividendEntry

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&schema.DividendEntry{}).
			Where("distribution_id = ? AND wallet_address = ? AND claimed = false AND dividend_amount > 0", input.DistributionID, input.WalletAddress).
			Where("distribution_id IN (?)",
				tx.Model(&schema.DividendDistribution{}).Select("id").Where("status IN ?", visibleStatuses)).
			Updates(map[string]any{
				"claimed":       true,
				"claimed_at":    input.ClaimedAt,
				"claim_tx_hash": input.ClaimTxHash,
				"updated_at":    gorm.Expr("now()"),
			})
		if result.Error != nil {
			return fmt.Errorf("failed to claim entry: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil
		}

		var entry schema.DividendEntry
		err := tx.Where("distribution_id = ? AND wallet_address = ?", input.DistributionID, input.WalletAddress).
			First(&entry).Error
		if err != nil {
			return fmt.Errorf("failed to reload claimed entry: %w", err)
		}

		payment, err := toTransactionRow(domain.Transaction{
			TxHash:        input.ClaimTxHash,
			WalletAddress: entry.WalletAddress,
			Type:          domain.TransactionTypeDividendPayment,
			Amount:        entry.DividendAmount,
			Currency:      domain.DIVIDEND_CURRENCY,
			Status:        domain.TransactionStatusConfirmed,
			CreatedAt:     input.ClaimedAt,
			DividendPayment: &domain.DividendPaymentDetails{
				DistributionID:  entry.DistributionID,
				SharePercentage: entry.SharePercentage,
				CFDBalance:      entry.Balance,
			},
		})
		if err != nil {
			return err
		}

		if err := tx.Create(payment).Error; err != nil {
			return fmt.Errorf("failed to record dividend payment: %w", err)
		}

		claimed = &entry
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// The payment reference is unique per (distribution, wallet); a
			// concurrent claim won the race
			logger.WarnCtx(ctx, "Duplicate dividend payment rejected",
				zap.String("distributionID", input.DistributionID),
				zap.String("walletAddress", input.WalletAddress))
			return nil, nil
		}
		return nil, err
	}

	return claimed, nil
}

// GetDividendStats aggregates calculated and completed distributions and payouts
func (s *pgStore) GetDividendStats(ctx context.Context) (*DividendStats, error) {
	stats := DividendStats{
		TotalDistributed: decimal.Zero,
		TotalClaimed:     decimal.Zero,
	}

	db := s.db.WithContext(ctx)

	row := db.Model(&schema.DividendDistribution{}).
		Select("COUNT(*), COALESCE(SUM(total_amount), 0)").
		Where("status IN ?", visibleStatuses).
		Row()
	if err := row.Scan(&stats.TotalDistributions, &stats.TotalDistributed); err != nil {
		return nil, fmt.Errorf("failed to aggregate distributions: %w", err)
	}

	row = db.Model(&schema.Transaction{}).
		Select("COALESCE(SUM(amount), 0), COUNT(DISTINCT wallet_address)").
		Where("type = ? AND status = ?", domain.TransactionTypeDividendPayment, domain.TransactionStatusConfirmed).
		Row()
	if err := row.Scan(&stats.TotalClaimed, &stats.UniqueRecipients); err != nil {
		return nil, fmt.Errorf("failed to aggregate dividend payments: %w", err)
	}

	var last schema.DividendDistribution
	err := db.Omit("snapshot").
		Where("status IN ?", visibleStatuses).
		Order("distribution_date DESC, id ASC").
		First(&last).Error
	switch {
	case err == nil:
		stats.LastDistribution = &last
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return nil, fmt.Errorf("failed to get last distribution: %w", err)
	}

	return &stats, nil
}

// =============================================================================
// ICO phases
// =============================================================================

// ListICOPhases returns all phases ordered by phase number
func (s *pgStore) ListICOPhases(ctx context.Context) ([]schema.ICOPhase, error) {
	var phases []schema.ICOPhase
	if err := s.db.WithContext(ctx).Order("phase ASC").Find(&phases).Error; err != nil {
		return nil, fmt.Errorf("failed to list ico phases: %w", err)
	}
	return phases, nil
}

// InsertMissingICOPhases inserts phases that do not exist yet
func (s *pgStore) InsertMissingICOPhases(ctx context.Context, phases []schema.ICOPhase) (int64, error) {
	if len(phases) == 0 {
		return 0, nil
	}

	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "phase"}},
			DoNothing: true,
		}).
		Create(&phases)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert ico phases: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ActivateNextICOPhase completes the active phase and activates the one after it.
// With no active phase, phase 1 is activated unless it is completed.
func (s *pgStore) ActivateNextICOPhase(ctx context.Context) (*schema.ICOPhase, error) {
	var next schema.ICOPhase

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		nextNumber := 1

		var current schema.ICOPhase
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("is_active = true").
			Order("phase ASC").
			First(&current).Error
		switch {
		case err == nil:
			err = tx.Model(&schema.ICOPhase{}).
				Where("phase = ?", current.Phase).
				Updates(map[string]any{
					"is_active":    false,
					"is_completed": true,
					"updated_at":   gorm.Expr("now()"),
				}).Error
			if err != nil {
				return fmt.Errorf("failed to complete ico phase: %w", err)
			}
			nextNumber = current.Phase + 1
		case errors.Is(err, gorm.ErrRecordNotFound):
		default:
			return fmt.Errorf("failed to lock active ico phase: %w", err)
		}

		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("phase = ? AND is_completed = false", nextNumber).
			First(&next).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrNoNextPhase
			}
			return fmt.Errorf("failed to lock next ico phase: %w", err)
		}

		err = tx.Model(&schema.ICOPhase{}).
			Where("phase = ?", next.Phase).
			Updates(map[string]any{
				"is_active":  true,
				"updated_at": gorm.Expr("now()"),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to activate ico phase: %w", err)
		}
		next.IsActive = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &next, nil
}

// UpdateICOPhase applies admin settings to a phase under a row lock
func (s *pgStore) UpdateICOPhase(ctx context.Context, number int, update domain.ICOPhaseUpdate) (*schema.ICOPhase, error) {
	var updated schema.ICOPhase

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.ICOPhase
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("phase = ?", number).
			First(&row).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPhaseNotFound
			}
			return fmt.Errorf("failed to lock ico phase: %w", err)
		}

		phase, err := update.Apply(ToDomainICOPhase(row))
		if err != nil {
			return err
		}

		err = tx.Model(&schema.ICOPhase{}).
			Where("phase = ?", number).
			Updates(map[string]any{
				"name":             phase.Name,
				"description":      phase.Description,
				"token_price":      phase.TokenPrice,
				"total_tokens":     phase.TotalTokens,
				"bonus_percentage": phase.BonusPercentage,
				"min_purchase":     phase.MinPurchase,
				"max_purchase":     phase.MaxPurchase,
				"start_date":       phase.StartDate,
				"end_date":         phase.EndDate,
				"updated_at":       gorm.Expr("now()"),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update ico phase: %w", err)
		}

		updated = ToSchemaICOPhase(phase)
		updated.CreatedAt = row.CreatedAt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// RecordPurchase applies a purchase to its phase under a row lock and appends the ledger entry
func (s *pgStore) RecordPurchase(ctx context.Context, input RecordPurchaseInput) (*RecordPurchaseResult, error) {
	req := input.Request
	var result RecordPurchaseResult

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing int64
		if err := tx.Model(&schema.Transaction{}).Where("tx_hash = ?", req.TxHash).Count(&existing).Error; err != nil {
			return fmt.Errorf("failed to check transaction hash: %w", err)
		}
		if existing > 0 {
			return fmt.Errorf("%w: %s", domain.ErrDuplicateTransaction, req.TxHash)
		}

		var phase schema.ICOPhase
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("phase = ?", req.Phase).
			First(&phase).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrPhaseNotActive
			}
			return fmt.Errorf("failed to lock ico phase: %w", err)
		}

		current := ToDomainICOPhase(phase)
		quote, err := current.Quote(req.AmountPaid)
		if err != nil {
			return err
		}

		phase.TokensSold = phase.TokensSold.Add(quote.TotalTokens)
		phase.TotalRaised = phase.TotalRaised.Add(req.AmountPaid)
		completed := phase.TokensSold.GreaterThanOrEqual(phase.TotalTokens)
		if completed {
			phase.IsCompleted = true
			phase.IsActive = false
		}

		err = tx.Model(&schema.ICOPhase{}).
			Where("phase = ?", phase.Phase).
			Updates(map[string]any{
				"tokens_sold":  phase.TokensSold,
				"total_raised": phase.TotalRaised,
				"is_completed": phase.IsCompleted,
				"is_active":    phase.IsActive,
				"updated_at":   gorm.Expr("now()"),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update ico phase: %w", err)
		}

		if completed {
			err = tx.Model(&schema.ICOPhase{}).
				Where("phase = ? AND is_completed = false", phase.Phase+1).
				Updates(map[string]any{
					"is_active":  true,
					"updated_at": gorm.Expr("now()"),
				}).Error
			if err != nil {
				return fmt.Errorf("failed to activate next ico phase: %w", err)
			}
		}

		purchase, err := toTransactionRow(domain.Transaction{
			TxHash:        req.TxHash,
			BlockNumber:   req.BlockNumber,
			WalletAddress: req.WalletAddress,
			Type:          domain.TransactionTypeICOPurchase,
			Amount:        req.AmountPaid,
			Currency:      domain.CurrencyMATIC,
			Status:        domain.TransactionStatusConfirmed,
			CreatedAt:     input.Timestamp,
			Purchase: &domain.PurchaseDetails{
				ICOPhase:         req.Phase,
				TokenPrice:       phase.TokenPrice,
				TokensReceived:   quote.TotalTokens,
				BonusTokens:      quote.BonusTokens,
				AffiliateAddress: req.AffiliateAddress,
			},
		})
		if err != nil {
			return err
		}
		if err := tx.Create(purchase).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fmt.Errorf("%w: %s", domain.ErrDuplicateTransaction, req.TxHash)
			}
			return fmt.Errorf("failed to record purchase: %w", err)
		}

		result = RecordPurchaseResult{
			Quote:          quote,
			Phase:          phase,
			PhaseCompleted: completed,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

// toTransactionRow validates a ledger entry and maps its variant onto columns
func toTransactionRow(t domain.Transaction) (*schema.Transaction, error) {
	t.WalletAddress = domain.NormalizeAddress(t.WalletAddress)
	if err := t.Validate(); err != nil {
		return nil, err
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}

	row := &schema.Transaction{
		TxHash:        t.TxHash,
		BlockNumber:   t.BlockNumber,
		WalletAddress: t.WalletAddress,
		Type:          t.Type,
		Amount:        t.Amount,
		Currency:      t.Currency,
		Status:        t.Status,
		GasUsed:       t.GasUsed,
		GasFee:        t.GasFee,
		CreatedAt:     t.CreatedAt,
	}

	var metadata any
	switch {
	case t.Purchase != nil:
		p := t.Purchase
		row.ICOPhase = &p.ICOPhase
		row.TokenPrice = &p.TokenPrice
		row.TokensReceived = &p.TokensReceived
		row.BonusTokens = &p.BonusTokens
		row.AffiliateAddress = p.AffiliateAddress
	case t.DividendPayment != nil:
		metadata = t.DividendPayment
	case t.AffiliatePayment != nil:
		row.AffiliateAddress = &t.AffiliatePayment.AffiliateAddress
		metadata = t.AffiliatePayment
	}

	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal transaction metadata: %w", err)
		}
		row.Metadata = datatypes.JSON(raw)
	}

	return row, nil
}
