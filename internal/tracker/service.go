// Package tracker exposes the ledger operations used by the commands. Each
// operation loads a full snapshot from the ledger store, runs the in-memory
// core on it and saves the result.
package tracker

import (
	"context"
	"fmt"
	"time"

	"fjacquet/fintrack/internal/banking"
	"fjacquet/fintrack/internal/categorizer"
	"fjacquet/fintrack/internal/ledger"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/validation"

	"github.com/google/uuid"
)

// Options tune the category sets used by the core.
type Options struct {
	// Skip is the normalized set protected during reclassification.
	Skip models.CategorySet
	// Internal is the set of cross-bank categories seen by the deduplicator.
	Internal models.CategorySet
}

// Service runs ledger operations. It holds no lock: operations are meant
// to run one at a time.
type Service struct {
	rules       store.RuleStore
	ledger      store.LedgerStore
	source      banking.Source
	categorizer *categorizer.Categorizer
	skip        models.CategorySet
	internal    models.CategorySet
	logger      logging.Logger

	newRunID func() string
	now      func() time.Time
}

// NewService wires a Service. source may be nil when sync is not configured.
func NewService(rules store.RuleStore, ledgerStore store.LedgerStore, source banking.Source, cat *categorizer.Categorizer, opts Options, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if opts.Skip == nil {
		opts.Skip = models.DefaultReclassifySkip
	}
	if opts.Internal == nil {
		opts.Internal = models.CrossBankCategories
	}
	return &Service{
		rules:       rules,
		ledger:      ledgerStore,
		source:      source,
		categorizer: cat,
		skip:        opts.Skip,
		internal:    opts.Internal,
		logger:      logger,
		newRunID:    uuid.NewString,
		now:         time.Now,
	}
}

// Load returns the stored ledger with every Type re-derived.
func (s *Service) Load(ctx context.Context) ([]models.Transaction, error) {
	l, err := s.ledger.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading ledger: %w", err)
	}
	return ledger.RestoreTypes(l), nil
}

func (s *Service) save(ctx context.Context, l []models.Transaction) error {
	if err := s.ledger.Save(ctx, l); err != nil {
		return fmt.Errorf("error saving ledger: %w", err)
	}
	return nil
}

// Classify returns the category the current rules give description.
func (s *Service) Classify(description string, exact bool) (string, bool) {
	return s.categorizer.Classify(description, exact)
}

// ReclassifyAll reapplies the rules to the whole ledger and saves it when
// any category changed.
func (s *Service) ReclassifyAll(ctx context.Context) (models.ReclassifyStats, error) {
	l, err := s.Load(ctx)
	if err != nil {
		return models.ReclassifyStats{}, err
	}

	out, stats := categorizer.ReclassifyWithIndex(l, s.categorizer.Index(), s.skip)
	stats.LogSummary(s.logger)

	if stats.Changed == 0 {
		return stats, nil
	}
	if err := s.save(ctx, out); err != nil {
		return stats, err
	}
	return stats, nil
}

// SyncResult reports what a sync did.
type SyncResult struct {
	RunID        string
	Fetched      int
	Added        int
	Deduplicated int
}

// Sync fetches records for window, merges the new ones into the ledger and
// saves it. Fetched records are classified with the current rules.
func (s *Service) Sync(ctx context.Context, window banking.Window) (SyncResult, error) {
	result := SyncResult{RunID: s.newRunID()}
	logger := s.logger.WithField(logging.FieldRunID, result.RunID)
	started := s.now()

	if s.source == nil {
		return result, banking.ErrNoSyncItems
	}

	fetched, err := s.source.Fetch(ctx, window, s.categorizer.CategorizeOrDefault)
	if err != nil {
		return result, fmt.Errorf("error fetching transactions: %w", err)
	}
	result.Fetched = len(fetched)

	incoming := make([]models.Transaction, 0, len(fetched))
	for _, tx := range fetched {
		if err := validation.ValidateSynced(tx); err != nil {
			logger.WithError(err).Warn("Dropping invalid synced record",
				logging.Field{Key: logging.FieldExternalID, Value: tx.ExternalID})
			continue
		}
		incoming = append(incoming, tx)
	}

	current, err := s.Load(ctx)
	if err != nil {
		return result, err
	}

	merged, added := ledger.MergeSynced(current, incoming, s.internal)
	result.Added = added
	result.Deduplicated = len(current) + added - len(merged)

	if added > 0 {
		if err := s.save(ctx, merged); err != nil {
			return result, err
		}
	}

	if recorder, ok := s.ledger.(store.SyncRunRecorder); ok {
		run := store.SyncRun{
			RunID:        result.RunID,
			StartedAt:    started,
			From:         window.From,
			To:           window.To,
			Fetched:      result.Fetched,
			Added:        result.Added,
			Deduplicated: result.Deduplicated,
		}
		if err := recorder.RecordSyncRun(ctx, run); err != nil {
			logger.WithError(err).Warn("Failed to record sync run")
		}
	}

	logger.WithFields(
		logging.Field{Key: logging.FieldFetched, Value: result.Fetched},
		logging.Field{Key: logging.FieldAdded, Value: result.Added},
		logging.Field{Key: logging.FieldDropped, Value: result.Deduplicated},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(started).Milliseconds()},
	).Info("Sync completed")
	return result, nil
}

// SyncHistory returns the recorded sync runs, oldest first. It fails with
// validation.ErrNoSyncHistory when the ledger backend keeps no history.
func (s *Service) SyncHistory(ctx context.Context) ([]store.SyncRun, error) {
	history, ok := s.ledger.(store.SyncHistory)
	if !ok {
		return nil, validation.ErrNoSyncHistory
	}
	runs, err := history.SyncRuns(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading sync history: %w", err)
	}
	return runs, nil
}

// Deduplicate removes cross-bank duplicates from the stored ledger and
// returns how many records were dropped.
func (s *Service) Deduplicate(ctx context.Context) (int, error) {
	l, err := s.Load(ctx)
	if err != nil {
		return 0, err
	}

	out := ledger.Deduplicate(l, s.internal)
	dropped := len(l) - len(out)
	s.logger.WithField(logging.FieldDropped, dropped).Info("Deduplicated ledger")

	if dropped == 0 {
		return 0, nil
	}
	if err := s.save(ctx, out); err != nil {
		return 0, err
	}
	return dropped, nil
}

// AddManual stores a manual entry and returns the stored record.
func (s *Service) AddManual(ctx context.Context, entry ledger.ManualEntry) (models.Transaction, error) {
	l, err := s.Load(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	classify := func(description string) (string, bool) {
		return s.categorizer.Classify(description, false)
	}
	out, tx := ledger.AddManual(l, entry, s.categorizer.Fallback(), classify)
	if err := validation.ValidateRecord(tx); err != nil {
		return models.Transaction{}, err
	}

	if err := s.save(ctx, out); err != nil {
		return models.Transaction{}, err
	}
	s.logger.WithFields(
		logging.Field{Key: logging.FieldCategory, Value: tx.Category},
		logging.Field{Key: logging.FieldSource, Value: tx.Source},
	).Info("Added manual transaction")
	return tx, nil
}

// Delete removes the record at index and returns it.
func (s *Service) Delete(ctx context.Context, index int) (models.Transaction, error) {
	l, err := s.Load(ctx)
	if err != nil {
		return models.Transaction{}, err
	}

	out, err := ledger.Delete(l, index)
	if err != nil {
		return models.Transaction{}, err
	}
	if err := s.save(ctx, out); err != nil {
		return models.Transaction{}, err
	}
	s.logger.WithField(logging.FieldIndex, index).Info("Deleted transaction")
	return l[index], nil
}

// UpdateCategory sets the category of the record at index.
func (s *Service) UpdateCategory(ctx context.Context, index int, category string) error {
	if category == "" {
		return &validation.ValidationError{Field: "category", Reason: "category is required"}
	}
	l, err := s.Load(ctx)
	if err != nil {
		return err
	}

	out, err := ledger.UpdateCategory(l, index, category)
	if err != nil {
		return err
	}
	return s.save(ctx, out)
}
