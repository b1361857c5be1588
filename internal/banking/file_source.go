package banking

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"golang.org/x/sync/errgroup"
)

// maxConcurrentReads bounds the number of export files read at once.
const maxConcurrentReads = 4

// FileSource reads aggregator exports named <itemID>.json from a directory.
type FileSource struct {
	Dir         string
	Items       []Item
	DefaultDays int

	logger logging.Logger
	now    func() time.Time
}

// NewFileSource creates a source over dir. items maps item id to bank name.
func NewFileSource(dir string, items map[string]string, defaultDays int, logger logging.Logger) *FileSource {
	if logger == nil {
		logger = logging.GetLogger()
	}
	list := make([]Item, 0, len(items))
	for id, bank := range items {
		list = append(list, Item{ID: id, Bank: bank})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	return &FileSource{
		Dir:         dir,
		Items:       list,
		DefaultDays: defaultDays,
		logger:      logger,
		now:         time.Now,
	}
}

// Fetch reads every item export and returns the mapped records inside the
// window, in item id order and then file order. Records that fail
// validation are logged and skipped. A missing export file is skipped too,
// but a missing directory is an error.
func (s *FileSource) Fetch(ctx context.Context, window Window, categorize CategorizeFunc) ([]models.Transaction, error) {
	if len(s.Items) == 0 {
		return nil, ErrNoSyncItems
	}
	if !fileutils.DirectoryExists(s.Dir) {
		return nil, fmt.Errorf("%w: %s", ErrSyncDirNotFound, s.Dir)
	}

	dr, err := window.Range(s.now(), s.DefaultDays)
	if err != nil {
		return nil, fmt.Errorf("invalid sync window: %w", err)
	}

	results := make([][]models.Transaction, len(s.Items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentReads)

	for i, item := range s.Items {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			records, err := s.readItem(item, dr, categorize)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []models.Transaction
	for _, records := range results {
		out = append(out, records...)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFetched, Value: len(out)},
		logging.Field{Key: "window", Value: dr.String()},
	).Info("Fetched transactions from exports")
	return out, nil
}

func (s *FileSource) readItem(item Item, dr dateutils.DateRange, categorize CategorizeFunc) ([]models.Transaction, error) {
	path := filepath.Join(s.Dir, item.ID+".json")
	logger := s.logger.WithFields(
		logging.Field{Key: logging.FieldItem, Value: item.ID},
		logging.Field{Key: logging.FieldFile, Value: path},
	)

	if !fileutils.FileExists(path) {
		logger.Warn("Export file not found, skipping item")
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading export for item %s: %w", item.ID, err)
	}

	var export exportFile
	if err := json.Unmarshal(data, &export); err != nil {
		return nil, fmt.Errorf("error parsing export for item %s: %w", item.ID, err)
	}

	var records []models.Transaction
	for _, account := range export.Accounts {
		credit := account.IsCreditCard()
		for _, raw := range account.Transactions {
			tx, err := MapTransaction(raw, item.Bank, credit, categorize)
			if err != nil {
				logger.WithError(err).Warn("Skipping invalid transaction",
					logging.Field{Key: logging.FieldExternalID, Value: raw.ID})
				continue
			}
			if !dr.Contains(tx.Date) {
				continue
			}
			records = append(records, tx)
		}
	}

	logger.WithField(logging.FieldCount, len(records)).Debug("Read item export")
	return records, nil
}
