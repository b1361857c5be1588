package store

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// ledgerRow is the CSV layout of one ledger record.
type ledgerRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Source      string `csv:"Source"`
	ExternalID  string `csv:"ExternalID"`
}

// exportRow is ledgerRow without the external id.
type exportRow struct {
	Date        string `csv:"Date"`
	Description string `csv:"Description"`
	Amount      string `csv:"Amount"`
	Type        string `csv:"Type"`
	Category    string `csv:"Category"`
	Source      string `csv:"Source"`
}

func toRow(tx models.Transaction) ledgerRow {
	return ledgerRow{
		Date:        tx.Day(),
		Description: tx.Description,
		Amount:      tx.Amount.String(),
		Type:        string(tx.Type),
		Category:    tx.Category,
		Source:      tx.Source,
		ExternalID:  tx.ExternalID,
	}
}

// fromRow converts a stored row; the stored Type is ignored and re-derived.
func fromRow(row ledgerRow) (models.Transaction, error) {
	day, err := dateutils.ParseDay(row.Date)
	if err != nil {
		return models.Transaction{}, &validation.ValidationError{Field: "date", Value: row.Date, Reason: err.Error()}
	}
	amount, err := decimal.NewFromString(row.Amount)
	if err != nil {
		return models.Transaction{}, &validation.ValidationError{Field: "amount", Value: row.Amount, Reason: "not a decimal number"}
	}
	return models.NewTransaction(day, row.Description, amount, row.Category, row.Source, row.ExternalID), nil
}

// CSVLedgerStore keeps the ledger in a single CSV file.
type CSVLedgerStore struct {
	Path      string
	Delimiter rune
	logger    logging.Logger
}

// NewCSVLedgerStore creates a CSV-backed ledger store.
func NewCSVLedgerStore(path string, delimiter rune, logger logging.Logger) *CSVLedgerStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if delimiter == 0 {
		delimiter = ','
	}
	return &CSVLedgerStore{Path: path, Delimiter: delimiter, logger: logger}
}

// Load reads the ledger. A missing or empty file is an empty ledger.
func (s *CSVLedgerStore) Load(ctx context.Context) ([]models.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.Path).Debug("Ledger file not found, starting empty")
			return []models.Transaction{}, nil
		}
		return nil, fmt.Errorf("error reading ledger file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []models.Transaction{}, nil
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = s.Delimiter

	var rows []ledgerRow
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		return nil, fmt.Errorf("error parsing ledger file %s: %w", s.Path, err)
	}

	ledger := make([]models.Transaction, 0, len(rows))
	for i, row := range rows {
		tx, err := fromRow(row)
		if err != nil {
			// +2: header line and 1-based numbering
			return nil, fmt.Errorf("ledger file %s line %d: %w", s.Path, i+2, err)
		}
		ledger = append(ledger, tx)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.Path},
		logging.Field{Key: logging.FieldCount, Value: len(ledger)},
	).Debug("Loaded ledger")
	return ledger, nil
}

// Save replaces the file with the given snapshot.
func (s *CSVLedgerStore) Save(ctx context.Context, ledger []models.Transaction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := make([]ledgerRow, len(ledger))
	for i, tx := range ledger {
		rows[i] = toRow(tx)
	}

	var buf bytes.Buffer
	if err := marshalRows(&buf, rows, s.Delimiter); err != nil {
		return fmt.Errorf("error encoding ledger: %w", err)
	}
	if err := fileutils.WriteFileAtomic(s.Path, buf.Bytes(), models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing ledger file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.Path},
		logging.Field{Key: logging.FieldCount, Value: len(ledger)},
	).Info("Saved ledger")
	return nil
}

// ExportCSV writes the ledger as CSV without the external id column.
func ExportCSV(w io.Writer, ledger []models.Transaction, delimiter rune) error {
	rows := make([]exportRow, len(ledger))
	for i, tx := range ledger {
		r := toRow(tx.WithDerivedType())
		rows[i] = exportRow{
			Date:        r.Date,
			Description: r.Description,
			Amount:      r.Amount,
			Type:        r.Type,
			Category:    r.Category,
			Source:      r.Source,
		}
	}
	return marshalRows(w, rows, delimiter)
}

func marshalRows(w io.Writer, rows interface{}, delimiter rune) error {
	csvWriter := csv.NewWriter(w)
	if delimiter != 0 {
		csvWriter.Comma = delimiter
	}
	if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return err
	}
	csvWriter.Flush()
	return csvWriter.Error()
}
