package validation

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownBackend is returned for a ledger backend other than csv or sqlite.
	ErrUnknownBackend = errors.New("unknown ledger backend")

	// ErrNoSyncItems is returned when a sync runs without any configured item.
	ErrNoSyncItems = errors.New("no sync items configured")

	// ErrSyncDirNotFound is returned when the export directory does not exist.
	ErrSyncDirNotFound = errors.New("sync directory not found")

	// ErrNoSyncHistory is returned by ledger backends that keep no sync runs.
	ErrNoSyncHistory = errors.New("sync history is not kept by this ledger backend")
)

// ValidationError represents a record or setting rejected before it reaches
// the ledger.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Value, e.Reason)
}

// IndexError represents a positional access outside the ledger.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for ledger of %d records", e.Index, e.Length)
}

// CheckIndex returns an IndexError unless 0 <= index < length.
func CheckIndex(index, length int) error {
	if index < 0 || index >= length {
		return &IndexError{Index: index, Length: length}
	}
	return nil
}
