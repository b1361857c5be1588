// Package validation checks records and settings before they are used, and
// defines the typed errors reported for them.
package validation

import (
	"strings"
	"unicode/utf8"

	"fjacquet/fintrack/internal/models"
)

// ValidateRecord checks the fields every ledger record needs.
func ValidateRecord(tx models.Transaction) error {
	if tx.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "date is required"}
	}
	if strings.TrimSpace(tx.Description) == "" {
		return &ValidationError{Field: "description", Reason: "description is required"}
	}
	if !tx.HasConsistentType() {
		return &ValidationError{Field: "type", Value: string(tx.Type), Reason: "does not match the sign of the amount"}
	}
	return nil
}

// ValidateSynced checks a record coming from the banking source. Such
// records must carry their external id; their description may be empty.
func ValidateSynced(tx models.Transaction) error {
	if strings.TrimSpace(tx.ExternalID) == "" {
		return &ValidationError{Field: "external_id", Reason: "synced records need an external id"}
	}
	if tx.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "date is required"}
	}
	if !tx.HasConsistentType() {
		return &ValidationError{Field: "type", Value: string(tx.Type), Reason: "does not match the sign of the amount"}
	}
	return nil
}

// ValidateDelimiter checks that a CSV delimiter is exactly one character.
func ValidateDelimiter(delimiter string) error {
	if utf8.RuneCountInString(delimiter) != 1 {
		return &ValidationError{Field: "csv.delimiter", Value: delimiter, Reason: "must be a single character"}
	}
	r, _ := utf8.DecodeRuneInString(delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return &ValidationError{Field: "csv.delimiter", Value: delimiter, Reason: "not usable as a CSV delimiter"}
	}
	return nil
}
