// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType is the direction label derived from the sign of an amount.
type TransactionType string

const (
	TypeOutflow TransactionType = "Outflow"
	TypeInflow  TransactionType = "Inflow"
)

// DayLayout is the calendar-day layout used for keys, storage and display.
const DayLayout = "2006-01-02"

// Transaction is a single ledger record.
//
// Type must always agree with the sign of Amount: negative amounts are
// outflows, everything else (zero included) is an inflow. ExternalID is set
// only for records imported from the banking source; manual entries leave
// it empty.
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Source      string
	ExternalID  string
}

// NewTransaction builds a record with its date truncated to the calendar day
// and its Type derived from the amount.
func NewTransaction(date time.Time, description string, amount decimal.Decimal, category, source, externalID string) Transaction {
	return Transaction{
		Date:        TruncateToDay(date),
		Description: description,
		Amount:      amount,
		Type:        TypeForAmount(amount),
		Category:    category,
		Source:      source,
		ExternalID:  externalID,
	}
}

// TypeForAmount returns the direction label matching the sign of amount.
func TypeForAmount(amount decimal.Decimal) TransactionType {
	if amount.IsNegative() {
		return TypeOutflow
	}
	return TypeInflow
}

// TruncateToDay drops the time of day and the zone, keeping the wall-clock
// calendar day of t.
func TruncateToDay(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// WithDerivedType returns a copy whose Type agrees with the sign of Amount.
func (t Transaction) WithDerivedType() Transaction {
	t.Type = TypeForAmount(t.Amount)
	return t
}

// HasConsistentType reports whether the stored Type matches the amount sign.
func (t Transaction) HasConsistentType() bool {
	return t.Type == TypeForAmount(t.Amount)
}

// Day returns the calendar-day key of the record (YYYY-MM-DD).
func (t Transaction) Day() string {
	return t.Date.Format(DayLayout)
}

// HasExternalID reports whether the record was imported from a sync.
func (t Transaction) HasExternalID() bool {
	return t.ExternalID != ""
}

// IsOutflow reports whether the amount is negative.
func (t Transaction) IsOutflow() bool {
	return t.Amount.IsNegative()
}

// AbsAmount returns |Amount|.
func (t Transaction) AbsAmount() decimal.Decimal {
	return t.Amount.Abs()
}

// ParseTransactionType maps user input to a TransactionType. It accepts the
// English labels plus the Portuguese ones used by older ledgers.
func ParseTransactionType(s string) (TransactionType, bool) {
	switch s {
	case "Outflow", "outflow", "out", "Saída", "saida", "Saida":
		return TypeOutflow, true
	case "Inflow", "inflow", "in", "Entrada", "entrada":
		return TypeInflow, true
	default:
		return "", false
	}
}
