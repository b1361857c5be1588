package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionBuilder provides a fluent API for constructing transactions.
// The first error encountered sticks and is returned by Build.
type TransactionBuilder struct {
	tx  Transaction
	err error
}

// NewTransactionBuilder creates a new TransactionBuilder with default values
func NewTransactionBuilder() *TransactionBuilder {
	return &TransactionBuilder{
		tx: Transaction{
			Amount:   decimal.Zero,
			Category: CategoryOther,
		},
	}
}

// WithDate sets the transaction date, truncated to the calendar day
func (b *TransactionBuilder) WithDate(date time.Time) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if date.IsZero() {
		b.err = errors.New("date cannot be zero")
		return b
	}
	b.tx.Date = TruncateToDay(date)
	return b
}

// WithDescription sets the free-text description
func (b *TransactionBuilder) WithDescription(description string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Description = description
	return b
}

// WithAmount sets the signed amount
func (b *TransactionBuilder) WithAmount(amount decimal.Decimal) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Amount = amount
	return b
}

// WithAmountString parses and sets the signed amount. A comma is accepted
// as the decimal separator.
func (b *TransactionBuilder) WithAmountString(amount string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	parsed, err := decimal.NewFromString(strings.ReplaceAll(strings.TrimSpace(amount), ",", "."))
	if err != nil {
		b.err = fmt.Errorf("invalid amount %q: %w", amount, err)
		return b
	}
	b.tx.Amount = parsed
	return b
}

// WithCategory sets the category; an empty value keeps the default
func (b *TransactionBuilder) WithCategory(category string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	if category != "" {
		b.tx.Category = category
	}
	return b
}

// WithSource sets the account or institution label
func (b *TransactionBuilder) WithSource(source string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Source = source
	return b
}

// WithExternalID sets the identifier assigned by the banking source
func (b *TransactionBuilder) WithExternalID(id string) *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.ExternalID = strings.TrimSpace(id)
	return b
}

// AsOutflow forces the amount negative
func (b *TransactionBuilder) AsOutflow() *TransactionBuilder {
	if b.err != nil {
		return b
	}
	b.tx.Amount = b.tx.Amount.Abs().Neg()
	return b
}

// Build returns the transaction with its Type derived from the amount.
func (b *TransactionBuilder) Build() (Transaction, error) {
	if b.err != nil {
		return Transaction{}, b.err
	}
	if b.tx.Date.IsZero() {
		return Transaction{}, errors.New("date is required")
	}
	return b.tx.WithDerivedType(), nil
}
