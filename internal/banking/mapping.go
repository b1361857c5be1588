package banking

import (
	"strings"
	"time"

	"fjacquet/fintrack/internal/dateutils"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"

	"github.com/shopspring/decimal"
)

// AccountTypeCredit marks a credit card account in the export.
const AccountTypeCredit = "CREDIT"

// exportFile is the layout of one item export.
type exportFile struct {
	Accounts []Account `json:"accounts"`
}

// Account is one account of an item with its transactions.
type Account struct {
	ID           string           `json:"id"`
	Type         string           `json:"type"`
	Name         string           `json:"name"`
	Transactions []RawTransaction `json:"transactions"`
}

// IsCreditCard reports whether the account is a credit card.
func (a Account) IsCreditCard() bool {
	return strings.EqualFold(a.Type, AccountTypeCredit)
}

// RawTransaction is a transaction as the aggregator reports it.
type RawTransaction struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// SourceLabel returns the ledger source for an account of bank.
func SourceLabel(bank string, isCreditCard bool) string {
	if isCreditCard {
		return "Cartão Crédito " + bank
	}
	return bank
}

// MapTransaction converts raw into a ledger record.
//
// Credit card exports report charges as positive amounts, so the sign is
// inverted for them. The date keeps its wall-clock calendar day and drops
// any zone.
func MapTransaction(raw RawTransaction, bank string, isCreditCard bool, categorize CategorizeFunc) (models.Transaction, error) {
	id := strings.TrimSpace(raw.ID)
	if id == "" {
		return models.Transaction{}, &validation.ValidationError{Field: "id", Reason: "missing external id"}
	}

	date, err := parseRawDate(raw.Date)
	if err != nil {
		return models.Transaction{}, &validation.ValidationError{Field: "date", Value: raw.Date, Reason: err.Error()}
	}

	amount := raw.Amount
	if isCreditCard {
		amount = amount.Neg()
	}

	category := ""
	if categorize != nil {
		category = categorize(raw.Description)
	}
	if category == "" {
		category = models.CategoryOther
	}

	return models.NewTransaction(date, raw.Description, amount, category, SourceLabel(bank, isCreditCard), id), nil
}

func parseRawDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return models.TruncateToDay(t), nil
	}
	return dateutils.ParseDay(s)
}
