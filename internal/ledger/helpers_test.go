package ledger

import (
	"time"

	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
)

func d(day int) time.Time {
	return time.Date(2024, 4, day, 0, 0, 0, 0, time.UTC)
}

func rec(day int, amount, category, source, id string) models.Transaction {
	return models.NewTransaction(d(day), "desc "+id, decimal.RequireFromString(amount), category, source, id)
}
