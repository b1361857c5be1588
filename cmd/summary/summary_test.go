package summary_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/cmd/summary"
	"fjacquet/fintrack/internal/container/containertest"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesFile = `categories:
  Lazer: {icon: "🎬", real_expense: true}
  Alimentação: {icon: "🍽️", real_expense: true}
`

func rec(day int, description, amount, category, source string) models.Transaction {
	return models.NewTransaction(time.Date(2024, 9, day, 0, 0, 0, 0, time.UTC), description, decimal.RequireFromString(amount), category, source, "")
}

func execute(args ...string) (string, error) {
	cmd := summary.NewCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setup(t *testing.T) {
	t.Helper()
	c, _ := containertest.New(t, containertest.Options{
		Rules: rulesFile,
		Ledger: []models.Transaction{
			rec(1, "Salario", "4000", models.CategorySalary, "Santander"),
			rec(2, "Cinema", "-100", "Lazer", "Nubank"),
			rec(3, "Mercado", "-300", "Alimentação", "Santander"),
			rec(20, "Padaria", "-20", "Alimentação", "Nubank"),
		},
	})
	root.SetContainer(c)
	t.Cleanup(func() { root.SetContainer(nil) })
}

func TestSummaryCommand_Flags(t *testing.T) {
	format := summary.Cmd.Flags().Lookup("format")
	require.NotNil(t, format)
	assert.Equal(t, "f", format.Shorthand)
	assert.Equal(t, "text", format.DefValue)
	assert.NotNil(t, summary.Cmd.Flags().Lookup("from"))
	assert.NotNil(t, summary.Cmd.Flags().Lookup("category"))
	assert.NotNil(t, summary.Cmd.Flags().Lookup("month"))
}

func TestSummaryCommand_JSON(t *testing.T) {
	setup(t)

	out, err := execute("--format", "json", "--to", "2024-09-10")
	require.NoError(t, err)

	var got struct {
		Count int `json:"count"`
		KPIs  struct {
			Income       decimal.Decimal `json:"income"`
			RealExpenses decimal.Decimal `json:"real_expenses"`
			PctSalary    decimal.Decimal `json:"pct_salary"`
		} `json:"kpis"`
		ByCategory []struct {
			Category string          `json:"category"`
			Total    decimal.Decimal `json:"total"`
		} `json:"by_category"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, 3, got.Count)
	assert.True(t, decimal.RequireFromString("4000").Equal(got.KPIs.Income))
	assert.True(t, decimal.RequireFromString("-400").Equal(got.KPIs.RealExpenses))
	assert.True(t, decimal.RequireFromString("10").Equal(got.KPIs.PctSalary))
	require.Len(t, got.ByCategory, 2)
	assert.Equal(t, "Alimentação", got.ByCategory[0].Category)
	assert.True(t, decimal.RequireFromString("300").Equal(got.ByCategory[0].Total))
}

func TestSummaryCommand_Month(t *testing.T) {
	setup(t)

	countOf := func(out string) int {
		var got struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &got))
		return got.Count
	}

	out, err := execute("--format", "json", "--month", "2024-09")
	require.NoError(t, err)
	assert.Equal(t, 4, countOf(out))

	out, err = execute("--format", "json", "-m", "2024-10")
	require.NoError(t, err)
	assert.Equal(t, 0, countOf(out))

	_, err = execute("--month", "2024-09", "--to", "2024-09-10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be combined")
}

func TestSummaryCommand_Text(t *testing.T) {
	setup(t)

	out, err := execute("--source", "Nubank")
	require.NoError(t, err)
	assert.Contains(t, out, "Indicadores")
	assert.Contains(t, out, "Lazer")
	assert.Contains(t, out, "2 transações")
}

func TestSummaryCommand_BadFormat(t *testing.T) {
	setup(t)

	_, err := execute("--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported report format")
}
