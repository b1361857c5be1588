package export_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/fintrack/cmd/export"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/container/containertest"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	cmd := export.NewCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func setup(t *testing.T) {
	t.Helper()
	day := time.Date(2024, 10, 4, 0, 0, 0, 0, time.UTC)
	c, _ := containertest.New(t, containertest.Options{
		Ledger: []models.Transaction{
			models.NewTransaction(day, "Padaria", decimal.RequireFromString("-12.5"), "Alimentação", "Nubank", "n1"),
			models.NewTransaction(day, "Cinema", decimal.RequireFromString("-40"), "Lazer", "Santander", "s1"),
		},
	})
	root.SetContainer(c)
	t.Cleanup(func() { root.SetContainer(nil) })
}

func TestExportCommand_Stdout(t *testing.T) {
	setup(t)

	out, err := execute("--category", "Alimentação")
	require.NoError(t, err)
	assert.Contains(t, out, "Date,Description,Amount,Type,Category,Source")
	assert.Contains(t, out, "Padaria")
	assert.NotContains(t, out, "Cinema")
	assert.NotContains(t, out, "n1")
}

func TestExportCommand_File(t *testing.T) {
	setup(t)
	path := filepath.Join(t.TempDir(), "out", "export.csv")

	out, err := execute("--output", path, "--delimiter", ";")
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Date;Description;Amount;Type;Category;Source")
	assert.Contains(t, string(data), "Cinema")
}

func TestExportCommand_BadDelimiter(t *testing.T) {
	setup(t)

	_, err := execute("--delimiter", ";;")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "single character")
}
