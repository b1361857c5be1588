package reclassify_test

import (
	"bytes"
	"testing"
	"time"

	"fjacquet/fintrack/cmd/reclassify"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/container/containertest"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tx(description, amount, category string) models.Transaction {
	return models.NewTransaction(time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), description, decimal.RequireFromString(amount), category, "Nubank", "")
}

func TestReclassifyCommand_Metadata(t *testing.T) {
	assert.Equal(t, "reclassify", reclassify.Cmd.Use)
	assert.NotEmpty(t, reclassify.Cmd.Short)
	assert.NotNil(t, reclassify.Cmd.RunE)
}

func TestReclassifyCommand_Run(t *testing.T) {
	c, _ := containertest.New(t, containertest.Options{
		Rules: "rules:\n  ifood: Alimentação\n",
		Ledger: []models.Transaction{
			tx("IFOOD lanche", "-30", models.CategoryOther),
			tx("Transferencia ifood", "-100", models.CategoryPersonalTransfer),
			tx("Padaria", "-12", "Lazer"),
		},
	})
	root.SetContainer(c)
	t.Cleanup(func() { root.SetContainer(nil) })

	cmd := reclassify.NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, "3 transações analisadas, 1 alteradas (0 exatas, 1 por palavra-chave, 1 protegidas)\n", out.String())

	stored := containertest.Stored(t, c)
	require.Len(t, stored, 3)
	assert.Equal(t, "Alimentação", stored[0].Category)
	assert.Equal(t, models.CategoryPersonalTransfer, stored[1].Category)
	assert.Equal(t, "Lazer", stored[2].Category)
}
