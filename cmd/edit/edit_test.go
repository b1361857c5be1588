package edit_test

import (
	"bytes"
	"testing"
	"time"

	"fjacquet/fintrack/cmd/edit"
	"fjacquet/fintrack/cmd/root"
	"fjacquet/fintrack/internal/container/containertest"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rulesFile = `categories:
  Alimentação: {icon: "🍽️", real_expense: true}
  Lazer: {icon: "🎬", real_expense: true}
`

func TestSetCategoryCommand_Run(t *testing.T) {
	day := time.Date(2024, 8, 3, 0, 0, 0, 0, time.UTC)
	c, _ := containertest.New(t, containertest.Options{
		Rules: rulesFile,
		Ledger: []models.Transaction{
			models.NewTransaction(day, "Cinema", decimal.RequireFromString("-40"), models.CategoryOther, "Nubank", ""),
		},
	})
	root.SetContainer(c)
	t.Cleanup(func() { root.SetContainer(nil) })

	tests := []struct {
		name     string
		category string
		wantWarn string
	}{
		{"registered category", "Lazer", ""},
		{"typo gets a suggestion", "Lazr", `você quis dizer "Lazer"?`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := edit.NewCommand()
			var out, errOut bytes.Buffer
			cmd.SetOut(&out)
			cmd.SetErr(&errOut)
			cmd.SetArgs([]string{"0", tt.category})
			require.NoError(t, cmd.Execute())

			assert.Equal(t, "Transação 0 agora em "+tt.category+"\n", out.String())
			if tt.wantWarn == "" {
				assert.Empty(t, errOut.String())
			} else {
				assert.Contains(t, errOut.String(), tt.wantWarn)
			}
			assert.Equal(t, tt.category, containertest.Stored(t, c)[0].Category)
		})
	}
}

func TestSetCategoryCommand_Args(t *testing.T) {
	cmd := edit.NewCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"0"})
	assert.Error(t, cmd.Execute())
}
