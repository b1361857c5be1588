package container

import (
	"context"
	"path/filepath"
	"testing"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	c := &config.Config{}
	c.Log.Level = "info"
	c.Log.Format = "text"
	c.CSV.Delimiter = ";"
	c.Data.Directory = t.TempDir()
	c.Data.Backend = backend
	c.Data.LedgerFile = "ledger.csv"
	c.Data.SQLiteFile = "ledger.db"
	c.Rules.File = "rules.yaml"
	c.Classification.FallbackCategory = models.CategoryOther
	c.Sync.DefaultDays = 30
	return c
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      func(*testing.T) *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "csv backend",
			config: func(t *testing.T) *config.Config { return testConfig(t, config.BackendCSV) },
		},
		{
			name:   "sqlite backend",
			config: func(t *testing.T) *config.Config { return testConfig(t, config.BackendSQLite) },
		},
		{
			name:        "unknown backend",
			config:      func(t *testing.T) *config.Config { return testConfig(t, "mongo") },
			expectError: true,
			errorMsg:    "unknown ledger backend",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(tt.config(t))
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, c)
			t.Cleanup(func() { assert.NoError(t, c.Close()) })

			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetConfig())
			assert.NotNil(t, c.GetCategorizer())
			assert.NotNil(t, c.GetRuleStore())
			assert.NotNil(t, c.GetLedgerStore())
			assert.NotNil(t, c.GetService())
			assert.Nil(t, c.GetSource())
		})
	}
}

func TestNewContainer_UnknownBackendIsTyped(t *testing.T) {
	_, err := NewContainerWithLogger(testConfig(t, "postgres"), logging.NewMockLogger())
	assert.ErrorIs(t, err, validation.ErrUnknownBackend)
}

func TestContainer_BackendSelection(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(t, config.BackendSQLite), logging.NewMockLogger())
	require.NoError(t, err)
	defer c.Close()

	_, ok := c.GetLedgerStore().(*store.SQLiteLedgerStore)
	assert.True(t, ok)

	csvCfg := testConfig(t, config.BackendCSV)
	c2, err := NewContainerWithLogger(csvCfg, logging.NewMockLogger())
	require.NoError(t, err)
	defer c2.Close()

	csvStore, ok := c2.GetLedgerStore().(*store.CSVLedgerStore)
	require.True(t, ok)
	assert.Equal(t, ';', csvStore.Delimiter)
	assert.Equal(t, filepath.Join(csvCfg.Data.Directory, "ledger.csv"), csvStore.Path)
}

func TestContainer_SyncSourceWiredFromItems(t *testing.T) {
	cfg := testConfig(t, config.BackendCSV)
	cfg.Sync.NubankItemID = "item-nu"
	cfg.Sync.Directory = t.TempDir()

	c, err := NewContainerWithLogger(cfg, logging.NewMockLogger())
	require.NoError(t, err)
	defer c.Close()
	require.NotNil(t, c.GetSource())
}

func TestContainer_ServiceRoundTrip(t *testing.T) {
	c, err := NewContainerWithLogger(testConfig(t, config.BackendSQLite), logging.NewMockLogger())
	require.NoError(t, err)
	defer c.Close()

	svc := c.GetService()
	require.NoError(t, svc.AddRule("Padaria", "Alimentação"))

	category, ok := svc.Classify("PADARIA DO ZE", false)
	require.True(t, ok)
	assert.Equal(t, "Alimentação", category)

	ledger, err := svc.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, ledger)
}
