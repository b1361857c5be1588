// Package containertest builds containers over temporary data directories
// for command and integration tests.
package containertest

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/container"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/stretchr/testify/require"
)

// Options describes the data a test container starts with.
type Options struct {
	Backend   string
	Rules     string // rules.yaml content, no file when empty
	Ledger    []models.Transaction
	Exports   map[string]string // export file name to JSON content
	SyncItems map[string]string
}

// Config returns a valid configuration rooted at a new temporary directory.
func Config(t testing.TB, backend string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.CSV.Delimiter = ","
	cfg.Data.Directory = t.TempDir()
	cfg.Data.Backend = backend
	cfg.Data.LedgerFile = "ledger.csv"
	cfg.Data.SQLiteFile = "ledger.db"
	cfg.Rules.File = "rules.yaml"
	cfg.Classification.FallbackCategory = models.CategoryOther
	cfg.Sync.Directory = filepath.Join(cfg.Data.Directory, "exports")
	cfg.Sync.DefaultDays = 30
	return cfg
}

// New builds a container from opts and closes it when the test ends.
func New(t testing.TB, opts Options) (*container.Container, *logging.MockLogger) {
	t.Helper()
	backend := opts.Backend
	if backend == "" {
		backend = config.BackendCSV
	}
	cfg := Config(t, backend)
	cfg.Sync.Items = opts.SyncItems

	if opts.Rules != "" {
		require.NoError(t, os.WriteFile(cfg.RulesPath(), []byte(opts.Rules), 0600))
	}
	if len(opts.Exports) > 0 {
		require.NoError(t, os.MkdirAll(cfg.Sync.Directory, 0750))
		for name, content := range opts.Exports {
			require.NoError(t, os.WriteFile(filepath.Join(cfg.Sync.Directory, name), []byte(content), 0600))
		}
	}

	logger := logging.NewMockLogger()
	c, err := container.NewContainerWithLogger(cfg, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	if opts.Ledger != nil {
		require.NoError(t, c.GetLedgerStore().Save(context.Background(), opts.Ledger))
	}
	return c, logger
}

// Stored returns the ledger as currently persisted.
func Stored(t testing.TB, c *container.Container) []models.Transaction {
	t.Helper()
	l, err := c.GetLedgerStore().Load(context.Background())
	require.NoError(t, err)
	return l
}
