package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLiteStore(t *testing.T) *SQLiteLedgerStore {
	t.Helper()
	s, err := NewSQLiteLedgerStore(filepath.Join(t.TempDir(), "db", "ledger.db"), logging.NewMockLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSQLiteLedgerStore_RoundTrip(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	empty, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, s.Save(ctx, sampleLedger()))
	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	assert.Equal(t, "IFOOD *Restaurante", loaded[0].Description)
	assert.True(t, decimal.RequireFromString("-42.5").Equal(loaded[0].Amount))
	assert.Equal(t, models.TypeOutflow, loaded[0].Type)
	assert.Equal(t, "tx-1", loaded[0].ExternalID)
	assert.Equal(t, "", loaded[1].ExternalID)
	assert.Equal(t, "2025-03-05", loaded[1].Day())
}

func TestSQLiteLedgerStore_SaveReplacesSnapshot(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleLedger()))
	require.NoError(t, s.Save(ctx, sampleLedger()[1:]))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "Salário, março", loaded[0].Description)
}

func TestSQLiteLedgerStore_KeepsOrder(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	ledger := sampleLedger()
	reversed := []models.Transaction{ledger[1], ledger[0]}
	require.NoError(t, s.Save(ctx, reversed))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Salário, março", loaded[0].Description)
	assert.Equal(t, "IFOOD *Restaurante", loaded[1].Description)
}

func TestSQLiteLedgerStore_DuplicateExternalIDRollsBack(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()
	require.NoError(t, s.Save(ctx, sampleLedger()))

	dup := sampleLedger()
	dup[1].ExternalID = "tx-1"
	assert.Error(t, s.Save(ctx, dup))

	loaded, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
	assert.Equal(t, "", loaded[1].ExternalID)
}

func TestSQLiteLedgerStore_SyncRuns(t *testing.T) {
	s := newTestSQLiteStore(t)
	ctx := context.Background()

	run := SyncRun{
		RunID:        "run-1",
		StartedAt:    time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC),
		From:         time.Date(2025, 2, 8, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Fetched:      12,
		Added:        5,
		Deduplicated: 1,
	}
	require.NoError(t, s.RecordSyncRun(ctx, run))

	runs, err := s.SyncRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, run.RunID, runs[0].RunID)
	assert.True(t, run.StartedAt.Equal(runs[0].StartedAt))
	assert.True(t, run.From.Equal(runs[0].From))
	assert.Equal(t, 5, runs[0].Added)

	second := run
	second.RunID = "a-run-2"
	second.From = time.Time{}
	require.NoError(t, s.RecordSyncRun(ctx, second))

	runs, err = s.SyncRuns(ctx)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "run-1", runs[0].RunID)
	assert.Equal(t, "a-run-2", runs[1].RunID)
	assert.True(t, runs[1].From.IsZero())
}

func TestRunMigrations_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")
	require.NoError(t, RunMigrations(path))
	require.NoError(t, RunMigrations(path))
}
