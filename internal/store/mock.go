package store

import (
	"context"
	"sync"

	"fjacquet/fintrack/internal/models"
)

// MockRuleStore is an in-memory RuleStore for testing.
type MockRuleStore struct {
	Rules      models.Rules
	Categories []models.CategoryConfig

	// Error flags for testing error conditions
	LoadRulesError      error
	SaveRulesError      error
	LoadCategoriesError error
	SaveCategoriesError error

	SaveRulesCalls int
}

// LoadRules returns a copy of the mock rules.
func (m *MockRuleStore) LoadRules() (models.Rules, error) {
	if m.LoadRulesError != nil {
		return nil, m.LoadRulesError
	}
	if m.Rules == nil {
		return models.Rules{}, nil
	}
	return m.Rules.Clone(), nil
}

// SaveRules replaces the mock rules.
func (m *MockRuleStore) SaveRules(rules models.Rules) error {
	if m.SaveRulesError != nil {
		return m.SaveRulesError
	}
	m.SaveRulesCalls++
	m.Rules = rules.Clone()
	return nil
}

// LoadCategories returns a copy of the mock categories.
func (m *MockRuleStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	out := make([]models.CategoryConfig, len(m.Categories))
	copy(out, m.Categories)
	return out, nil
}

// SaveCategories replaces the mock categories.
func (m *MockRuleStore) SaveCategories(categories []models.CategoryConfig) error {
	if m.SaveCategoriesError != nil {
		return m.SaveCategoriesError
	}
	m.Categories = make([]models.CategoryConfig, len(categories))
	copy(m.Categories, categories)
	return nil
}

// MockLedgerStore is an in-memory LedgerStore for testing. It also records
// sync runs.
type MockLedgerStore struct {
	mu sync.Mutex

	Ledger  []models.Transaction
	Runs    []SyncRun
	Saves   int
	LoadErr error
	SaveErr error
}

// Load returns a copy of the stored ledger.
func (m *MockLedgerStore) Load(ctx context.Context) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	out := make([]models.Transaction, len(m.Ledger))
	copy(out, m.Ledger)
	return out, nil
}

// Save replaces the stored ledger.
func (m *MockLedgerStore) Save(ctx context.Context, ledger []models.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Saves++
	m.Ledger = make([]models.Transaction, len(ledger))
	copy(m.Ledger, ledger)
	return nil
}

// RecordSyncRun appends run to Runs.
func (m *MockLedgerStore) RecordSyncRun(ctx context.Context, run SyncRun) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Runs = append(m.Runs, run)
	return nil
}

// SyncRuns returns a copy of Runs.
func (m *MockLedgerStore) SyncRuns(ctx context.Context) ([]SyncRun, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]SyncRun, len(m.Runs))
	copy(out, m.Runs)
	return out, nil
}
