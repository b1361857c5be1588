// Package container provides dependency injection for the fintrack
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/fintrack/internal/banking"
	"fjacquet/fintrack/internal/categorizer"
	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/tracker"
	"fjacquet/fintrack/internal/validation"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	rules       store.RuleStore
	ledger      store.LedgerStore
	source      banking.Source
	categorizer *categorizer.Categorizer
	service     *tracker.Service

	// closer releases the ledger backend, if it holds resources
	closer func() error
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, config.NewLogger(cfg))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		logger = logging.GetLogger()
	}

	rules := store.NewYAMLRuleStore(cfg.RulesPath(), logger)

	var (
		ledgerStore store.LedgerStore
		closer      func() error
	)
	switch cfg.Data.Backend {
	case config.BackendCSV, "":
		ledgerStore = store.NewCSVLedgerStore(cfg.LedgerPath(), cfg.DelimiterRune(), logger)
	case config.BackendSQLite:
		sqliteStore, err := store.NewSQLiteLedgerStore(cfg.SQLitePath(), logger)
		if err != nil {
			return nil, fmt.Errorf("error opening SQLite ledger: %w", err)
		}
		ledgerStore = sqliteStore
		closer = sqliteStore.Close
	default:
		return nil, fmt.Errorf("%w: %s", validation.ErrUnknownBackend, cfg.Data.Backend)
	}

	cat := categorizer.NewCategorizer(rules, cfg.Classification.FallbackCategory, logger)

	var source banking.Source
	if items := cfg.SyncItems(); len(items) > 0 {
		source = banking.NewFileSource(cfg.Sync.Directory, items, cfg.Sync.DefaultDays, logger)
	}

	service := tracker.NewService(rules, ledgerStore, source, cat, tracker.Options{
		Skip:     cfg.SkipSet(),
		Internal: cfg.InternalSet(),
	}, logger)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldBackend, Value: cfg.Data.Backend},
		logging.Field{Key: "rules", Value: cat.Index().Len()},
		logging.Field{Key: "sync_enabled", Value: source != nil})

	return &Container{
		logger:      logger,
		config:      cfg,
		rules:       rules,
		ledger:      ledgerStore,
		source:      source,
		categorizer: cat,
		service:     service,
		closer:      closer,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetCategorizer returns the container's categorizer instance.
func (c *Container) GetCategorizer() *categorizer.Categorizer {
	return c.categorizer
}

// GetRuleStore returns the rule and category store.
func (c *Container) GetRuleStore() store.RuleStore {
	return c.rules
}

// GetLedgerStore returns the ledger store of the configured backend.
func (c *Container) GetLedgerStore() store.LedgerStore {
	return c.ledger
}

// GetSource returns the banking source, or nil when no sync item is
// configured.
func (c *Container) GetSource() banking.Source {
	return c.source
}

// GetService returns the ledger service.
func (c *Container) GetService() *tracker.Service {
	return c.service
}

// Close releases the ledger backend.
func (c *Container) Close() error {
	if c.closer != nil {
		if err := c.closer(); err != nil {
			return fmt.Errorf("error closing ledger store: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}
