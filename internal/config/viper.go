// Package config provides Viper-based hierarchical configuration management
package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Ledger backends.
const (
	BackendCSV    = "csv"
	BackendSQLite = "sqlite"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Data struct {
		Directory  string `mapstructure:"directory" yaml:"directory"`
		Backend    string `mapstructure:"backend" yaml:"backend"`
		LedgerFile string `mapstructure:"ledger_file" yaml:"ledger_file"`
		SQLiteFile string `mapstructure:"sqlite_file" yaml:"sqlite_file"`
	} `mapstructure:"data" yaml:"data"`

	Rules struct {
		File string `mapstructure:"file" yaml:"file"`
	} `mapstructure:"rules" yaml:"rules"`

	Classification struct {
		FallbackCategory   string   `mapstructure:"fallback_category" yaml:"fallback_category"`
		SkipCategories     []string `mapstructure:"skip_categories" yaml:"skip_categories"`
		InternalCategories []string `mapstructure:"internal_categories" yaml:"internal_categories"`
	} `mapstructure:"classification" yaml:"classification"`

	Sync struct {
		Directory       string            `mapstructure:"directory" yaml:"directory"`
		Items           map[string]string `mapstructure:"items" yaml:"items"`
		DefaultDays     int               `mapstructure:"default_days" yaml:"default_days"`
		NubankItemID    string            `mapstructure:"nubank_item_id" yaml:"-"`
		SantanderItemID string            `mapstructure:"santander_item_id" yaml:"-"`
	} `mapstructure:"sync" yaml:"sync"`
}

// InitializeConfig initializes Viper configuration with hierarchical loading
func InitializeConfig() (*Config, error) {
	return initializeConfig(viper.New())
}

func initializeConfig(v *viper.Viper) (*Config, error) {
	// 1. Set defaults
	setDefaults(v)

	// 2. Config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.fintrack")
	v.AddConfigPath(".fintrack")
	v.AddConfigPath(".")

	// 3. Environment variables
	v.SetEnvPrefix("FINTRACK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// 4. Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Printf("Warning: error reading config file %s: %v\n", v.ConfigFileUsed(), err)
		}
	}

	// 5. Aggregator item ids keep their historical, unprefixed names
	if err := v.BindEnv("sync.nubank_item_id", "PLUGGY_ITEM_ID_NUBANK"); err != nil {
		fmt.Printf("Warning: failed to bind PLUGGY_ITEM_ID_NUBANK environment variable: %v\n", err)
	}
	if err := v.BindEnv("sync.santander_item_id", "PLUGGY_ITEM_ID_SANTANDER"); err != nil {
		fmt.Printf("Warning: failed to bind PLUGGY_ITEM_ID_SANTANDER environment variable: %v\n", err)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// 6. Validate configuration
	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("data.directory", "")
	v.SetDefault("data.backend", BackendCSV)
	v.SetDefault("data.ledger_file", "ledger.csv")
	v.SetDefault("data.sqlite_file", "ledger.db")

	v.SetDefault("rules.file", "rules.yaml")

	v.SetDefault("classification.fallback_category", models.CategoryOther)
	v.SetDefault("classification.skip_categories", models.ReclassifySkipCategories)
	v.SetDefault("classification.internal_categories", models.CrossBankCategories.Names())

	v.SetDefault("sync.directory", "exports")
	v.SetDefault("sync.items", map[string]string{})
	v.SetDefault("sync.default_days", 30)
	v.SetDefault("sync.nubank_item_id", "")
	v.SetDefault("sync.santander_item_id", "")
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if err := validation.ValidateDelimiter(config.CSV.Delimiter); err != nil {
		return err
	}

	switch config.Data.Backend {
	case BackendCSV, BackendSQLite:
	default:
		return fmt.Errorf("%w: %s (must be 'csv' or 'sqlite')", validation.ErrUnknownBackend, config.Data.Backend)
	}

	if config.Sync.DefaultDays < 1 {
		return fmt.Errorf("sync.default_days must be at least 1, got: %d", config.Sync.DefaultDays)
	}

	if strings.TrimSpace(config.Classification.FallbackCategory) == "" {
		return fmt.Errorf("classification.fallback_category cannot be empty")
	}

	return nil
}

// ConfigureLoggingFromConfig configures logging based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}

// DelimiterRune returns the CSV delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// dataPath resolves name against the data directory unless it is absolute.
func (c *Config) dataPath(name string) string {
	if filepath.IsAbs(name) || c.Data.Directory == "" {
		return name
	}
	return filepath.Join(c.Data.Directory, name)
}

// LedgerPath returns the CSV ledger location.
func (c *Config) LedgerPath() string {
	return c.dataPath(c.Data.LedgerFile)
}

// SQLitePath returns the SQLite database location.
func (c *Config) SQLitePath() string {
	return c.dataPath(c.Data.SQLiteFile)
}

// RulesPath returns the rules file location.
func (c *Config) RulesPath() string {
	return c.dataPath(c.Rules.File)
}

// SyncItems returns the configured aggregator items, item id to bank name,
// including the per-institution ids.
func (c *Config) SyncItems() map[string]string {
	items := make(map[string]string, len(c.Sync.Items)+2)
	for id, bank := range c.Sync.Items {
		items[id] = bank
	}
	if id := strings.TrimSpace(c.Sync.NubankItemID); id != "" {
		items[id] = "Nubank"
	}
	if id := strings.TrimSpace(c.Sync.SantanderItemID); id != "" {
		items[id] = "Santander"
	}
	return items
}

// SkipSet returns the reclassification skip-set, normalized.
func (c *Config) SkipSet() models.CategorySet {
	if len(c.Classification.SkipCategories) == 0 {
		return models.DefaultReclassifySkip
	}
	return models.NewNormalizedCategorySet(c.Classification.SkipCategories...)
}

// InternalSet returns the categories treated as cross-bank movements.
func (c *Config) InternalSet() models.CategorySet {
	if len(c.Classification.InternalCategories) == 0 {
		return models.CrossBankCategories
	}
	return models.NewCategorySet(c.Classification.InternalCategories...)
}
