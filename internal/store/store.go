// Package store provides functionality for storing and retrieving application
// data: the rule and category file, and the ledger in CSV or SQLite form.
package store

import (
	"context"
	"os"
	"path/filepath"

	"fjacquet/fintrack/internal/models"
)

// RuleStore persists the keyword rules and the category registry.
type RuleStore interface {
	LoadRules() (models.Rules, error)
	SaveRules(rules models.Rules) error
	LoadCategories() ([]models.CategoryConfig, error)
	SaveCategories(categories []models.CategoryConfig) error
}

// LedgerStore persists the ledger as a whole snapshot.
type LedgerStore interface {
	Load(ctx context.Context) ([]models.Transaction, error)
	Save(ctx context.Context, ledger []models.Transaction) error
}

// FindConfigFile looks for a configuration file in standard locations:
// the path itself, ./config, ./database and $HOME/.fintrack.
func FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	base := filepath.Base(filename)
	locations := []string{
		filename,
		filepath.Join("config", base),
		filepath.Join("database", base),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".fintrack", base))
	}

	for _, location := range locations {
		if info, err := os.Stat(location); err == nil && !info.IsDir() {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}
