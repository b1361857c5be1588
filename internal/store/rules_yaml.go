package store

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"fjacquet/fintrack/internal/fileutils"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"

	"gopkg.in/yaml.v3"
)

// rulesDocument is the on-disk layout of the rules file:
//
//	categories:
//	  Alimentação: {icon: "🍽️", real_expense: true}
//	rules:
//	  ifood: Alimentação
type rulesDocument struct {
	Categories map[string]models.CategoryConfig `yaml:"categories"`
	Rules      map[string]string                `yaml:"rules"`
}

// YAMLRuleStore keeps rules and categories together in one YAML file. A
// missing file reads as empty; saving creates it.
type YAMLRuleStore struct {
	Path   string
	logger logging.Logger
}

// NewYAMLRuleStore creates a store for the given path.
func NewYAMLRuleStore(path string, logger logging.Logger) *YAMLRuleStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &YAMLRuleStore{Path: path, logger: logger}
}

func (s *YAMLRuleStore) filename() string {
	if s.Path == "" {
		return "rules.yaml"
	}
	return s.Path
}

// resolve returns the file to read, or os.ErrNotExist.
func (s *YAMLRuleStore) resolve() (string, error) {
	return FindConfigFile(s.filename())
}

func (s *YAMLRuleStore) read() (rulesDocument, string, error) {
	doc := rulesDocument{}

	path, err := s.resolve()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.WithField(logging.FieldFile, s.filename()).Warn("Rules file not found")
			return doc, s.filename(), nil
		}
		return doc, "", fmt.Errorf("error resolving rules file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return doc, "", fmt.Errorf("error reading rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return doc, "", fmt.Errorf("error parsing rules file %s: %w", path, err)
	}
	return doc, path, nil
}

func (s *YAMLRuleStore) write(path string, doc rulesDocument) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("error marshaling rules file: %w", err)
	}
	if err := fileutils.WriteFileAtomic(path, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing rules file: %w", err)
	}
	return nil
}

// LoadRules loads the keyword rules.
func (s *YAMLRuleStore) LoadRules() (models.Rules, error) {
	doc, path, err := s.read()
	if err != nil {
		return nil, err
	}
	rules := make(models.Rules, len(doc.Rules))
	for k, v := range doc.Rules {
		rules[k] = v
	}
	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
		logging.Field{Key: logging.FieldFile, Value: path},
	).Debug("Loaded rules")
	return rules, nil
}

// SaveRules replaces the keyword rules, keeping the categories section.
func (s *YAMLRuleStore) SaveRules(rules models.Rules) error {
	doc, path, err := s.read()
	if err != nil {
		return err
	}
	doc.Rules = map[string]string(rules.Clone())
	if err := s.write(path, doc); err != nil {
		return err
	}
	s.logger.WithFields(
		logging.Field{Key: logging.FieldCount, Value: len(rules)},
		logging.Field{Key: logging.FieldFile, Value: path},
	).Debug("Saved rules")
	return nil
}

// LoadCategories loads the category registry sorted by name.
func (s *YAMLRuleStore) LoadCategories() ([]models.CategoryConfig, error) {
	doc, _, err := s.read()
	if err != nil {
		return nil, err
	}
	categories := make([]models.CategoryConfig, 0, len(doc.Categories))
	for name, c := range doc.Categories {
		c.Name = name
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// SaveCategories replaces the category registry, keeping the rules section.
func (s *YAMLRuleStore) SaveCategories(categories []models.CategoryConfig) error {
	doc, path, err := s.read()
	if err != nil {
		return err
	}
	doc.Categories = make(map[string]models.CategoryConfig, len(categories))
	for _, c := range categories {
		doc.Categories[c.Name] = c
	}
	if err := s.write(path, doc); err != nil {
		return err
	}
	s.logger.WithField(logging.FieldCount, len(categories)).Debug("Saved categories")
	return nil
}
