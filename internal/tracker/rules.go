package tracker

import (
	"fmt"
	"sort"
	"strings"

	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/textutils"
	"fjacquet/fintrack/internal/validation"

	"github.com/agnivade/levenshtein"
)

// Rules returns the stored keyword rules.
func (s *Service) Rules() (models.Rules, error) {
	rules, err := s.rules.LoadRules()
	if err != nil {
		return nil, fmt.Errorf("error loading rules: %w", err)
	}
	return rules, nil
}

// AddRule stores keyword, lowercased and trimmed, with category and reloads
// the categorizer. An existing rule for the same keyword is replaced.
func (s *Service) AddRule(keyword, category string) error {
	key := models.RuleKey(keyword)
	if key == "" {
		return &validation.ValidationError{Field: "keyword", Reason: "keyword is required"}
	}
	category = strings.TrimSpace(category)
	if category == "" {
		return &validation.ValidationError{Field: "category", Reason: "category is required"}
	}

	rules, err := s.Rules()
	if err != nil {
		return err
	}
	rules[key] = category
	if err := s.saveRules(rules); err != nil {
		return err
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldKeyword, Value: key},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Info("Added rule")
	return nil
}

// RemoveRule deletes the rule for keyword and reports whether it existed.
func (s *Service) RemoveRule(keyword string) (bool, error) {
	key := models.RuleKey(keyword)
	rules, err := s.Rules()
	if err != nil {
		return false, err
	}
	if _, ok := rules[key]; !ok {
		return false, nil
	}
	delete(rules, key)
	if err := s.saveRules(rules); err != nil {
		return false, err
	}

	s.logger.WithField(logging.FieldKeyword, key).Info("Removed rule")
	return true, nil
}

func (s *Service) saveRules(rules models.Rules) error {
	if err := s.rules.SaveRules(rules); err != nil {
		return fmt.Errorf("error saving rules: %w", err)
	}
	if err := s.categorizer.ReloadRules(); err != nil {
		return err
	}
	return nil
}

// Categories returns the category registry sorted by name.
func (s *Service) Categories() ([]models.CategoryConfig, error) {
	categories, err := s.rules.LoadCategories()
	if err != nil {
		return nil, fmt.Errorf("error loading categories: %w", err)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// AddCategory adds c to the registry, replacing an entry of the same name.
func (s *Service) AddCategory(c models.CategoryConfig) error {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return &validation.ValidationError{Field: "name", Reason: "category name is required"}
	}

	categories, err := s.Categories()
	if err != nil {
		return err
	}
	replaced := false
	for i := range categories {
		if categories[i].Name == c.Name {
			categories[i] = c
			replaced = true
		}
	}
	if !replaced {
		categories = append(categories, c)
	}

	if err := s.rules.SaveCategories(categories); err != nil {
		return fmt.Errorf("error saving categories: %w", err)
	}
	s.logger.WithField(logging.FieldCategory, c.Name).Info("Saved category")
	return nil
}

// RemoveCategory deletes name from the registry and reports whether it
// existed. Rules pointing at it are left alone.
func (s *Service) RemoveCategory(name string) (bool, error) {
	categories, err := s.Categories()
	if err != nil {
		return false, err
	}
	kept := categories[:0]
	for _, c := range categories {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(categories) {
		return false, nil
	}

	if err := s.rules.SaveCategories(kept); err != nil {
		return false, fmt.Errorf("error saving categories: %w", err)
	}
	s.logger.WithField(logging.FieldCategory, name).Info("Removed category")
	return true, nil
}

// RealExpenseCategories returns the registry entries flagged as real
// expenses.
func (s *Service) RealExpenseCategories() (models.CategorySet, error) {
	categories, err := s.Categories()
	if err != nil {
		return nil, err
	}
	set := models.NewCategorySet()
	for _, c := range categories {
		if c.RealExpense {
			set[c.Name] = struct{}{}
		}
	}
	return set, nil
}

// maxSuggestionDistance bounds how far a typo may be from a known category.
const maxSuggestionDistance = 3

// SuggestCategory returns the registry entry closest to name when name
// itself is not registered. ok is false when name is registered or nothing
// is close enough.
func (s *Service) SuggestCategory(name string) (suggestion string, ok bool, err error) {
	categories, err := s.Categories()
	if err != nil {
		return "", false, err
	}

	target := textutils.Normalize(name)
	best := maxSuggestionDistance + 1
	for _, c := range categories {
		normalized := textutils.Normalize(c.Name)
		if normalized == target {
			return "", false, nil
		}
		if dist := levenshtein.ComputeDistance(target, normalized); dist < best {
			best = dist
			suggestion = c.Name
		}
	}
	return suggestion, suggestion != "", nil
}
