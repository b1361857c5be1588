package tracker

import (
	"errors"
	"testing"

	"fjacquet/fintrack/internal/models"
	"fjacquet/fintrack/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_AddAndRemoveRule(t *testing.T) {
	f := newFixture(t, models.Rules{}, nil, nil)

	_, ok := f.svc.Classify("Uber *Trip", false)
	require.False(t, ok)

	require.NoError(t, f.svc.AddRule("  UBER ", "Transporte"))
	assert.Equal(t, models.Rules{"uber": "Transporte"}, f.rules.Rules)

	category, ok := f.svc.Classify("Uber *Trip", false)
	require.True(t, ok)
	assert.Equal(t, "Transporte", category)

	removed, err := f.svc.RemoveRule("Uber")
	require.NoError(t, err)
	assert.True(t, removed)
	_, ok = f.svc.Classify("Uber *Trip", false)
	assert.False(t, ok)

	removed, err = f.svc.RemoveRule("uber")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestService_AddRuleValidation(t *testing.T) {
	f := newFixture(t, models.Rules{}, nil, nil)
	var vErr *validation.ValidationError

	assert.ErrorAs(t, f.svc.AddRule("  ", "Transporte"), &vErr)
	assert.Equal(t, "keyword", vErr.Field)
	assert.ErrorAs(t, f.svc.AddRule("uber", ""), &vErr)
	assert.Equal(t, "category", vErr.Field)

	f.rules.SaveRulesError = errors.New("read-only")
	assert.ErrorContains(t, f.svc.AddRule("uber", "Transporte"), "error saving rules")
}

func TestService_Categories(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	f.rules.Categories = []models.CategoryConfig{{Name: "Lazer", Icon: "🎉"}}

	require.NoError(t, f.svc.AddCategory(models.CategoryConfig{Name: "Alimentação", RealExpense: true}))
	require.NoError(t, f.svc.AddCategory(models.CategoryConfig{Name: "Lazer", Icon: "🎮", RealExpense: true}))

	categories, err := f.svc.Categories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Alimentação", categories[0].Name)
	assert.Equal(t, "🎮", categories[1].Icon)

	realSet, err := f.svc.RealExpenseCategories()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alimentação", "Lazer"}, realSet.Names())

	removed, err := f.svc.RemoveCategory("Lazer")
	require.NoError(t, err)
	assert.True(t, removed)
	removed, err = f.svc.RemoveCategory("Lazer")
	require.NoError(t, err)
	assert.False(t, removed)

	assert.Error(t, f.svc.AddCategory(models.CategoryConfig{Name: " "}))
}

func TestService_SuggestCategory(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	f.rules.Categories = []models.CategoryConfig{
		{Name: "Alimentação"},
		{Name: "Transporte"},
		{Name: "Lazer"},
	}

	tests := []struct {
		name       string
		input      string
		suggestion string
		ok         bool
	}{
		{"registered", "Transporte", "", false},
		{"registered without accents", "alimentacao", "", false},
		{"typo", "Transprte", "Transporte", true},
		{"accent variant", "Alimentaçao ", "", false},
		{"too far", "Investimentos", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			suggestion, ok, err := f.svc.SuggestCategory(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.suggestion, suggestion)
		})
	}
}
