package models

import (
	"sort"

	"fjacquet/fintrack/internal/textutils"
)

// Category names with a fixed meaning in summaries and defaults.
const (
	CategoryOther            = "Outros"
	CategorySalary           = "Salário"
	CategoryInvestments      = "Investimentos"
	CategoryInvestment       = "Investimento"
	CategoryRedemption       = "Resgate Investimento"
	CategorySubscriptions    = "Assinatura/Digital"
	CategoryBill             = "Fatura"
	CategoryCardPayment      = "Pagamento Cartão"
	CategoryAccountTransfer  = "Transferência Entre Contas"
	CategoryPersonalTransfer = "Transferência Pessoal"
	CategoryYield            = "Rendimento"
)

// CategoryConfig is one entry of the category registry.
type CategoryConfig struct {
	Name        string `yaml:"-"`
	Icon        string `yaml:"icon"`
	RealExpense bool   `yaml:"real_expense"`
}

// CategorySet is a set of category names. Whether its members are stored
// raw or normalized depends on the constructor used.
type CategorySet map[string]struct{}

// NewCategorySet returns a set holding names exactly as given.
func NewCategorySet(names ...string) CategorySet {
	set := make(CategorySet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// NewNormalizedCategorySet returns a set holding the normalized form of names.
func NewNormalizedCategorySet(names ...string) CategorySet {
	set := make(CategorySet, len(names))
	for _, name := range names {
		set[textutils.Normalize(name)] = struct{}{}
	}
	return set
}

// Contains reports whether name is a member, compared verbatim.
func (s CategorySet) Contains(name string) bool {
	_, ok := s[name]
	return ok
}

// Len returns the number of members.
func (s CategorySet) Len() int {
	return len(s)
}

// Names returns the members in sorted order.
func (s CategorySet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ReclassifySkipCategories lists the internal-movement categories that bulk
// reclassification may only change through an exact rule.
var ReclassifySkipCategories = []string{
	CategoryPersonalTransfer,
	CategoryAccountTransfer,
	CategoryCardPayment,
	CategoryInvestment,
	CategoryInvestments,
	CategorySalary,
	CategoryYield,
	CategoryRedemption,
	CategoryBill,
}

// DefaultReclassifySkip is ReclassifySkipCategories, normalized.
var DefaultReclassifySkip = NewNormalizedCategorySet(ReclassifySkipCategories...)

// CrossBankCategories lists, as authored, the categories whose records can
// show up once per side of a movement between two of the user's accounts.
var CrossBankCategories = NewCategorySet(
	CategoryBill,
	CategoryCardPayment,
	CategoryAccountTransfer,
	CategoryInvestment,
	CategoryRedemption,
	CategoryInvestments,
)

// File permissions
const (
	PermissionConfigFile = 0600
	PermissionDirectory  = 0750
	PermissionDataFile   = 0644
)
