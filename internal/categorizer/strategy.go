package categorizer

import (
	"context"
)

// Match describes a successful categorization.
type Match struct {
	Category string
	Keyword  string // rule keyword that matched, as authored
	Strategy string
}

// CategorizationStrategy defines a method for categorizing a transaction
// description. Strategies are tried in order until one matches.
type CategorizationStrategy interface {
	// Categorize returns the match, whether one was found, and any error
	// encountered (for instance a cancelled context).
	Categorize(ctx context.Context, description string) (Match, bool, error)

	// Name returns the name of this strategy for logging and debugging purposes.
	Name() string
}
