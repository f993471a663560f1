package models

import "strings"

// categories is the fixed registry of valid expense categories.
// The declared order is the output order of every report's cost breakdown,
// so it must stay stable.
var categories = []string{
	"food",
	"health",
	"housing",
	"sport",
	"education",
	"transportation",
	"other",
}

// Categories returns the registered expense categories in their fixed order.
// The returned slice is a copy; callers may not mutate the registry.
func Categories() []string {
	out := make([]string, len(categories))
	copy(out, categories)
	return out
}

// NormalizeCategory maps raw user input to its canonical registry form:
// surrounding whitespace removed, lower-cased.
func NormalizeCategory(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// IsRegisteredCategory reports whether category (already normalized)
// is a member of the registry.
func IsRegisteredCategory(category string) bool {
	for _, c := range categories {
		if c == category {
			return true
		}
	}
	return false
}
