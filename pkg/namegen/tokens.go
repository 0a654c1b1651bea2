package namegen

import (
	"sort"
	"time"
)

// dateTokens maps reserved variable names to their formatters. The table is
// built once at init and never mutated afterwards; date segments resolve
// here before bindings are consulted.
var dateTokens = map[string]func(time.Time) string{
	"YYYY": func(t time.Time) string { return t.Format("2006") },
	"YY":   func(t time.Time) string { return t.Format("06") },
	"MM":   func(t time.Time) string { return t.Format("01") },
	"MMM":  func(t time.Time) string { return t.Format("Jan") },
	"DD":   func(t time.Time) string { return t.Format("02") },
}

// IsDateToken reports whether name is a reserved date token.
func IsDateToken(name string) bool {
	_, ok := dateTokens[name]
	return ok
}

// DateTokens returns the reserved date token names in sorted order.
func DateTokens() []string {
	names := make([]string, 0, len(dateTokens))
	for name := range dateTokens {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
