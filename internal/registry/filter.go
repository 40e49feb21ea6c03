package registry

import (
	"path/filepath"
	"strings"

	"pyfort/internal/domain"
)

// Filter filters resolved tests by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName filters tests by name pattern using wildcard matching.
// Supports patterns like "elk_bands*" or "*transport*".
func (f *Filter) FilterByName(tests []domain.Test, pattern string) []domain.Test {
	if pattern == "" {
		return tests
	}

	var filtered []domain.Test

	for _, test := range tests {
		name := test.Name

		matched, err := filepath.Match(pattern, name)
		if err == nil && matched {
			filtered = append(filtered, test)
			continue
		}

		// filepath.Match is anchored, so "*transport*" style patterns fall
		// back to matching each non-wildcard part as a substring
		if strings.Contains(pattern, "*") {
			parts := strings.Split(pattern, "*")
			allMatch := true
			hasPart := false
			for _, part := range parts {
				if part == "" {
					continue
				}
				hasPart = true
				if !strings.Contains(name, part) {
					allMatch = false
					break
				}
			}
			if hasPart && allMatch {
				filtered = append(filtered, test)
			}
			continue
		}

		// No wildcards: simple contains check
		if !strings.Contains(pattern, "?") && strings.Contains(name, pattern) {
			filtered = append(filtered, test)
		}
	}

	return filtered
}
