package registry

import (
	"fmt"
	"os"
	"regexp"
	"sort"
)

// Parser parses test scripts to extract test cases
type Parser struct{}

// NewParser creates a new Parser
func NewParser() *Parser {
	return &Parser{}
}

var (
	// def test_xxx(self): and module-level def test_xxx():
	testDefPattern = regexp.MustCompile(`(?m)^\s*def\s+(test\w*)\s*\(`)
	// converter scripts without unittest classes run top-level assertions;
	// h5diff-style calls compare against a reference archive
	compareCallPattern = regexp.MustCompile(`(?m)^\s*(?:h5diff|assert_\w+|compare)\s*\(`)
)

// FindTestCases finds all test cases in a test script. Scripts with unittest
// methods report each method; plain converter scripts that only run top-level
// comparisons report a single case named after the comparison.
func (p *Parser) FindTestCases(scriptPath string) ([]string, error) {
	content, err := os.ReadFile(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", scriptPath, err)
	}

	seen := make(map[string]bool)
	for _, match := range testDefPattern.FindAllStringSubmatch(string(content), -1) {
		if len(match) > 1 {
			seen[match[1]] = true
		}
	}

	var cases []string
	for c := range seen {
		cases = append(cases, c)
	}
	sort.Strings(cases)

	if len(cases) == 0 && compareCallPattern.Match(content) {
		cases = append(cases, "reference comparison")
	}

	return cases, nil
}
