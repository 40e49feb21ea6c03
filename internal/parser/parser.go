package parser

import "pyfort/internal/domain"

// Parser extracts structured information from interpreter test output
type Parser interface {
	ParseTestCounts(result domain.TestResult) (passed, failed int)
	ParseFailure(result domain.TestResult) []domain.TestFailure
}
