package ui

import "pyfort/internal/domain"

// Viewer displays a set of test failures
type Viewer interface {
	View(results *domain.TestResultsOutput) error
}
