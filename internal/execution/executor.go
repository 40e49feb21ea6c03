package execution

import (
	"time"

	"pyfort/internal/domain"
	"pyfort/internal/ui"
)

// Executor executes tests and returns results
type Executor interface {
	Execute(tests []domain.Test) ([]domain.TestResult, time.Duration, error)
	ExecuteWithOptions(tests []domain.Test, failFast bool) ([]domain.TestResult, time.Duration, error)
	SetProgress(progress *ui.ProgressBar)
}
