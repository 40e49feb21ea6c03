package execution

import (
	"context"
	"sync"
	"time"

	"pyfort/internal/config"
	"pyfort/internal/domain"
	"pyfort/internal/parser"
	"pyfort/internal/ui"
)

// WorkerPool manages a pool of workers for parallel test execution. Tests are
// independent processes; a failure never affects other tests unless fail-fast
// is requested.
type WorkerPool struct {
	config   *config.Config
	runner   *Runner
	parser   parser.Parser
	progress *ui.ProgressBar
}

// NewWorkerPool creates a new WorkerPool
func NewWorkerPool(cfg *config.Config, runner *Runner, outputParser parser.Parser) *WorkerPool {
	return &WorkerPool{
		config: cfg,
		runner: runner,
		parser: outputParser,
	}
}

// SetProgress sets the progress bar for the worker pool
func (wp *WorkerPool) SetProgress(progress *ui.ProgressBar) {
	wp.progress = progress
}

// Execute executes tests in parallel using the worker pool (no fail-fast).
func (wp *WorkerPool) Execute(tests []domain.Test) ([]domain.TestResult, time.Duration, error) {
	return wp.ExecuteWithOptions(tests, false)
}

// ExecuteWithOptions executes tests with optional fail-fast (stop on first failure).
func (wp *WorkerPool) ExecuteWithOptions(tests []domain.Test, failFast bool) ([]domain.TestResult, time.Duration, error) {
	if len(tests) == 0 {
		return nil, 0, nil
	}
	if !failFast {
		return wp.executeAll(tests)
	}
	return wp.executeFailFast(tests)
}

// executeAll runs every test to completion.
func (wp *WorkerPool) executeAll(tests []domain.Test) ([]domain.TestResult, time.Duration, error) {
	testQueue := make(chan domain.Test, len(tests))
	results := make(chan domain.TestResult, len(tests))
	for _, test := range tests {
		testQueue <- test
	}
	close(testQueue)

	var mu sync.Mutex
	var completed int
	var passedCases, failedCases int
	startTime := time.Now()
	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for test := range testQueue {
				result := wp.runner.Run(test)
				results <- result
				mu.Lock()
				completed++
				if wp.parser != nil {
					p, f := wp.parser.ParseTestCounts(result)
					passedCases += p
					failedCases += f
				} else {
					if result.Success {
						passedCases++
					} else {
						failedCases++
					}
				}
				if wp.progress != nil {
					wp.progress.Update(completed, passedCases, failedCases)
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.TestResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}

// executeFailFast runs tests and stops scheduling after the first failure.
func (wp *WorkerPool) executeFailFast(tests []domain.Test) ([]domain.TestResult, time.Duration, error) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	testQueue := make(chan domain.Test, 1)
	results := make(chan domain.TestResult, len(tests))

	go func() {
		defer close(testQueue)
		for _, test := range tests {
			select {
			case <-ctx.Done():
				return
			case testQueue <- test:
			}
		}
	}()

	var mu sync.Mutex
	var completed int
	var passedCases, failedCases int
	var seenFailure bool
	startTime := time.Now()
	workerCount := wp.config.Workers
	if workerCount <= 0 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	for i := 1; i <= workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for test := range testQueue {
				result := wp.runner.Run(test)
				mu.Lock()
				done := seenFailure
				mu.Unlock()
				if done {
					continue
				}
				results <- result
				mu.Lock()
				completed++
				if wp.parser != nil {
					p, f := wp.parser.ParseTestCounts(result)
					passedCases += p
					failedCases += f
				} else {
					if result.Success {
						passedCases++
					} else {
						failedCases++
					}
				}
				if wp.progress != nil {
					wp.progress.Update(completed, passedCases, failedCases)
				}
				if !result.Success {
					seenFailure = true
					cancel()
				}
				mu.Unlock()
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var allResults []domain.TestResult
	for result := range results {
		allResults = append(allResults, result)
	}
	if wp.progress != nil {
		wp.progress.Finish()
	}
	return allResults, time.Since(startTime), nil
}
