package parser

import (
	"fmt"
	"regexp"
	"strings"

	"pyfort/internal/domain"
)

// UnittestParser parses Python unittest runner output. Plain scripts that die
// with a bare traceback are reported as a single file-level failure.
type UnittestParser struct{}

// NewUnittestParser creates a new UnittestParser
func NewUnittestParser() *UnittestParser {
	return &UnittestParser{}
}

var (
	ranPattern      = regexp.MustCompile(`Ran\s+(\d+)\s+tests?`)
	failuresPattern = regexp.MustCompile(`failures=(\d+)`)
	errorsPattern   = regexp.MustCompile(`errors=(\d+)`)
	// FAIL: test_convert (__main__.TestElkConverter)
	failHeadPattern = regexp.MustCompile(`^(FAIL|ERROR):\s+(\w+)(?:\s+\(([\w.]+)\))?`)
	//   File "elk_convert.py", line 12, in test_convert
	locationPattern = regexp.MustCompile(`^\s*File\s+"([^"]+)",\s+line\s+(\d+)`)
)

// ParseTestCounts extracts passed and failed case counts from unittest output.
// Returns (passed, failed). If parsing fails, returns (1,0) for success or
// (0,1) for failure (file-level fallback).
func (p *UnittestParser) ParseTestCounts(result domain.TestResult) (passed, failed int) {
	output := result.Output

	var total int
	if m := ranPattern.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &total)
	}

	if total > 0 && strings.Contains(output, "\nOK") {
		return total, 0
	}

	var failures, errors int
	if m := failuresPattern.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &failures)
	}
	if m := errorsPattern.FindStringSubmatch(output); len(m) >= 2 {
		fmt.Sscanf(m[1], "%d", &errors)
	}
	failed = failures + errors
	if total >= failed {
		passed = total - failed
	}
	if passed > 0 || failed > 0 {
		return passed, failed
	}

	// Fallback: one "test" per script
	if result.Success {
		return 1, 0
	}
	return 0, 1
}

// ParseFailure parses failed test cases from unittest output. A script that
// crashed without running the unittest machinery yields one failure carrying
// the traceback.
func (p *UnittestParser) ParseFailure(result domain.TestResult) []domain.TestFailure {
	if result.Success {
		return nil
	}

	lines := strings.Split(result.Output, "\n")
	scriptName := result.TestName + ".py"

	var failures []domain.TestFailure
	for i := 0; i < len(lines); i++ {
		head := failHeadPattern.FindStringSubmatch(lines[i])
		if head == nil {
			continue
		}

		failure := domain.TestFailure{
			TestName:   head[2],
			ScriptName: scriptName,
		}
		block := p.collectBlock(lines, i+1)
		failure.Traceback = block
		for _, line := range block {
			if loc := locationPattern.FindStringSubmatch(line); loc != nil {
				failure.File = loc[1]
				fmt.Sscanf(loc[2], "%d", &failure.Line)
			}
		}
		if len(block) > 0 {
			failure.Message = block[len(block)-1]
		}
		failure.ErrorDetails = strings.Join(block, "\n")
		failures = append(failures, failure)
	}

	if len(failures) > 0 {
		return failures
	}

	// Bare crash: traceback without unittest headers
	return []domain.TestFailure{p.parseCrash(lines, result.TestName, scriptName)}
}

// collectBlock gathers the lines of one failure block, stopping at the next
// block separator or header.
func (p *UnittestParser) collectBlock(lines []string, start int) []string {
	var block []string
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(line, "======") || failHeadPattern.MatchString(line) {
			break
		}
		if strings.HasPrefix(line, "------") {
			continue
		}
		if trimmed := strings.TrimRight(line, " \t"); trimmed != "" {
			block = append(block, trimmed)
		}
	}
	// The unittest summary trails the last block; drop it
	for len(block) > 0 {
		last := block[len(block)-1]
		if ranPattern.MatchString(last) || strings.HasPrefix(last, "FAILED") || last == "OK" {
			block = block[:len(block)-1]
			continue
		}
		break
	}
	return block
}

// parseCrash builds a file-level failure from a bare interpreter traceback
func (p *UnittestParser) parseCrash(lines []string, testName, scriptName string) domain.TestFailure {
	failure := domain.TestFailure{
		TestName:   testName,
		ScriptName: scriptName,
	}

	inTraceback := false
	for _, line := range lines {
		if strings.HasPrefix(line, "Traceback (most recent call last):") {
			inTraceback = true
		}
		if !inTraceback {
			continue
		}
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == "" {
			continue
		}
		failure.Traceback = append(failure.Traceback, trimmed)
		if loc := locationPattern.FindStringSubmatch(trimmed); loc != nil {
			failure.File = loc[1]
			fmt.Sscanf(loc[2], "%d", &failure.Line)
		}
	}

	if n := len(failure.Traceback); n > 0 {
		failure.Message = failure.Traceback[n-1]
		failure.ErrorDetails = strings.Join(failure.Traceback, "\n")
	} else {
		// No traceback at all, keep whatever the script printed
		failure.Message = "script exited nonzero"
		failure.ErrorDetails = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	return failure
}
