package domain

// TestFailure represents a failed test case
type TestFailure struct {
	TestName     string   `json:"test_name"`
	ScriptName   string   `json:"script_name"`
	ErrorDetails string   `json:"error_details"`
	Traceback    []string `json:"traceback"`
	File         string   `json:"file"`
	Line         int      `json:"line"`
	Message      string   `json:"message"`
	Resolved     bool     `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}
