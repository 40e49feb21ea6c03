package domain

// Test represents a registered regression test, resolved and staged
type Test struct {
	Name        string // Registered test name (script is <Name>.py)
	ScriptPath  string // Full path to the staged script
	FixturePath string // Full path to the staged fixture, empty if the test has none
}
