package logging

// LogEntry represents a structured log record with fields particularly
// relevant to falsification runs.
type LogEntry struct {
	// Standard fields
	Time     int64
	Severity Severity
	Message  string
	File     string
	Line     int
	Function string

	// Run-specific fields
	RunID   string // Identifier of the optimization attempt being logged
	Latency int64  // Operation duration in milliseconds

	// General structured data
	Fields map[string]interface{}
}
