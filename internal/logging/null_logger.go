package logging

// NullLogger discards everything. Used by tests and library callers that
// want no console output.
type NullLogger struct{}

// NewNullLogger creates a new NullLogger.
func NewNullLogger() *NullLogger {
	return &NullLogger{}
}

func (NullLogger) Verbose(string, ...interface{}) {}
func (NullLogger) Info(string, ...interface{})    {}
func (NullLogger) Warn(string, ...interface{})    {}
func (NullLogger) Error(string, ...interface{})   {}
