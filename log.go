package lptrace

// Logger receives debug output from the parser and the renderers. A
// *log.Logger satisfies it.
type Logger interface {
	Print(v ...interface{})
}

type noopLogger struct{}

func (noopLogger) Print(v ...interface{}) {}

// NoopLogger returns a Logger discarding everything.
func NoopLogger() Logger {
	return noopLogger{}
}
