package chain

// Logger receives debug diagnostics from a Generator.
type Logger interface {
	Debugf(format string, args ...any)
}

// nopLogger discards everything; it is the default.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
