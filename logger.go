package envcase

// Logger represents basic logging behavior.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoopLogger represents logger which produce no output
type NoopLogger struct{}

func (n NoopLogger) Debug(msg string, args ...any) {}

func (n NoopLogger) Error(msg string, args ...any) {}
