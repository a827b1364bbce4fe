package application

import "log/slog"

// ResolveLogger guarantees a usable logger so call sites never nil-check.
func ResolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
