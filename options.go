package statefsm

import "log/slog"

// Logger is the default logger used when none is provided.
var Logger = slog.Default()

type options struct {
	logger *slog.Logger
}

// Option is a functional option for configuring an FSM.
type Option func(*options)

// WithLogger sets the logger for the machine. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}
