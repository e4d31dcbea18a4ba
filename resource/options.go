package resource

import "log/slog"

// Options configures the grouping pass.
type Options struct {
	// Factory builds one Operation per (path, method) pair. Defaults to
	// DefaultFactory.
	Factory OperationFactory
	// StrictIDs turns a duplicate operation id within one tag into an error
	// instead of keeping the later operation.
	StrictIDs bool
	// Logger receives a debug line per resource built. Defaults to a
	// discarding logger.
	Logger *slog.Logger
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() *Options {
	return &Options{
		Factory: DefaultFactory(),
		Logger:  slog.New(slog.DiscardHandler),
	}
}
