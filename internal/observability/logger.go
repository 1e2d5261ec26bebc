package observability

import (
	"go.uber.org/zap"
)

// NewLogger builds the process logger. Verbose mode switches to the
// development config with debug level and human-readable output.
func NewLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
