package slog

import (
	"log/slog"
	"time"

	"github.com/jilee1212/sitegen"
)

// Ensure LoggingInjector implements sitegen.Injector.
var _ sitegen.Injector = (*LoggingInjector)(nil)

// LoggingInjector wraps an Injector with debug logging.
type LoggingInjector struct {
	next   sitegen.Injector
	logger *slog.Logger
}

// NewLoggingInjector creates a new LoggingInjector.
func NewLoggingInjector(next sitegen.Injector, logger *slog.Logger) *LoggingInjector {
	return &LoggingInjector{next: next, logger: logger}
}

// Inject delegates to the wrapped injector and logs the applied sections.
func (i *LoggingInjector) Inject(template string, bundle *sitegen.ContentBundle) (*sitegen.InjectResult, error) {
	begin := time.Now()
	result, err := i.next.Inject(template, bundle)
	if err != nil {
		i.logger.Warn("template injection failed",
			"code", sitegen.ErrorCode(err),
			"error", sitegen.ErrorMessage(err),
		)
		return result, err
	}
	i.logger.Info("template injection",
		"sections", result.AppliedSections,
		"duration", time.Since(begin),
	)
	return result, nil
}
