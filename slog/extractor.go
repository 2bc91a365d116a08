// Package slog provides logging decorators for sitegen interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/jilee1212/sitegen"
)

// Ensure LoggingExtractor implements sitegen.BundleExtractor.
var _ sitegen.BundleExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a BundleExtractor with call logging. Failures
// are logged as warnings because callers fall back to local extraction.
type LoggingExtractor struct {
	next   sitegen.BundleExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next sitegen.BundleExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ClassifyAndExtract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ClassifyAndExtract(ctx context.Context, texts []string) (*sitegen.ContentBundle, error) {
	begin := time.Now()
	bundle, err := e.next.ClassifyAndExtract(ctx, texts)
	if err != nil {
		e.logger.Warn("external extraction failed",
			"code", sitegen.ErrorCode(err),
			"error", sitegen.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}
	e.logger.Info("external extraction",
		"company", bundle.Company.Name,
		"services", len(bundle.Services),
		"teamMembers", len(bundle.Team),
		"confidence", bundle.Confidence,
		"duration", time.Since(begin),
	)
	return bundle, nil
}
