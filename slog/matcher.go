// Package slog provides logging decorators for elematch services.
// The core algorithms never depend on logging for correctness; these
// wrappers are pure observability.
package slog

import (
	"log/slog"
	"time"

	"github.com/MartinCastroAlvarez/elematch"
)

// Ensure LoggingMatcher implements elematch.Matcher.
var _ elematch.Matcher = (*LoggingMatcher)(nil)

// LoggingMatcher wraps a Matcher with debug logging for learn and find.
type LoggingMatcher struct {
	next   elematch.Matcher
	logger *slog.Logger
}

// NewLoggingMatcher creates a new LoggingMatcher.
func NewLoggingMatcher(next elematch.Matcher, logger *slog.Logger) *LoggingMatcher {
	return &LoggingMatcher{next: next, logger: logger}
}

// Learn delegates to the wrapped matcher and logs the operation.
func (m *LoggingMatcher) Learn(doc elematch.Document) (err error) {
	defer func(begin time.Time) {
		m.logger.Info("model learn",
			"document", doc.Path(),
			"checksum", doc.Checksum(),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Learn(doc)
}

// Find delegates to the wrapped matcher and logs the operation.
func (m *LoggingMatcher) Find(doc elematch.Document, limit int, threshold float64) (matches []elematch.Match, err error) {
	defer func(begin time.Time) {
		m.logger.Info("model find",
			"document", doc.Path(),
			"limit", limit,
			"threshold", threshold,
			"count", len(matches),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.Find(doc, limit, threshold)
}

// Trained delegates to the wrapped matcher.
func (m *LoggingMatcher) Trained() bool {
	return m.next.Trained()
}
