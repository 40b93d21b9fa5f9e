package slog

import (
	"log/slog"
	"time"

	"github.com/MartinCastroAlvarez/elematch"
)

// Ensure LoggingOpener implements elematch.DocumentOpener.
var _ elematch.DocumentOpener = (*LoggingOpener)(nil)

// LoggingOpener wraps a DocumentOpener with debug logging.
type LoggingOpener struct {
	next   elematch.DocumentOpener
	logger *slog.Logger
}

// NewLoggingOpener creates a new LoggingOpener.
func NewLoggingOpener(next elematch.DocumentOpener, logger *slog.Logger) *LoggingOpener {
	return &LoggingOpener{next: next, logger: logger}
}

// OpenDocument delegates to the wrapped opener and logs the operation.
func (o *LoggingOpener) OpenDocument(path string) (doc elematch.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"path", path,
			"duration", time.Since(begin),
			"err", err,
		}
		if doc != nil {
			attrs = append(attrs, "checksum", doc.Checksum())
		}
		o.logger.Info("document open", attrs...)
	}(time.Now())
	return o.next.OpenDocument(path)
}
