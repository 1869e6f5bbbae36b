// Package slog provides logging decorators for wikicrawl interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

// Ensure LoggingLookup implements wikicrawl.Lookup.
var _ wikicrawl.Lookup = (*LoggingLookup)(nil)

// LoggingLookup wraps a Lookup with debug logging of call timing and
// outcome codes.
type LoggingLookup struct {
	next   wikicrawl.Lookup
	logger *slog.Logger
}

// NewLoggingLookup creates a new LoggingLookup.
func NewLoggingLookup(next wikicrawl.Lookup, logger *slog.Logger) *LoggingLookup {
	return &LoggingLookup{next: next, logger: logger}
}

// Search delegates to the wrapped lookup and logs the resolution.
func (l *LoggingLookup) Search(ctx context.Context, topic string) (string, error) {
	begin := time.Now()
	title, err := l.next.Search(ctx, topic)
	l.logger.Debug("lookup search",
		"topic", topic,
		"title", title,
		"code", wikicrawl.ErrorCode(err),
		"duration", time.Since(begin),
	)
	return title, err
}

// Fetch delegates to the wrapped lookup and logs the outcome.
func (l *LoggingLookup) Fetch(ctx context.Context, title string) (*wikicrawl.Page, error) {
	begin := time.Now()
	page, err := l.next.Fetch(ctx, title)
	size := 0
	if page != nil {
		size = len(page.Content)
	}
	l.logger.Debug("lookup fetch",
		"title", title,
		"bytes", size,
		"code", wikicrawl.ErrorCode(err),
		"duration", time.Since(begin),
	)
	return page, err
}
