package mock

import (
	"context"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

var _ wikicrawl.ProgressWriter = (*ProgressWriter)(nil)

// ProgressWriter is a mock implementation of wikicrawl.ProgressWriter.
type ProgressWriter struct {
	WriteProgressFn func(ctx context.Context, progress *wikicrawl.Progress) error
}

func (w *ProgressWriter) WriteProgress(ctx context.Context, progress *wikicrawl.Progress) error {
	return w.WriteProgressFn(ctx, progress)
}
