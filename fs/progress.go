package fs

import (
	"context"
	"fmt"
	"os"
	"strings"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

// Ensure ProgressWriter implements wikicrawl.ProgressWriter at compile time.
var _ wikicrawl.ProgressWriter = (*ProgressWriter)(nil)

// ProgressWriter rewrites a human-readable snapshot file after every
// topic. The file is meant for eyeballing a running crawl, not for
// machine consumption.
type ProgressWriter struct {
	path string
}

// NewProgressWriter creates a ProgressWriter targeting the given path.
func NewProgressWriter(path string) *ProgressWriter {
	return &ProgressWriter{path: path}
}

// WriteProgress replaces the snapshot file with the current state.
func (w *ProgressWriter) WriteProgress(ctx context.Context, progress *wikicrawl.Progress) error {
	return os.WriteFile(w.path, []byte(FormatProgress(progress)), 0644)
}

// FormatProgress renders a progress snapshot as readable text.
func FormatProgress(progress *wikicrawl.Progress) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Processed: %d/%d\n", progress.Processed, progress.Total)
	fmt.Fprintf(&b, "Succeeded: %d\n", progress.Succeeded)
	fmt.Fprintf(&b, "Failed: %d\n", progress.Failed)

	if len(progress.FailedTopics) > 0 {
		b.WriteString("Failed topics:\n")
		b.WriteString(strings.Join(progress.FailedTopics, "\n"))
		b.WriteByte('\n')
	}

	return b.String()
}
