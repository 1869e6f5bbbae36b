// Package fs provides file-based sinks for the dataset and for crawl
// progress snapshots.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"sync"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

// record is the wire shape of one dataset line. Only the prompt and
// completion are part of the emitted dataset.
type record struct {
	Prompt     string `json:"prompt"`
	Completion string `json:"completion"`
}

// Ensure Writer implements wikicrawl.ArticleWriter at compile time.
var _ wikicrawl.ArticleWriter = (*Writer)(nil)

// Writer appends articles to a JSONL file, one object per line. Output is
// UTF-8 with non-ASCII characters left unescaped.
type Writer struct {
	mu   sync.Mutex
	path string
	file *os.File
	enc  *json.Encoder
}

// NewWriter creates a Writer appending to the file at path. The file is
// created if it does not exist and truncated if it does: a run produces a
// fresh dataset.
func NewWriter(path string) (*Writer, error) {
	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)

	return &Writer{path: path, file: file, enc: enc}, nil
}

// CreateArticle appends one newline-terminated JSON record.
func (w *Writer) CreateArticle(ctx context.Context, article *wikicrawl.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	return w.enc.Encode(record{
		Prompt:     article.Prompt,
		Completion: article.Completion,
	})
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}
