// Package mock provides function-field mock implementations of the
// wikicrawl interfaces for testing.
package mock

import (
	"context"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

var _ wikicrawl.Lookup = (*Lookup)(nil)

// Lookup is a mock implementation of wikicrawl.Lookup.
type Lookup struct {
	SearchFn func(ctx context.Context, topic string) (string, error)
	FetchFn  func(ctx context.Context, title string) (*wikicrawl.Page, error)
}

func (l *Lookup) Search(ctx context.Context, topic string) (string, error) {
	return l.SearchFn(ctx, topic)
}

func (l *Lookup) Fetch(ctx context.Context, title string) (*wikicrawl.Page, error) {
	return l.FetchFn(ctx, title)
}

var _ wikicrawl.TitleSet = (*TitleSet)(nil)

// TitleSet is a mock implementation of wikicrawl.TitleSet.
type TitleSet struct {
	AddFn  func(title string)
	SeenFn func(title string) bool
}

func (s *TitleSet) Add(title string) {
	s.AddFn(title)
}

func (s *TitleSet) Seen(title string) bool {
	return s.SeenFn(title)
}
