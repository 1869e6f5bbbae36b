package wikicrawl

import "context"

// Page is the full plain-text document for one resolved article title.
type Page struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Lookup finds and fetches encyclopedia articles. The orchestrator depends
// only on this contract, not on any particular lookup mechanism.
type Lookup interface {
	// Search returns the best-matching article title for a topic.
	// Returns ENOTFOUND if nothing matches.
	Search(ctx context.Context, topic string) (string, error)

	// Fetch returns the plain-text content for an exact title.
	// Returns ENOTFOUND if the page does not exist, and EAMBIGUOUS with
	// alternative titles if the title resolves to a disambiguation page.
	Fetch(ctx context.Context, title string) (*Page, error)
}

// TitleSet tracks resolved page titles within one crawl run so distinct
// topics resolving to the same article are not recorded twice.
type TitleSet interface {
	// Add records a title.
	Add(title string)

	// Seen returns true if the title may have been recorded already.
	// False positives are allowed; false negatives are not.
	Seen(title string) bool
}
