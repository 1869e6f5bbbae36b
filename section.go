package wikicrawl

import "strings"

// Section is one titled block of cleaned article body text.
type Section struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ParseSections splits a plain-text article into its titled sections.
// A line opens a new section iff it starts with "== " and ends with " =="
// (the MediaWiki extract convention for top-level headings). Body text
// accumulated under a heading is cleaned with CleanSection; sections whose
// cleaned content is empty are dropped. Content before the first heading
// is discarded, so a document with no headings yields no sections.
func ParseSections(raw string) []Section {
	var sections []Section
	var title string
	var body strings.Builder
	open := false

	flush := func() {
		if !open {
			return
		}
		if content := CleanSection(body.String()); content != "" {
			sections = append(sections, Section{Title: title, Content: content})
		}
	}

	for _, line := range strings.Split(raw, "\n") {
		if strings.HasPrefix(line, "== ") && strings.HasSuffix(line, " ==") {
			flush()
			title = strings.Trim(line, "= ")
			body.Reset()
			open = true
			continue
		}
		if open {
			body.WriteString(line)
			body.WriteByte('\n')
		}
	}
	flush()

	return sections
}
