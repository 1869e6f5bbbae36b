package wikicrawl

import "strings"

// FormatArticle renders a page title and its ordered sections as one flat
// completion text: a "Title:" line followed by a "Section:" line and the
// section content for each section. Sections with an empty title or empty
// content are skipped. Lines are joined with a single line break.
func FormatArticle(title string, sections []Section) string {
	lines := []string{"Title: " + title}

	for _, s := range sections {
		if s.Title == "" || s.Content == "" {
			continue
		}
		lines = append(lines, "Section: "+s.Title, s.Content)
	}

	return strings.Join(lines, "\n")
}
