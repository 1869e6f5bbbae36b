package wikicrawl

import (
	"regexp"
	"strings"
)

// Transform is a single text-normalization stage. Transforms are pure and
// total: they always return a string, possibly empty.
type Transform func(string) string

var (
	citationRE   = regexp.MustCompile(`\[\d+\]`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	blankLinesRE = regexp.MustCompile(`\n\s*\n`)
	urlRE        = regexp.MustCompile(`http[s]?://(?:[a-zA-Z]|[0-9]|[$-_@.&+]|[!*\\(),]|(?:%[0-9a-fA-F][0-9a-fA-F]))+`)
)

// cleanTextPipeline is applied in order by CleanText. The order is
// load-bearing: whitespace collapsing runs before per-line trimming.
var cleanTextPipeline = []Transform{
	stripCitations,
	collapseWhitespace,
	collapseBlankLines,
	trimLines,
	strings.TrimSpace,
}

// cleanSectionPipeline extends cleanTextPipeline with stages applied to
// section bodies only. URL removal runs before whitespace collapsing so
// a removed URL that straddled a line break leaves no irregular spacing.
var cleanSectionPipeline = append([]Transform{
	stripCitationNeeded,
	stripEditMarkers,
	stripCitations,
	stripURLs,
}, cleanTextPipeline...)

// CleanText normalizes raw article text: bracketed numeric citation
// markers are removed, whitespace runs collapse to a single space, blank
// line runs collapse to a single line break, and every line is trimmed.
// CleanText is idempotent.
func CleanText(text string) string {
	return apply(text, cleanTextPipeline)
}

// CleanSection normalizes a section body. On top of CleanText it removes
// [citation needed] markers, [edit] markers, and embedded URLs.
func CleanSection(text string) string {
	return apply(text, cleanSectionPipeline)
}

func apply(text string, pipeline []Transform) string {
	for _, t := range pipeline {
		text = t(text)
	}
	return text
}

func stripCitationNeeded(s string) string {
	return strings.ReplaceAll(s, "[citation needed]", "")
}

func stripEditMarkers(s string) string {
	return strings.ReplaceAll(s, "[edit]", "")
}

func stripCitations(s string) string {
	return citationRE.ReplaceAllString(s, "")
}

func stripURLs(s string) string {
	return urlRE.ReplaceAllString(s, "")
}

func collapseWhitespace(s string) string {
	return whitespaceRE.ReplaceAllString(s, " ")
}

func collapseBlankLines(s string) string {
	return blankLinesRE.ReplaceAllString(s, "\n")
}

func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
