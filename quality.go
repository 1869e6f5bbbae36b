package wikicrawl

import (
	"fmt"
	"strings"
)

// Default quality thresholds.
const (
	DefaultMinWords     = 100
	DefaultMinSections  = 2
	DefaultMinDiversity = 0.30
)

// QualityGate decides whether a formatted article is acceptable for the
// dataset. Fields are exported so tests can tighten or relax thresholds;
// use NewQualityGate for the defaults.
type QualityGate struct {
	// MinWords is the minimum whitespace-delimited token count.
	MinWords int

	// MinSections is the minimum number of "Section:" occurrences.
	MinSections int

	// MinDiversity is the minimum ratio of distinct lower-cased tokens
	// to total tokens.
	MinDiversity float64
}

// NewQualityGate returns a QualityGate with the default thresholds.
func NewQualityGate() *QualityGate {
	return &QualityGate{
		MinWords:     DefaultMinWords,
		MinSections:  DefaultMinSections,
		MinDiversity: DefaultMinDiversity,
	}
}

// Verify reports whether the article passes the gate, with a
// human-readable reason either way.
func (g *QualityGate) Verify(article *Article) (bool, string) {
	if article == nil {
		return false, "no article"
	}

	words := strings.Fields(article.Completion)
	if len(words) < g.MinWords {
		return false, fmt.Sprintf("too short: %d words (minimum %d)", len(words), g.MinWords)
	}

	sections := strings.Count(article.Completion, "Section:")
	if sections < g.MinSections {
		return false, fmt.Sprintf("too few sections: %d (minimum %d)", sections, g.MinSections)
	}

	distinct := make(map[string]struct{}, len(words))
	for _, w := range words {
		distinct[strings.ToLower(w)] = struct{}{}
	}
	diversity := float64(len(distinct)) / float64(len(words))
	if diversity < g.MinDiversity {
		return false, fmt.Sprintf("low lexical diversity: %.2f (minimum %.2f)", diversity, g.MinDiversity)
	}

	return true, fmt.Sprintf("accepted: %d words, %d sections", len(words), sections)
}
