// Package wikicrawl builds prompt/completion training datasets from
// Wikipedia articles. It fetches plain-text article extracts by topic,
// strips markup noise, restructures them into titled sections, gates them
// on length and lexical diversity, and emits accepted records as
// line-delimited JSON.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., mediawiki/, sqlite/, fs/).
package wikicrawl
