package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
	"github.com/PamanGie/crawling-wikipedia/sqlite"
)

// DefaultTopics is crawled when no topics are given on the command line.
var DefaultTopics = []string{
	"Cloud computing",
	"Artificial intelligence",
	"Machine learning",
	"Deep learning",
	"Neural networks",
	"Big data",
	"Data mining",
	"Internet of things",
	"Blockchain",
	"Edge computing",
	"Quantum computing",
	"5G technology",
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	DB       *sqlite.DB
	Articles wikicrawl.ArticleService
	Lookup   wikicrawl.Lookup
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DB string `help:"Catalog database path (defaults to $WIKICRAWL_DB or ~/.wikicrawl/wikicrawl.db)"`

	Crawl  CrawlCmd  `cmd:"" help:"Crawl topics into a prompt/completion dataset"`
	List   ListCmd   `cmd:"" help:"List cataloged articles"`
	Export ExportCmd `cmd:"" help:"Re-export the catalog as JSONL without crawling"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	Topics     []string      `arg:"" optional:"" help:"Topics to crawl (defaults to the built-in technology list)"`
	TopicsFile string        `short:"t" help:"File with one topic per line"`
	Output     string        `short:"o" default:"clean_wikipedia_dataset.jsonl" help:"Dataset output path"`
	Progress   string        `short:"p" default:"crawl_progress.txt" help:"Progress snapshot path"`
	Attempts   int           `default:"3" help:"Retry attempts per topic"`
	Delay      time.Duration `default:"1s" help:"Delay before each retry attempt"`
	Rate       float64       `default:"1" help:"Lookup API requests per second"`
	Verbose    bool          `short:"v" help:"Enable debug logging"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	Topic string `help:"Filter by topic"`
	Limit int    `help:"Maximum number of articles to show"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Output string `arg:"" help:"Dataset output path"`
}
