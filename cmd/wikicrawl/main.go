package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
	"github.com/PamanGie/crawling-wikipedia/mediawiki"
	wcslog "github.com/PamanGie/crawling-wikipedia/slog"
	"github.com/PamanGie/crawling-wikipedia/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the article catalog.
	DB *sqlite.DB

	// Lookup overrides the MediaWiki client when set. Used by tests.
	Lookup wikicrawl.Lookup

	// ArticleService for end-to-end testing.
	ArticleService wikicrawl.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("wikicrawl"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'wikicrawl --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cmd == "crawl" && cli.Crawl.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open the catalog database
	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set WIKICRAWL_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	if m.ArticleService == nil {
		m.ArticleService = sqlite.NewArticleService(m.DB)
	}
	deps.DB = m.DB
	deps.Articles = m.ArticleService

	// Wire the lookup collaborator for the crawl command
	if cmd == "crawl" {
		lookup := m.Lookup
		if lookup == nil {
			lookup = mediawiki.NewClient(
				mediawiki.WithRequestsPerSecond(cli.Crawl.Rate),
			)
		}
		deps.Lookup = wcslog.NewLoggingLookup(lookup, deps.Logger)
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("WIKICRAWL_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "wikicrawl.db"
	}
	dir := filepath.Join(home, ".wikicrawl")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "wikicrawl.db")
}
