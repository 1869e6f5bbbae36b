package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
	main "github.com/PamanGie/crawling-wikipedia/cmd/wikicrawl"
	"github.com/PamanGie/crawling-wikipedia/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testContext returns a background context for tests.
func testContext() context.Context {
	return context.Background()
}

// pageFor builds plain-text content that clears the quality gate.
func pageFor(title string) string {
	var b strings.Builder
	b.WriteString("== Overview ==\n")
	for i := 0; i < 70; i++ {
		b.WriteString(title)
		b.WriteString(strings.Repeat("x", i%7))
		b.WriteString(string(rune('a'+i%26)) + strings.Repeat("o", i%5) + " ")
	}
	b.WriteString("\n== Details ==\n")
	for i := 0; i < 70; i++ {
		b.WriteString("detail")
		b.WriteString(string(rune('a'+i%26)) + strings.Repeat("e", i%6) + " ")
	}
	b.WriteString("\n")
	return b.String()
}

// workingLookup resolves each topic to itself and serves gate-clearing
// content.
func workingLookup() wikicrawl.Lookup {
	return &mock.Lookup{
		SearchFn: func(_ context.Context, topic string) (string, error) {
			return topic, nil
		},
		FetchFn: func(_ context.Context, title string) (*wikicrawl.Page, error) {
			return &wikicrawl.Page{Title: title, Content: pageFor(title)}, nil
		},
	}
}

func TestRun_NoArgs(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	err := m.Run(testContext(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRun_Help(t *testing.T) {
	t.Parallel()

	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "test.db")

	stdout := &bytes.Buffer{}
	err := m.Run(testContext(), []string{"--help"}, stdout, &bytes.Buffer{})

	require.NoError(t, err)
}

func TestCmdCrawl(t *testing.T) {
	t.Parallel()

	t.Run("crawls topics end to end", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		dbPath := filepath.Join(dir, "test.db")
		output := filepath.Join(dir, "dataset.jsonl")
		progress := filepath.Join(dir, "progress.txt")

		m := main.NewMain()
		m.DBPath = dbPath
		m.Lookup = workingLookup()

		stdout := &bytes.Buffer{}
		err := m.Run(testContext(), []string{
			"crawl", "Cloud computing", "Blockchain",
			"--output", output,
			"--progress", progress,
		}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Successfully processed 2 out of 2")

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
		assert.Len(t, lines, 2)
		assert.Contains(t, lines[0], `"prompt":"Write a detailed article about Cloud computing"`)

		snap, err := os.ReadFile(progress)
		require.NoError(t, err)
		assert.Contains(t, string(snap), "Processed: 2/2")
		assert.Contains(t, string(snap), "Succeeded: 2")
	})

	t.Run("records failed topics", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		working := workingLookup()

		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "test.db")
		m.Lookup = &mock.Lookup{
			SearchFn: func(ctx context.Context, topic string) (string, error) {
				if topic == "Missing" {
					return "", wikicrawl.Errorf(wikicrawl.ENOTFOUND, "no results for %q", topic)
				}
				return topic, nil
			},
			FetchFn: func(ctx context.Context, title string) (*wikicrawl.Page, error) {
				return working.Fetch(ctx, title)
			},
		}

		stdout := &bytes.Buffer{}
		err := m.Run(testContext(), []string{
			"crawl", "Good", "Missing",
			"--output", filepath.Join(dir, "dataset.jsonl"),
			"--progress", filepath.Join(dir, "progress.txt"),
		}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Successfully processed 1 out of 2")
		assert.Contains(t, stdout.String(), "Failed topics:\nMissing")
	})
}

func TestCmdList(t *testing.T) {
	t.Parallel()

	t.Run("prints message for empty catalog", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		err := m.Run(testContext(), []string{"list"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles found")
	})

	t.Run("lists cataloged articles after a crawl", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		dbPath := filepath.Join(dir, "test.db")

		m := main.NewMain()
		m.DBPath = dbPath
		m.Lookup = workingLookup()

		err := m.Run(testContext(), []string{
			"crawl", "Data mining",
			"--output", filepath.Join(dir, "dataset.jsonl"),
			"--progress", filepath.Join(dir, "progress.txt"),
		}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)

		// Fresh Main against the same database.
		m2 := main.NewMain()
		m2.DBPath = dbPath

		stdout := &bytes.Buffer{}
		err = m2.Run(testContext(), []string{"list"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Data mining")
		assert.Contains(t, stdout.String(), "words")
	})
}

func TestCmdExport(t *testing.T) {
	t.Parallel()

	t.Run("prints message for empty catalog", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		m := main.NewMain()
		m.DBPath = filepath.Join(dir, "test.db")

		stdout := &bytes.Buffer{}
		err := m.Run(testContext(), []string{"export", filepath.Join(dir, "out.jsonl")}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No articles to export")
	})

	t.Run("re-emits the catalog as JSONL", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		dbPath := filepath.Join(dir, "test.db")

		m := main.NewMain()
		m.DBPath = dbPath
		m.Lookup = workingLookup()

		err := m.Run(testContext(), []string{
			"crawl", "Quantum computing", "Edge computing",
			"--output", filepath.Join(dir, "dataset.jsonl"),
			"--progress", filepath.Join(dir, "progress.txt"),
		}, &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)

		exported := filepath.Join(dir, "exported.jsonl")
		m2 := main.NewMain()
		m2.DBPath = dbPath

		stdout := &bytes.Buffer{}
		err = m2.Run(testContext(), []string{"export", exported}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Exported 2 articles")

		data, err := os.ReadFile(exported)
		require.NoError(t, err)
		assert.Len(t, strings.Split(strings.TrimRight(string(data), "\n"), "\n"), 2)
	})
}
