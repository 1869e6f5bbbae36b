package main

import (
	"fmt"
	"os"
	"strings"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
	"github.com/PamanGie/crawling-wikipedia/bloom"
	"github.com/PamanGie/crawling-wikipedia/crawl"
	"github.com/PamanGie/crawling-wikipedia/fs"
)

// Bloom filter sizing for within-run title deduplication.
const (
	dedupeExpectedTitles    = 10000
	dedupeFalsePositiveRate = 0.01
)

// Run executes the crawl command.
func (c *CrawlCmd) Run(deps *Dependencies) error {
	topics, err := c.resolveTopics()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	writer, err := fs.NewWriter(c.Output)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot open output %q: %v\n", c.Output, err)
		return err
	}
	defer writer.Close()

	crawler := &crawl.Crawler{
		Lookup:      deps.Lookup,
		Articles:    wikicrawl.MultiWriter{writer, deps.Articles},
		Progress:    fs.NewProgressWriter(c.Progress),
		Quality:     wikicrawl.NewQualityGate(),
		Seen:        bloom.NewFilter(dedupeExpectedTitles, dedupeFalsePositiveRate),
		Logger:      deps.Logger,
		MaxAttempts: c.Attempts,
		RetryDelay:  c.Delay,
	}

	fmt.Fprintf(deps.Stdout, "Starting to crawl %d articles...\n", len(topics))

	result, err := crawler.CrawlAll(deps.Ctx, topics)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", wikicrawl.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Crawling completed. Successfully processed %d out of %d articles.\n",
		result.Saved, result.Total)
	if len(result.FailedTopics) > 0 {
		fmt.Fprintf(deps.Stdout, "Failed topics:\n%s\n", strings.Join(result.FailedTopics, "\n"))
	}

	return nil
}

// resolveTopics picks topics from arguments, a topics file, or the
// built-in default list, in that order.
func (c *CrawlCmd) resolveTopics() ([]string, error) {
	if len(c.Topics) > 0 {
		return c.Topics, nil
	}

	if c.TopicsFile != "" {
		data, err := os.ReadFile(c.TopicsFile)
		if err != nil {
			return nil, err
		}
		var topics []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			topics = append(topics, line)
		}
		if len(topics) == 0 {
			return nil, fmt.Errorf("topics file %q contains no topics", c.TopicsFile)
		}
		return topics, nil
	}

	return DefaultTopics, nil
}
