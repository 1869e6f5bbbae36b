// Package crawl provides batch dataset-construction orchestration.
// It coordinates article lookup, section parsing, formatting, quality
// gating, and persistence of accepted records.
package crawl

import (
	"context"
	"log/slog"
	"time"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

// Defaults for the per-topic retry policy.
const (
	// DefaultMaxAttempts is the per-topic retry budget.
	DefaultMaxAttempts = 3

	// DefaultRetryDelay is the pause before each retry attempt.
	DefaultRetryDelay = 1 * time.Second
)

// sinkMinWords is a second length check at the orchestration boundary:
// a record is only appended when the completion exceeds this word count.
const sinkMinWords = 100

// Crawler orchestrates the crawling of a topic list into a dataset.
// Topics are processed strictly sequentially.
type Crawler struct {
	Lookup   wikicrawl.Lookup
	Articles wikicrawl.ArticleWriter

	// Progress, if set, receives a snapshot after every topic.
	Progress wikicrawl.ProgressWriter

	// Quality defaults to wikicrawl.NewQualityGate() when nil.
	Quality *wikicrawl.QualityGate

	// Seen, if set, suppresses topics whose resolved page title was
	// already accepted in this run.
	Seen wikicrawl.TitleSet

	// Logger defaults to a discard logger when nil.
	Logger *slog.Logger

	// MaxAttempts defaults to DefaultMaxAttempts when <= 0.
	MaxAttempts int

	// RetryDelay is the pause before each retry attempt. Negative means
	// no delay; zero means DefaultRetryDelay.
	RetryDelay time.Duration
}

// Result holds the outcome of a crawl run.
type Result struct {
	Total        int
	Saved        int
	Failed       int
	FailedTopics []string
}

// CrawlAll processes every topic in order and returns the run summary.
// Individual topic failures never interrupt the batch: every failure kind
// is converted into a per-topic outcome and the full list is always
// processed. The returned error is non-nil only for invalid configuration.
func (c *Crawler) CrawlAll(ctx context.Context, topics []string) (*Result, error) {
	if c.Lookup == nil {
		return nil, wikicrawl.Errorf(wikicrawl.EINVALID, "crawler lookup required")
	}
	if c.Articles == nil {
		return nil, wikicrawl.Errorf(wikicrawl.EINVALID, "crawler article writer required")
	}

	logger := c.logger()
	result := &Result{Total: len(topics)}

	for i, topic := range topics {
		logger.Info("processing topic", "topic", topic, "position", i+1, "total", len(topics))

		saved := false
		article, err := c.crawlTopic(ctx, topic)
		if err != nil {
			logger.Warn("topic failed",
				"topic", topic,
				"code", wikicrawl.ErrorCode(err),
				"error", err,
			)
		} else if article.WordCount > sinkMinWords {
			if werr := c.Articles.CreateArticle(ctx, article); werr != nil {
				logger.Warn("write failed", "topic", topic, "error", werr)
			} else {
				saved = true
				logger.Info("saved article", "topic", topic, "title", article.PageTitle, "words", article.WordCount)
			}
		} else {
			logger.Warn("completion at or under sink minimum", "topic", topic, "words", article.WordCount)
		}

		if saved {
			result.Saved++
		} else {
			result.Failed++
			result.FailedTopics = append(result.FailedTopics, topic)
		}

		if c.Progress != nil {
			snapshot := &wikicrawl.Progress{
				Processed:    i + 1,
				Total:        len(topics),
				Succeeded:    result.Saved,
				Failed:       result.Failed,
				FailedTopics: append([]string(nil), result.FailedTopics...),
			}
			if perr := c.Progress.WriteProgress(ctx, snapshot); perr != nil {
				logger.Warn("progress snapshot failed", "error", perr)
			}
		}
	}

	logger.Info("crawl completed",
		"total", result.Total,
		"saved", result.Saved,
		"failed", result.Failed,
	)

	return result, nil
}

// crawlTopic runs the per-topic state machine. Terminal conditions
// (ENOTFOUND, EEMPTY, EDUPLICATE) abandon the topic immediately; quality
// rejection and any other failure consume a retry attempt. Each retry
// restarts the full pipeline from search.
func (c *Crawler) crawlTopic(ctx context.Context, topic string) (*wikicrawl.Article, error) {
	attempts := c.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			c.wait(ctx)
		}

		article, err := c.attempt(ctx, topic)
		if err == nil {
			return article, nil
		}

		switch wikicrawl.ErrorCode(err) {
		case wikicrawl.ENOTFOUND, wikicrawl.EEMPTY, wikicrawl.EDUPLICATE:
			// Structural, not transient. Retrying cannot help.
			return nil, err
		}

		c.logger().Debug("attempt failed", "topic", topic, "attempt", attempt, "error", err)
		lastErr = err
	}

	return nil, lastErr
}

// attempt runs one full pass of the pipeline for a topic.
func (c *Crawler) attempt(ctx context.Context, topic string) (*wikicrawl.Article, error) {
	title, err := c.Lookup.Search(ctx, topic)
	if err != nil {
		return nil, err
	}

	if c.Seen != nil && c.Seen.Seen(title) {
		return nil, wikicrawl.Errorf(wikicrawl.EDUPLICATE, "topic %q resolved to already crawled page %q", topic, title)
	}

	page, err := c.Lookup.Fetch(ctx, title)
	if wikicrawl.ErrorCode(err) == wikicrawl.EAMBIGUOUS {
		// One-shot fallback to the first alternative. A failed fallback
		// degrades to a retryable failure rather than a terminal one.
		alternatives := wikicrawl.ErrorAlternatives(err)
		if len(alternatives) == 0 {
			return nil, wikicrawl.Errorf(wikicrawl.EINTERNAL, "ambiguous title %q listed no alternatives", title)
		}
		page, err = c.Lookup.Fetch(ctx, alternatives[0])
		if err != nil {
			return nil, wikicrawl.Errorf(wikicrawl.EINTERNAL, "ambiguity fallback %q failed: %s", alternatives[0], wikicrawl.ErrorMessage(err))
		}
	} else if err != nil {
		return nil, err
	}

	sections := wikicrawl.ParseSections(page.Content)
	if len(sections) == 0 {
		return nil, wikicrawl.Errorf(wikicrawl.EEMPTY, "page %q has no valid sections", page.Title)
	}

	article := wikicrawl.NewArticle(topic, page.Title, sections)

	quality := c.Quality
	if quality == nil {
		quality = wikicrawl.NewQualityGate()
	}
	accepted, reason := quality.Verify(article)
	if !accepted {
		return nil, wikicrawl.Errorf(wikicrawl.EREJECTED, "article for %q rejected: %s", topic, reason)
	}
	c.logger().Debug("quality gate passed", "topic", topic, "reason", reason)

	if c.Seen != nil {
		c.Seen.Add(title)
	}

	return article, nil
}

// wait pauses for the configured retry delay.
func (c *Crawler) wait(ctx context.Context) {
	delay := c.RetryDelay
	if delay == 0 {
		delay = DefaultRetryDelay
	}
	if delay < 0 {
		return
	}
	select {
	case <-ctx.Done():
	case <-time.After(delay):
	}
}

func (c *Crawler) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
