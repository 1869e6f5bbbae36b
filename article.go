package wikicrawl

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// PromptTemplate is the fixed instruction instantiated with each topic.
const PromptTemplate = "Write a detailed article about %s"

// Article is one prompt/completion training record. Only Prompt and
// Completion appear in the emitted dataset; the remaining fields exist for
// the catalog.
type Article struct {
	ID          string    `json:"id"`
	Topic       string    `json:"topic"`
	PageTitle   string    `json:"pageTitle"`
	Prompt      string    `json:"prompt"`
	Completion  string    `json:"completion"`
	ContentHash string    `json:"contentHash"`
	WordCount   int       `json:"wordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewArticle builds an article for a topic from the resolved page title
// and its parsed sections. The prompt uses the topic as the user typed it;
// the completion uses the resolved title.
func NewArticle(topic, pageTitle string, sections []Section) *Article {
	completion := FormatArticle(pageTitle, sections)
	return &Article{
		Topic:      topic,
		PageTitle:  pageTitle,
		Prompt:     fmt.Sprintf(PromptTemplate, topic),
		Completion: completion,
		WordCount:  len(strings.Fields(completion)),
	}
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.Topic == "" {
		return Errorf(EINVALID, "article topic required")
	}
	if a.Prompt == "" {
		return Errorf(EINVALID, "article prompt required")
	}
	if a.Completion == "" {
		return Errorf(EINVALID, "article completion required")
	}
	return nil
}

// ArticleWriter appends accepted articles to an output sink.
type ArticleWriter interface {
	CreateArticle(ctx context.Context, article *Article) error
}

// ArticleService represents a service for managing cataloged articles.
type ArticleService interface {
	// CreateArticle records a new article.
	CreateArticle(ctx context.Context, article *Article) error

	// FindArticleByID retrieves an article by ID.
	// Returns ENOTFOUND if the article does not exist.
	FindArticleByID(ctx context.Context, id string) (*Article, error)

	// FindArticles retrieves articles matching the filter, newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*Article, error)

	// DeleteArticle permanently removes an article.
	// Returns ENOTFOUND if the article does not exist.
	DeleteArticle(ctx context.Context, id string) error
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	ID    *string `json:"id"`
	Topic *string `json:"topic"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// MultiWriter fans each created article out to several writers in order.
type MultiWriter []ArticleWriter

// CreateArticle writes the article to every writer, stopping at the first
// error.
func (w MultiWriter) CreateArticle(ctx context.Context, article *Article) error {
	for _, next := range w {
		if err := next.CreateArticle(ctx, article); err != nil {
			return err
		}
	}
	return nil
}
