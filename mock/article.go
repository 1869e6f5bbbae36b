package mock

import (
	"context"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

var _ wikicrawl.ArticleWriter = (*ArticleWriter)(nil)

// ArticleWriter is a mock implementation of wikicrawl.ArticleWriter.
type ArticleWriter struct {
	CreateArticleFn func(ctx context.Context, article *wikicrawl.Article) error
}

func (w *ArticleWriter) CreateArticle(ctx context.Context, article *wikicrawl.Article) error {
	return w.CreateArticleFn(ctx, article)
}

var _ wikicrawl.ArticleService = (*ArticleService)(nil)

// ArticleService is a mock implementation of wikicrawl.ArticleService.
type ArticleService struct {
	CreateArticleFn   func(ctx context.Context, article *wikicrawl.Article) error
	FindArticleByIDFn func(ctx context.Context, id string) (*wikicrawl.Article, error)
	FindArticlesFn    func(ctx context.Context, filter wikicrawl.ArticleFilter) ([]*wikicrawl.Article, error)
	DeleteArticleFn   func(ctx context.Context, id string) error
}

func (s *ArticleService) CreateArticle(ctx context.Context, article *wikicrawl.Article) error {
	return s.CreateArticleFn(ctx, article)
}

func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*wikicrawl.Article, error) {
	return s.FindArticleByIDFn(ctx, id)
}

func (s *ArticleService) FindArticles(ctx context.Context, filter wikicrawl.ArticleFilter) ([]*wikicrawl.Article, error) {
	return s.FindArticlesFn(ctx, filter)
}

func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	return s.DeleteArticleFn(ctx, id)
}
