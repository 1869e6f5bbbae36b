package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"

	wikicrawl "github.com/PamanGie/crawling-wikipedia"
)

// Compile-time interface verification.
var _ wikicrawl.ArticleService = (*ArticleService)(nil)

// ArticleService implements wikicrawl.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

// CreateArticle records a new article, generating its ID, content hash,
// word count, and timestamp.
func (s *ArticleService) CreateArticle(ctx context.Context, article *wikicrawl.Article) error {
	if err := article.Validate(); err != nil {
		return err
	}

	article.ID = uuid.New().String()
	article.CreatedAt = time.Now().UTC()
	article.ContentHash = hashContent(article.Completion)
	if article.WordCount == 0 {
		article.WordCount = len(strings.Fields(article.Completion))
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO articles (id, topic, page_title, prompt, completion, content_hash, word_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, article.ID, article.Topic, article.PageTitle, article.Prompt, article.Completion,
		article.ContentHash, article.WordCount, article.CreatedAt.Format(time.RFC3339))

	return err
}

// FindArticleByID retrieves an article by ID.
func (s *ArticleService) FindArticleByID(ctx context.Context, id string) (*wikicrawl.Article, error) {
	var article wikicrawl.Article
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, topic, page_title, prompt, completion, content_hash, word_count, created_at
		FROM articles
		WHERE id = ?
	`, id).Scan(&article.ID, &article.Topic, &article.PageTitle, &article.Prompt,
		&article.Completion, &article.ContentHash, &article.WordCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, wikicrawl.Errorf(wikicrawl.ENOTFOUND, "article not found")
	}
	if err != nil {
		return nil, err
	}

	article.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &article, nil
}

// FindArticles retrieves articles matching the filter, newest first.
func (s *ArticleService) FindArticles(ctx context.Context, filter wikicrawl.ArticleFilter) ([]*wikicrawl.Article, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, topic, page_title, prompt, completion, content_hash, word_count, created_at FROM articles WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Topic != nil {
		query.WriteString(" AND topic = ?")
		args = append(args, *filter.Topic)
	}

	query.WriteString(" ORDER BY created_at DESC, id")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*wikicrawl.Article
	for rows.Next() {
		var article wikicrawl.Article
		var createdAt string

		if err := rows.Scan(&article.ID, &article.Topic, &article.PageTitle, &article.Prompt,
			&article.Completion, &article.ContentHash, &article.WordCount, &createdAt); err != nil {
			return nil, err
		}

		article.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		articles = append(articles, &article)
	}

	return articles, rows.Err()
}

// DeleteArticle permanently removes an article.
func (s *ArticleService) DeleteArticle(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM articles WHERE id = ?", id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return wikicrawl.Errorf(wikicrawl.ENOTFOUND, "article not found")
	}

	return nil
}
