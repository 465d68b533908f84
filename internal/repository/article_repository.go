package repository

import (
	"database/sql"

	"tradedesk/internal/model"

	"github.com/lib/pq"
)

type ArticleRepository struct {
	db *sql.DB
}

func NewArticleRepository(db *sql.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// SaveArticle inserts the article unless one with the same URL exists.
// It reports whether a row was written.
func (r *ArticleRepository) SaveArticle(article *model.NewsArticle) (bool, error) {
	symbols := article.Symbols
	if symbols == nil {
		symbols = []string{}
	}

	var id int64
	err := r.db.QueryRow(`
		INSERT INTO news_article(external_id, headline, detail, source, publisher, url, published_at, symbols)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (url) DO NOTHING
		RETURNING id
	`, article.ExternalID, article.Headline, article.Detail, article.Source, article.Publisher, article.URL, article.PublishedAt, pq.Array(symbols)).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	article.ID = id
	return true, nil
}

// GetRecentArticles returns the newest articles first.
func (r *ArticleRepository) GetRecentArticles(limit, offset int) ([]model.NewsArticle, error) {
	rows, err := r.db.Query(`
		SELECT id, external_id, headline, detail, source, publisher, url, published_at, symbols
		FROM news_article
		ORDER BY published_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []model.NewsArticle
	for rows.Next() {
		var a model.NewsArticle
		err := rows.Scan(&a.ID, &a.ExternalID, &a.Headline, &a.Detail, &a.Source, &a.Publisher, &a.URL, &a.PublishedAt, pq.Array(&a.Symbols))
		if err != nil {
			return nil, err
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return articles, nil
}

func (r *ArticleRepository) GetArticleTotal() (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM news_article
	`).Scan(&total)
	return total, err
}
