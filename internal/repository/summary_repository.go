package repository

import (
	"database/sql"

	"tradedesk/internal/model"
)

type SummaryRepository struct {
	db *sql.DB
}

func NewSummaryRepository(db *sql.DB) *SummaryRepository {
	return &SummaryRepository{db: db}
}

func (r *SummaryRepository) SaveSummary(summary *model.NewsSummary) error {
	return r.db.QueryRow(`
		INSERT INTO news_summary(symbol, headlines, summary, article_count, model_used)
		VALUES($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, model.NormalizeSymbol(summary.Symbol), summary.Headlines, summary.Summary, summary.ArticleCount, summary.ModelUsed).Scan(&summary.ID, &summary.CreatedAt)
}

// GetSummaries lists summaries newest first. An empty symbol lists all.
func (r *SummaryRepository) GetSummaries(symbol string, limit, offset int) ([]model.NewsSummary, error) {
	rows, err := r.db.Query(`
		SELECT id, symbol, headlines, summary, article_count, model_used, created_at
		FROM news_summary
		WHERE $1::text = '' OR symbol = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, model.NormalizeSymbol(symbol), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []model.NewsSummary
	for rows.Next() {
		var s model.NewsSummary
		err := rows.Scan(&s.ID, &s.Symbol, &s.Headlines, &s.Summary, &s.ArticleCount, &s.ModelUsed, &s.CreatedAt)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}

func (r *SummaryRepository) GetSummaryTotal(symbol string) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM news_summary WHERE $1::text = '' OR symbol = $1
	`, model.NormalizeSymbol(symbol)).Scan(&total)
	return total, err
}
