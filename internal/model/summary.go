package model

import "time"

type NewsSummary struct {
	ID           int64
	Symbol       string
	Headlines    string
	Summary      string
	ArticleCount int
	ModelUsed    string
	CreatedAt    time.Time
}
