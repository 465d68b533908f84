package model

import (
	"strings"
	"time"
)

type NewsArticle struct {
	ID          int64
	ExternalID  string
	Headline    string
	Detail      string
	Source      string
	Publisher   string
	URL         string
	PublishedAt time.Time
	Symbols     []string
}

// Matchable reports whether the article carries a headline that keyword
// matching can run against.
func (a NewsArticle) Matchable() bool {
	return strings.TrimSpace(a.Headline) != ""
}
