// Package relevance associates news articles with an asset by keyword
// containment in the headline.
package relevance

import (
	"strings"

	"tradedesk/internal/model"
)

// KeywordSet builds the lowercased, deduplicated keyword list of an asset.
// Blank keywords are dropped so they can never match every headline.
func KeywordSet(asset model.Asset, rule Rule) []string {
	if rule == nil {
		rule = BaseRule{}
	}

	seen := make(map[string]struct{})
	var keywords []string
	for _, k := range rule.Keywords(asset) {
		k = strings.ToLower(strings.TrimSpace(k))
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keywords = append(keywords, k)
	}
	return keywords
}

// FindRelevantNews returns the articles whose headline contains any of the
// asset's keywords, in catalog order. Matching is plain substring
// containment, not word-boundary aware.
func FindRelevantNews(asset *model.Asset, articles []model.NewsArticle, rule Rule) []model.NewsArticle {
	relevant := []model.NewsArticle{}
	if asset == nil || len(articles) == 0 {
		return relevant
	}

	keywords := KeywordSet(*asset, rule)
	if len(keywords) == 0 {
		return relevant
	}

	for _, article := range articles {
		if !article.Matchable() {
			continue
		}
		if containsAny(strings.ToLower(article.Headline), keywords) {
			relevant = append(relevant, article)
		}
	}
	return relevant
}

func containsAny(text string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

// Matcher picks the rule from the asset class. The zero value uses RuleFor.
type Matcher struct {
	Resolve func(model.AssetClass) Rule
}

func NewMatcher() Matcher {
	return Matcher{Resolve: RuleFor}
}

func (m Matcher) Match(asset *model.Asset, articles []model.NewsArticle) []model.NewsArticle {
	if asset == nil {
		return []model.NewsArticle{}
	}
	resolve := m.Resolve
	if resolve == nil {
		resolve = RuleFor
	}
	return FindRelevantNews(asset, articles, resolve(asset.Class))
}

// Headlines joins the headlines of articles one per line, the form the
// summarizer expects.
func Headlines(articles []model.NewsArticle) string {
	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, a.Headline)
	}
	return strings.Join(lines, "\n")
}
