package news

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"tradedesk/internal/model"
)

type NewsClient interface {
	Fetch(ctx context.Context, limit int) ([]model.NewsArticle, error)
	Name() string
}

// finalize trims headlines, drops articles the matcher could never use and
// repeated URLs, and caps the batch at limit (0 means no cap).
func finalize(articles []model.NewsArticle, limit int) []model.NewsArticle {
	out := make([]model.NewsArticle, 0, len(articles))
	seen := make(map[string]bool, len(articles))

	for _, a := range articles {
		if limit > 0 && len(out) >= limit {
			break
		}

		a.Headline = strings.TrimSpace(a.Headline)
		if !a.Matchable() {
			continue
		}

		if a.URL != "" {
			if seen[a.URL] {
				continue
			}
			seen[a.URL] = true
		}

		if a.Symbols == nil {
			a.Symbols = []string{}
		}
		out = append(out, a)
	}

	return out
}

func normalizeSymbols(raw []string) []string {
	symbols := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = model.NormalizeSymbol(s); s != "" {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

func generateExternalID(url string) string {
	sum := sha256.Sum256([]byte(url))
	return fmt.Sprintf("%x", sum)[:16]
}
