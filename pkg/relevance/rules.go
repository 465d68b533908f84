package relevance

import (
	"strings"

	"tradedesk/internal/model"
)

// DefaultQuoteMarker is the quote currency stripped from crypto pair symbols.
const DefaultQuoteMarker = "USDT"

// Rule supplies the keywords an asset is matched with.
type Rule interface {
	Keywords(asset model.Asset) []string
}

// BaseRule matches on the asset name and symbol only.
type BaseRule struct{}

func (BaseRule) Keywords(asset model.Asset) []string {
	return []string{asset.Name, asset.Symbol}
}

// ClassRule extends BaseRule with fixed class keywords, an optional base
// currency token derived from the symbol and optionally the sector.
type ClassRule struct {
	Extra         []string
	QuoteMarker   string
	IncludeSector bool
}

func (r ClassRule) Keywords(asset model.Asset) []string {
	keywords := BaseRule{}.Keywords(asset)
	keywords = append(keywords, r.Extra...)
	if r.QuoteMarker != "" {
		keywords = append(keywords, BaseToken(asset.Symbol, r.QuoteMarker))
	}
	if r.IncludeSector {
		keywords = append(keywords, asset.Sector)
	}
	return keywords
}

var classRules = map[model.AssetClass]Rule{
	model.Equity:       ClassRule{IncludeSector: true},
	model.Bond:         ClassRule{Extra: []string{"bond", "g-sec", "yield"}, IncludeSector: true},
	model.MutualFund:   ClassRule{Extra: []string{"mutual fund", "sip"}, IncludeSector: true},
	model.CryptoFund:   ClassRule{Extra: []string{"crypto", "blockchain", "defi"}, IncludeSector: true},
	model.CryptoSpot:   ClassRule{QuoteMarker: DefaultQuoteMarker, IncludeSector: true},
	model.CryptoFuture: ClassRule{QuoteMarker: DefaultQuoteMarker, IncludeSector: true},
	model.Future:       ClassRule{Extra: []string{"futures"}, IncludeSector: true},
	model.Option:       ClassRule{IncludeSector: true},
}

// RuleFor returns the keyword policy of an asset class. Unknown classes
// fall back to BaseRule.
func RuleFor(class model.AssetClass) Rule {
	if rule, ok := classRules[class]; ok {
		return rule
	}
	return BaseRule{}
}

// BaseToken returns the lowercased part of symbol before the first
// occurrence of marker, e.g. "BTCUSDT.P" -> "btc". Without the marker, or
// with nothing in front of it, the whole symbol is used.
func BaseToken(symbol, marker string) string {
	upper := strings.ToUpper(symbol)
	if marker != "" {
		if before, _, found := strings.Cut(upper, strings.ToUpper(marker)); found && before != "" {
			return strings.ToLower(before)
		}
	}
	return strings.ToLower(symbol)
}
