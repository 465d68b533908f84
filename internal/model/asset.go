package model

import (
	"fmt"
	"strings"
)

type AssetClass string

const (
	Equity       AssetClass = "equity"
	Bond         AssetClass = "bond"
	CryptoSpot   AssetClass = "crypto-spot"
	CryptoFuture AssetClass = "crypto-future"
	CryptoFund   AssetClass = "crypto-fund"
	MutualFund   AssetClass = "mutual-fund"
	Future       AssetClass = "future"
	Option       AssetClass = "option"
)

var assetClasses = []AssetClass{
	Equity, Bond, CryptoSpot, CryptoFuture, CryptoFund, MutualFund, Future, Option,
}

func AssetClasses() []AssetClass {
	out := make([]AssetClass, len(assetClasses))
	copy(out, assetClasses)
	return out
}

func (c AssetClass) String() string {
	return string(c)
}

func (c AssetClass) Valid() bool {
	for _, known := range assetClasses {
		if c == known {
			return true
		}
	}
	return false
}

// ParseAssetClass accepts the canonical class names in any case, with
// underscores allowed in place of dashes.
func ParseAssetClass(s string) (AssetClass, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	c := AssetClass(normalized)
	if !c.Valid() {
		return "", fmt.Errorf("unknown asset class %q", s)
	}
	return c, nil
}

type Asset struct {
	Symbol        string
	Name          string
	Class         AssetClass
	Sector        string
	Price         float64
	Change        float64
	ChangePercent float64
	Volume        int64
}

// NormalizeSymbol is the identity used for every symbol comparison.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (a Asset) HasSymbol(symbol string) bool {
	return NormalizeSymbol(a.Symbol) == NormalizeSymbol(symbol)
}
