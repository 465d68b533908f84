// Package catalog loads the static asset catalog from YAML and serves
// lookups from memory.
package catalog

import (
	"errors"
	"fmt"
	"os"

	"tradedesk/internal/model"

	"gopkg.in/yaml.v3"
)

var (
	ErrDuplicateSymbol   = errors.New("duplicate asset symbol")
	ErrUnknownAssetClass = errors.New("unknown asset class")
)

type assetFile struct {
	Assets []assetEntry `yaml:"assets"`
}

type assetEntry struct {
	Symbol        string  `yaml:"symbol"`
	Name          string  `yaml:"name"`
	Class         string  `yaml:"class"`
	Sector        string  `yaml:"sector"`
	Price         float64 `yaml:"price"`
	Change        float64 `yaml:"change"`
	ChangePercent float64 `yaml:"change_percent"`
	Volume        int64   `yaml:"volume"`
}

// Catalog is an immutable, ordered set of assets with unique symbols.
type Catalog struct {
	assets []model.Asset
	index  map[string]int
}

func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read asset catalog: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Catalog, error) {
	var file assetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse asset catalog: %w", err)
	}

	assets := make([]model.Asset, 0, len(file.Assets))
	for i, entry := range file.Assets {
		if model.NormalizeSymbol(entry.Symbol) == "" {
			return nil, fmt.Errorf("asset %d: symbol is required", i)
		}

		class, err := model.ParseAssetClass(entry.Class)
		if err != nil {
			return nil, fmt.Errorf("asset %s: %w: %q", entry.Symbol, ErrUnknownAssetClass, entry.Class)
		}

		assets = append(assets, model.Asset{
			Symbol:        entry.Symbol,
			Name:          entry.Name,
			Class:         class,
			Sector:        entry.Sector,
			Price:         entry.Price,
			Change:        entry.Change,
			ChangePercent: entry.ChangePercent,
			Volume:        entry.Volume,
		})
	}

	return New(assets)
}

// New builds a catalog, rejecting symbols that collide case-insensitively.
func New(assets []model.Asset) (*Catalog, error) {
	c := &Catalog{
		assets: make([]model.Asset, 0, len(assets)),
		index:  make(map[string]int, len(assets)),
	}

	for _, a := range assets {
		key := model.NormalizeSymbol(a.Symbol)
		if _, ok := c.index[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateSymbol, key)
		}
		c.index[key] = len(c.assets)
		c.assets = append(c.assets, a)
	}

	return c, nil
}

func (c *Catalog) Lookup(symbol string) (model.Asset, bool) {
	i, ok := c.index[model.NormalizeSymbol(symbol)]
	if !ok {
		return model.Asset{}, false
	}
	return c.assets[i], true
}

func (c *Catalog) Assets() []model.Asset {
	out := make([]model.Asset, len(c.assets))
	copy(out, c.assets)
	return out
}

func (c *Catalog) filter(class model.AssetClass) []model.Asset {
	if class == "" {
		return c.assets
	}
	var out []model.Asset
	for _, a := range c.assets {
		if a.Class == class {
			out = append(out, a)
		}
	}
	return out
}

func (c *Catalog) GetAssets(class model.AssetClass, limit, offset int) ([]model.Asset, error) {
	matching := c.filter(class)
	if offset >= len(matching) {
		return []model.Asset{}, nil
	}
	end := offset + limit
	if end > len(matching) {
		end = len(matching)
	}
	out := make([]model.Asset, end-offset)
	copy(out, matching[offset:end])
	return out, nil
}

func (c *Catalog) GetAssetTotal(class model.AssetClass) (int, error) {
	return len(c.filter(class)), nil
}

func (c *Catalog) GetAssetBySymbol(symbol string) (*model.Asset, error) {
	a, ok := c.Lookup(symbol)
	if !ok {
		return nil, nil
	}
	return &a, nil
}
