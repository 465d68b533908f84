package repository

import (
	"database/sql"

	"tradedesk/internal/model"
)

type AssetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) UpsertAsset(a model.Asset) error {
	_, err := r.db.Exec(`
		INSERT INTO asset(symbol, name, asset_class, sector, price, change, change_percent, volume)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT ((UPPER(symbol))) DO UPDATE SET
			name = EXCLUDED.name,
			asset_class = EXCLUDED.asset_class,
			sector = EXCLUDED.sector,
			price = EXCLUDED.price,
			change = EXCLUDED.change,
			change_percent = EXCLUDED.change_percent,
			volume = EXCLUDED.volume,
			updated_at = NOW()
	`, model.NormalizeSymbol(a.Symbol), a.Name, string(a.Class), a.Sector, a.Price, a.Change, a.ChangePercent, a.Volume)
	return err
}

func (r *AssetRepository) GetAssets(class model.AssetClass, limit, offset int) ([]model.Asset, error) {
	rows, err := r.db.Query(`
		SELECT symbol, name, asset_class, sector, price, change, change_percent, volume
		FROM asset
		WHERE $1::text = '' OR asset_class = $1
		ORDER BY symbol ASC
		LIMIT $2 OFFSET $3
	`, string(class), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []model.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, *a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return assets, nil
}

func (r *AssetRepository) GetAssetTotal(class model.AssetClass) (int, error) {
	var total int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM asset WHERE $1::text = '' OR asset_class = $1
	`, string(class)).Scan(&total)
	return total, err
}

func (r *AssetRepository) GetAssetBySymbol(symbol string) (*model.Asset, error) {
	row := r.db.QueryRow(`
		SELECT symbol, name, asset_class, sector, price, change, change_percent, volume
		FROM asset
		WHERE UPPER(symbol) = $1
	`, model.NormalizeSymbol(symbol))

	a, err := scanAsset(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	return a, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAsset(row rowScanner) (*model.Asset, error) {
	var a model.Asset
	var class string
	err := row.Scan(&a.Symbol, &a.Name, &class, &a.Sector, &a.Price, &a.Change, &a.ChangePercent, &a.Volume)
	if err != nil {
		return nil, err
	}
	a.Class = model.AssetClass(class)
	return &a, nil
}
