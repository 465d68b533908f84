package handler

import (
	"log/slog"
	"net/http"

	"tradedesk/internal/model"

	"github.com/gin-gonic/gin"
)

// AssetStore is satisfied by both the Postgres repository and the
// in-memory YAML catalog.
type AssetStore interface {
	GetAssets(class model.AssetClass, limit, offset int) ([]model.Asset, error)
	GetAssetTotal(class model.AssetClass) (int, error)
	GetAssetBySymbol(symbol string) (*model.Asset, error)
}

type AssetHandler struct {
	repository AssetStore
}

func NewAssetHandler(repository AssetStore) *AssetHandler {
	return &AssetHandler{repository: repository}
}

func (h *AssetHandler) GetAssets(c *gin.Context) {
	limit := getQueryLimit(c)
	offset := getQueryOffset(c)

	var class model.AssetClass
	if raw := c.Query("class"); raw != "" {
		parsed, err := model.ParseAssetClass(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid asset class"})
			return
		}
		class = parsed
	}

	assets, err := h.repository.GetAssets(class, limit, offset)
	if err != nil {
		slog.Error("error fetching assets", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.repository.GetAssetTotal(class)
	if err != nil {
		slog.Error("error fetching asset total", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	res := AssetListResponse{
		Assets: make([]AssetResponse, 0, len(assets)),
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}
	for _, a := range assets {
		res.Assets = append(res.Assets, toAssetResponse(a))
	}

	c.JSON(http.StatusOK, res)
}

func (h *AssetHandler) GetAsset(c *gin.Context) {
	symbol := c.Param("symbol")

	asset, err := h.repository.GetAssetBySymbol(symbol)
	if err != nil {
		slog.Error("error fetching asset", "error", err, "symbol", symbol)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if asset == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Asset not found"})
		return
	}

	c.JSON(http.StatusOK, toAssetResponse(*asset))
}
