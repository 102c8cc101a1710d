package handler

import (
	"fmt"
	"net/http"

	model "coin-market/internal/models"
	"coin-market/services/catalog/helpers"
	"coin-market/utils"

	"github.com/gin-gonic/gin"
)

type CatalogServiceInterface interface {
	ListCoins() ([]model.Coin, error)
	GetCoin(id int) (model.Coin, error)
	CreateCoin(coin model.Coin) (model.Coin, error)
	UpdateCoin(id int, coin model.Coin) (model.Coin, error)
	DeleteCoin(id int) error
}

type CoinHandler struct {
	service CatalogServiceInterface
}

func NewCoinHandler(service CatalogServiceInterface) *CoinHandler {
	return &CoinHandler{service: service}
}

// ListCoinsHandler handles GET /api/coins
func (h *CoinHandler) ListCoinsHandler(c *gin.Context) {
	coins, err := h.service.ListCoins()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListCoinsHandler: failed to list coins", map[string]any{"error": err.Error()})
		return
	}

	if coins == nil {
		coins = []model.Coin{}
	}

	utils.JSONResponse(c, http.StatusOK, coins, "coins retrieved successfully")
	helpers.LogSuccess("ListCoinsHandler", "coins retrieved successfully", map[string]any{
		"count": len(coins),
	})
}

// CreateCoinHandler handles POST /api/coins
func (h *CoinHandler) CreateCoinHandler(c *gin.Context) {
	var req helpers.CoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateCoinHandler", err)
		return
	}

	coin, err := h.service.CreateCoin(coinFromRequest(req))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("CreateCoinHandler: failed to create coin", map[string]any{
			"title": req.Title,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, coin, "coin created successfully")
	helpers.LogSuccess("CreateCoinHandler", "coin created successfully", map[string]any{
		"coin_id": coin.ID,
		"title":   coin.Title,
	})
}

// UpdateCoinHandler handles PUT /api/coins/:id
func (h *CoinHandler) UpdateCoinHandler(c *gin.Context) {
	id, err := helpers.ParseIDParam(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid coin id")
		return
	}

	var req helpers.CoinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "UpdateCoinHandler", err)
		return
	}

	coin, err := h.service.UpdateCoin(id, coinFromRequest(req))
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("UpdateCoinHandler: failed to update coin", map[string]any{
			"coin_id": id,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, coin, "coin updated successfully")
	helpers.LogSuccess("UpdateCoinHandler", "coin updated successfully", map[string]any{
		"coin_id": coin.ID,
	})
}

// DeleteCoinHandler handles DELETE /api/coins/:id
func (h *CoinHandler) DeleteCoinHandler(c *gin.Context) {
	id, err := helpers.ParseIDParam(c)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, err, "invalid coin id")
		return
	}

	if err := h.service.DeleteCoin(id); err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("DeleteCoinHandler: failed to delete coin", map[string]any{
			"coin_id": id,
			"error":   err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, gin.H{"id": id}, "coin deleted successfully")
	helpers.LogSuccess("DeleteCoinHandler", "coin deleted successfully", map[string]any{
		"coin_id": id,
	})
}

func coinFromRequest(req helpers.CoinRequest) model.Coin {
	return model.Coin{
		Title:           req.Title,
		Price:           req.Price,
		Weight:          req.Weight,
		Year:            req.Year,
		Description:     req.Description,
		Image:           req.Image,
		HistoricalValue: req.HistoricalValue,
	}
}
