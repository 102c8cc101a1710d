package handler

import (
	"fmt"
	"net/http"

	"coin-market/internal/feed"
	"coin-market/internal/marketerrors"
	model "coin-market/internal/models"
	"coin-market/services/auction/helpers"
	"coin-market/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type AuctionServiceInterface interface {
	PlaceBid(lotID int, bidder string, amount decimal.Decimal) (model.AuctionLot, error)
	AddLot(title, description, image string, startingBid decimal.Decimal, durationDays int) (model.AuctionLot, error)
	ListActive() ([]model.AuctionLot, error)
	GetLot(lotID int) (model.AuctionLot, error)
}

// TokenVerifier checks an admin session token and returns its subject.
type TokenVerifier interface {
	Verify(raw string) (string, error)
}

type AuctionHandler struct {
	service  AuctionServiceInterface
	verifier TokenVerifier
	hub      *feed.Hub
}

func NewAuctionHandler(service AuctionServiceInterface, verifier TokenVerifier, hub *feed.Hub) *AuctionHandler {
	return &AuctionHandler{service: service, verifier: verifier, hub: hub}
}

// ListAuctionsHandler handles GET /api/auctions
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	lots, err := h.service.ListActive()
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("ListAuctionsHandler: failed to list auctions", map[string]any{"error": err.Error()})
		return
	}

	if lots == nil {
		lots = []model.AuctionLot{}
	}

	utils.JSONResponse(c, http.StatusOK, lots, "active auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "active auctions retrieved successfully", map[string]any{
		"count": len(lots),
	})
}

// SubmitActionHandler handles POST /api/auctions, dispatching on the action tag.
func (h *AuctionHandler) SubmitActionHandler(c *gin.Context) {
	var req helpers.ActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "SubmitActionHandler", err)
		return
	}

	switch req.Action {
	case helpers.ActionPlaceBid:
		h.placeBid(c, req)
	case helpers.ActionAddAuction:
		h.addAuction(c, req)
	default:
		err := fmt.Errorf("%w: %q", marketerrors.ErrInvalidAction, req.Action)
		utils.JSONError(c, http.StatusBadRequest, err, "unrecognized action")
		utils.Warn("SubmitActionHandler: unrecognized action", map[string]any{"action": req.Action})
	}
}

func (h *AuctionHandler) placeBid(c *gin.Context, req helpers.ActionRequest) {
	lot, err := h.service.PlaceBid(req.AuctionID, req.BidderName, req.BidAmount)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SubmitActionHandler: failed to place bid", map[string]any{
			"auction_id": req.AuctionID,
			"bidder":     req.BidderName,
			"error":      err.Error(),
		})
		return
	}

	h.hub.Broadcast(feed.EventBidPlaced, lot)

	utils.JSONResponse(c, http.StatusOK, lot, "bid placed successfully")
	helpers.LogSuccess("SubmitActionHandler", "bid placed successfully", map[string]any{
		"auction_id":  lot.ID,
		"bidder":      req.BidderName,
		"current_bid": lot.CurrentBid.String(),
		"bid_count":   lot.BidCount,
	})
}

// addAuction requires a valid admin token; lot creation is not a public action.
func (h *AuctionHandler) addAuction(c *gin.Context, req helpers.ActionRequest) {
	if _, err := h.verifier.Verify(helpers.BearerToken(c)); err != nil {
		utils.JSONError(c, http.StatusUnauthorized, marketerrors.ErrInvalidToken, "unauthorized")
		utils.Warn("SubmitActionHandler: rejected add_auction without valid token", map[string]any{"error": err.Error()})
		return
	}

	lot, err := h.service.AddLot(req.Title, req.Description, req.Image, req.StartingBid, req.Duration)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SubmitActionHandler: failed to add auction", map[string]any{
			"title": req.Title,
			"error": err.Error(),
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, lot, "auction created successfully")
	helpers.LogSuccess("SubmitActionHandler", "auction created successfully", map[string]any{
		"auction_id":   lot.ID,
		"title":        lot.Title,
		"starting_bid": lot.StartingBid.String(),
	})
}
