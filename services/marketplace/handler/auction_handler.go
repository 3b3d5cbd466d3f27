package handler

import (
	"errors"
	"fmt"
	"net/http"

	auction "bidstar/internal/auctionService"
	"bidstar/internal/marketerrors"
	model "bidstar/internal/models"
	"bidstar/services/marketplace/helpers"
	"bidstar/utils"

	"github.com/gin-gonic/gin"
)

type AuctionServiceInterface interface {
	ListAuctions(filter string) ([]auction.Detail, error)
	GetAuction(auctionID string) (auction.Detail, error)
	PreviewBid(auctionID string, amount float64) (auction.BidPreview, error)
	PlaceBid(auctionID, labelID string, amount float64, message string) (model.Bid, model.Auction, error)
	GetBidsForAuction(auctionID string) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)
}

type AuctionHandler struct {
	service AuctionServiceInterface
}

func NewAuctionHandler(service AuctionServiceInterface) *AuctionHandler {
	return &AuctionHandler{service: service}
}

// ListAuctionsHandler handles GET /auctions?status=all|live|upcoming|ended
func (h *AuctionHandler) ListAuctionsHandler(c *gin.Context) {
	filter := c.Query("status")

	details, err := h.service.ListAuctions(filter)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("ListAuctionsHandler: error listing auctions", map[string]any{"filter": filter, "error": err.Error()})
		return
	}

	resp := make([]helpers.AuctionResponse, 0, len(details))
	for _, d := range details {
		resp = append(resp, helpers.NewAuctionResponse(d))
	}

	utils.JSONResponse(c, http.StatusOK, resp, "auctions retrieved successfully")
	helpers.LogSuccess("ListAuctionsHandler", "auctions retrieved successfully", map[string]any{
		"filter": filter,
		"count":  len(resp),
	})
}

// GetAuctionHandler handles GET /auctions/:auction_id
func (h *AuctionHandler) GetAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	detail, err := h.service.GetAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetAuctionHandler: error retrieving auction", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewAuctionResponse(detail), "auction retrieved successfully")
	helpers.LogSuccess("GetAuctionHandler", "auction retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"status":     string(detail.Status),
	})
}

// PlaceBidHandler handles POST /bids. An unconfirmed request returns the
// confirmation preview without committing anything; a confirmed request
// records the bid.
func (h *AuctionHandler) PlaceBidHandler(c *gin.Context) {
	var req helpers.PlaceBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PlaceBidHandler", err)
		return
	}

	if !req.Confirm {
		preview, err := h.service.PreviewBid(req.AuctionID, req.Amount)
		if err != nil {
			status, message := helpers.MapErrorToHTTP(err)
			utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
			utils.Warn("PlaceBidHandler: bid preview rejected", map[string]any{
				"auction_id": req.AuctionID,
				"label_id":   req.LabelID,
				"amount":     req.Amount,
				"error":      err.Error(),
			})
			return
		}

		resp := helpers.BidPreviewResponse{
			AuctionID:            preview.AuctionID,
			ArtistName:           preview.ArtistName,
			Amount:               preview.Amount,
			CurrentBid:           preview.CurrentBid,
			SuggestedMinimum:     preview.SuggestedMinimum,
			ConfirmationRequired: true,
		}
		utils.JSONResponse(c, http.StatusOK, resp, "bid requires confirmation")
		return
	}

	bid, updated, err := h.service.PlaceBid(req.AuctionID, req.LabelID, req.Amount, req.Message)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Error("PlaceBidHandler: failed to place bid", map[string]any{
			"handler":    "PlaceBidHandler",
			"auction_id": req.AuctionID,
			"label_id":   req.LabelID,
			"error":      err.Error(),
		})
		return
	}

	resp := helpers.PlaceBidResponse{
		Bid:        helpers.NewBidResponse(bid),
		CurrentBid: updated.CurrentBid,
		BidCount:   updated.BidCount,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "bid placed successfully")
	helpers.LogSuccess("PlaceBidHandler", "bid placed successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"label_id":   bid.LabelID,
		"amount":     bid.Amount,
	})
}

// GetBidsByAuctionHandler handles GET /auctions/:auction_id/bids
func (h *AuctionHandler) GetBidsByAuctionHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bids, err := h.service.GetBidsForAuction(auctionID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetBidsByAuctionHandler: error retrieving bids", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	if bids == nil {
		bids = []model.Bid{}
	}

	utils.JSONResponse(c, http.StatusOK, bids, "bids retrieved successfully")
	helpers.LogSuccess("GetBidsByAuctionHandler", "bids retrieved successfully", map[string]any{
		"auction_id": auctionID,
		"count":      len(bids),
	})
}

// GetWinningBidHandler handles GET /auctions/:auction_id/winning
func (h *AuctionHandler) GetWinningBidHandler(c *gin.Context) {
	auctionID := c.Param("auction_id")

	bid, err := h.service.GetWinningBid(auctionID)
	if err != nil {
		if errors.Is(err, marketerrors.ErrNoBids) {
			utils.JSONError(c, http.StatusNotFound, err, "no winning bid found")
			utils.Info("GetWinningBidHandler: no winning bid found", map[string]any{"auction_id": auctionID})
			return
		}
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetWinningBidHandler: winning bid error", map[string]any{"auction_id": auctionID, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.NewBidResponse(bid), "winning bid retrieved successfully")
	helpers.LogSuccess("GetWinningBidHandler", "winning bid retrieved successfully", map[string]any{
		"bid_id":     bid.BidID,
		"auction_id": bid.AuctionID,
		"label_id":   bid.LabelID,
		"amount":     bid.Amount,
	})
}
