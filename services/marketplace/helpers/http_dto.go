package helpers

import (
	"time"

	auction "bidstar/internal/auctionService"
	model "bidstar/internal/models"
)

// Request DTOs

type PlaceBidRequest struct {
	AuctionID string  `json:"auction_id" binding:"required"`
	LabelID   string  `json:"label_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Message   string  `json:"message"`
	// Confirm commits the bid. Without it the API returns a preview so the
	// caller can confirm the amount and target artist first.
	Confirm bool `json:"confirm"`
}

type RegisterArtistRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Location      string   `json:"location" binding:"required"`
	Bio           string   `json:"bio"`
	Genres        []string `json:"genres" binding:"required"`
	Instagram     string   `json:"instagram"`
	Twitter       string   `json:"twitter"`
	YouTube       string   `json:"youtube"`
	AgreedToTerms bool     `json:"agreed_to_terms"`
}

type RegisterLabelRequest struct {
	Name          string   `json:"name" binding:"required"`
	Email         string   `json:"email" binding:"required,email"`
	Location      string   `json:"location" binding:"required"`
	Description   string   `json:"description"`
	Website       string   `json:"website"`
	Established   string   `json:"established"`
	Genres        []string `json:"genres" binding:"required"`
	AgreedToTerms bool     `json:"agreed_to_terms"`
}

type PostMusicRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Genre       string `json:"genre" binding:"required"`
	Duration    int    `json:"duration" binding:"required,gt=0"`
	CoverImage  string `json:"cover_image"`
	URL         string `json:"url"`
}

// Response DTOs

type BidResponse struct {
	BidID     string  `json:"bid_id"`
	AuctionID string  `json:"auction_id"`
	LabelID   string  `json:"label_id"`
	Amount    float64 `json:"amount"`
	Message   string  `json:"message,omitempty"`
	CreatedAt string  `json:"created_at"`
}

type PlaceBidResponse struct {
	Bid        BidResponse `json:"bid"`
	CurrentBid float64     `json:"current_bid"`
	BidCount   int         `json:"bid_count"`
}

type BidPreviewResponse struct {
	AuctionID            string  `json:"auction_id"`
	ArtistName           string  `json:"artist_name"`
	Amount               float64 `json:"amount"`
	CurrentBid           float64 `json:"current_bid"`
	SuggestedMinimum     float64 `json:"suggested_minimum"`
	ConfirmationRequired bool    `json:"confirmation_required"`
}

type AuctionResponse struct {
	AuctionID     string  `json:"auction_id"`
	ArtistID      string  `json:"artist_id"`
	ArtistName    string  `json:"artist_name,omitempty"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	StartingBid   float64 `json:"starting_bid"`
	CurrentBid    float64 `json:"current_bid"`
	BidCount      int     `json:"bid_count"`
	EntryFee      float64 `json:"entry_fee"`
	Status        string  `json:"status"`
	TimeRemaining string  `json:"time_remaining"`
	WinnerLabelID string  `json:"winner_label_id,omitempty"`
	WinnerName    string  `json:"winner_name,omitempty"`
}

type ArtistProfileResponse struct {
	Artist     model.Artist     `json:"artist"`
	TotalPlays int              `json:"total_plays"`
	TotalLikes int              `json:"total_likes"`
	TopTrack   *model.MusicPost `json:"top_track,omitempty"`
}

type PostMusicResponse struct {
	Post          model.MusicPost `json:"post"`
	PostsUsed     int             `json:"posts_used"`
	MaxPosts      int             `json:"max_posts"`
	PostsLeft     int             `json:"posts_left"`
	DaysRemaining int             `json:"days_remaining"`
}

// NewBidResponse converts a bid model to its response shape.
func NewBidResponse(bid model.Bid) BidResponse {
	return BidResponse{
		BidID:     bid.BidID,
		AuctionID: bid.AuctionID,
		LabelID:   bid.LabelID,
		Amount:    bid.Amount,
		Message:   bid.Message,
		CreatedAt: bid.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// NewAuctionResponse converts an auction detail to its response shape.
func NewAuctionResponse(d auction.Detail) AuctionResponse {
	return AuctionResponse{
		AuctionID:     d.Auction.AuctionID,
		ArtistID:      d.Auction.ArtistID,
		ArtistName:    d.ArtistName,
		Title:         d.Auction.Title,
		Description:   d.Auction.Description,
		StartTime:     d.Auction.StartTime.UTC().Format(time.RFC3339),
		EndTime:       d.Auction.EndTime.UTC().Format(time.RFC3339),
		StartingBid:   d.Auction.StartingBid,
		CurrentBid:    d.Auction.CurrentBid,
		BidCount:      d.Auction.BidCount,
		EntryFee:      d.Auction.EntryFee,
		Status:        string(d.Status),
		TimeRemaining: d.TimeRemaining,
		WinnerLabelID: d.Auction.WinnerLabelID,
		WinnerName:    d.WinnerName,
	}
}
