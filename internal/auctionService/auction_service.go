package auction

import (
	"fmt"
	"math"
	"time"

	"bidstar/internal/marketerrors"
	model "bidstar/internal/models"
	"bidstar/internal/repository"
	"bidstar/utils"
)

// SuggestedIncrement is the advisory minimum raise shown to bidders.
// Validation only enforces a strict raise over the current bid.
const SuggestedIncrement = 100

// AuctionService defines the business logic for contract auctions
type AuctionService struct {
	repo repository.MarketplaceDB
	now  func() time.Time
}

// NewAuctionService creates a new AuctionService instance
func NewAuctionService(repo repository.MarketplaceDB) *AuctionService {
	return &AuctionService{
		repo: repo,
		now:  time.Now,
	}
}

// Detail is an auction snapshot enriched with the derived status, the
// formatted time remaining, and resolved artist/winner names.
type Detail struct {
	Auction       model.Auction
	Status        Status
	TimeRemaining string
	ArtistName    string
	WinnerName    string
}

// BidPreview is the confirmation prompt shown before a bid is committed.
type BidPreview struct {
	AuctionID        string
	ArtistName       string
	Amount           float64
	CurrentBid       float64
	SuggestedMinimum float64
}

// ListAuctions returns the detail views of auctions whose derived status
// matches the filter ("all", "", "live", "upcoming" or "ended").
func (s *AuctionService) ListAuctions(filter string) ([]Detail, error) {
	if !ValidStatusFilter(filter) {
		return nil, fmt.Errorf("service: %w - unknown status filter %q", marketerrors.ErrMissingRequiredField, filter)
	}

	auctions, err := s.repo.ListAuctions()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list auctions: %w", err)
	}

	filtered := FilterByStatus(auctions, filter, s.now())
	details := make([]Detail, 0, len(filtered))
	for _, a := range filtered {
		details = append(details, s.buildDetail(a))
	}
	return details, nil
}

// GetAuction returns the enriched detail view for a single auction.
func (s *AuctionService) GetAuction(auctionID string) (Detail, error) {
	if auctionID == "" {
		return Detail{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrMissingRequiredField)
	}

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return Detail{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}
	return s.buildDetail(a), nil
}

func (s *AuctionService) buildDetail(a model.Auction) Detail {
	now := s.now()
	status := DeriveStatus(a.StartTime, a.EndTime, now)

	d := Detail{Auction: a, Status: status}
	switch status {
	case StatusLive:
		d.TimeRemaining = FormatClock(a.EndTime, now)
	case StatusUpcoming:
		d.TimeRemaining = FormatCompact(a.StartTime, now)
	default:
		d.TimeRemaining = "Ended"
	}

	if artist, err := s.repo.GetArtist(a.ArtistID); err == nil {
		d.ArtistName = artist.Name
	}
	if status == StatusEnded && a.WinnerLabelID != "" {
		if label, err := s.repo.GetLabel(a.WinnerLabelID); err == nil {
			d.WinnerName = label.Name
		}
	}
	return d
}

// PreviewBid validates a prospective bid and returns the confirmation
// prompt for it. Nothing is committed.
func (s *AuctionService) PreviewBid(auctionID string, amount float64) (BidPreview, error) {
	a, err := s.validateBid(auctionID, amount)
	if err != nil {
		return BidPreview{}, err
	}

	preview := BidPreview{
		AuctionID:        a.AuctionID,
		Amount:           amount,
		CurrentBid:       a.CurrentBid,
		SuggestedMinimum: a.CurrentBid + SuggestedIncrement,
	}
	if artist, artistErr := s.repo.GetArtist(a.ArtistID); artistErr == nil {
		preview.ArtistName = artist.Name
	}
	return preview, nil
}

// PlaceBid validates and records a label's confirmed bid on a live
// auction, returning the bid and the updated auction.
func (s *AuctionService) PlaceBid(auctionID, labelID string, amount float64, message string) (model.Bid, model.Auction, error) {
	if labelID == "" {
		return model.Bid{}, model.Auction{}, fmt.Errorf("service: %w - empty label ID", marketerrors.ErrMissingRequiredField)
	}
	if _, err := s.repo.GetLabel(labelID); err != nil {
		return model.Bid{}, model.Auction{}, fmt.Errorf("service: failed to resolve bidding label %s: %w", labelID, err)
	}
	if _, err := s.validateBid(auctionID, amount); err != nil {
		return model.Bid{}, model.Auction{}, err
	}

	bid := model.Bid{
		BidID:     utils.GenerateID(),
		AuctionID: auctionID,
		LabelID:   labelID,
		Amount:    amount,
		Message:   message,
		CreatedAt: s.now().UTC(),
	}

	updated, err := s.repo.RecordBidForAuction(bid)
	if err != nil {
		return model.Bid{}, model.Auction{}, fmt.Errorf("service: failed to record bid on auction %s by label %s: %w", auctionID, labelID, err)
	}

	return bid, updated, nil
}

// validateBid checks input validity and the bidding rules, returning the
// auction snapshot the bid was validated against.
func (s *AuctionService) validateBid(auctionID string, amount float64) (model.Auction, error) {
	if auctionID == "" {
		return model.Auction{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrMissingRequiredField)
	}

	a, err := s.repo.GetAuction(auctionID)
	if err != nil {
		return model.Auction{}, fmt.Errorf("service: failed to get auction %s: %w", auctionID, err)
	}

	if status := DeriveStatus(a.StartTime, a.EndTime, s.now()); status != StatusLive {
		return model.Auction{}, fmt.Errorf("service: %w - auction %s is %s", marketerrors.ErrAuctionNotLive, auctionID, status)
	}
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return model.Auction{}, fmt.Errorf("service: %w - bid must be a positive amount", marketerrors.ErrInvalidBidAmount)
	}
	if amount <= a.CurrentBid {
		return model.Auction{}, fmt.Errorf("service: %w - current bid is %.2f", marketerrors.ErrBidBelowCurrent, a.CurrentBid)
	}

	return a, nil
}

// GetBidsForAuction returns all bids placed on an auction
func (s *AuctionService) GetBidsForAuction(auctionID string) ([]model.Bid, error) {
	if auctionID == "" {
		return nil, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrMissingRequiredField)
	}

	bids, err := s.repo.GetBidsByAuction(auctionID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get bids for auction %s: %w", auctionID, err)
	}
	return bids, nil
}

// GetWinningBid returns the highest bid on an auction
func (s *AuctionService) GetWinningBid(auctionID string) (model.Bid, error) {
	if auctionID == "" {
		return model.Bid{}, fmt.Errorf("service: %w - empty auction ID", marketerrors.ErrMissingRequiredField)
	}

	bid, err := s.repo.GetWinningBid(auctionID)
	if err != nil {
		return model.Bid{}, fmt.Errorf("service: failed to get winning bid for auction %s: %w", auctionID, err)
	}
	return bid, nil
}
