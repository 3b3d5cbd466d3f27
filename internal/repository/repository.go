package repository

import (
	"fmt"
	"sort"
	"sync"

	"bidstar/internal/marketerrors"
	model "bidstar/internal/models"
)

// MarketplaceDB defines the storage interface for the marketplace. It
// stands in for a future backend API: reads return current snapshots,
// writes apply validated updates.
type MarketplaceDB interface {
	AddArtist(artist model.Artist) error
	GetArtist(artistID string) (model.Artist, error)
	ListArtists() ([]model.Artist, error)
	AppendMusicPost(artistID string, post model.MusicPost) (model.Artist, error)

	AddLabel(label model.RecordLabel) error
	GetLabel(labelID string) (model.RecordLabel, error)
	ListLabels() ([]model.RecordLabel, error)

	AddAuction(auction model.Auction) error
	GetAuction(auctionID string) (model.Auction, error)
	ListAuctions() ([]model.Auction, error)

	RecordBidForAuction(bid model.Bid) (model.Auction, error)
	GetBidsByAuction(auctionID string) ([]model.Bid, error)
	GetWinningBid(auctionID string) (model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of MarketplaceDB
type MemoryRepo struct {
	mu       sync.RWMutex
	artists  map[string]model.Artist      // key: artistID
	labels   map[string]model.RecordLabel // key: labelID
	auctions map[string]model.Auction     // key: auctionID
	bids     map[string][]model.Bid       // key: auctionID -> bids in arrival order
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		artists:  make(map[string]model.Artist),
		labels:   make(map[string]model.RecordLabel),
		auctions: make(map[string]model.Auction),
		bids:     make(map[string][]model.Bid),
	}
}

// AddArtist stores a newly registered artist
func (r *MemoryRepo) AddArtist(artist model.Artist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.artists[artist.ArtistID] = artist
	return nil
}

// GetArtist returns the artist snapshot for the given id
func (r *MemoryRepo) GetArtist(artistID string) (model.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artist, ok := r.artists[artistID]
	if !ok {
		return model.Artist{}, fmt.Errorf("get artist %s: %w", artistID, marketerrors.ErrArtistNotFound)
	}
	return artist, nil
}

// ListArtists returns all artists sorted by id
func (r *MemoryRepo) ListArtists() ([]model.Artist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	artists := make([]model.Artist, 0, len(r.artists))
	for _, a := range r.artists {
		artists = append(artists, a)
	}
	sort.Slice(artists, func(i, j int) bool { return artists[i].ArtistID < artists[j].ArtistID })
	return artists, nil
}

// AppendMusicPost attaches a post to the artist and consumes one unit of
// the posting quota. The quota check is repeated under the lock so
// posts_used can never exceed max_posts regardless of caller interleaving.
func (r *MemoryRepo) AppendMusicPost(artistID string, post model.MusicPost) (model.Artist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	artist, ok := r.artists[artistID]
	if !ok {
		return model.Artist{}, fmt.Errorf("append post for artist %s: %w", artistID, marketerrors.ErrArtistNotFound)
	}
	if artist.TrialInfo.PostsUsed >= artist.TrialInfo.MaxPosts {
		return model.Artist{}, fmt.Errorf("append post for artist %s: %w", artistID, marketerrors.ErrQuotaExceeded)
	}

	artist.MusicPosts = append(append([]model.MusicPost(nil), artist.MusicPosts...), post)
	artist.TrialInfo.PostsUsed++
	r.artists[artistID] = artist
	return artist, nil
}

// AddLabel stores a newly registered record label
func (r *MemoryRepo) AddLabel(label model.RecordLabel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.labels[label.LabelID] = label
	return nil
}

// GetLabel returns the label snapshot for the given id
func (r *MemoryRepo) GetLabel(labelID string) (model.RecordLabel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	label, ok := r.labels[labelID]
	if !ok {
		return model.RecordLabel{}, fmt.Errorf("get label %s: %w", labelID, marketerrors.ErrLabelNotFound)
	}
	return label, nil
}

// ListLabels returns all record labels sorted by id
func (r *MemoryRepo) ListLabels() ([]model.RecordLabel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	labels := make([]model.RecordLabel, 0, len(r.labels))
	for _, l := range r.labels {
		labels = append(labels, l)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i].LabelID < labels[j].LabelID })
	return labels, nil
}

// AddAuction stores an auction supplied by the external data source
func (r *MemoryRepo) AddAuction(auction model.Auction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.auctions[auction.AuctionID] = auction
	return nil
}

// GetAuction returns the auction snapshot for the given id
func (r *MemoryRepo) GetAuction(auctionID string) (model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auction, ok := r.auctions[auctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("get auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}
	return auction, nil
}

// ListAuctions returns all auctions sorted by start time
func (r *MemoryRepo) ListAuctions() ([]model.Auction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	auctions := make([]model.Auction, 0, len(r.auctions))
	for _, a := range r.auctions {
		auctions = append(auctions, a)
	}
	sort.Slice(auctions, func(i, j int) bool { return auctions[i].StartTime.Before(auctions[j].StartTime) })
	return auctions, nil
}

// RecordBidForAuction appends an accepted bid and advances the auction's
// current bid and bid count in one step. The amount is re-checked against
// the current bid under the lock, so at most one bid wins each increment.
func (r *MemoryRepo) RecordBidForAuction(bid model.Bid) (model.Auction, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	auction, ok := r.auctions[bid.AuctionID]
	if !ok {
		return model.Auction{}, fmt.Errorf("record bid for auction %s: %w", bid.AuctionID, marketerrors.ErrAuctionNotFound)
	}
	if bid.Amount <= auction.CurrentBid {
		return model.Auction{}, fmt.Errorf("record bid for auction %s: %w - current bid is %.2f", bid.AuctionID, marketerrors.ErrBidBelowCurrent, auction.CurrentBid)
	}

	auction.CurrentBid = bid.Amount
	auction.BidCount++
	r.auctions[bid.AuctionID] = auction
	r.bids[bid.AuctionID] = append(r.bids[bid.AuctionID], bid)

	return auction, nil
}

// GetBidsByAuction returns all bids for an auction
func (r *MemoryRepo) GetBidsByAuction(auctionID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.auctions[auctionID]; !ok {
		return nil, fmt.Errorf("get bids for auction %s: %w", auctionID, marketerrors.ErrAuctionNotFound)
	}

	return append([]model.Bid(nil), r.bids[auctionID]...), nil
}

// GetWinningBid returns the highest bid for an auction. Ties go to the
// earliest bid.
func (r *MemoryRepo) GetWinningBid(auctionID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[auctionID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get winning bid for auction %s: %w", auctionID, marketerrors.ErrNoBids)
	}

	winning := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > winning.Amount || (b.Amount == winning.Amount && b.CreatedAt.Before(winning.CreatedAt)) {
			winning = b
		}
	}
	return winning, nil
}
