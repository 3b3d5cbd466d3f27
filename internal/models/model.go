package models

import "time"

// Artist represents a musician offering contracts through auctions
type Artist struct {
	ArtistID     string        `json:"artist_id"`
	Name         string        `json:"name"`
	Email        string        `json:"email"`
	Bio          string        `json:"bio"`
	Genres       []string      `json:"genres"`
	Location     string        `json:"location"`
	ProfileImage string        `json:"profile_image,omitempty"`
	MusicSamples []MusicSample `json:"music_samples"`
	MusicPosts   []MusicPost   `json:"music_posts"`
	SocialMedia  SocialMedia   `json:"social_media,omitempty"`
	Verified     bool          `json:"verified"`
	Rating       float64       `json:"rating"`
	TotalBids    int           `json:"total_bids"`
	JoinDate     time.Time     `json:"join_date"`
	TrialInfo    TrialInfo     `json:"trial_info"`
}

// SocialMedia holds an artist's optional social handles
type SocialMedia struct {
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

// MusicSample is a short showcase track attached to an artist profile
type MusicSample struct {
	SampleID string `json:"sample_id"`
	Title    string `json:"title"`
	Duration int    `json:"duration"` // seconds
	URL      string `json:"url"`
	Genre    string `json:"genre"`
}

// MusicPost is a track published through the post-music flow
type MusicPost struct {
	PostID      string    `json:"post_id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Genre       string    `json:"genre"`
	Duration    int       `json:"duration"` // seconds
	CoverImage  string    `json:"cover_image,omitempty"`
	UploadDate  time.Time `json:"upload_date"`
	Likes       int       `json:"likes"`
	Plays       int       `json:"plays"`
}

// RecordLabel represents a label bidding on artist contracts
type RecordLabel struct {
	LabelID     string   `json:"label_id"`
	Name        string   `json:"name"`
	Email       string   `json:"email"`
	Description string   `json:"description"`
	Logo        string   `json:"logo,omitempty"`
	Website     string   `json:"website,omitempty"`
	Genres      []string `json:"genres"`
	Location    string   `json:"location"`
	Established string   `json:"established"`
	Verified    bool     `json:"verified"`
}

// Auction is a time-boxed bidding process for a contract with an artist.
// Status is never stored; it is derived from the start/end times and the
// current time (see the auction service).
type Auction struct {
	AuctionID     string    `json:"auction_id"`
	ArtistID      string    `json:"artist_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	StartTime     time.Time `json:"start_time"`
	EndTime       time.Time `json:"end_time"`
	StartingBid   float64   `json:"starting_bid"`
	CurrentBid    float64   `json:"current_bid"`
	BidCount      int       `json:"bid_count"`
	EntryFee      float64   `json:"entry_fee"`
	WinnerLabelID string    `json:"winner_label_id,omitempty"`
}

// Bid represents a label's offer on a live auction
type Bid struct {
	BidID     string    `json:"bid_id"`
	AuctionID string    `json:"auction_id"`
	LabelID   string    `json:"label_id"`
	Amount    float64   `json:"amount"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// TrialInfo tracks an artist's free-trial window and posting quota.
// DaysRemaining and IsOnTrial are snapshots; refresh them through the
// trial package before serving them.
type TrialInfo struct {
	IsOnTrial      bool      `json:"is_on_trial"`
	TrialStartDate time.Time `json:"trial_start_date"`
	TrialEndDate   time.Time `json:"trial_end_date"`
	DaysRemaining  int       `json:"days_remaining"`
	PostsUsed      int       `json:"posts_used"`
	MaxPosts       int       `json:"max_posts"`
}
