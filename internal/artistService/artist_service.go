package artist

import (
	"fmt"
	"time"

	"bidstar/internal/genre"
	"bidstar/internal/marketerrors"
	model "bidstar/internal/models"
	"bidstar/internal/repository"
	"bidstar/internal/search"
	"bidstar/internal/trial"
	"bidstar/utils"
)

// ArtistService defines the business logic for artist profiles: the
// registration flow, the trial-gated post-music flow, and discovery.
type ArtistService struct {
	repo       repository.MarketplaceDB
	trial      trial.Settings
	genreLimit int
	now        func() time.Time
}

// NewArtistService creates a new ArtistService instance
func NewArtistService(repo repository.MarketplaceDB, trialSettings trial.Settings, genreLimit int) *ArtistService {
	return &ArtistService{
		repo:       repo,
		trial:      trialSettings,
		genreLimit: genreLimit,
		now:        time.Now,
	}
}

// RegisterRequest carries the artist registration form fields.
type RegisterRequest struct {
	Name          string
	Email         string
	Location      string
	Bio           string
	Genres        []string
	Instagram     string
	Twitter       string
	YouTube       string
	AgreedToTerms bool
}

// PostRequest carries the post-music form fields.
type PostRequest struct {
	Title       string
	Description string
	Genre       string
	Duration    int
	CoverImage  string
	URL         string
}

// Engagement aggregates play and like counters across an artist's posts.
type Engagement struct {
	TotalPlays int
	TotalLikes int
	TopTrack   *model.MusicPost
}

// Register validates the registration form and creates the artist with a
// fresh trial window.
func (s *ArtistService) Register(req RegisterRequest) (model.Artist, error) {
	if err := requireFields(map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"location": req.Location,
	}); err != nil {
		return model.Artist{}, err
	}
	if err := genre.ValidateCount(req.Genres, s.genreLimit); err != nil {
		return model.Artist{}, fmt.Errorf("service: %w", err)
	}
	if !req.AgreedToTerms {
		return model.Artist{}, fmt.Errorf("service: %w", marketerrors.ErrTermsNotAccepted)
	}

	now := s.now().UTC()
	artist := model.Artist{
		ArtistID: utils.GenerateID(),
		Name:     req.Name,
		Email:    req.Email,
		Bio:      req.Bio,
		Genres:   append([]string(nil), req.Genres...),
		Location: req.Location,
		SocialMedia: model.SocialMedia{
			Instagram: req.Instagram,
			Twitter:   req.Twitter,
			YouTube:   req.YouTube,
		},
		MusicSamples: []model.MusicSample{},
		MusicPosts:   []model.MusicPost{},
		JoinDate:     now,
		TrialInfo:    trial.New(now, s.trial),
	}

	if err := s.repo.AddArtist(artist); err != nil {
		return model.Artist{}, fmt.Errorf("service: failed to store artist %s: %w", artist.ArtistID, err)
	}
	return artist, nil
}

// GetArtist returns the artist with trial fields refreshed.
func (s *ArtistService) GetArtist(artistID string) (model.Artist, error) {
	if artistID == "" {
		return model.Artist{}, fmt.Errorf("service: %w - empty artist ID", marketerrors.ErrMissingRequiredField)
	}

	a, err := s.repo.GetArtist(artistID)
	if err != nil {
		return model.Artist{}, fmt.Errorf("service: failed to get artist %s: %w", artistID, err)
	}
	a.TrialInfo = trial.Refresh(a.TrialInfo, s.now())
	return a, nil
}

// SearchArtists filters the artist list by free-text query and genres.
func (s *ArtistService) SearchArtists(query string, genres []string) ([]model.Artist, error) {
	artists, err := s.repo.ListArtists()
	if err != nil {
		return nil, fmt.Errorf("service: failed to list artists: %w", err)
	}

	results := search.Artists(artists, query, genres)
	now := s.now()
	for i := range results {
		results[i].TrialInfo = trial.Refresh(results[i].TrialInfo, now)
	}
	return results, nil
}

// PostMusic publishes a track for the artist, consuming trial quota. The
// quota gate runs here against a snapshot and again inside the repository
// under its lock.
func (s *ArtistService) PostMusic(artistID string, req PostRequest) (model.MusicPost, model.Artist, error) {
	if artistID == "" {
		return model.MusicPost{}, model.Artist{}, fmt.Errorf("service: %w - empty artist ID", marketerrors.ErrMissingRequiredField)
	}
	if err := requireFields(map[string]string{
		"title": req.Title,
		"genre": req.Genre,
	}); err != nil {
		return model.MusicPost{}, model.Artist{}, err
	}
	if req.Duration <= 0 {
		return model.MusicPost{}, model.Artist{}, fmt.Errorf("service: %w - duration must be a positive number of seconds", marketerrors.ErrMissingRequiredField)
	}

	a, err := s.repo.GetArtist(artistID)
	if err != nil {
		return model.MusicPost{}, model.Artist{}, fmt.Errorf("service: failed to get artist %s: %w", artistID, err)
	}

	now := s.now()
	if err := trial.CanPost(a.TrialInfo, now, s.trial); err != nil {
		return model.MusicPost{}, model.Artist{}, fmt.Errorf("service: posting blocked for artist %s: %w", artistID, err)
	}

	post := model.MusicPost{
		PostID:      utils.GenerateID(),
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Duration:    req.Duration,
		CoverImage:  req.CoverImage,
		UploadDate:  now.UTC(),
	}

	updated, err := s.repo.AppendMusicPost(artistID, post)
	if err != nil {
		return model.MusicPost{}, model.Artist{}, fmt.Errorf("service: failed to append post for artist %s: %w", artistID, err)
	}
	updated.TrialInfo = trial.Refresh(updated.TrialInfo, now)

	return post, updated, nil
}

// Summarize computes the engagement totals shown on the artist's
// analytics view.
func Summarize(a model.Artist) Engagement {
	var e Engagement
	for i := range a.MusicPosts {
		post := &a.MusicPosts[i]
		e.TotalPlays += post.Plays
		e.TotalLikes += post.Likes
		if e.TopTrack == nil || post.Plays > e.TopTrack.Plays {
			e.TopTrack = post
		}
	}
	return e
}

func requireFields(fields map[string]string) error {
	for name, value := range fields {
		if value == "" {
			return fmt.Errorf("service: %w - %s is required", marketerrors.ErrMissingRequiredField, name)
		}
	}
	return nil
}
