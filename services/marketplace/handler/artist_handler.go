package handler

import (
	"fmt"
	"net/http"
	"strings"

	artist "bidstar/internal/artistService"
	model "bidstar/internal/models"
	"bidstar/services/marketplace/helpers"
	"bidstar/utils"

	"github.com/gin-gonic/gin"
)

type ArtistServiceInterface interface {
	Register(req artist.RegisterRequest) (model.Artist, error)
	GetArtist(artistID string) (model.Artist, error)
	SearchArtists(query string, genres []string) ([]model.Artist, error)
	PostMusic(artistID string, req artist.PostRequest) (model.MusicPost, model.Artist, error)
}

type ArtistHandler struct {
	service ArtistServiceInterface
}

func NewArtistHandler(service ArtistServiceInterface) *ArtistHandler {
	return &ArtistHandler{service: service}
}

// RegisterArtistHandler handles POST /artists
func (h *ArtistHandler) RegisterArtistHandler(c *gin.Context) {
	var req helpers.RegisterArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterArtistHandler", err)
		return
	}

	created, err := h.service.Register(artist.RegisterRequest{
		Name:          req.Name,
		Email:         req.Email,
		Location:      req.Location,
		Bio:           req.Bio,
		Genres:        req.Genres,
		Instagram:     req.Instagram,
		Twitter:       req.Twitter,
		YouTube:       req.YouTube,
		AgreedToTerms: req.AgreedToTerms,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("RegisterArtistHandler: registration rejected", map[string]any{"name": req.Name, "error": err.Error()})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, created, "artist registered successfully")
	helpers.LogSuccess("RegisterArtistHandler", "artist registered successfully", map[string]any{
		"artist_id":      created.ArtistID,
		"genres":         created.Genres,
		"trial_end_date": created.TrialInfo.TrialEndDate,
	})
}

// SearchArtistsHandler handles GET /artists?q=...&genres=a,b
func (h *ArtistHandler) SearchArtistsHandler(c *gin.Context) {
	query := c.Query("q")
	var genres []string
	if raw := c.Query("genres"); raw != "" {
		genres = strings.Split(raw, ",")
	}

	artists, err := h.service.SearchArtists(query, genres)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("SearchArtistsHandler: search failed", map[string]any{"query": query, "error": err.Error()})
		return
	}

	if artists == nil {
		artists = []model.Artist{}
	}

	utils.JSONResponse(c, http.StatusOK, artists, "artists retrieved successfully")
	helpers.LogSuccess("SearchArtistsHandler", "artists retrieved successfully", map[string]any{
		"query":  query,
		"genres": genres,
		"count":  len(artists),
	})
}

// GetArtistHandler handles GET /artists/:artist_id
func (h *ArtistHandler) GetArtistHandler(c *gin.Context) {
	artistID := c.Param("artist_id")

	a, err := h.service.GetArtist(artistID)
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("GetArtistHandler: error retrieving artist", map[string]any{"artist_id": artistID, "error": err.Error()})
		return
	}

	engagement := artist.Summarize(a)
	resp := helpers.ArtistProfileResponse{
		Artist:     a,
		TotalPlays: engagement.TotalPlays,
		TotalLikes: engagement.TotalLikes,
		TopTrack:   engagement.TopTrack,
	}

	utils.JSONResponse(c, http.StatusOK, resp, "artist retrieved successfully")
	helpers.LogSuccess("GetArtistHandler", "artist retrieved successfully", map[string]any{
		"artist_id": artistID,
	})
}

// PostMusicHandler handles POST /artists/:artist_id/posts
func (h *ArtistHandler) PostMusicHandler(c *gin.Context) {
	artistID := c.Param("artist_id")

	var req helpers.PostMusicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "PostMusicHandler", err)
		return
	}

	post, updated, err := h.service.PostMusic(artistID, artist.PostRequest{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Duration:    req.Duration,
		CoverImage:  req.CoverImage,
		URL:         req.URL,
	})
	if err != nil {
		status, message := helpers.MapErrorToHTTP(err)
		utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)
		utils.Warn("PostMusicHandler: post rejected", map[string]any{
			"artist_id": artistID,
			"title":     req.Title,
			"error":     err.Error(),
		})
		return
	}

	resp := helpers.PostMusicResponse{
		Post:          post,
		PostsUsed:     updated.TrialInfo.PostsUsed,
		MaxPosts:      updated.TrialInfo.MaxPosts,
		PostsLeft:     updated.TrialInfo.MaxPosts - updated.TrialInfo.PostsUsed,
		DaysRemaining: updated.TrialInfo.DaysRemaining,
	}

	utils.JSONResponse(c, http.StatusCreated, resp, "music posted successfully")
	helpers.LogSuccess("PostMusicHandler", "music posted successfully", map[string]any{
		"artist_id":  artistID,
		"post_id":    post.PostID,
		"posts_used": updated.TrialInfo.PostsUsed,
	})
}
