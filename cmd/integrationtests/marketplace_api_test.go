package integrationtests

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// PlaceBidHandler Tests
func TestPlaceBidHandler(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name: "Valid_Confirmed_Bid",
			request: map[string]any{
				"auction_id": "1",
				"label_id":   "1",
				"amount":     13000,
				"message":    "We love your sound",
				"confirm":    true,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Bid_Below_Current",
			request: map[string]any{
				"auction_id": "1",
				"label_id":   "1",
				"amount":     12000,
				"confirm":    true,
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "Bid_On_Upcoming_Auction",
			request: map[string]any{
				"auction_id": "2",
				"label_id":   "1",
				"amount":     5000,
				"confirm":    true,
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "Bid_On_Ended_Auction",
			request: map[string]any{
				"auction_id": "3",
				"label_id":   "1",
				"amount":     9000,
				"confirm":    true,
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "Unknown_Label",
			request: map[string]any{
				"auction_id": "1",
				"label_id":   "ghost",
				"amount":     13000,
				"confirm":    true,
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "Invalid_JSON",
			request:    []byte("{auction_id: 'missing quotes', amount: 100}"),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupSeededRouter()
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				bid := data["bid"].(map[string]any)
				require.Equal(t, "1", bid["auction_id"])
				require.Equal(t, "1", bid["label_id"])
				require.Equal(t, 13000.0, bid["amount"])
				require.NotEmpty(t, bid["bid_id"])
				require.Equal(t, 13000.0, data["current_bid"])
				require.Equal(t, 9.0, data["bid_count"])

				_, err := time.Parse(time.RFC3339, bid["created_at"].(string))
				require.NoError(t, err)
			}
		})
	}
}

// The two-step bid flow: an unconfirmed request previews, a confirmed one commits
func TestPlaceBidConfirmationFlow(t *testing.T) {
	router := SetupSeededRouter()

	preview, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", map[string]any{
		"auction_id": "1",
		"label_id":   "1",
		"amount":     13000,
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "bid requires confirmation", preview["message"])

	data := preview["data"].(map[string]any)
	require.Equal(t, true, data["confirmation_required"])
	require.Equal(t, "Amara Soul", data["artist_name"])
	require.Equal(t, 12500.0, data["current_bid"])
	require.Equal(t, 12600.0, data["suggested_minimum"])

	// nothing was committed by the preview
	bids, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/1/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Empty(t, bids["data"].([]any))

	// the confirmed request commits
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", map[string]any{
		"auction_id": "1",
		"label_id":   "1",
		"amount":     13000,
		"confirm":    true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	bids, w = ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/1/bids", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, bids["data"].([]any), 1)
}

// ListAuctionsHandler Tests
func TestListAuctionsHandler(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		wantStatus  int
		wantIDs     []string
		wantStatusF string
	}{
		{name: "All", url: "/auctions", wantStatus: http.StatusOK, wantIDs: []string{"3", "1", "2"}},
		{name: "All_Explicit", url: "/auctions?status=all", wantStatus: http.StatusOK, wantIDs: []string{"3", "1", "2"}},
		{name: "Live_Only", url: "/auctions?status=live", wantStatus: http.StatusOK, wantIDs: []string{"1"}, wantStatusF: "live"},
		{name: "Upcoming_Only", url: "/auctions?status=upcoming", wantStatus: http.StatusOK, wantIDs: []string{"2"}, wantStatusF: "upcoming"},
		{name: "Ended_Only", url: "/auctions?status=ended", wantStatus: http.StatusOK, wantIDs: []string{"3"}, wantStatusF: "ended"},
		{name: "Unknown_Filter", url: "/auctions?status=closed", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupSeededRouter()
			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, tt.url, nil)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus != http.StatusOK {
				return
			}

			auctions := resp["data"].([]any)
			gotIDs := make([]string, 0, len(auctions))
			for _, raw := range auctions {
				a := raw.(map[string]any)
				gotIDs = append(gotIDs, a["auction_id"].(string))
				if tt.wantStatusF != "" {
					require.Equal(t, tt.wantStatusF, a["status"])
				}
			}
			require.Equal(t, tt.wantIDs, gotIDs)
		})
	}
}

// GetAuctionHandler Tests
func TestGetAuctionHandler(t *testing.T) {
	router := SetupSeededRouter()

	t.Run("Live_Auction", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "live", data["status"])
		require.Equal(t, "Amara Soul", data["artist_name"])
		require.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, data["time_remaining"])
		require.Nil(t, data["winner_name"])
	})

	t.Run("Ended_Auction_Has_Winner", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/3", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "ended", data["status"])
		require.Equal(t, "Ended", data["time_remaining"])
		require.Equal(t, "1", data["winner_label_id"])
		require.Equal(t, "Afro Fusion Records", data["winner_name"])
	})

	t.Run("Not_Found", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/nonexistent", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// GetWinningBidHandler Tests
func TestGetWinningBidHandler(t *testing.T) {
	router := SetupSeededRouter()

	// seed two bids on the live auction
	for _, amount := range []float64{13000, 14000} {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/bids", map[string]any{
			"auction_id": "1",
			"label_id":   "2",
			"amount":     amount,
			"confirm":    true,
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	t.Run("With_Bids", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/1/winning", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		require.Equal(t, "1", data["auction_id"])
		require.Equal(t, "2", data["label_id"])
		require.Equal(t, 14000.0, data["amount"])
	})

	t.Run("No_Bids", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/auctions/2/winning", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// RegisterArtistHandler Tests
func TestRegisterArtistHandler(t *testing.T) {
	tests := []struct {
		name       string
		request    any
		wantStatus int
	}{
		{
			name: "Valid_Registration",
			request: map[string]any{
				"name":            "Zuri Sound",
				"email":           "zuri@example.com",
				"location":        "Dar es Salaam, Tanzania",
				"genres":          []string{"Gospel", "Soul"},
				"agreed_to_terms": true,
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "Four_Genres_Rejected",
			request: map[string]any{
				"name":            "Zuri Sound",
				"email":           "zuri@example.com",
				"location":        "Dar es Salaam, Tanzania",
				"genres":          []string{"Gospel", "Soul", "Jazz", "Pop"},
				"agreed_to_terms": true,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Terms_Not_Accepted",
			request: map[string]any{
				"name":            "Zuri Sound",
				"email":           "zuri@example.com",
				"location":        "Dar es Salaam, Tanzania",
				"genres":          []string{"Gospel"},
				"agreed_to_terms": false,
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "Missing_Location",
			request: map[string]any{
				"name":            "Zuri Sound",
				"email":           "zuri@example.com",
				"genres":          []string{"Gospel"},
				"agreed_to_terms": true,
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupTestRouter()
			resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/artists", tt.request)
			require.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusCreated {
				data := resp["data"].(map[string]any)
				require.NotEmpty(t, data["artist_id"])
				require.Equal(t, "Zuri Sound", data["name"])

				trialInfo := data["trial_info"].(map[string]any)
				require.Equal(t, true, trialInfo["is_on_trial"])
				require.Equal(t, 20.0, trialInfo["days_remaining"])
				require.Equal(t, 0.0, trialInfo["posts_used"])
				require.Equal(t, 20.0, trialInfo["max_posts"])
			}
		})
	}
}

// SearchArtistsHandler Tests
func TestSearchArtistsHandler(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		wantNames []string
	}{
		{name: "No_Filter_Returns_All", url: "/artists", wantNames: []string{"Amara Soul", "Thabo Beats", "Keza Voice"}},
		{name: "Query_By_Name", url: "/artists?q=amara", wantNames: []string{"Amara Soul"}},
		{name: "Query_By_Location", url: "/artists?q=kigali", wantNames: []string{"Keza Voice"}},
		{name: "Genre_Filter", url: "/artists?genres=Amapiano", wantNames: []string{"Thabo Beats"}},
		{name: "Query_And_Genre", url: "/artists?q=soul&genres=Afrobeat", wantNames: []string{"Amara Soul"}},
		{name: "No_Match", url: "/artists?q=nonexistent", wantNames: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := SetupSeededRouter()
			resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, tt.url, nil)
			require.Equal(t, http.StatusOK, w.Code)

			artists := resp["data"].([]any)
			gotNames := make([]string, 0, len(artists))
			for _, raw := range artists {
				gotNames = append(gotNames, raw.(map[string]any)["name"].(string))
			}
			require.Equal(t, tt.wantNames, gotNames)
		})
	}
}

// GetArtistHandler Tests
func TestGetArtistHandler(t *testing.T) {
	router := SetupSeededRouter()

	t.Run("Profile_With_Engagement", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/artists/1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		data := resp["data"].(map[string]any)
		a := data["artist"].(map[string]any)
		require.Equal(t, "Amara Soul", a["name"])

		// totals across the five seeded posts
		require.Equal(t, 2330.0, data["total_plays"])
		require.Equal(t, 338.0, data["total_likes"])
		require.Equal(t, "Midnight Groove", data["top_track"].(map[string]any)["title"])
	})

	t.Run("Not_Found", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/artists/nonexistent", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// PostMusicHandler Tests
func TestPostMusicHandler(t *testing.T) {
	router := SetupSeededRouter()

	postBody := map[string]any{
		"title":    "New Single",
		"genre":    "Afrobeat",
		"duration": 215,
	}

	t.Run("Valid_Post_Reports_Quota", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/artists/1/posts", postBody)
		require.Equal(t, http.StatusCreated, w.Code)

		data := resp["data"].(map[string]any)
		require.NotEmpty(t, data["post"].(map[string]any)["post_id"])
		require.Equal(t, 6.0, data["posts_used"])
		require.Equal(t, 14.0, data["posts_left"])
	})

	t.Run("Missing_Duration", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/artists/1/posts", map[string]any{
			"title": "New Single",
			"genre": "Afrobeat",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Artist_Not_Found", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/artists/nonexistent/posts", postBody)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

// The post quota runs out after max_posts uploads
func TestPostMusicQuotaExhaustion(t *testing.T) {
	router := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/artists", map[string]any{
		"name":            "Quota Artist",
		"email":           "quota@example.com",
		"location":        "Accra, Ghana",
		"genres":          []string{"Afrobeat"},
		"agreed_to_terms": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	artistID := resp["data"].(map[string]any)["artist_id"].(string)

	for i := 0; i < 20; i++ {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/artists/"+artistID+"/posts", map[string]any{
			"title":    fmt.Sprintf("Track %d", i+1),
			"genre":    "Afrobeat",
			"duration": 200,
		})
		require.Equal(t, http.StatusCreated, w.Code)
		require.Equal(t, float64(i+1), resp["data"].(map[string]any)["posts_used"])
	}

	// the 21st post is rejected and the count stays at the cap
	_, w = ExecuteRequestAndParse(t, router, http.MethodPost, "/artists/"+artistID+"/posts", map[string]any{
		"title":    "One Too Many",
		"genre":    "Afrobeat",
		"duration": 200,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	profile, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/artists/"+artistID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	trialInfo := profile["data"].(map[string]any)["artist"].(map[string]any)["trial_info"].(map[string]any)
	require.Equal(t, 20.0, trialInfo["posts_used"])
	require.Equal(t, false, trialInfo["is_on_trial"])
}

// RegisterLabelHandler Tests
func TestRegisterLabelHandler(t *testing.T) {
	router := SetupTestRouter()

	resp, w := ExecuteRequestAndParse(t, router, http.MethodPost, "/labels", map[string]any{
		"name":            "Savanna Sounds",
		"email":           "hello@savannasounds.example.com",
		"location":        "Nairobi, Kenya",
		"genres":          []string{"Afrobeat", "Hip-Hop", "R&B", "Soul", "Amapiano", "Gospel"},
		"agreed_to_terms": true,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	data := resp["data"].(map[string]any)
	require.NotEmpty(t, data["label_id"])
	// labels are not capped on genre count
	require.Len(t, data["genres"].([]any), 6)

	list, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/labels", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, list["data"].([]any), 1)
}

// GetLabelHandler Tests
func TestGetLabelHandler(t *testing.T) {
	router := SetupSeededRouter()

	t.Run("Found", func(t *testing.T) {
		resp, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/labels/1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "Afro Fusion Records", resp["data"].(map[string]any)["name"])
	})

	t.Run("Not_Found", func(t *testing.T) {
		_, w := ExecuteRequestAndParse(t, router, http.MethodGet, "/labels/nonexistent", nil)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}
