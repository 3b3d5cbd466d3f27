package search

import (
	"testing"

	model "bidstar/internal/models"

	"github.com/stretchr/testify/require"
)

func sampleArtists() []model.Artist {
	return []model.Artist{
		{ArtistID: "1", Name: "Amara Soul", Location: "Lagos, Nigeria", Genres: []string{"Afrobeat", "Soul", "R&B"}},
		{ArtistID: "2", Name: "Thabo Beats", Location: "Johannesburg, South Africa", Genres: []string{"Amapiano", "Electronic"}},
		{ArtistID: "3", Name: "Keza Voice", Location: "Kigali, Rwanda", Genres: []string{"Gospel", "World Music"}},
	}
}

// Tests Artists
func TestArtists(t *testing.T) {
	t.Parallel()

	artists := sampleArtists()

	tests := []struct {
		name    string
		query   string
		genres  []string
		wantIDs []string
	}{
		{name: "empty_query_no_genres_returns_all", query: "", genres: nil, wantIDs: []string{"1", "2", "3"}},
		{name: "whitespace_query_returns_all", query: "   ", genres: nil, wantIDs: []string{"1", "2", "3"}},
		{name: "match_by_name", query: "amara", wantIDs: []string{"1"}},
		{name: "match_by_name_case_insensitive", query: "THABO", wantIDs: []string{"2"}},
		{name: "match_by_location", query: "kigali", wantIDs: []string{"3"}},
		{name: "match_by_genre_substring", query: "piano", wantIDs: []string{"2"}},
		{name: "query_matches_nothing", query: "zzzz", wantIDs: []string{}},
		{name: "genre_filter_single", genres: []string{"Soul"}, wantIDs: []string{"1"}},
		{name: "genre_filter_union_of_artists", genres: []string{"Soul", "Gospel"}, wantIDs: []string{"1", "3"}},
		{name: "genre_filter_no_overlap", genres: []string{"Jazz"}, wantIDs: []string{}},
		{name: "query_and_genre_both_must_match", query: "lagos", genres: []string{"Amapiano"}, wantIDs: []string{}},
		{name: "query_and_genre_agree", query: "soul", genres: []string{"Afrobeat"}, wantIDs: []string{"1"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := Artists(artists, tc.query, tc.genres)
			gotIDs := make([]string, 0, len(got))
			for _, a := range got {
				gotIDs = append(gotIDs, a.ArtistID)
			}
			require.Equal(t, tc.wantIDs, gotIDs)
		})
	}
}

// An empty filter must hand back the same slice, not a copy
func TestArtists_IdentityOnEmptyFilter(t *testing.T) {
	t.Parallel()

	artists := sampleArtists()
	got := Artists(artists, "", nil)
	require.Len(t, got, len(artists))
	require.Equal(t, artists, got)
}
