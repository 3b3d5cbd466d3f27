package genre

import (
	"errors"
	"testing"

	"bidstar/internal/marketerrors"

	"github.com/stretchr/testify/require"
)

// Tests Selection.Toggle for artist registration (capped at 3)
func TestSelection_Toggle_ArtistCap(t *testing.T) {
	t.Parallel()

	s := NewSelection(3)

	require.NoError(t, s.Toggle("Afrobeat"))
	require.NoError(t, s.Toggle("Jazz"))
	require.NoError(t, s.Toggle("Soul"))
	require.Equal(t, []string{"Afrobeat", "Jazz", "Soul"}, s.Selected())

	// fourth selection is rejected and the set stays unchanged
	err := s.Toggle("Hip-Hop")
	require.Error(t, err)
	require.True(t, errors.Is(err, marketerrors.ErrGenreLimitExceeded))
	require.Equal(t, []string{"Afrobeat", "Jazz", "Soul"}, s.Selected())

	// re-selecting a chosen genre deselects it, freeing a slot
	require.NoError(t, s.Toggle("Jazz"))
	require.Equal(t, []string{"Afrobeat", "Soul"}, s.Selected())
	require.NoError(t, s.Toggle("Hip-Hop"))
	require.Equal(t, 3, s.Count())
}

// Tests Selection.Toggle for label registration (uncapped)
func TestSelection_Toggle_LabelUncapped(t *testing.T) {
	t.Parallel()

	s := NewSelection(0)
	for _, g := range Catalogue {
		require.NoError(t, s.Toggle(g))
	}
	require.Equal(t, len(Catalogue), s.Count())

	// toggling off still works at any size
	require.NoError(t, s.Toggle(Catalogue[0]))
	require.Equal(t, len(Catalogue)-1, s.Count())
}

// Toggle twice in a row is a no-op
func TestSelection_Toggle_Idempotent(t *testing.T) {
	t.Parallel()

	s := NewSelection(3)
	require.NoError(t, s.Toggle("Reggae"))
	require.NoError(t, s.Toggle("Reggae"))
	require.Equal(t, 0, s.Count())
}

// Tests ValidateCount
func TestValidateCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		genres        []string
		limit         int
		expectedError error
	}{
		{name: "single_genre_artist", genres: []string{"Jazz"}, limit: 3, expectedError: nil},
		{name: "max_genres_artist", genres: []string{"Jazz", "Soul", "Blues"}, limit: 3, expectedError: nil},
		{name: "too_many_genres_artist", genres: []string{"Jazz", "Soul", "Blues", "Pop"}, limit: 3, expectedError: marketerrors.ErrGenreLimitExceeded},
		{name: "empty_selection", genres: nil, limit: 3, expectedError: marketerrors.ErrMissingRequiredField},
		{name: "many_genres_label", genres: []string{"Jazz", "Soul", "Blues", "Pop", "Rock"}, limit: 0, expectedError: nil},
		{name: "empty_selection_label", genres: []string{}, limit: 0, expectedError: marketerrors.ErrMissingRequiredField},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCount(tc.genres, tc.limit)
			if tc.expectedError != nil {
				require.Error(t, err)
				require.True(t, errors.Is(err, tc.expectedError), "expected error: %v, got: %v", tc.expectedError, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
