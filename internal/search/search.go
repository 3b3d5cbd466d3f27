package search

import (
	"strings"

	"bidstar/internal/models"
)

// Artists filters the artist list by a free-text query and a genre set.
// The text match is a case-insensitive substring check against name,
// location, or any genre; the genre filter keeps artists whose genres
// intersect the selection. Both conditions are ANDed. An empty query with
// no selected genres returns the input unchanged.
func Artists(artists []models.Artist, query string, selectedGenres []string) []models.Artist {
	query = strings.TrimSpace(query)
	if query == "" && len(selectedGenres) == 0 {
		return artists
	}

	filtered := make([]models.Artist, 0, len(artists))
	for _, a := range artists {
		if query != "" && !matchesQuery(a, query) {
			continue
		}
		if len(selectedGenres) > 0 && !intersects(a.Genres, selectedGenres) {
			continue
		}
		filtered = append(filtered, a)
	}
	return filtered
}

func matchesQuery(a models.Artist, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(a.Name), q) {
		return true
	}
	if strings.Contains(strings.ToLower(a.Location), q) {
		return true
	}
	for _, g := range a.Genres {
		if strings.Contains(strings.ToLower(g), q) {
			return true
		}
	}
	return false
}

func intersects(genres, selected []string) bool {
	for _, g := range genres {
		for _, s := range selected {
			if g == s {
				return true
			}
		}
	}
	return false
}
