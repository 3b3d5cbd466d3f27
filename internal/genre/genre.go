package genre

import (
	"fmt"

	"bidstar/internal/marketerrors"
)

// Catalogue is the set of genres offered across registration and search.
var Catalogue = []string{
	"Afrobeat",
	"Hip-Hop",
	"R&B",
	"Jazz",
	"Soul",
	"Amapiano",
	"Rap",
	"Pop",
	"Rock",
	"Electronic",
	"World Music",
	"Gospel",
	"Reggae",
	"Blues",
}

// Selection tracks the genres chosen on a registration form. A limit of
// zero means unlimited (record labels); artists are capped.
type Selection struct {
	limit    int
	selected []string
}

// NewSelection creates an empty selection with the given cap.
func NewSelection(limit int) *Selection {
	return &Selection{limit: limit}
}

// Toggle selects the genre, or deselects it if already chosen. Selecting
// beyond the cap fails and leaves the selection unchanged.
func (s *Selection) Toggle(g string) error {
	for i, existing := range s.selected {
		if existing == g {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return nil
		}
	}
	if s.limit > 0 && len(s.selected) >= s.limit {
		return fmt.Errorf("toggle genre %s: %w - up to %d genres allowed", g, marketerrors.ErrGenreLimitExceeded, s.limit)
	}
	s.selected = append(s.selected, g)
	return nil
}

// Selected returns the chosen genres in selection order.
func (s *Selection) Selected() []string {
	return append([]string(nil), s.selected...)
}

// Count returns the number of chosen genres.
func (s *Selection) Count() int {
	return len(s.selected)
}

// ValidateCount checks a submitted genre list against the entity's cap.
func ValidateCount(genres []string, limit int) error {
	if len(genres) == 0 {
		return fmt.Errorf("%w - at least one genre required", marketerrors.ErrMissingRequiredField)
	}
	if limit > 0 && len(genres) > limit {
		return fmt.Errorf("%w - up to %d genres allowed", marketerrors.ErrGenreLimitExceeded, limit)
	}
	return nil
}
