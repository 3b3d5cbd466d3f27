package auction

import (
	"fmt"
	"time"

	model "bidstar/internal/models"
)

// Status is the displayable lifecycle phase of an auction, always derived
// from its start/end times and the current time, never stored.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusLive     Status = "live"
	StatusEnded    Status = "ended"

	// FilterAll selects every auction regardless of status.
	FilterAll = "all"
)

// DeriveStatus determines the auction phase at the given time.
func DeriveStatus(start, end, now time.Time) Status {
	if now.Before(start) {
		return StatusUpcoming
	}
	if now.Before(end) {
		return StatusLive
	}
	return StatusEnded
}

// ValidStatusFilter reports whether the value is usable as a list filter.
func ValidStatusFilter(filter string) bool {
	switch filter {
	case "", FilterAll, string(StatusLive), string(StatusUpcoming), string(StatusEnded):
		return true
	}
	return false
}

// FilterByStatus keeps the auctions whose derived status matches the
// filter. An empty filter or "all" imposes no constraint.
func FilterByStatus(auctions []model.Auction, filter string, now time.Time) []model.Auction {
	if filter == "" || filter == FilterAll {
		return auctions
	}

	filtered := make([]model.Auction, 0, len(auctions))
	for _, a := range auctions {
		if string(DeriveStatus(a.StartTime, a.EndTime, now)) == filter {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// FormatClock renders the time left until target as a zero-padded
// HH:MM:SS countdown, or "Ended" once the target has passed.
func FormatClock(target, now time.Time) string {
	diff := target.Sub(now)
	if diff <= 0 {
		return "Ended"
	}

	hours := int(diff / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)
	seconds := int(diff % time.Minute / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatCompact renders the time left until target as "3h 42m", or
// "Ended" once the target has passed.
func FormatCompact(target, now time.Time) string {
	diff := target.Sub(now)
	if diff <= 0 {
		return "Ended"
	}

	hours := int(diff / time.Hour)
	minutes := int(diff % time.Hour / time.Minute)
	return fmt.Sprintf("%dh %dm", hours, minutes)
}
