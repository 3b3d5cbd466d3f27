package trial

import (
	"math"
	"time"

	"bidstar/internal/marketerrors"
	"bidstar/internal/models"
)

// Settings controls the trial window granted to newly registered artists.
type Settings struct {
	Days     int
	MaxPosts int
	// RequireActiveTrial rejects posting once the trial window has lapsed,
	// even if quota remains. The default marketplace behavior gates on the
	// post count alone.
	RequireActiveTrial bool
}

// New creates the trial info for an artist registering at the given time.
func New(now time.Time, s Settings) models.TrialInfo {
	end := now.Add(time.Duration(s.Days) * 24 * time.Hour)
	return models.TrialInfo{
		IsOnTrial:      true,
		TrialStartDate: now,
		TrialEndDate:   end,
		DaysRemaining:  DaysRemaining(end, now),
		PostsUsed:      0,
		MaxPosts:       s.MaxPosts,
	}
}

// DaysRemaining returns the whole days left until the trial ends, rounded
// up and clamped at zero.
func DaysRemaining(trialEnd, now time.Time) int {
	days := int(math.Ceil(trialEnd.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// Refresh recomputes the derived trial fields against the given time.
func Refresh(ti models.TrialInfo, now time.Time) models.TrialInfo {
	ti.DaysRemaining = DaysRemaining(ti.TrialEndDate, now)
	ti.IsOnTrial = now.Before(ti.TrialEndDate) && ti.PostsUsed < ti.MaxPosts
	return ti
}

// CanPost reports whether the artist may publish another track.
func CanPost(ti models.TrialInfo, now time.Time, s Settings) error {
	if ti.PostsUsed >= ti.MaxPosts {
		return marketerrors.ErrQuotaExceeded
	}
	if s.RequireActiveTrial && !now.Before(ti.TrialEndDate) {
		return marketerrors.ErrTrialExpired
	}
	return nil
}

// RecordPost consumes one post from the quota. The trial info is returned
// unchanged alongside the error when the quota is already exhausted.
func RecordPost(ti models.TrialInfo, now time.Time, s Settings) (models.TrialInfo, error) {
	if err := CanPost(ti, now, s); err != nil {
		return ti, err
	}
	ti.PostsUsed++
	return Refresh(ti, now), nil
}
