package domain

import "time"

// Activity is a bookable experience type (bowling, karaoke, ...) owning a set
// of resources. Read-only from the core's perspective.
type Activity struct {
	ID              int64
	Slug            string
	Name            string
	Summary         *string
	DurationMinutes int
	CreatedAt       time.Time
}

// SessionMinutes returns the default session length for the activity.
func (a *Activity) SessionMinutes() int {
	if a.DurationMinutes > 0 {
		return a.DurationMinutes
	}
	return DefaultBookingMinutes
}
