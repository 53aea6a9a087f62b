package domain

import "time"

// Resource is a concrete bookable unit (a lane, a room) belonging to exactly
// one activity.
type Resource struct {
	ID         int64
	ActivityID int64
	Name       string
	Capacity   int
	CreatedAt  time.Time
}

// Fits returns true if the resource can hold a party of the given size.
func (r *Resource) Fits(size int) bool {
	return size <= r.Capacity
}
