package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// Booking represents a reservation of one resource for one time range.
// StartAt is an absolute UTC instant; the venue wall-clock view of it is
// derived via VenueClock.
type Booking struct {
	ID              int64
	Reference       string // customer-facing reservation number (UUID)
	Email           string
	GuestName       *string
	ResourceID      int64
	StartAt         time.Time
	DurationMinutes int
	Size            int
	Status          BookingStatus

	// Add-on ids associated with the booking, in catalog order.
	AddOnIDs []int64

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EndAt returns the exclusive end of the booked range.
func (b *Booking) EndAt() time.Time {
	return b.StartAt.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

// IsActive returns true if the booking still occupies its resource.
// Only cancellation releases a booking's time range.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// Overlaps reports whether the booking's range intersects [start, end).
// Ranges are half-open: a booking ending exactly at start (or starting
// exactly at end) does not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartAt.Before(end) && b.EndAt().After(start)
}
