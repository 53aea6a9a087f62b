package domain

// Default booking values
const (
	DefaultBookingMinutes      = 60
	DefaultSlotIntervalMinutes = 30
)

// Boundary validation constants
const (
	MinPartySize        = 1
	MaxPartySize        = 20
	MinDurationMinutes  = 15
	MaxDurationMinutes  = 240
	DurationStepMinutes = 5

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
