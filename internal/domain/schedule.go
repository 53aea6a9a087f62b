package domain

import (
	"time"

	"github.com/hartvaneindhoven/HVE-BookingService/pkg/types"
)

// VenueClock converts an absolute instant to the venue's wall clock.
// The venue stores and displays UTC wall-clock values, so the conversion is
// the identity on the UTC view. A real timezone shift would go here.
func VenueClock(at time.Time) time.Time {
	return at.UTC()
}

// OpeningHours are the venue's open and close hours on one weekday,
// in whole local hours (0-23).
type OpeningHours struct {
	OpenHour  int
	CloseHour int
}

// WeekSchedule maps weekdays to opening hours. Lookups are total: weekdays
// without an entry resolve to Fallback, so callers never see a missing day.
type WeekSchedule struct {
	Days     map[time.Weekday]OpeningHours
	Fallback OpeningHours
}

// DefaultWeekSchedule returns the venue's standard week.
func DefaultWeekSchedule() WeekSchedule {
	return WeekSchedule{
		Days: map[time.Weekday]OpeningHours{
			time.Sunday:    {OpenHour: 10, CloseHour: 22},
			time.Monday:    {OpenHour: 12, CloseHour: 22},
			time.Tuesday:   {OpenHour: 12, CloseHour: 22},
			time.Wednesday: {OpenHour: 12, CloseHour: 22},
			time.Thursday:  {OpenHour: 12, CloseHour: 23},
			time.Friday:    {OpenHour: 10, CloseHour: 23},
			time.Saturday:  {OpenHour: 10, CloseHour: 22},
		},
		Fallback: OpeningHours{OpenHour: 12, CloseHour: 22},
	}
}

// HoursFor returns the opening hours for the venue-local day of date.
func (s WeekSchedule) HoursFor(date time.Time) OpeningHours {
	if hours, ok := s.Days[VenueClock(date).Weekday()]; ok {
		return hours
	}
	return s.Fallback
}

// Slots generates the candidate start times for date: one entry per
// intervalMinutes step from open (inclusive) to close (exclusive). The
// sequence is pure and deterministic; calling again with the same inputs
// yields an identical slice. Intervals that do not divide 60 generate valid
// but hour-unaligned grids.
func (s WeekSchedule) Slots(date time.Time, intervalMinutes int) []types.TimeString {
	return GenerateSlots(s.HoursFor(date), intervalMinutes)
}

// GenerateSlots builds the start-time grid for one day's opening hours.
func GenerateSlots(hours OpeningHours, intervalMinutes int) []types.TimeString {
	if intervalMinutes <= 0 {
		intervalMinutes = DefaultSlotIntervalMinutes
	}

	openMinutes := hours.OpenHour * 60
	closeMinutes := hours.CloseHour * 60

	slots := make([]types.TimeString, 0)
	for m := openMinutes; m < closeMinutes; m += intervalMinutes {
		slots = append(slots, types.FromMinutes(m))
	}
	return slots
}
