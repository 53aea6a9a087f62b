package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hartvaneindhoven/HVE-BookingService/pkg/types"
)

func TestWeekSchedule_HoursFor(t *testing.T) {
	schedule := DefaultWeekSchedule()

	tests := []struct {
		name      string
		date      time.Time
		wantOpen  int
		wantClose int
	}{
		{
			name:      "friday opens early and closes late",
			date:      time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC), // Friday
			wantOpen:  10,
			wantClose: 23,
		},
		{
			name:      "monday standard hours",
			date:      time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), // Monday
			wantOpen:  12,
			wantClose: 22,
		},
		{
			name:      "thursday closes at 23",
			date:      time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC), // Thursday
			wantOpen:  12,
			wantClose: 23,
		},
		{
			name:      "sunday weekend hours",
			date:      time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC), // Sunday
			wantOpen:  10,
			wantClose: 22,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hours := schedule.HoursFor(tt.date)
			assert.Equal(t, tt.wantOpen, hours.OpenHour)
			assert.Equal(t, tt.wantClose, hours.CloseHour)
		})
	}
}

func TestWeekSchedule_HoursFor_Fallback(t *testing.T) {
	schedule := WeekSchedule{
		Days:     map[time.Weekday]OpeningHours{time.Monday: {OpenHour: 9, CloseHour: 17}},
		Fallback: OpeningHours{OpenHour: 12, CloseHour: 22},
	}

	// Вторника нет в таблице — должен сработать fallback
	tuesday := time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC)
	hours := schedule.HoursFor(tuesday)

	assert.Equal(t, 12, hours.OpenHour)
	assert.Equal(t, 22, hours.CloseHour)
}

func TestGenerateSlots(t *testing.T) {
	tests := []struct {
		name     string
		hours    OpeningHours
		interval int
		first    types.TimeString
		last     types.TimeString
		count    int
	}{
		{
			name:     "30 minute grid over 12-22",
			hours:    OpeningHours{OpenHour: 12, CloseHour: 22},
			interval: 30,
			first:    "12:00",
			last:     "21:30",
			count:    20,
		},
		{
			name:     "60 minute grid over 10-22",
			hours:    OpeningHours{OpenHour: 10, CloseHour: 22},
			interval: 60,
			first:    "10:00",
			last:     "21:00",
			count:    12,
		},
		{
			name:     "45 minute interval generates unaligned grid",
			hours:    OpeningHours{OpenHour: 12, CloseHour: 14},
			interval: 45,
			first:    "12:00",
			last:     "13:30",
			count:    3, // 12:00, 12:45, 13:30
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots := GenerateSlots(tt.hours, tt.interval)
			require.Len(t, slots, tt.count)
			assert.Equal(t, tt.first, slots[0])
			assert.Equal(t, tt.last, slots[len(slots)-1])
		})
	}
}

func TestWeekSchedule_Slots_Deterministic(t *testing.T) {
	schedule := DefaultWeekSchedule()
	date := time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC)

	first := schedule.Slots(date, 30)
	second := schedule.Slots(date, 30)

	assert.Equal(t, first, second)
}

func TestBooking_Overlaps(t *testing.T) {
	base := time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC)
	booking := &Booking{StartAt: base, DurationMinutes: 60} // [18:00, 19:00)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "identical range overlaps",
			start: base,
			end:   base.Add(time.Hour),
			want:  true,
		},
		{
			name:  "range starting at booking end does not overlap",
			start: base.Add(time.Hour),
			end:   base.Add(2 * time.Hour),
			want:  false,
		},
		{
			name:  "range ending at booking start does not overlap",
			start: base.Add(-time.Hour),
			end:   base,
			want:  false,
		},
		{
			name:  "partial overlap at tail",
			start: base.Add(30 * time.Minute),
			end:   base.Add(90 * time.Minute),
			want:  true,
		},
		{
			name:  "range containing the booking overlaps",
			start: base.Add(-time.Hour),
			end:   base.Add(2 * time.Hour),
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, booking.Overlaps(tt.start, tt.end))
		})
	}
}

func TestPeakSchedule_IsPeak(t *testing.T) {
	schedule := DefaultPeakSchedule()

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{
			name: "saturday evening is peak",
			at:   time.Date(2026, 9, 5, 18, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "friday morning is peak",
			at:   time.Date(2026, 9, 4, 10, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "sunday is peak",
			at:   time.Date(2026, 9, 6, 14, 0, 0, 0, time.UTC),
			want: true,
		},
		{
			name: "wednesday afternoon is off-peak",
			at:   time.Date(2026, 9, 2, 14, 0, 0, 0, time.UTC),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.IsPeak(tt.at))
		})
	}
}

func TestPeakSchedule_IsPeak_HourWindow(t *testing.T) {
	// Окно четверга 18:00-23:00
	schedule := PeakSchedule{{Day: time.Thursday, FromHour: 18, ToHour: 23}}

	thursdayAfternoon := time.Date(2026, 9, 3, 17, 59, 0, 0, time.UTC)
	thursdayEvening := time.Date(2026, 9, 3, 18, 0, 0, 0, time.UTC)
	thursdayClose := time.Date(2026, 9, 3, 23, 0, 0, 0, time.UTC)

	assert.False(t, schedule.IsPeak(thursdayAfternoon))
	assert.True(t, schedule.IsPeak(thursdayEvening))
	assert.False(t, schedule.IsPeak(thursdayClose))
}
