package domain

import "time"

// PeakWindow marks [FromHour, ToHour) on one weekday as peak time.
type PeakWindow struct {
	Day      time.Weekday
	FromHour int // inclusive, 0-23
	ToHour   int // exclusive, 1-24
}

// PeakSchedule is the set of peak windows used by the pricing engine.
// It is configuration, not code: the business owner edits it in config.toml.
type PeakSchedule []PeakWindow

// DefaultPeakSchedule treats Friday, Saturday and Sunday as peak all day.
func DefaultPeakSchedule() PeakSchedule {
	return PeakSchedule{
		{Day: time.Friday, FromHour: 0, ToHour: 24},
		{Day: time.Saturday, FromHour: 0, ToHour: 24},
		{Day: time.Sunday, FromHour: 0, ToHour: 24},
	}
}

// IsPeak reports whether the instant falls inside a peak window,
// evaluated on the venue wall clock.
func (p PeakSchedule) IsPeak(at time.Time) bool {
	local := VenueClock(at)
	day := local.Weekday()
	hour := local.Hour()

	for _, w := range p {
		if w.Day == day && hour >= w.FromHour && hour < w.ToHour {
			return true
		}
	}
	return false
}

// RateRule is the hourly rate table entry for one activity.
type RateRule struct {
	Slug               string
	PeakHourlyCents    int64
	OffPeakHourlyCents int64
	PerPerson          bool
}

// HourlyCents returns the applicable hourly rate.
func (r RateRule) HourlyCents(peak bool) int64 {
	if peak {
		return r.PeakHourlyCents
	}
	return r.OffPeakHourlyCents
}

// DefaultRateRules returns the venue's standard rate table.
func DefaultRateRules() []RateRule {
	return []RateRule{
		{Slug: "bowlen", PeakHourlyCents: 3500, OffPeakHourlyCents: 2500, PerPerson: false},
		{Slug: "karaoke", PeakHourlyCents: 1500, OffPeakHourlyCents: 1000, PerPerson: true},
		{Slug: "beat-the-matrix", PeakHourlyCents: 1400, OffPeakHourlyCents: 1400, PerPerson: true},
		{Slug: "fitness", PeakHourlyCents: 1500, OffPeakHourlyCents: 1200, PerPerson: true},
	}
}

// DefaultFallbackRate prices activities missing from the rate table, so a
// quote is always computable.
func DefaultFallbackRate() RateRule {
	return RateRule{PeakHourlyCents: 1000, OffPeakHourlyCents: 1000, PerPerson: true}
}
