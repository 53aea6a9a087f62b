package domain

import "time"

// AddOn is an optional paid extra from the shared catalog.
type AddOn struct {
	ID         int64
	Name       string
	PriceCents int64
	PerPerson  bool // true: multiply by party size; false: flat per booking
	CreatedAt  time.Time
}

// CostCents returns the add-on cost for a party of the given size.
// Per-person add-ons multiply exactly; no rounding is involved.
func (a *AddOn) CostCents(size int) int64 {
	if a.PerPerson {
		return a.PriceCents * int64(size)
	}
	return a.PriceCents
}
