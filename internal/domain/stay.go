package domain

import "github.com/m04kA/SMC-LuxoraClient/pkg/types"

// Stay range and party size of a booking attempt
type Stay struct {
	CheckIn  types.DateString `json:"check_in"`
	CheckOut types.DateString `json:"check_out"`
	Guests   int              `json:"guests"`
}

// Nights returns ceil((check-out − check-in) / 1 day), clamped to zero.
// Missing, unparseable, same-day or inverted ranges yield zero.
func (s Stay) Nights() int {
	if s.CheckIn.IsZero() || s.CheckOut.IsZero() {
		return 0
	}
	n := s.CheckIn.DaysUntil(s.CheckOut)
	if n < 0 {
		return 0
	}
	return n
}

// IsValid reports whether the stay spans a positive number of nights
func (s Stay) IsValid() bool {
	return s.Nights() > 0
}

// GuestCount returns the guests count, defaulting to 1 when unset
func (s Stay) GuestCount() int {
	if s.Guests == 0 {
		return DefaultGuests
	}
	return s.Guests
}
