package domain

// Availability is the backend's answer for a room type and stay range.
// Optional fields are nil when the backend omitted them.
type Availability struct {
	Available      bool     `json:"available"`
	Nights         *int     `json:"nights,omitempty"`
	AvailableRooms *int     `json:"available_rooms,omitempty"`
	TotalPrice     *float64 `json:"total_price,omitempty"`
}

// HasPositiveTotal reports whether the backend supplied an authoritative positive total
func (a *Availability) HasPositiveTotal() bool {
	return a != nil && a.Available && a.TotalPrice != nil && *a.TotalPrice > 0
}

// QuotePrice returns the price to display for a stay.
// The backend total wins when present and positive, otherwise price × nights is
// returned as a provisional estimate (estimate = true).
func QuotePrice(room *Room, nights int, availability *Availability) (total float64, estimate bool) {
	if availability.HasPositiveTotal() {
		return *availability.TotalPrice, false
	}
	if room == nil || nights <= 0 {
		return 0, true
	}
	return room.Price * float64(nights), true
}
