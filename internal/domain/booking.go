package domain

import "strings"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Normalize lower-cases and trims the status as received from the backend.
func (s BookingStatus) Normalize() BookingStatus {
	return BookingStatus(strings.ToLower(strings.TrimSpace(string(s))))
}

// IsValid reports whether the status is one of the known values.
func (s BookingStatus) IsValid() bool {
	switch s.Normalize() {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking represents a booking as returned by the backend.
// ID is the internal numeric identity used for mutations,
// BookingCode is the public code (e.g. LUX00042) used for display only.
type Booking struct {
	ID              int64         `json:"id"`
	BookingCode     string        `json:"booking_id"`
	Name            string        `json:"name"`
	Email           string        `json:"email"`
	Phone           string        `json:"phone"`
	RoomType        string        `json:"room_type"`
	CheckIn         string        `json:"check_in"`
	CheckOut        string        `json:"check_out"`
	Guests          int           `json:"guests"`
	TotalPrice      float64       `json:"total_price"`
	Status          BookingStatus `json:"status"`
	SpecialRequests string        `json:"special_requests,omitempty"`
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status.Normalize() == StatusCancelled
}

// IsConfirmed returns true if the booking is confirmed
func (b *Booking) IsConfirmed() bool {
	return b.Status.Normalize() == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.ID > 0 && !b.IsCancelled()
}

// GuestCount returns the number of guests, defaulting to 1
func (b *Booking) GuestCount() int {
	if b.Guests <= 0 {
		return 1
	}
	return b.Guests
}

// BookingSummary aggregated figures over a list of bookings
type BookingSummary struct {
	Total        int     `json:"total"`
	Confirmed    int     `json:"confirmed"`
	Cancelled    int     `json:"cancelled"`
	Revenue      float64 `json:"revenue"`
	UniqueGuests int     `json:"unique_guests"`
}

// SummarizeBookings computes the dashboard totals.
// Revenue only counts confirmed bookings, guests are distinct by contact email.
func SummarizeBookings(bookings []Booking) BookingSummary {
	summary := BookingSummary{Total: len(bookings)}
	emails := make(map[string]struct{})

	for i := range bookings {
		b := &bookings[i]
		switch b.Status.Normalize() {
		case StatusConfirmed:
			summary.Confirmed++
			summary.Revenue += b.TotalPrice
		case StatusCancelled:
			summary.Cancelled++
		}
		if b.Email != "" {
			emails[b.Email] = struct{}{}
		}
	}

	summary.UniqueGuests = len(emails)
	return summary
}
