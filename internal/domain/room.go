package domain

import (
	"encoding/json"
	"strings"
)

// Room represents a room category offered by the hotel.
// Rooms are fetched from the backend and never mutated locally.
type Room struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	RoomType       string    `json:"room_type"`
	Price          float64   `json:"price"`
	MaxGuests      int       `json:"max_guests"`
	Amenities      Amenities `json:"amenities"`
	AvailableRooms int       `json:"available_rooms"`
	Image          string    `json:"image"`
}

// ImageOrFallback returns the room image, or a placeholder when it is empty
func (r *Room) ImageOrFallback() string {
	if strings.TrimSpace(r.Image) != "" {
		return r.Image
	}
	return FallbackRoomImage
}

// ExceedsCapacity reports whether guests is over the room's stated maximum.
// A room without a stated maximum accepts any count.
func (r *Room) ExceedsCapacity(guests int) bool {
	return r.MaxGuests > 0 && guests > r.MaxGuests
}

// Amenities accepts either a JSON array of strings or a comma-separated string.
type Amenities []string

func (a *Amenities) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*a = cleanAmenities(list)
		return nil
	}

	var joined *string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	if joined == nil {
		*a = nil
		return nil
	}
	*a = cleanAmenities(strings.Split(*joined, ","))
	return nil
}

func cleanAmenities(items []string) Amenities {
	out := make(Amenities, 0, len(items))
	for _, item := range items {
		if v := strings.TrimSpace(item); v != "" {
			out = append(out, v)
		}
	}
	return out
}
