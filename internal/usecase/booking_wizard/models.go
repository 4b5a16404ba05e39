package booking_wizard

import (
	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/pkg/types"
)

// StayInput частичное обновление периода и гостей. nil поля не меняются,
// пустая строка очищает дату.
type StayInput struct {
	CheckIn  *string `json:"check_in,omitempty"`
	CheckOut *string `json:"check_out,omitempty"`
	Guests   *int    `json:"guests,omitempty"`
}

// ContactInput частичное обновление контактных данных
type ContactInput struct {
	Name            *string `json:"name,omitempty"`
	Email           *string `json:"email,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	SpecialRequests *string `json:"special_requests,omitempty"`
}

// Contact контактные данные гостя
type Contact struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"special_requests"`
}

// Receipt подтверждение созданного бронирования
type Receipt struct {
	BookingCode string           `json:"booking_id"`
	ID          int64            `json:"id,omitempty"`
	RoomName    string           `json:"room_name"`
	RoomType    string           `json:"room_type"`
	CheckIn     types.DateString `json:"check_in"`
	CheckOut    types.DateString `json:"check_out"`
	Guests      int              `json:"guests"`
	Total       float64          `json:"total"`
}

// State снимок мастера с производными полями
type State struct {
	Stage     domain.Stage `json:"stage"`
	StageName string       `json:"stage_name"`

	Room    *domain.Room `json:"room,omitempty"`
	Stay    domain.Stay  `json:"stay"`
	Contact Contact      `json:"contact"`

	Availability        *domain.Availability `json:"availability,omitempty"`
	AvailabilityLoading bool                 `json:"availability_loading"`
	AvailabilityError   string               `json:"availability_error,omitempty"`

	Submitting  bool     `json:"submitting"`
	SubmitError string   `json:"submit_error,omitempty"`
	Receipt     *Receipt `json:"receipt,omitempty"`

	Nights          int     `json:"nights"`
	Total           float64 `json:"total"`
	TotalIsEstimate bool    `json:"total_is_estimate"`

	CanGoSelectingDates       bool `json:"can_go_selecting_dates"`
	CanGoEnteringGuestDetails bool `json:"can_go_entering_guest_details"`
	CanGoConfirmed            bool `json:"can_go_confirmed"`
}
