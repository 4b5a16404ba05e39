package luxoraapi

import (
	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/pkg/types"
)

// User модель пользователя из API
type User struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// RegisterRequest тело POST /auth/register
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginRequest тело POST /auth/login
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult нормализованный ответ на вход
type LoginResult struct {
	AccessToken string
	TokenType   string
	// User nil, если backend не вернул пользователя ни в одной из известных форм
	User *User
}

// AvailabilityQuery тело POST /bookings/check-availability
type AvailabilityQuery struct {
	RoomType string           `json:"room_type"`
	CheckIn  types.DateString `json:"check_in"`
	CheckOut types.DateString `json:"check_out"`
}

// availabilityResponse ответ на проверку доступности
type availabilityResponse struct {
	Available bool `json:"available"`
	Room      *struct {
		TotalNights    *int     `json:"totalNights"`
		TotalPrice     *float64 `json:"totalPrice"`
		AvailableRooms *int     `json:"availableRooms"`
	} `json:"room"`
}

func (r *availabilityResponse) toDomain() *domain.Availability {
	result := &domain.Availability{Available: r.Available}
	if r.Room != nil {
		result.Nights = r.Room.TotalNights
		result.TotalPrice = r.Room.TotalPrice
		result.AvailableRooms = r.Room.AvailableRooms
	}
	return result
}

// CreateBookingPayload тело POST /bookings
type CreateBookingPayload struct {
	Name            string           `json:"name"`
	Email           string           `json:"email"`
	Phone           string           `json:"phone"`
	RoomType        string           `json:"room_type"`
	CheckIn         types.DateString `json:"check_in"`
	CheckOut        types.DateString `json:"check_out"`
	Guests          int              `json:"guests"`
	SpecialRequests string           `json:"special_requests"`
}

// CreateShape форма ответа на создание бронирования
type CreateShape string

const (
	ShapeNestedBooking CreateShape = "nested_booking"
	ShapeTopLevelCode  CreateShape = "top_level_code"
	ShapeTopLevelID    CreateShape = "top_level_id"
	ShapeUnknown       CreateShape = "unknown"
)

// CreatedBooking нормализованный ответ на создание бронирования
type CreatedBooking struct {
	Shape CreateShape
	// BookingCode публичный код бронирования, либо сгенерированный, если backend его не вернул
	BookingCode string
	// ID внутренний идентификатор, 0 если неизвестен
	ID      int64
	Message string
}
