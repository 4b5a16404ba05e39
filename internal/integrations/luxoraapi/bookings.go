package luxoraapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
)

// GetBookings получает список бронирований текущего пользователя
func (c *Client) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodGet, "/bookings", nil, &raw); err != nil {
		return nil, err
	}

	bookings, err := decodeBookings(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode bookings: %v", ErrInvalidResponse, err)
	}
	return bookings, nil
}

// CheckAvailability проверяет доступность типа номера на период
func (c *Client) CheckAvailability(ctx context.Context, query AvailabilityQuery) (*domain.Availability, error) {
	var resp availabilityResponse
	if err := c.Request(ctx, http.MethodPost, "/bookings/check-availability", query, &resp); err != nil {
		return nil, err
	}
	return resp.toDomain(), nil
}

// CreateBooking создает бронирование. Форма ответа нормализуется в CreatedBooking.
func (c *Client) CreateBooking(ctx context.Context, payload CreateBookingPayload) (*CreatedBooking, error) {
	var raw json.RawMessage
	if err := c.Request(ctx, http.MethodPost, "/bookings", payload, &raw); err != nil {
		return nil, err
	}

	created := decodeCreatedBooking(raw)
	if created.Shape == ShapeUnknown {
		c.log.Warn("POST /bookings - unexpected response shape, generated booking code %s", created.BookingCode)
	}
	return created, nil
}

// CancelBooking отменяет бронирование по внутреннему числовому ID (Booking.ID),
// а не по публичному коду (Booking.BookingCode).
// Возвращает обновленное бронирование или nil, если backend вернул неизвестную форму.
func (c *Client) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: booking id must be positive, got %d", ErrInternal, id)
	}

	var raw json.RawMessage
	path := fmt.Sprintf("/bookings/%d/cancel", id)
	if err := c.Request(ctx, http.MethodPut, path, nil, &raw, WithRoute("/bookings/{id}/cancel")); err != nil {
		return nil, err
	}
	return decodeCancelledBooking(raw), nil
}
