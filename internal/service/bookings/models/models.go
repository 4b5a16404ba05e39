package models

import (
	"strings"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
)

// BookingFilter клиентский фильтр списка бронирований.
// Пустое значение или "All" не фильтрует.
type BookingFilter struct {
	RoomType string `json:"room_type,omitempty"`
	Status   string `json:"status,omitempty"`
	Query    string `json:"q,omitempty"`
}

// ToDomainStatus нормализует фильтр статуса; ok=false, если фильтр по статусу не задан
func (f *BookingFilter) ToDomainStatus() (domain.BookingStatus, bool) {
	s := strings.TrimSpace(f.Status)
	if s == "" || strings.EqualFold(s, domain.FilterAll) {
		return "", false
	}
	return domain.BookingStatus(s).Normalize(), true
}

// BookingRow строка списка с признаком доступности отмены
type BookingRow struct {
	domain.Booking
	Cancellable bool `json:"cancellable"`
}

// BookingListResponse снимок списка бронирований для UI
type BookingListResponse struct {
	Bookings  []BookingRow          `json:"bookings"`
	Showing   int                   `json:"showing"`
	Summary   domain.BookingSummary `json:"summary"`
	RoomTypes []string              `json:"room_types"`
	Loading   bool                  `json:"loading"`
	Error     string                `json:"error,omitempty"`
}

// FromDomainBookings конвертирует список в строки для UI
func FromDomainBookings(list []domain.Booking) []BookingRow {
	rows := make([]BookingRow, 0, len(list))
	for i := range list {
		rows = append(rows, BookingRow{
			Booking:     list[i],
			Cancellable: list[i].CanBeCancelled(),
		})
	}
	return rows
}
