package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/bookings/models"
)

// Service список бронирований текущего пользователя и их отмена.
// Строки никогда не удаляются локально: статус приходит из backend после перезагрузки.
type Service struct {
	client BookingsClient
	logger Logger

	mu       sync.RWMutex
	bookings []domain.Booking
	loading  bool
	loaded   bool
	lastErr  string
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(client BookingsClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Refresh перезагружает список. При ошибке предыдущий список сохраняется.
func (s *Service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	list, err := s.client.GetBookings(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.lastErr = luxoraapi.MessageOf(err, "Failed to load bookings")
		s.logger.Error("Refresh: failed to fetch bookings: %v", err)
		return fmt.Errorf("%w: %v", ErrRefreshFailed, err)
	}

	s.bookings = list
	s.loaded = true
	s.logger.Info("Refresh: fetched %d bookings", len(list))
	return nil
}

// Clear забывает список текущего пользователя. Вызывается при смене сессии.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings = nil
	s.loaded = false
	s.lastErr = ""
}

// Cancel отменяет бронирование по внутреннему ID и перезагружает список.
// Публичный код бронирования для отмены не используется.
// Если ID нет в загруженном списке, список один раз перезагружается.
// При ошибке отмены загруженный список не меняется.
func (s *Service) Cancel(ctx context.Context, id int64) error {
	s.logger.Info("Cancel: cancelling booking id=%d", id)

	if id <= 0 {
		return fmt.Errorf("%w: booking id must be positive", ErrInvalidInput)
	}

	booking, err := s.find(id)
	if err != nil {
		s.logger.Warn("Cancel: booking id=%d is not in the loaded list, refreshing", id)
		if refreshErr := s.Refresh(ctx); refreshErr != nil {
			return refreshErr
		}
		if booking, err = s.find(id); err != nil {
			s.logger.Warn("Cancel: booking id=%d not found after refresh", id)
			return err
		}
	}
	if booking.IsCancelled() {
		s.logger.Warn("Cancel: booking id=%d (%s) is already cancelled", id, booking.BookingCode)
		return ErrAlreadyCancelled
	}

	if _, err := s.client.CancelBooking(ctx, booking.ID); err != nil {
		msg := luxoraapi.MessageOf(err, "Failed to cancel booking")
		s.mu.Lock()
		s.lastErr = msg
		s.mu.Unlock()

		if errors.Is(err, luxoraapi.ErrRequestRejected) {
			s.logger.Warn("Cancel: backend rejected cancellation of id=%d: %v", id, err)
			return fmt.Errorf("%w: %s", ErrCannotCancel, msg)
		}
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - client error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d (%s) cancelled, refreshing list", id, booking.BookingCode)
	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn("Cancel: refresh after cancel failed: %v", err)
	}
	return nil
}

// Bookings копия загруженного списка
func (s *Service) Bookings() []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Loaded true после первой успешной загрузки
func (s *Service) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Loading true во время загрузки списка
func (s *Service) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError сообщение последней ошибки или пустая строка
func (s *Service) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Filter фильтрует загруженный список без запросов к backend
func (s *Service) Filter(f models.BookingFilter) []domain.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return applyFilter(s.bookings, f)
}

// Summary итоги по всему загруженному списку
func (s *Service) Summary() domain.BookingSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.SummarizeBookings(s.bookings)
}

// RoomTypes "All" и уникальные типы номеров из списка
func (s *Service) RoomTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	types := []string{domain.FilterAll}
	seen := make(map[string]struct{})
	for i := range s.bookings {
		t := s.bookings[i].RoomType
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	return types
}

// List снимок для UI: отфильтрованные строки и итоги по всему списку
func (s *Service) List(f models.BookingFilter) *models.BookingListResponse {
	filtered := s.Filter(f)
	return &models.BookingListResponse{
		Bookings:  models.FromDomainBookings(filtered),
		Showing:   len(filtered),
		Summary:   s.Summary(),
		RoomTypes: s.RoomTypes(),
		Loading:   s.Loading(),
		Error:     s.LastError(),
	}
}

func (s *Service) find(id int64) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.bookings {
		if s.bookings[i].ID == id {
			booking := s.bookings[i]
			return &booking, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrBookingNotFound, id)
}

func applyFilter(list []domain.Booking, f models.BookingFilter) []domain.Booking {
	roomType := strings.TrimSpace(f.RoomType)
	if strings.EqualFold(roomType, domain.FilterAll) {
		roomType = ""
	}
	status, byStatus := f.ToDomainStatus()
	q := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]domain.Booking, 0, len(list))
	for i := range list {
		b := &list[i]
		if roomType != "" && !strings.EqualFold(b.RoomType, roomType) {
			continue
		}
		if byStatus && b.Status.Normalize() != status {
			continue
		}
		if q != "" && !matchesQuery(b, q) {
			continue
		}
		out = append(out, *b)
	}
	return out
}

// matchesQuery поиск по коду бронирования, имени, email и типу номера
func matchesQuery(b *domain.Booking, q string) bool {
	for _, field := range []string{b.BookingCode, b.Name, b.Email, b.RoomType} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
