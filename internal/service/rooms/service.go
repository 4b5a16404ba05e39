package rooms

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
)

// Service каталог номеров.
// Каталог всегда загружается заново и не кешируется между запусками.
type Service struct {
	client RoomsClient
	logger Logger

	mu      sync.RWMutex
	rooms   []domain.Room
	loading bool
	lastErr string
}

// NewService создает новый экземпляр сервиса каталога
func NewService(client RoomsClient, logger Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Load загружает каталог. При ошибке каталог очищается.
func (s *Service) Load(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	list, err := s.client.GetRooms(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.rooms = nil
		s.lastErr = luxoraapi.MessageOf(err, "Failed to load rooms")
		s.logger.Error("Load: failed to fetch rooms: %v", err)
		return fmt.Errorf("%w: %v", ErrLoadFailed, err)
	}

	s.rooms = list
	s.logger.Info("Load: fetched %d rooms", len(list))
	return nil
}

// Seed заполняет каталог тестовыми номерами и перезагружает его
func (s *Service) Seed(ctx context.Context) error {
	if err := s.client.InitSampleRooms(ctx); err != nil {
		if errors.Is(err, luxoraapi.ErrSeedingDisabled) {
			s.logger.Warn("Seed: seeding is disabled in this environment")
			return ErrSeedingDisabled
		}
		s.mu.Lock()
		s.lastErr = luxoraapi.MessageOf(err, "Failed to create sample rooms")
		s.mu.Unlock()
		s.logger.Error("Seed: failed to create sample rooms: %v", err)
		return fmt.Errorf("%w: seed: %v", ErrLoadFailed, err)
	}

	s.logger.Info("Seed: sample rooms created, reloading catalog")
	return s.Load(ctx)
}

// Rooms копия загруженного каталога
func (s *Service) Rooms() []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// RoomTypes "All" и уникальные типы номеров
func (s *Service) RoomTypes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return roomTypes(s.rooms)
}

// Filter отфильтрованный и отсортированный каталог
func (s *Service) Filter(f RoomFilter) []domain.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return applyFilter(s.rooms, f)
}

// Catalog снимок каталога для UI
func (s *Service) Catalog(f RoomFilter) Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()

	filtered := applyFilter(s.rooms, f)
	views := make([]RoomView, 0, len(filtered))
	for _, room := range filtered {
		views = append(views, toView(room))
	}

	return Catalog{
		Rooms:     views,
		RoomTypes: roomTypes(s.rooms),
		Total:     len(s.rooms),
		Showing:   len(views),
		Loading:   s.loading,
		Error:     s.lastErr,
	}
}

// FindByType первый номер указанного типа
func (s *Service) FindByType(roomType string) (*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rooms {
		if s.rooms[i].RoomType == roomType {
			room := s.rooms[i]
			return &room, nil
		}
	}
	return nil, fmt.Errorf("%w: room_type=%s", ErrRoomNotFound, roomType)
}

// FindByID номер по ID
func (s *Service) FindByID(id int64) (*domain.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			room := s.rooms[i]
			return &room, nil
		}
	}
	return nil, fmt.Errorf("%w: id=%d", ErrRoomNotFound, id)
}
