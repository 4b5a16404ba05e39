package rooms

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
)

type MockRoomsClient struct {
	mock.Mock
}

func (m *MockRoomsClient) GetRooms(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func (m *MockRoomsClient) InitSampleRooms(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleRooms() []domain.Room {
	return []domain.Room{
		{ID: 1, Name: "Garden Deluxe", Description: "Quiet garden view", RoomType: "Deluxe", Price: 180, MaxGuests: 2},
		{ID: 2, Name: "Ocean Suite", Description: "Panoramic ocean view", RoomType: "Suite", Price: 420, MaxGuests: 4},
		{ID: 3, Name: "Classic", Description: "Cozy standard room", RoomType: "Standard", Price: 90, MaxGuests: 2},
		{ID: 4, Name: "City Deluxe", Description: "Skyline view", RoomType: "Deluxe", Price: 200, MaxGuests: 3},
	}
}

func loadedService(t *testing.T) *Service {
	t.Helper()
	client := new(MockRoomsClient)
	client.On("GetRooms", mock.Anything).Return(sampleRooms(), nil)
	svc := NewService(client, nopLogger{})
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

func ids(list []domain.Room) []int64 {
	out := make([]int64, 0, len(list))
	for _, r := range list {
		out = append(out, r.ID)
	}
	return out
}

func TestService_Filter(t *testing.T) {
	svc := loadedService(t)

	tests := []struct {
		name   string
		filter RoomFilter
		want   []int64
	}{
		{"no filter keeps backend order", RoomFilter{}, []int64{1, 2, 3, 4}},
		{"all type", RoomFilter{Type: domain.FilterAll}, []int64{1, 2, 3, 4}},
		{"by type", RoomFilter{Type: "Deluxe"}, []int64{1, 4}},
		{"query over description", RoomFilter{Query: "  OCEAN "}, []int64{2}},
		{"query over type", RoomFilter{Query: "standard"}, []int64{3}},
		{"price ascending", RoomFilter{Sort: SortPriceAsc}, []int64{3, 1, 4, 2}},
		{"price descending within type", RoomFilter{Type: "Deluxe", Sort: SortPriceDesc}, []int64{4, 1}},
		{"rating descending", RoomFilter{Sort: SortRatingDesc}, []int64{4, 3, 2, 1}},
		{"unknown sort is recommended", RoomFilter{Sort: "popular"}, []int64{1, 2, 3, 4}},
		{"no match", RoomFilter{Query: "penthouse"}, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(svc.Filter(tt.filter)))
		})
	}
}

func TestService_RoomTypesAndLookup(t *testing.T) {
	svc := loadedService(t)

	assert.Equal(t, []string{"All", "Deluxe", "Suite", "Standard"}, svc.RoomTypes())

	room, err := svc.FindByType("Deluxe")
	require.NoError(t, err)
	assert.Equal(t, int64(1), room.ID)

	room, err = svc.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Ocean Suite", room.Name)

	_, err = svc.FindByType("Villa")
	assert.ErrorIs(t, err, ErrRoomNotFound)
	_, err = svc.FindByID(99)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestService_LoadFailureClearsCatalog(t *testing.T) {
	client := new(MockRoomsClient)
	client.On("GetRooms", mock.Anything).Return(sampleRooms(), nil).Once()
	client.On("GetRooms", mock.Anything).Return(nil, &luxoraapi.RequestError{Status: 500, Message: "Database unavailable"}).Once()
	svc := NewService(client, nopLogger{})

	require.NoError(t, svc.Load(context.Background()))
	err := svc.Load(context.Background())

	assert.ErrorIs(t, err, ErrLoadFailed)
	catalog := svc.Catalog(RoomFilter{})
	assert.Empty(t, catalog.Rooms)
	assert.Equal(t, "Database unavailable", catalog.Error)
	assert.False(t, catalog.Loading)
}

func TestService_Seed(t *testing.T) {
	t.Run("seeds and reloads", func(t *testing.T) {
		client := new(MockRoomsClient)
		client.On("InitSampleRooms", mock.Anything).Return(nil)
		client.On("GetRooms", mock.Anything).Return(sampleRooms(), nil)
		svc := NewService(client, nopLogger{})

		require.NoError(t, svc.Seed(context.Background()))

		assert.Len(t, svc.Rooms(), 4)
		client.AssertExpectations(t)
	})

	t.Run("disabled in production", func(t *testing.T) {
		client := new(MockRoomsClient)
		client.On("InitSampleRooms", mock.Anything).Return(luxoraapi.ErrSeedingDisabled)
		svc := NewService(client, nopLogger{})

		err := svc.Seed(context.Background())

		assert.ErrorIs(t, err, ErrSeedingDisabled)
		client.AssertNotCalled(t, "GetRooms", mock.Anything)
	})

	t.Run("backend failure", func(t *testing.T) {
		client := new(MockRoomsClient)
		client.On("InitSampleRooms", mock.Anything).Return(errors.Join(luxoraapi.ErrTransport, errors.New("refused")))
		svc := NewService(client, nopLogger{})

		err := svc.Seed(context.Background())

		assert.ErrorIs(t, err, ErrLoadFailed)
		assert.Equal(t, "Failed to create sample rooms", svc.Catalog(RoomFilter{}).Error)
	})
}

func TestCatalogView(t *testing.T) {
	svc := loadedService(t)

	catalog := svc.Catalog(RoomFilter{Type: "Suite"})

	assert.Equal(t, 4, catalog.Total)
	assert.Equal(t, 1, catalog.Showing)
	require.Len(t, catalog.Rooms, 1)
	assert.Equal(t, domain.FallbackRoomImage, catalog.Rooms[0].Image)
	assert.Equal(t, 4.8, catalog.Rooms[0].Rating)
	assert.Equal(t, 483.0, catalog.Rooms[0].OriginalPrice)
}
