package seed_rooms

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-LuxoraClient/internal/service/rooms"
)

type MockRoomsService struct {
	mock.Mock
}

func (m *MockRoomsService) Seed(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockRoomsService) Catalog(f rooms.RoomFilter) rooms.Catalog {
	return m.Called(f).Get(0).(rooms.Catalog)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"seeded", nil, http.StatusOK},
		{"production", rooms.ErrSeedingDisabled, http.StatusForbidden},
		{"backend failure", fmt.Errorf("%w: seed: %v", rooms.ErrLoadFailed, errors.New("500")), http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockRoomsService)
			svc.On("Seed", mock.Anything).Return(tt.err).Once()
			svc.On("Catalog", rooms.RoomFilter{}).Return(rooms.Catalog{Total: 4, Showing: 4}).Maybe()

			rec := httptest.NewRecorder()
			NewHandler(svc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/rooms/seed", nil))

			assert.Equal(t, tt.status, rec.Code)
			svc.AssertExpectations(t)
		})
	}
}
