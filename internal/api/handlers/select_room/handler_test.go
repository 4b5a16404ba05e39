package select_room

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/rooms"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

type MockWizard struct {
	mock.Mock
}

func (m *MockWizard) SelectRoom(room domain.Room) (booking_wizard.State, error) {
	args := m.Called(room)
	return args.Get(0).(booking_wizard.State), args.Error(1)
}

type MockRoomsService struct {
	mock.Mock
}

func (m *MockRoomsService) FindByID(id int64) (*domain.Room, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomsService) FindByType(roomType string) (*domain.Room, error) {
	args := m.Called(roomType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var deluxe = domain.Room{ID: 1, Name: "Garden Deluxe", RoomType: "Deluxe", Price: 150, MaxGuests: 2}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/wizard/room", strings.NewReader(body)))
	return rec
}

func TestHandler_ByID(t *testing.T) {
	wiz := new(MockWizard)
	svc := new(MockRoomsService)
	svc.On("FindByID", int64(1)).Return(&deluxe, nil).Once()
	wiz.On("SelectRoom", deluxe).Return(booking_wizard.State{Stage: domain.StageSelectingDates, Room: &deluxe}, nil).Once()

	rec := post(NewHandler(wiz, svc, nopLogger{}), `{"room_id":1}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	var state booking_wizard.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &state))
	assert.Equal(t, domain.StageSelectingDates, state.Stage)
	svc.AssertNotCalled(t, "FindByType", mock.Anything)
}

func TestHandler_ByTypeOverCapacity(t *testing.T) {
	wiz := new(MockWizard)
	svc := new(MockRoomsService)
	svc.On("FindByType", "Deluxe").Return(&deluxe, nil).Once()
	wiz.On("SelectRoom", deluxe).Return(
		booking_wizard.State{Room: &deluxe, AvailabilityError: "Max guests for this room is 2"},
		fmt.Errorf("%w: Max guests for this room is 2", booking_wizard.ErrCapacityExceeded),
	).Once()

	rec := post(NewHandler(wiz, svc, nopLogger{}), `{"room_type":"Deluxe"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Max guests for this room is 2")
}

func TestHandler_Errors(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		svc := new(MockRoomsService)
		svc.On("FindByID", int64(9)).Return(nil, fmt.Errorf("%w: id=9", rooms.ErrRoomNotFound)).Once()

		rec := post(NewHandler(new(MockWizard), svc, nopLogger{}), `{"room_id":9}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("no selector", func(t *testing.T) {
		rec := post(NewHandler(new(MockWizard), new(MockRoomsService), nopLogger{}), `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed", func(t *testing.T) {
		rec := post(NewHandler(new(MockWizard), new(MockRoomsService), nopLogger{}), `{"room_id":"one"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
