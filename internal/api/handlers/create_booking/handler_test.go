package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxoraClient/internal/api/handlers"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
)

type MockWizard struct {
	mock.Mock
}

func (m *MockWizard) Submit(ctx context.Context) (*booking_wizard.Receipt, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking_wizard.Receipt), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func submit(h *Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/wizard/submit", nil))
	return rec
}

func TestHandler_Created(t *testing.T) {
	wiz := new(MockWizard)
	wiz.On("Submit", mock.Anything).Return(&booking_wizard.Receipt{
		BookingCode: "LUX00042",
		ID:          42,
		RoomName:    "Garden Deluxe",
		RoomType:    "Deluxe",
		CheckIn:     "2025-06-01",
		CheckOut:    "2025-06-04",
		Guests:      2,
		Total:       400,
	}, nil).Once()

	rec := submit(NewHandler(wiz, nopLogger{}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	var receipt booking_wizard.Receipt
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &receipt))
	assert.Equal(t, "LUX00042", receipt.BookingCode)
	assert.Contains(t, rec.Body.String(), `"booking_id":"LUX00042"`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"no room", booking_wizard.ErrNoRoomSelected, http.StatusBadRequest, msgSelectRoom},
		{"not available", booking_wizard.ErrNotAvailable, http.StatusBadRequest, msgNotAvailable},
		{"contact", booking_wizard.ErrContactRequired, http.StatusBadRequest, msgContactRequired},
		{"wrong stage", booking_wizard.ErrInvalidStage, http.StatusConflict, msgGuestDetails},
		{"in progress", booking_wizard.ErrSubmitInProgress, http.StatusConflict, msgInProgress},
		{"rejected", fmt.Errorf("%w: %s", booking_wizard.ErrBookingRejected, "Room not available"), http.StatusConflict, "Room not available"},
		{"transport", fmt.Errorf("%w: create booking: dial tcp", booking_wizard.ErrInternal), http.StatusBadGateway, msgBookingFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wiz := new(MockWizard)
			wiz.On("Submit", mock.Anything).Return(nil, tt.err).Once()

			rec := submit(NewHandler(wiz, nopLogger{}))

			assert.Equal(t, tt.status, rec.Code)
			var body handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.message, body.Message)
		})
	}
}
