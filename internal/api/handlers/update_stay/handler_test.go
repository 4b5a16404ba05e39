package update_stay

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/usecase/booking_wizard"
	"github.com/m04kA/SMC-LuxoraClient/pkg/ptr"
)

type MockWizard struct {
	mock.Mock
}

func (m *MockWizard) UpdateStay(in booking_wizard.StayInput) (booking_wizard.State, error) {
	args := m.Called(in)
	return args.Get(0).(booking_wizard.State), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func patch(h *Handler, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/wizard/stay", strings.NewReader(body)))
	return rec
}

func TestHandler_PartialUpdate(t *testing.T) {
	wiz := new(MockWizard)
	wiz.On("UpdateStay", booking_wizard.StayInput{CheckOut: ptr.Ptr("2025-06-04")}).
		Return(booking_wizard.State{Stage: domain.StageSelectingDates, Nights: 3}, nil).Once()

	rec := patch(NewHandler(wiz, nopLogger{}), `{"check_out":"2025-06-04"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"nights":3`)
	wiz.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"over capacity keeps state", fmt.Errorf("%w: Max guests for this room is 2", booking_wizard.ErrCapacityExceeded), http.StatusOK, "Max guests for this room is 2"},
		{"guests below one", fmt.Errorf("%w: Guests must be at least 1", booking_wizard.ErrInvalidGuests), http.StatusBadRequest, "Guests must be at least 1"},
		{"bad date", fmt.Errorf("%w: check_in: bad format", booking_wizard.ErrInvalidInput), http.StatusBadRequest, "check_in: bad format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wiz := new(MockWizard)
			wiz.On("UpdateStay", mock.Anything).
				Return(booking_wizard.State{AvailabilityError: "Max guests for this room is 2"}, tt.err).Once()

			rec := patch(NewHandler(wiz, nopLogger{}), `{"guests":3}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}
