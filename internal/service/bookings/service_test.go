package bookings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-LuxoraClient/internal/domain"
	"github.com/m04kA/SMC-LuxoraClient/internal/integrations/luxoraapi"
	"github.com/m04kA/SMC-LuxoraClient/internal/service/bookings/models"
)

type MockBookingsClient struct {
	mock.Mock
}

func (m *MockBookingsClient) GetBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingsClient) CancelBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func loadedBookings() []domain.Booking {
	return []domain.Booking{
		{ID: 42, BookingCode: "LUX00042", Name: "Ann Perera", Email: "ann@x.io", RoomType: "Deluxe", Status: domain.StatusConfirmed, TotalPrice: 300},
		{ID: 43, BookingCode: "LUX00043", Name: "Bob Silva", Email: "bob@x.io", RoomType: "Suite", Status: domain.StatusPending, TotalPrice: 900},
		{ID: 44, BookingCode: "LUX00044", Name: "Ann Perera", Email: "ann@x.io", RoomType: "Suite", Status: domain.StatusCancelled, TotalPrice: 700},
	}
}

func TestService_Cancel_UsesInternalID(t *testing.T) {
	before := loadedBookings()
	after := loadedBookings()
	after[0].Status = domain.StatusCancelled

	client := new(MockBookingsClient)
	client.On("GetBookings", mock.Anything).Return(before, nil).Once()
	client.On("CancelBooking", mock.Anything, int64(42)).
		Return(&domain.Booking{ID: 42, BookingCode: "LUX00042", Status: domain.StatusCancelled}, nil).Once()
	client.On("GetBookings", mock.Anything).Return(after, nil).Once()

	svc := NewService(client, nopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	require.NoError(t, svc.Cancel(context.Background(), 42))

	list := svc.Bookings()
	require.Len(t, list, 3, "cancelled row stays in the list")
	assert.Equal(t, "LUX00042", list[0].BookingCode)
	assert.Equal(t, domain.StatusCancelled, list[0].Status)
	client.AssertExpectations(t)
	client.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.MatchedBy(func(id int64) bool { return id != 42 }))
}

func TestService_Cancel_LocalRejections(t *testing.T) {
	client := new(MockBookingsClient)
	client.On("GetBookings", mock.Anything).Return(loadedBookings(), nil)
	svc := NewService(client, nopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	tests := []struct {
		name    string
		id      int64
		wantErr error
	}{
		{"already cancelled", 44, ErrAlreadyCancelled},
		{"unknown id", 99, ErrBookingNotFound},
		{"non-positive id", 0, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, svc.Cancel(context.Background(), tt.id), tt.wantErr)
		})
	}
	client.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
}

func TestService_Cancel_FailureLeavesListUntouched(t *testing.T) {
	client := new(MockBookingsClient)
	client.On("GetBookings", mock.Anything).Return(loadedBookings(), nil).Once()
	client.On("CancelBooking", mock.Anything, int64(43)).
		Return(nil, &luxoraapi.RequestError{Status: 400, Message: "Booking already checked in"}).Once()
	client.On("CancelBooking", mock.Anything, int64(42)).
		Return(nil, errors.Join(luxoraapi.ErrTransport, errors.New("refused"))).Once()

	svc := NewService(client, nopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	err := svc.Cancel(context.Background(), 43)
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Contains(t, err.Error(), "Booking already checked in")
	assert.Equal(t, "Booking already checked in", svc.LastError())

	err = svc.Cancel(context.Background(), 42)
	assert.ErrorIs(t, err, ErrInternal)

	assert.Equal(t, loadedBookings(), svc.Bookings())
	client.AssertNumberOfCalls(t, "GetBookings", 1)
}

func TestService_Refresh_FailureKeepsPreviousList(t *testing.T) {
	client := new(MockBookingsClient)
	client.On("GetBookings", mock.Anything).Return(loadedBookings(), nil).Once()
	client.On("GetBookings", mock.Anything).Return(nil, &luxoraapi.RequestError{Status: 401, Message: "Not authenticated"}).Once()
	svc := NewService(client, nopLogger{})

	require.NoError(t, svc.Refresh(context.Background()))
	err := svc.Refresh(context.Background())

	assert.ErrorIs(t, err, ErrRefreshFailed)
	assert.Len(t, svc.Bookings(), 3)
	assert.Equal(t, "Not authenticated", svc.LastError())
	assert.False(t, svc.Loading())
}

func TestService_FilterAndSummary(t *testing.T) {
	client := new(MockBookingsClient)
	client.On("GetBookings", mock.Anything).Return(loadedBookings(), nil)
	svc := NewService(client, nopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))

	tests := []struct {
		name   string
		filter models.BookingFilter
		want   []int64
	}{
		{"empty", models.BookingFilter{}, []int64{42, 43, 44}},
		{"all", models.BookingFilter{RoomType: "All", Status: "All"}, []int64{42, 43, 44}},
		{"room type, any case", models.BookingFilter{RoomType: "suite"}, []int64{43, 44}},
		{"status", models.BookingFilter{Status: "Cancelled"}, []int64{44}},
		{"query by code", models.BookingFilter{Query: "lux00043"}, []int64{43}},
		{"query by email", models.BookingFilter{Query: "ANN@"}, []int64{42, 44}},
		{"combined", models.BookingFilter{RoomType: "Suite", Status: "pending", Query: "bob"}, []int64{43}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := make([]int64, 0)
			for _, b := range svc.Filter(tt.filter) {
				got = append(got, b.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}

	assert.Equal(t, domain.BookingSummary{
		Total:        3,
		Confirmed:    1,
		Cancelled:    1,
		Revenue:      300,
		UniqueGuests: 2,
	}, svc.Summary())
	assert.Equal(t, []string{"All", "Deluxe", "Suite"}, svc.RoomTypes())

	view := svc.List(models.BookingFilter{Status: "cancelled"})
	assert.Equal(t, 1, view.Showing)
	assert.Equal(t, 3, view.Summary.Total, "summary covers the whole list")
	require.Len(t, view.Bookings, 1)
	assert.False(t, view.Bookings[0].Cancellable)
}

func TestService_Cancel_RefreshesBeforeNotFound(t *testing.T) {
	after := loadedBookings()
	after[0].Status = domain.StatusCancelled

	client := new(MockBookingsClient)
	client.On("GetBookings", mock.Anything).Return(loadedBookings(), nil).Once()
	client.On("CancelBooking", mock.Anything, int64(42)).
		Return(&domain.Booking{ID: 42, Status: domain.StatusCancelled}, nil).Once()
	client.On("GetBookings", mock.Anything).Return(after, nil).Once()

	svc := NewService(client, nopLogger{})
	require.False(t, svc.Loaded())

	require.NoError(t, svc.Cancel(context.Background(), 42))

	assert.True(t, svc.Loaded())
	assert.Equal(t, domain.StatusCancelled, svc.Bookings()[0].Status)
	client.AssertExpectations(t)
}

func TestService_Cancel_RefreshFailure(t *testing.T) {
	client := new(MockBookingsClient)
	client.On("GetBookings", mock.Anything).Return(nil, errors.Join(luxoraapi.ErrTransport, errors.New("refused"))).Once()

	svc := NewService(client, nopLogger{})

	assert.ErrorIs(t, svc.Cancel(context.Background(), 42), ErrRefreshFailed)
	assert.False(t, svc.Loaded())
	client.AssertNotCalled(t, "CancelBooking", mock.Anything, mock.Anything)
}

func TestService_Clear(t *testing.T) {
	client := new(MockBookingsClient)
	client.On("GetBookings", mock.Anything).Return(loadedBookings(), nil).Once()
	svc := NewService(client, nopLogger{})
	require.NoError(t, svc.Refresh(context.Background()))
	require.True(t, svc.Loaded())

	svc.Clear()

	assert.False(t, svc.Loaded())
	assert.Empty(t, svc.Bookings())
	assert.Empty(t, svc.LastError())
	assert.Equal(t, 0, svc.List(models.BookingFilter{}).Summary.Total)
}
