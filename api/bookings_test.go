package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) Book(ctx context.Context, identifier, flightID string, seatCount int) (*booking.BookingResult, error) {
	args := m.Called(ctx, identifier, flightID, seatCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.BookingResult), args.Error(1)
}

func (m *MockBookingUseCase) Cancel(ctx context.Context, identifier string, bookingID int64, reason string) (*booking.CancellationResult, error) {
	args := m.Called(ctx, identifier, bookingID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.CancellationResult), args.Error(1)
}

func (m *MockBookingUseCase) ListBookings(ctx context.Context, identifier string) ([]booking.BookingView, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.BookingView), args.Error(1)
}

type MockRecordsUseCase struct {
	mock.Mock
}

func (m *MockRecordsUseCase) ListAllRecords(ctx context.Context) ([]booking.BookingRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]booking.BookingRecord), args.Error(1)
}

func newBookingTestContext(t *testing.T, method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	c.Request = httptest.NewRequest(method, target, reader)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func TestBookingHandler_create(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, &MockRecordsUseCase{})

	c, w := newBookingTestContext(t, "POST", "/bookings", `{"username":"alice","flight_id":"AA100","seats":3}`)

	result := &booking.BookingResult{
		Booking: domain.Booking{
			ID: 42, UserID: 7, FlightID: "AA100", ReceiptID: "RCPT1700000000",
			SeatsBooked: 3, BookingDate: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		},
		TotalCents:  60000,
		ReceiptPath: "receipts/BookingReceipt_alice_RCPT1700000000.txt",
	}
	mockService.On("Book", c.Request.Context(), "alice", "AA100", 3).Return(result, nil).Once()

	handler.create(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp bookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.BookingID)
	assert.Equal(t, "600.00", resp.Total)
	assert.Equal(t, "RCPT1700000000", resp.ReceiptID)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_create_ErrorMapping(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "flight not found", err: booking.ErrFlightNotFound, expected: http.StatusNotFound},
		{name: "user not found", err: booking.ErrUserNotFound, expected: http.StatusNotFound},
		{name: "invalid seat count", err: booking.ErrInvalidSeatCount, expected: http.StatusBadRequest},
		{name: "lock held", err: booking.ErrFlightLockHeld, expected: http.StatusConflict},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockService := &MockBookingUseCase{}
			handler := NewBookingHandler(mockService, &MockRecordsUseCase{})

			c, w := newBookingTestContext(t, "POST", "/bookings", `{"username":"alice","flight_id":"AA100","seats":3}`)
			mockService.On("Book", c.Request.Context(), "alice", "AA100", 3).Return(nil, tc.err).Once()

			handler.create(c)

			assert.Equal(t, tc.expected, w.Code)
		})
	}
}

func TestBookingHandler_cancel(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, &MockRecordsUseCase{})

	c, w := newBookingTestContext(t, "DELETE", "/bookings/42", `{"username":"alice","reason":"change of plans"}`)
	c.Params = gin.Params{{Key: "id", Value: "42"}}

	result := &booking.CancellationResult{
		Cancelled: domain.CancelledBooking{
			BookingID: 42, Username: "alice", FlightID: "AA100", SeatsBooked: 3,
			TotalCents: 60000, RefundedCents: 45000, Reason: "change of plans",
		},
		ReceiptPath: "receipts/CancellationReceipt_alice_BID42.txt",
	}
	mockService.On("Cancel", c.Request.Context(), "alice", int64(42), "change of plans").Return(result, nil).Once()

	handler.cancel(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp cancellationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "600.00", resp.Total)
	assert.Equal(t, "450.00", resp.Refunded)

	mockService.AssertExpectations(t)
}

func TestBookingHandler_cancel_InvalidID(t *testing.T) {
	handler := NewBookingHandler(&MockBookingUseCase{}, &MockRecordsUseCase{})

	c, w := newBookingTestContext(t, "DELETE", "/bookings/abc", `{"username":"alice"}`)
	c.Params = gin.Params{{Key: "id", Value: "abc"}}

	handler.cancel(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_list(t *testing.T) {
	mockService := &MockBookingUseCase{}
	handler := NewBookingHandler(mockService, &MockRecordsUseCase{})

	c, w := newBookingTestContext(t, "GET", "/bookings?user=alice", "")

	views := []booking.BookingView{
		{Booking: domain.Booking{ID: 42, FlightID: "AA100", SeatsBooked: 3}, Source: "Delhi", Destination: "Mumbai", TotalCents: 60000, FlightExists: true},
	}
	mockService.On("ListBookings", c.Request.Context(), "alice").Return(views, nil).Once()

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockService.AssertExpectations(t)
}

func TestBookingHandler_list_MissingUser(t *testing.T) {
	handler := NewBookingHandler(&MockBookingUseCase{}, &MockRecordsUseCase{})

	c, w := newBookingTestContext(t, "GET", "/bookings", "")

	handler.list(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingHandler_listAll(t *testing.T) {
	mockRecords := &MockRecordsUseCase{}
	handler := NewBookingHandler(&MockBookingUseCase{}, mockRecords)

	c, w := newBookingTestContext(t, "GET", "/admin/bookings", "")

	records := []booking.BookingRecord{
		{BookingID: 42, Username: "alice", FlightID: "AA100", Status: booking.RecordStatusActive},
		{BookingID: 17, Username: "bob", FlightID: "BA200", Status: booking.RecordStatusCancelled, Reason: "missed connection"},
	}
	mockRecords.On("ListAllRecords", c.Request.Context()).Return(records, nil).Once()

	handler.listAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockRecords.AssertExpectations(t)
}
