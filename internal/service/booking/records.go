package booking

import (
	"context"
	"fmt"
	"time"
)

const (
	RecordStatusActive    = "Active"
	RecordStatusCancelled = "Cancelled"
)

// BookingRecord is the admin view row: active and cancelled bookings merged
// into one list with a status column.
type BookingRecord struct {
	BookingID   int64     `json:"booking_id"`
	Username    string    `json:"username"`
	FlightID    string    `json:"flight_id"`
	SeatsBooked int       `json:"seats_booked"`
	BookingDate time.Time `json:"booking_date"`
	Status      string    `json:"status"`
	Reason      string    `json:"reason,omitempty"`
}

type RecordsUseCase interface {
	ListAllRecords(ctx context.Context) ([]BookingRecord, error)
}

// ListAllRecords returns every active booking followed by every cancellation
// log entry, newest first within each group.
func (s *BookingService) ListAllRecords(ctx context.Context) ([]BookingRecord, error) {
	active, err := s.bookings.ListAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active bookings: %w", err)
	}
	cancelled, err := s.bookings.ListAllCancelled(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cancelled bookings: %w", err)
	}

	records := make([]BookingRecord, 0, len(active)+len(cancelled))
	for _, b := range active {
		records = append(records, BookingRecord{
			BookingID:   b.ID,
			Username:    b.Username,
			FlightID:    b.FlightID,
			SeatsBooked: b.SeatsBooked,
			BookingDate: b.BookingDate,
			Status:      RecordStatusActive,
		})
	}
	for _, c := range cancelled {
		records = append(records, BookingRecord{
			BookingID:   c.BookingID,
			Username:    c.Username,
			FlightID:    c.FlightID,
			SeatsBooked: c.SeatsBooked,
			BookingDate: c.BookingDate,
			Status:      RecordStatusCancelled,
			Reason:      c.Reason,
		})
	}
	return records, nil
}

var _ RecordsUseCase = (*BookingService)(nil)
