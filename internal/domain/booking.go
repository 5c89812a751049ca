package domain

import "time"

type Booking struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	FlightID    string    `json:"flight_id"`
	ReceiptID   string    `json:"receipt_id"`
	SeatsBooked int       `json:"seats_booked"`
	BookingDate time.Time `json:"booking_date"`
}

// CancelledBooking is the append-only cancellation log row. It is written
// exactly once per cancellation and never mutated or deleted.
type CancelledBooking struct {
	ID               int64     `json:"id"`
	BookingID        int64     `json:"booking_id"`
	Username         string    `json:"username"`
	FlightID         string    `json:"flight_id"`
	SeatsBooked      int       `json:"seats_booked"`
	TotalCents       int64     `json:"total_cents"`
	RefundedCents    int64     `json:"refunded_cents"`
	BookingDate      time.Time `json:"booking_date"`
	CancellationDate time.Time `json:"cancellation_date"`
	Reason           string    `json:"reason"`
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type Feedback struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Email     string    `json:"email,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
