package repository

import (
	"context"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	Insert(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	DeleteByID(ctx context.Context, bookingID int64) error
	InsertCancellation(ctx context.Context, cancelled *domain.CancelledBooking) error
	ListAllActive(ctx context.Context) ([]BookingWithUser, error)
	ListAllCancelled(ctx context.Context) ([]domain.CancelledBooking, error)
}

// BookingWithUser is the admin view row: a booking joined with its owner.
type BookingWithUser struct {
	domain.Booking
	Username string `json:"username"`
}

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Insert(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings (user_id, flight_id, receipt_id, seats_booked)
		VALUES ($1, $2, $3, $4)
		RETURNING id, booking_date`,
		booking.UserID, booking.FlightID, booking.ReceiptID, booking.SeatsBooked).
		Scan(&booking.ID, &booking.BookingDate)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, user_id, flight_id, receipt_id, seats_booked, booking_date
		FROM bookings WHERE user_id=$1 ORDER BY booking_date DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.ReceiptID, &b.SeatsBooked, &b.BookingDate); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) DeleteByID(ctx context.Context, bookingID int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM bookings WHERE id=$1`, bookingID)
	return err
}

func (r *PGBookingRepository) InsertCancellation(ctx context.Context, cancelled *domain.CancelledBooking) error {
	return r.db.QueryRow(ctx, `INSERT INTO cancelled_bookings
		(booking_id, username, flight_id, seats_booked, total_amount, amount_refunded, booking_date, cancellation_date, reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		cancelled.BookingID, cancelled.Username, cancelled.FlightID, cancelled.SeatsBooked,
		cancelled.TotalCents, cancelled.RefundedCents, cancelled.BookingDate, cancelled.CancellationDate, cancelled.Reason).
		Scan(&cancelled.ID)
}

func (r *PGBookingRepository) ListAllActive(ctx context.Context) ([]BookingWithUser, error) {
	rows, err := r.db.Query(ctx, `SELECT b.id, b.user_id, b.flight_id, b.receipt_id, b.seats_booked, b.booking_date, u.username
		FROM bookings b
		JOIN users u ON b.user_id = u.id
		ORDER BY b.booking_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []BookingWithUser
	for rows.Next() {
		var b BookingWithUser
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.ReceiptID, &b.SeatsBooked, &b.BookingDate, &b.Username); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) ListAllCancelled(ctx context.Context) ([]domain.CancelledBooking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, booking_id, username, flight_id, seats_booked, total_amount, amount_refunded, booking_date, cancellation_date, reason
		FROM cancelled_bookings ORDER BY cancellation_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cancelled []domain.CancelledBooking
	for rows.Next() {
		var c domain.CancelledBooking
		if err := rows.Scan(&c.ID, &c.BookingID, &c.Username, &c.FlightID, &c.SeatsBooked,
			&c.TotalCents, &c.RefundedCents, &c.BookingDate, &c.CancellationDate, &c.Reason); err != nil {
			return nil, err
		}
		cancelled = append(cancelled, c)
	}
	return cancelled, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
