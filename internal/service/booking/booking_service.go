package booking

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/inventory"
	"github.com/Domenick1991/airportbooking/internal/kafka"
	"github.com/Domenick1991/airportbooking/internal/receipt"
	"github.com/Domenick1991/airportbooking/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrFlightNotFound   = errors.New("flight not found")
	ErrInvalidSeatCount = errors.New("invalid seat count")
	ErrUserNotFound     = errors.New("user not found")
	ErrNoBookingsFound  = errors.New("no active bookings")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrFlightLockHeld   = errors.New("flight is locked by another operation")
)

// DefaultCancellationReason is recorded when the caller leaves the reason blank.
const DefaultCancellationReason = "No reason provided"

type BookingUseCase interface {
	Book(ctx context.Context, identifier, flightID string, seatCount int) (*BookingResult, error)
	Cancel(ctx context.Context, identifier string, bookingID int64, reason string) (*CancellationResult, error)
	ListBookings(ctx context.Context, identifier string) ([]BookingView, error)
}

type Cache interface {
	AcquireFlightLock(ctx context.Context, flightID string, ttl time.Duration) (bool, error)
	ReleaseFlightLock(ctx context.Context, flightID string) error
	InvalidateFlights(ctx context.Context) error
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type Receipts interface {
	WriteBooking(r receipt.BookingReceipt) (string, error)
	WriteCancellation(r receipt.CancellationReceipt) (string, error)
}

type BookingService struct {
	bookings           repository.BookingRepository
	users              repository.UserRepository
	store              inventory.FlightStore
	cache              Cache
	producer           Producer
	receipts           Receipts
	bookingTopic       string
	notificationsTopic string
	lockTTL            time.Duration
}

type BookingResult struct {
	Booking     domain.Booking `json:"booking"`
	TotalCents  int64          `json:"total_cents"`
	ReceiptPath string         `json:"receipt_path"`
}

type CancellationResult struct {
	Cancelled   domain.CancelledBooking `json:"cancelled"`
	ReceiptPath string                  `json:"receipt_path"`
}

// BookingView is an active booking joined with the current flight record for
// display. A dangling flight reference degrades to placeholders and a zero
// total instead of failing.
type BookingView struct {
	domain.Booking
	Source       string `json:"source"`
	Destination  string `json:"destination"`
	TotalCents   int64  `json:"total_cents"`
	FlightExists bool   `json:"flight_exists"`
}

type BookingServiceOption func(*BookingService)

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	users repository.UserRepository,
	store inventory.FlightStore,
	cache Cache,
	producer Producer,
	receipts Receipts,
	bookingTopic string,
	lockTTL time.Duration,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings:     bookings,
		users:        users,
		store:        store,
		cache:        cache,
		producer:     producer,
		receipts:     receipts,
		bookingTopic: bookingTopic,
		lockTTL:      lockTTL,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book reserves seatCount seats on a flight for the user identified by
// username or email. The relational insert and the inventory rewrite are two
// independent stores; a failed rewrite triggers a compensating delete of the
// booking row so a seat is never sold without being subtracted.
func (s *BookingService) Book(ctx context.Context, identifier, flightID string, seatCount int) (*BookingResult, error) {
	flightID = domain.NormalizeFlightID(flightID)

	unlock, err := s.lockFlight(ctx, flightID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	flights, err := s.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}
	flight := inventory.Find(flights, flightID)
	if flight == nil {
		return nil, ErrFlightNotFound
	}
	if seatCount <= 0 || flight.Seats == domain.SeatsUnknown || seatCount > flight.Seats {
		return nil, ErrInvalidSeatCount
	}

	user, err := s.resolveUser(ctx, identifier)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		UserID:      user.ID,
		FlightID:    flight.ID,
		ReceiptID:   fmt.Sprintf("RCPT%d", time.Now().Unix()),
		SeatsBooked: seatCount,
	}
	if err := s.bookings.Insert(ctx, booking); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	flight.Seats -= seatCount
	if err := s.store.OverwriteAll(flights); err != nil {
		// Compensating delete keeps the two stores consistent when the
		// inventory rewrite fails after the booking row already landed.
		if delErr := s.bookings.DeleteByID(ctx, booking.ID); delErr != nil {
			log.Printf("WARNING: compensating delete of booking %d failed: %v", booking.ID, delErr)
		}
		return nil, fmt.Errorf("update inventory: %w", err)
	}
	s.invalidateFlights(ctx)

	totalCents := flight.PriceCents * int64(seatCount)
	path, err := s.receipts.WriteBooking(receipt.BookingReceipt{
		ReceiptID:  booking.ReceiptID,
		Username:   user.Username,
		Flight:     flight,
		Seats:      seatCount,
		TotalCents: totalCents,
	})
	if err != nil {
		return nil, fmt.Errorf("write booking receipt: %w", err)
	}

	s.publish(ctx, kafka.BookingEvent{
		ID:         uuid.NewString(),
		Type:       kafka.EventBookingCreated,
		Username:   user.Username,
		Email:      user.Email,
		FlightID:   flight.ID,
		BookingID:  booking.ID,
		ReceiptID:  booking.ReceiptID,
		Seats:      seatCount,
		TotalCents: totalCents,
		OccurredAt: time.Now(),
	})

	return &BookingResult{Booking: *booking, TotalCents: totalCents, ReceiptPath: path}, nil
}

// Cancel reverses one of the caller's own bookings: it logs the cancellation,
// restores the seats when the flight still exists, deletes the active row and
// writes a receipt. The log insert deliberately precedes the delete, so a
// failure in between over-records the cancellation instead of losing it.
func (s *BookingService) Cancel(ctx context.Context, identifier string, bookingID int64, reason string) (*CancellationResult, error) {
	user, err := s.resolveUser(ctx, identifier)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	if len(bookings) == 0 {
		return nil, ErrNoBookingsFound
	}

	// Lookup is scoped to the requesting user's bookings only.
	var booking *domain.Booking
	for i := range bookings {
		if bookings[i].ID == bookingID {
			booking = &bookings[i]
			break
		}
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	unlock, err := s.lockFlight(ctx, booking.FlightID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	flights, err := s.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}
	// The flight may have been removed by an admin since booking. The
	// cancellation still proceeds, with a zero-price refund basis.
	flight := inventory.Find(flights, booking.FlightID)

	var totalCents int64
	if flight != nil {
		totalCents = flight.PriceCents * int64(booking.SeatsBooked)
	}
	refundedCents := domain.RefundCents(totalCents)

	if reason == "" {
		reason = DefaultCancellationReason
	}
	cancelled := &domain.CancelledBooking{
		BookingID:        booking.ID,
		Username:         user.Username,
		FlightID:         booking.FlightID,
		SeatsBooked:      booking.SeatsBooked,
		TotalCents:       totalCents,
		RefundedCents:    refundedCents,
		BookingDate:      booking.BookingDate,
		CancellationDate: time.Now(),
		Reason:           reason,
	}
	if err := s.bookings.InsertCancellation(ctx, cancelled); err != nil {
		return nil, fmt.Errorf("insert cancellation: %w", err)
	}

	if flight != nil {
		if flight.Seats == domain.SeatsUnknown {
			flight.Seats = booking.SeatsBooked
		} else {
			flight.Seats += booking.SeatsBooked
		}
		if err := s.store.OverwriteAll(flights); err != nil {
			return nil, fmt.Errorf("restore seats: %w", err)
		}
		s.invalidateFlights(ctx)
	}

	if err := s.bookings.DeleteByID(ctx, booking.ID); err != nil {
		return nil, fmt.Errorf("delete booking: %w", err)
	}

	path, err := s.receipts.WriteCancellation(receipt.CancellationReceipt{
		BookingID:     booking.ID,
		Username:      user.Username,
		Flight:        flight,
		Seats:         booking.SeatsBooked,
		TotalCents:    totalCents,
		RefundedCents: refundedCents,
		Reason:        reason,
		CancelledAt:   cancelled.CancellationDate,
	})
	if err != nil {
		return nil, fmt.Errorf("write cancellation receipt: %w", err)
	}

	s.publish(ctx, kafka.BookingEvent{
		ID:            uuid.NewString(),
		Type:          kafka.EventBookingCancelled,
		Username:      user.Username,
		Email:         user.Email,
		FlightID:      booking.FlightID,
		BookingID:     booking.ID,
		ReceiptID:     booking.ReceiptID,
		Seats:         booking.SeatsBooked,
		TotalCents:    totalCents,
		RefundedCents: refundedCents,
		OccurredAt:    cancelled.CancellationDate,
	})

	return &CancellationResult{Cancelled: *cancelled, ReceiptPath: path}, nil
}

// ListBookings returns the caller's active bookings joined with the current
// flight records. Totals are recomputed from the current price.
func (s *BookingService) ListBookings(ctx context.Context, identifier string) ([]BookingView, error) {
	user, err := s.resolveUser(ctx, identifier)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	flights, err := s.store.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read inventory: %w", err)
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := BookingView{Booking: b, Source: "Flight Not Found", Destination: "Flight Not Found"}
		if flight := inventory.Find(flights, b.FlightID); flight != nil {
			view.Source = flight.Source
			view.Destination = flight.Destination
			view.TotalCents = flight.PriceCents * int64(b.SeatsBooked)
			view.FlightExists = true
		}
		views = append(views, view)
	}
	return views, nil
}

func (s *BookingService) resolveUser(ctx context.Context, identifier string) (*domain.User, error) {
	user, err := s.users.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	return user, nil
}

func (s *BookingService) lockFlight(ctx context.Context, flightID string) (func(), error) {
	if s.cache == nil {
		return func() {}, nil
	}
	ok, err := s.cache.AcquireFlightLock(ctx, flightID, s.lockTTL)
	if err != nil {
		return nil, fmt.Errorf("acquire flight lock: %w", err)
	}
	if !ok {
		return nil, ErrFlightLockHeld
	}
	return func() {
		if err := s.cache.ReleaseFlightLock(ctx, flightID); err != nil {
			log.Printf("WARNING: release lock for flight %s: %v", flightID, err)
		}
	}, nil
}

func (s *BookingService) invalidateFlights(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("WARNING: invalidate flights cache: %v", err)
	}
}

func (s *BookingService) publish(ctx context.Context, event kafka.BookingEvent) {
	if s.producer == nil || s.bookingTopic == "" {
		return
	}
	if err := s.producer.Publish(ctx, s.bookingTopic, event.ID, event); err != nil {
		log.Printf("WARNING: publish %s event for booking %d: %v", event.Type, event.BookingID, err)
		return
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.ID, event); err != nil {
			log.Printf("WARNING: publish notification for booking %d: %v", event.BookingID, err)
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
