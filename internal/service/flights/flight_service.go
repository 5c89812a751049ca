package flights

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/Domenick1991/airportbooking/internal/inventory"
)

var (
	ErrFlightNotFound    = errors.New("flight not found")
	ErrDuplicateFlightID = errors.New("flight id already exists")
	ErrInvalidFlight     = errors.New("invalid flight data")
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.Flight, error)
	Get(ctx context.Context, id string) (*domain.Flight, error)
	Search(ctx context.Context, criteria SearchCriteria) ([]domain.Flight, error)
	Add(ctx context.Context, flight domain.Flight) error
	Remove(ctx context.Context, id string) error
	Update(ctx context.Context, id string, update FlightUpdate) (*domain.Flight, error)
}

type Cache interface {
	GetFlights(ctx context.Context) ([]domain.Flight, error)
	SetFlights(ctx context.Context, flights []domain.Flight) error
	InvalidateFlights(ctx context.Context) error
}

// SearchCriteria filters the inventory linearly. Source and destination are
// case-insensitive substring matches; MaxPriceCents of zero means no cap.
type SearchCriteria struct {
	Source        string
	Destination   string
	MinPriceCents int64
	MaxPriceCents int64
}

// FlightUpdate carries partial updates; nil fields are left unchanged.
type FlightUpdate struct {
	Source      *string
	Destination *string
	PriceCents  *int64
	Seats       *int
}

type FlightService struct {
	store inventory.FlightStore
	cache Cache
}

func NewFlightService(store inventory.FlightStore, cache Cache) *FlightService {
	return &FlightService{store: store, cache: cache}
}

func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlights(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetFlights(ctx, flights); err != nil {
			log.Printf("WARNING: set flights cache: %v", err)
		}
	}
	return flights, nil
}

func (s *FlightService) Get(ctx context.Context, id string) (*domain.Flight, error) {
	flights, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	flight := inventory.Find(flights, id)
	if flight == nil {
		return nil, ErrFlightNotFound
	}
	return flight, nil
}

func (s *FlightService) Search(ctx context.Context, criteria SearchCriteria) ([]domain.Flight, error) {
	flights, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	source := strings.ToLower(strings.TrimSpace(criteria.Source))
	destination := strings.ToLower(strings.TrimSpace(criteria.Destination))

	results := make([]domain.Flight, 0)
	for _, f := range flights {
		if f.PriceCents < criteria.MinPriceCents {
			continue
		}
		if criteria.MaxPriceCents > 0 && f.PriceCents > criteria.MaxPriceCents {
			continue
		}
		if source != "" && !strings.Contains(strings.ToLower(f.Source), source) {
			continue
		}
		if destination != "" && !strings.Contains(strings.ToLower(f.Destination), destination) {
			continue
		}
		results = append(results, f)
	}
	return results, nil
}

// Add appends a new flight. The store itself does not enforce uniqueness, so
// the duplicate-id check lives here.
func (s *FlightService) Add(ctx context.Context, flight domain.Flight) error {
	flight.ID = domain.NormalizeFlightID(flight.ID)
	if flight.ID == "" || flight.PriceCents <= 0 || flight.Seats <= 0 {
		return ErrInvalidFlight
	}

	flights, err := s.store.ReadAll()
	if err != nil {
		return err
	}
	if inventory.Find(flights, flight.ID) != nil {
		return ErrDuplicateFlightID
	}

	if err := s.store.Append(flight); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) Remove(ctx context.Context, id string) error {
	id = domain.NormalizeFlightID(id)

	flights, err := s.store.ReadAll()
	if err != nil {
		return err
	}

	remaining := make([]domain.Flight, 0, len(flights))
	for _, f := range flights {
		if f.ID != id {
			remaining = append(remaining, f)
		}
	}
	if len(remaining) == len(flights) {
		return ErrFlightNotFound
	}

	if err := s.store.OverwriteAll(remaining); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *FlightService) Update(ctx context.Context, id string, update FlightUpdate) (*domain.Flight, error) {
	flights, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	flight := inventory.Find(flights, id)
	if flight == nil {
		return nil, ErrFlightNotFound
	}

	if update.Source != nil && *update.Source != "" {
		flight.Source = *update.Source
	}
	if update.Destination != nil && *update.Destination != "" {
		flight.Destination = *update.Destination
	}
	if update.PriceCents != nil {
		if *update.PriceCents <= 0 {
			return nil, ErrInvalidFlight
		}
		flight.PriceCents = *update.PriceCents
	}
	if update.Seats != nil {
		if *update.Seats < 0 {
			return nil, ErrInvalidFlight
		}
		flight.Seats = *update.Seats
	}

	if err := s.store.OverwriteAll(flights); err != nil {
		return nil, err
	}
	s.invalidate(ctx)

	updated := *flight
	return &updated, nil
}

func (s *FlightService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFlights(ctx); err != nil {
		log.Printf("WARNING: invalidate flights cache: %v", err)
	}
}

var _ FlightUseCase = (*FlightService)(nil)
