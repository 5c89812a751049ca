package inventory

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Domenick1991/airportbooking/internal/domain"
)

var header = []string{"id", "source", "destination", "price", "seats"}

// FlightStore is the flat-file flight inventory. Whole-file reads and
// rewrites, no locking at this layer; callers serialize per flight id.
type FlightStore interface {
	ReadAll() ([]domain.Flight, error)
	Append(flight domain.Flight) error
	OverwriteAll(flights []domain.Flight) error
}

type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ReadAll parses the inventory file in order, creating an empty file with a
// header row when it does not exist yet. Ids are upper-cased on the way in.
// Numeric fields parse leniently: a bad price reads as 0 cents, a bad seats
// field reads as SeatsUnknown.
func (s *FileStore) ReadAll() ([]domain.Flight, error) {
	if err := s.ensureFile(); err != nil {
		return nil, err
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open inventory file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read inventory file: %w", err)
	}

	flights := make([]domain.Flight, 0, len(rows))
	for i, row := range rows {
		if i == 0 && isHeader(row) {
			continue
		}
		if len(row) < 5 {
			continue
		}
		flight := domain.Flight{
			ID:          domain.NormalizeFlightID(row[0]),
			Source:      row[1],
			Destination: row[2],
		}
		if cents, err := domain.ParsePrice(row[3]); err == nil {
			flight.PriceCents = cents
		}
		if seats, err := strconv.Atoi(row[4]); err == nil && seats >= 0 {
			flight.Seats = seats
		} else {
			flight.Seats = domain.SeatsUnknown
		}
		flights = append(flights, flight)
	}
	return flights, nil
}

// Append writes one record to the end of the file. Uniqueness of the id is
// the caller's concern.
func (s *FileStore) Append(flight domain.Flight) error {
	if err := s.ensureFile(); err != nil {
		return err
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open inventory file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(record(flight)); err != nil {
		return fmt.Errorf("append flight: %w", err)
	}
	w.Flush()
	return w.Error()
}

// OverwriteAll rewrites the file with header plus every record. Not atomic:
// a crash mid-write can leave a truncated file.
func (s *FileStore) OverwriteAll(flights []domain.Flight) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create inventory file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, flight := range flights {
		if err := w.Write(record(flight)); err != nil {
			return fmt.Errorf("write flight %s: %w", flight.ID, err)
		}
	}
	w.Flush()
	return w.Error()
}

func (s *FileStore) ensureFile() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat inventory file: %w", err)
	}
	return s.OverwriteAll(nil)
}

func record(flight domain.Flight) []string {
	seats := strconv.Itoa(flight.Seats)
	if flight.Seats == domain.SeatsUnknown {
		seats = ""
	}
	return []string{
		domain.NormalizeFlightID(flight.ID),
		flight.Source,
		flight.Destination,
		domain.FormatPrice(flight.PriceCents),
		seats,
	}
}

func isHeader(row []string) bool {
	return len(row) > 0 && row[0] == "id"
}

// Find returns the flight with the given id, or nil when absent. Bookings
// hold soft references, so a missing flight is not an error here.
func Find(flights []domain.Flight, id string) *domain.Flight {
	id = domain.NormalizeFlightID(id)
	for i := range flights {
		if flights[i].ID == id {
			return &flights[i]
		}
	}
	return nil
}

var _ FlightStore = (*FileStore)(nil)
