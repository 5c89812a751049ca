package inventory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/airportbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	return NewFileStore(filepath.Join(t.TempDir(), "flights.csv"))
}

func TestFileStore_ReadAll_CreatesFileWithHeader(t *testing.T) {
	store := newTestStore(t)

	flights, err := store.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, flights)

	data, err := os.ReadFile(store.path)
	require.NoError(t, err)
	assert.Equal(t, "id,source,destination,price,seats\n", string(data))
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)

	flights := []domain.Flight{
		{ID: "AA100", Source: "Delhi", Destination: "Mumbai", PriceCents: 20000, Seats: 10},
		{ID: "BA200", Source: "London", Destination: "Paris", PriceCents: 9950, Seats: 0},
	}
	require.NoError(t, store.OverwriteAll(flights))

	got, err := store.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, flights, got)
}

func TestFileStore_Append_UppercasesID(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(domain.Flight{ID: "aa100", Source: "Delhi", Destination: "Mumbai", PriceCents: 20000, Seats: 10}))

	got, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "AA100", got[0].ID)
}

func TestFileStore_ReadAll_LenientParsing(t *testing.T) {
	store := newTestStore(t)
	content := "id,source,destination,price,seats\n" +
		"aa100,Delhi,Mumbai,200.00,ten\n" +
		"ba200,London,Paris,cheap,5\n"
	require.NoError(t, os.WriteFile(store.path, []byte(content), 0o644))

	got, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 2)

	// Unparseable seats read as unknown, unparseable price as zero.
	assert.Equal(t, "AA100", got[0].ID)
	assert.Equal(t, int64(20000), got[0].PriceCents)
	assert.Equal(t, domain.SeatsUnknown, got[0].Seats)

	assert.Equal(t, int64(0), got[1].PriceCents)
	assert.Equal(t, 5, got[1].Seats)
}

func TestFileStore_OverwriteAll_ReplacesContents(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.Append(domain.Flight{ID: "AA100", Source: "Delhi", Destination: "Mumbai", PriceCents: 20000, Seats: 10}))
	require.NoError(t, store.OverwriteAll([]domain.Flight{
		{ID: "BA200", Source: "London", Destination: "Paris", PriceCents: 9950, Seats: 5},
	}))

	got, err := store.ReadAll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "BA200", got[0].ID)
}

func TestFind(t *testing.T) {
	flights := []domain.Flight{
		{ID: "AA100", Seats: 10},
		{ID: "BA200", Seats: 5},
	}

	assert.Equal(t, &flights[1], Find(flights, "ba200"))
	assert.Nil(t, Find(flights, "ZZ999"))
}
