package inventory

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var requiredColumns = []string{"make", "model", "year", "price"}

// CSVSource is a Source loaded once from an inventory CSV export.
// The file must carry make/model/year/price columns; the optional
// mileage/fuel/transmission/color/grade/location/id columns are used when
// present, and listings without an id are assigned fresh ULIDs.
type CSVSource struct {
	mu       sync.RWMutex
	vehicles []Vehicle
	byID     map[string]Vehicle
}

// NewCSVSource reads and validates the inventory file at path.
// Rows with a non-positive price fail loading with ErrInvalidListing rather
// than being silently dropped.
func NewCSVSource(path string) (*CSVSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory file: %w", err)
	}
	defer f.Close()

	return newCSVSource(f)
}

func newCSVSource(r io.Reader) (*CSVSource, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrEmptyInventory
	}
	if err != nil {
		return nil, fmt.Errorf("read inventory header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumns, name)
		}
	}

	entropy := ulid.DefaultEntropy()
	now := ulid.Timestamp(time.Now())

	s := &CSVSource{byID: make(map[string]Vehicle)}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read inventory line %d: %w", line, err)
		}

		field := func(name string) string {
			i, ok := col[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		year, err := strconv.Atoi(field("year"))
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad year %q", ErrInvalidListing, line, field("year"))
		}
		price, err := strconv.ParseInt(field("price"), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad price %q", ErrInvalidListing, line, field("price"))
		}

		v := Vehicle{
			ID:           field("id"),
			Make:         field("make"),
			Model:        field("model"),
			Year:         year,
			BasePrice:    price,
			Fuel:         field("fuel"),
			Transmission: field("transmission"),
			Color:        field("color"),
			Grade:        field("grade"),
			Location:     field("location"),
		}
		if m := field("mileage"); m != "" {
			if v.Mileage, err = strconv.Atoi(m); err != nil {
				return nil, fmt.Errorf("%w: line %d: bad mileage %q", ErrInvalidListing, line, m)
			}
		}
		if v.ID == "" {
			v.ID = ulid.MustNew(now, entropy).String()
		}

		if err := v.Validate(); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		s.vehicles = append(s.vehicles, v)
		s.byID[v.ID] = v
	}

	if len(s.vehicles) == 0 {
		return nil, ErrEmptyInventory
	}
	return s, nil
}

func (s *CSVSource) List(_ context.Context) ([]Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Vehicle, len(s.vehicles))
	copy(out, s.vehicles)
	return out, nil
}

func (s *CSVSource) Get(_ context.Context, id string) (Vehicle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.byID[id]
	if !ok {
		return Vehicle{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, id)
	}
	return v, nil
}
