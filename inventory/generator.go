package inventory

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Demo catalogue mirrored from the seller's sample data.
var catalogue = map[string][]string{
	"Toyota":        {"Aqua", "Vitz", "Passo", "Corolla", "Prius", "Harrier", "RAV4", "Land Cruiser", "HiAce"},
	"Honda":         {"Fit", "Vezel", "CR-V", "Civic", "Accord", "N-BOX", "Freed"},
	"Nissan":        {"Note", "Serena", "X-Trail", "Leaf", "Skyline", "March", "Juke"},
	"Mazda":         {"Demio", "CX-5", "CX-8", "Mazda3", "Mazda6", "Roadster"},
	"Mercedes-Benz": {"C-Class", "E-Class", "S-Class", "GLC", "A-Class"},
	"BMW":           {"3 Series", "5 Series", "X1", "X3", "X5", "1 Series"},
}

var makers = []string{"Toyota", "Honda", "Nissan", "Mazda", "Mercedes-Benz", "BMW"}

var colors = []string{
	"White", "Black", "Silver", "Gray", "Blue", "Red", "Beige", "Brown",
	"Green", "Pearl White", "Dark Blue", "Maroon",
}

var locations = []string{
	"Australia", "Canada", "Chile", "Germany", "Ireland", "Kenya", "Malaysia",
	"New Zealand", "Pakistan", "Tanzania", "Thailand", "United Arab Emirates",
	"United Kingdom", "United States", "Zambia",
}

var grades = []string{"4.5", "4.0", "3.5", "R"}

const (
	luxuryPriceFactor   = 3_000_000
	standardPriceFactor = 1_500_000
	depreciationPerYear = 0.85
	minListingPrice     = 300_000

	minMileage = 5_000
	maxMileage = 150_000
)

// Generator is a Source of randomly generated demo listings. The random
// source is injected so test inventories are reproducible from a seed.
// Listings are generated once at construction and never change.
type Generator struct {
	mu       sync.RWMutex
	vehicles []Vehicle
	byID     map[string]Vehicle
}

// NewGenerator builds a demo inventory from the given random source, two to
// three listings per catalogue model, priced by age depreciation with ±10%
// jitter and floored at the minimum listing price.
func NewGenerator(rng *rand.Rand) *Generator {
	now := time.Now()
	currentYear := now.Year()
	entropy := ulid.Monotonic(rng, 0)

	g := &Generator{byID: make(map[string]Vehicle)}

	for _, maker := range makers {
		factor := standardPriceFactor
		if maker == "Mercedes-Benz" || maker == "BMW" {
			factor = luxuryPriceFactor
		}

		for _, model := range catalogue[maker] {
			n := 2 + rng.Intn(2)
			for i := 0; i < n; i++ {
				year := currentYear - 8 + rng.Intn(8)
				age := currentYear - year
				price := int64(float64(factor) * math.Pow(depreciationPerYear, float64(age)) * (0.9 + 0.2*rng.Float64()))
				if price < minListingPrice {
					price = minListingPrice
				}

				v := Vehicle{
					ID:           ulid.MustNew(ulid.Timestamp(now), entropy).String(),
					Make:         maker,
					Model:        model,
					Year:         year,
					BasePrice:    price,
					Mileage:      minMileage + rng.Intn(maxMileage-minMileage+1),
					Fuel:         "Gasoline",
					Transmission: []string{"Automatic", "Manual"}[rng.Intn(2)],
					Color:        colors[rng.Intn(len(colors))],
					Grade:        grades[rng.Intn(len(grades))],
					Location:     locations[rng.Intn(len(locations))],
				}
				v.ImageURL = fmt.Sprintf("https://placehold.co/600x400/grey/white?text=%s+%s", v.Make, v.Model)

				g.vehicles = append(g.vehicles, v)
				g.byID[v.ID] = v
			}
		}
	}

	return g
}

func (g *Generator) List(_ context.Context) ([]Vehicle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Vehicle, len(g.vehicles))
	copy(out, g.vehicles)
	return out, nil
}

func (g *Generator) Get(_ context.Context, id string) (Vehicle, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v, ok := g.byID[id]
	if !ok {
		return Vehicle{}, fmt.Errorf("%w: %s", ErrVehicleNotFound, id)
	}
	return v, nil
}
