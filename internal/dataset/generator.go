package dataset

import (
	"math"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"sales-dashboard/internal/models"
)

const (
	DefaultCount = 60
	dayStep      = 2
	minSales     = 200
	salesSpread  = 2000
	minMargin    = 0.10
	marginSpread = 0.35
	dateLayout   = "2006-01-02"
)

var productNames = []string{
	"Apex Monitor", "Nimbus Chair", "Orbit Desk", "Pulse Keyboard",
	"Vertex Laptop", "Quantum Pen", "Atlas Shelf", "Nova Lamp",
	"Pixel Paper", "Vector Mouse", "Zen Bookcase", "Echo Phone",
}

type GenerateOptions struct {
	Count int
	// Seed makes the output reproducible. Zero seeds from the clock.
	Seed int64
	// Now anchors the most recent record's date. Zero means time.Now.
	Now time.Time
}

// Generate builds a synthetic record set: one record every two days going
// back from Now, cycling through regions, categories and product names, with
// sales in [200, 2200] and profit between 10% and 45% of sales. Records are
// returned oldest first.
func Generate(opts GenerateOptions) []models.Record {
	if opts.Count <= 0 {
		return []models.Record{}
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	now = now.UTC()

	seed := uint64(opts.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	records := make([]models.Record, 0, opts.Count)
	for i := 0; i < opts.Count; i++ {
		sales := int64(math.Round(minSales + rng.Float64()*salesSpread))
		profit := int64(math.Round(float64(sales) * (minMargin + rng.Float64()*marginSpread)))

		records = append(records, models.Record{
			ID:       i + 1,
			Name:     productNames[i%len(productNames)],
			Region:   models.Regions[i%len(models.Regions)],
			Category: models.Categories[i%len(models.Categories)],
			Date:     now.AddDate(0, 0, -dayStep*i).Format(dateLayout),
			Sales:    sales,
			Profit:   profit,
		})
	}

	slices.SortStableFunc(records, func(a, b models.Record) int {
		return strings.Compare(a.Date, b.Date)
	})
	return records
}
