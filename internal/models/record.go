package models

type Region string

const (
	RegionNorth Region = "North"
	RegionSouth Region = "South"
	RegionEast  Region = "East"
	RegionWest  Region = "West"
)

type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryFurniture  Category = "Furniture"
	CategoryOffice     Category = "Office"
)

// All is the filter sentinel that matches every region or category.
const All = "All"

// Regions is the canonical region order used for chart axes.
var Regions = []Region{RegionNorth, RegionSouth, RegionEast, RegionWest}

// Categories is the canonical category order used for chart axes and tables.
var Categories = []Category{CategoryTechnology, CategoryFurniture, CategoryOffice}

// Record is one sales transaction. Date is an ISO-8601 day (YYYY-MM-DD);
// Sales and Profit are whole currency units.
type Record struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Region   Region   `json:"region"`
	Category Category `json:"category"`
	Date     string   `json:"date"`
	Sales    int64    `json:"sales"`
	Profit   int64    `json:"profit"`
}

func (r Region) Valid() bool {
	for _, reg := range Regions {
		if r == reg {
			return true
		}
	}
	return false
}

func (c Category) Valid() bool {
	for _, cat := range Categories {
		if c == cat {
			return true
		}
	}
	return false
}
