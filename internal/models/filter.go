package models

// FilterSpec is the set of selection criteria for the dashboard. Region and
// Category hold an enum value or All; an empty date bound is unbounded.
type FilterSpec struct {
	Region    Region   `json:"region"`
	Category  Category `json:"category"`
	StartDate string   `json:"startDate"`
	EndDate   string   `json:"endDate"`
}

func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		Region:   Region(All),
		Category: Category(All),
	}
}

func (f FilterSpec) IsDefault() bool {
	return f == DefaultFilterSpec()
}

// FilterField names one editable field of a pending FilterSpec.
type FilterField string

const (
	FieldRegion    FilterField = "region"
	FieldCategory  FilterField = "category"
	FieldStartDate FilterField = "startDate"
	FieldEndDate   FilterField = "endDate"
)

// With returns a copy of f with one field replaced. ok is false for an
// unknown field, in which case f is returned unchanged.
func (f FilterSpec) With(field FilterField, value string) (FilterSpec, bool) {
	switch field {
	case FieldRegion:
		f.Region = Region(value)
	case FieldCategory:
		f.Category = Category(value)
	case FieldStartDate:
		f.StartDate = value
	case FieldEndDate:
		f.EndDate = value
	default:
		return f, false
	}
	return f, true
}
