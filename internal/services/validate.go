package services

import (
	"time"

	"sales-dashboard/internal/errors"
	"sales-dashboard/internal/models"
)

const dateLayout = "2006-01-02"

// ValidateField checks a single filter edit. Cross-field constraints are
// left to ValidateFilter so that a half-edited range can sit in the pending
// filter.
func ValidateField(field models.FilterField, value string) error {
	switch field {
	case models.FieldRegion:
		if value != models.All && !models.Region(value).Valid() {
			return errors.ValidationField(string(field), "must be All, North, South, East or West")
		}
	case models.FieldCategory:
		if value != models.All && !models.Category(value).Valid() {
			return errors.ValidationField(string(field), "must be All, Technology, Furniture or Office")
		}
	case models.FieldStartDate, models.FieldEndDate:
		if !validDate(value) {
			return errors.ValidationField(string(field), "must be empty or YYYY-MM-DD")
		}
	default:
		return errors.ValidationField(string(field), "unknown filter field")
	}
	return nil
}

// ValidateFilter checks a whole filter before it is applied.
func ValidateFilter(f models.FilterSpec) error {
	checks := []struct {
		field models.FilterField
		value string
	}{
		{models.FieldRegion, string(f.Region)},
		{models.FieldCategory, string(f.Category)},
		{models.FieldStartDate, f.StartDate},
		{models.FieldEndDate, f.EndDate},
	}
	for _, c := range checks {
		if err := ValidateField(c.field, c.value); err != nil {
			return err
		}
	}

	if f.StartDate != "" && f.EndDate != "" && f.StartDate > f.EndDate {
		return errors.ValidationField(string(models.FieldEndDate), "must not be before startDate")
	}
	return nil
}

func validDate(s string) bool {
	if s == "" {
		return true
	}
	if len(s) != len(dateLayout) {
		return false
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
