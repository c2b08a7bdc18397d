package validation

import (
	"regexp"

	"go-profile-service/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Dates on experience/education entries are YYYY-MM strings. Keeping them
// zero-padded means lexical comparison is chronological comparison.
var yearMonthRegex = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("year_month", YearMonth)
	v.RegisterStructValidation(ExperienceDateOrder, domain.Experience{})
	v.RegisterStructValidation(EducationDateOrder, domain.Education{})
}

// YearMonth validates a YYYY-MM date string
func YearMonth(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return yearMonthRegex.MatchString(val)
}

// ExperienceDateOrder rejects an experience entry whose end date precedes
// its start date.
func ExperienceDateOrder(sl validator.StructLevel) {
	exp := sl.Current().Interface().(domain.Experience)
	if exp.EndDate != nil && exp.StartDate != "" && *exp.EndDate < exp.StartDate {
		sl.ReportError(exp.EndDate, "EndDate", "endDate", "date_order", "")
	}
}

// EducationDateOrder applies the same ordering rule to education entries.
func EducationDateOrder(sl validator.StructLevel) {
	edu := sl.Current().Interface().(domain.Education)
	if edu.EndDate != nil && edu.StartDate != "" && *edu.EndDate < edu.StartDate {
		sl.ReportError(edu.EndDate, "EndDate", "endDate", "date_order", "")
	}
}
