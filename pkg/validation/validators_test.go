package validation_test

import (
	"testing"

	"go-profile-service/internal/domain"
	"go-profile-service/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func strPtr(s string) *string { return &s }

func TestYearMonthFormat(t *testing.T) {
	v := newValidator()

	type holder struct {
		Date string `validate:"year_month"`
	}

	valid := []string{"2023-01", "2023-12", "1999-09", ""}
	for _, d := range valid {
		assert.NoError(t, v.Struct(holder{Date: d}), "expected %q to be accepted", d)
	}

	invalid := []string{"2023-13", "2023-00", "2023-1", "202301", "2023/01", "23-01", "2023-01-15"}
	for _, d := range invalid {
		assert.Error(t, v.Struct(holder{Date: d}), "expected %q to be rejected", d)
	}
}

func TestExperienceDateOrder(t *testing.T) {
	v := newValidator()

	base := domain.Experience{
		Company:   "Acme",
		Position:  "Engineer",
		StartDate: "2021-05",
	}

	t.Run("end date before start date is rejected", func(t *testing.T) {
		exp := base
		exp.EndDate = strPtr("2020-01")
		err := v.Struct(exp)
		assert.Error(t, err)

		var validationErrs validator.ValidationErrors
		if assert.ErrorAs(t, err, &validationErrs) {
			assert.Equal(t, "date_order", validationErrs[0].Tag())
		}
	})

	t.Run("end date after start date passes", func(t *testing.T) {
		exp := base
		exp.EndDate = strPtr("2023-08")
		assert.NoError(t, v.Struct(exp))
	})

	t.Run("same month passes", func(t *testing.T) {
		exp := base
		exp.EndDate = strPtr("2021-05")
		assert.NoError(t, v.Struct(exp))
	})

	t.Run("open-ended entry passes", func(t *testing.T) {
		exp := base
		exp.IsCurrent = true
		assert.NoError(t, v.Struct(exp))
	})
}

func TestEducationDateOrder(t *testing.T) {
	v := newValidator()

	edu := domain.Education{
		Institution: "State University",
		Degree:      "BSc",
		StartDate:   "2018-09",
		EndDate:     strPtr("2016-06"),
	}
	assert.Error(t, v.Struct(edu))

	edu.EndDate = strPtr("2022-06")
	assert.NoError(t, v.Struct(edu))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator()

	exp := domain.Experience{
		Position:  "Engineer",
		StartDate: "2021-05",
		EndDate:   strPtr("2020-01"),
	}
	err := v.Struct(exp)
	assert.Error(t, err)

	messages := validation.FormatValidationErrors(err)
	assert.Len(t, messages, 2)
	assert.Contains(t, messages[0], "required")
	assert.Contains(t, messages[1], "start date")
}
