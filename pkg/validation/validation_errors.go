package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	"UserID":         "User ID",
	"OrganizationID": "Organization ID",
	"FirstName":      "First name",
	"LastName":       "Last name",
	"Email":          "Email",
	"Phone":          "Phone number",
	"Location":       "Location",
	"Summary":        "Summary",
	"Skills":         "Skills",
	"Experience":     "Experience",
	"Education":      "Education",
	"Company":        "Company",
	"Position":       "Position",
	"Institution":    "Institution",
	"Degree":         "Degree",
	"FieldOfStudy":   "Field of study",
	"StartDate":      "Start date",
	"EndDate":        "End date",
	"GPA":            "GPA",
	"LinkedInURL":    "LinkedIn URL",
	"PortfolioURL":   "Portfolio URL",
	"GithubURL":      "GitHub URL",
	"WebsiteURL":     "Website URL",
	"ProfileID":      "Profile ID",
	"FileName":       "File name",
	"FileSize":       "File size",
	"MimeType":       "MIME type",
	"Notes":          "Notes",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "gte":
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "lte":
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "year_month":
		return fmt.Sprintf("%s: must be a YYYY-MM date", label)
	case "date_order":
		return fmt.Sprintf("%s: must not be before the start date", label)
	default:
		return fmt.Sprintf("%s: failed %s validation", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
