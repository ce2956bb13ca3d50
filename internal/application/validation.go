package application

import (
	"fmt"
	"strings"

	"edet/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "folderName" -> "folder name")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"folderName": "folder name",
		"seminarID":  "seminar ID",
		"files":      "files",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}

// ResolveSeminar looks the id up in the catalog, failing with NotFoundError
func ResolveSeminar(id int) (domain.SeminarEntry, error) {
	s, ok := domain.LookupSeminar(id)
	if !ok {
		return domain.SeminarEntry{}, &NotFoundError{SeminarID: id}
	}
	return s, nil
}
