package utils

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// HasErrors returns true if there are any validation errors
func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Validator provides validation methods
type Validator struct {
	errors ValidationErrors
}

// NewValidator creates a new validator
func NewValidator() *Validator {
	return &Validator{
		errors: make(ValidationErrors, 0),
	}
}

// AddError adds a validation error
func (v *Validator) AddError(field, message string) {
	v.errors = append(v.errors, &ValidationError{
		Field:   field,
		Message: message,
	})
}

// Errors returns all validation errors
func (v *Validator) Errors() ValidationErrors {
	return v.errors
}

// HasErrors returns true if there are any validation errors
func (v *Validator) HasErrors() bool {
	return len(v.errors) > 0
}

// Required checks if a string is not empty
func (v *Validator) Required(field, value string) bool {
	if strings.TrimSpace(value) == "" {
		v.AddError(field, "this field is required")
		return false
	}
	return true
}

// MaxLength checks if a string doesn't exceed maximum length
func (v *Validator) MaxLength(field, value string, max int) bool {
	if utf8.RuneCountInString(value) > max {
		v.AddError(field, fmt.Sprintf("must not exceed %d characters", max))
		return false
	}
	return true
}

// ValidateRoomTitle validates a room title against the column constraint
func (v *Validator) ValidateRoomTitle(field, value string) bool {
	if !v.Required(field, value) {
		return false
	}
	return v.MaxLength(field, value, 255)
}

// ValidateMaxParticipants checks that the participant cap is not negative.
// Zero means unlimited.
func (v *Validator) ValidateMaxParticipants(field string, value int) bool {
	if value < 0 {
		v.AddError(field, "must not be negative")
		return false
	}
	return true
}

// ValidateOrderBy normalizes a recording listing order, defaulting to DESC
func ValidateOrderBy(orderBy string) string {
	switch strings.ToUpper(strings.TrimSpace(orderBy)) {
	case "ASC":
		return "ASC"
	default:
		return "DESC"
	}
}
