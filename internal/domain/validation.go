package domain

import (
	"errors"
	"strings"
)

// ValidationErrorType kind of a booking validation error
type ValidationErrorType string

const (
	ValidationDateConflict      ValidationErrorType = "date_conflict"
	ValidationRoomRuleViolation ValidationErrorType = "room_rule_violation"
	ValidationCapacityViolation ValidationErrorType = "capacity_violation"
	ValidationFormInvalid       ValidationErrorType = "form_invalid"
	ValidationPricingError      ValidationErrorType = "pricing_error"
)

// BookingValidationError one problem found in a booking draft
type BookingValidationError struct {
	Type    ValidationErrorType    `json:"type"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ValidationErrors all problems found in a draft. Implements error so that
// use cases can return it and callers can unwrap it with AsValidationErrors.
type ValidationErrors []BookingValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, e := range v {
		msgs = append(msgs, string(e.Type)+": "+e.Message)
	}
	return "booking validation failed: " + strings.Join(msgs, "; ")
}

// Add appends an error
func (v *ValidationErrors) Add(t ValidationErrorType, message string, details map[string]interface{}) {
	*v = append(*v, BookingValidationError{Type: t, Message: message, Details: details})
}

// HasType returns true if at least one error of the type is present
func (v ValidationErrors) HasType(t ValidationErrorType) bool {
	for _, e := range v {
		if e.Type == t {
			return true
		}
	}
	return false
}

// Without returns the errors whose type is not in types
func (v ValidationErrors) Without(types ...ValidationErrorType) ValidationErrors {
	var out ValidationErrors
next:
	for _, e := range v {
		for _, t := range types {
			if e.Type == t {
				continue next
			}
		}
		out = append(out, e)
	}
	return out
}

// AsValidationErrors extracts ValidationErrors from an error chain
func AsValidationErrors(err error) (ValidationErrors, bool) {
	var v ValidationErrors
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
