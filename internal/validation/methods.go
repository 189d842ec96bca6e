package validation

import (
	"fmt"
	"strings"
)

// Validator collects field errors for a request payload.
type Validator struct {
	Errors map[string]string
}

// New creates a new validator
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid checks if there are any validation errors
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError adds an error to the validator
func (v *Validator) AddError(field, message string) {
	v.Errors[field] = message
}

// Check adds an error if the condition is false
func (v *Validator) Check(ok bool, field, message string) {
	if !ok {
		v.AddError(field, message)
	}
}

// Email validates email format
func (v *Validator) Email(field, email string) {
	v.Check(emailRegex.MatchString(email), field, "must be a valid email address")
}

// CardNumber validates the 16-digit card number format.
func (v *Validator) CardNumber(field, number string) {
	v.Check(cardNumberRegex.MatchString(number), field, "must be a 16 digit card number")
}

// Required checks if a string is not empty
func (v *Validator) Required(field, value string) {
	v.Check(strings.TrimSpace(value) != "", field, "must not be empty")
}

// MinLength checks if a string has at least n characters
func (v *Validator) MinLength(field string, value string, n int) {
	v.Check(len(value) >= n, field, fmt.Sprintf("must be at least %d characters long", n))
}

// MaxLength checks if a string has at most n characters
func (v *Validator) MaxLength(field string, value string, n int) {
	v.Check(len(value) <= n, field, fmt.Sprintf("must not be more than %d characters long", n))
}
