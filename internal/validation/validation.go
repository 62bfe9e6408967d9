// Package validation checks request path and body values before any store call is made.
package validation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// FieldError is a single rule violation. Msg is what clients see.
type FieldError struct {
	Field string `json:"field,omitempty"`
	Msg   string `json:"msg"`
}

// ValidationError carries every violation found for one request, in the order the rules ran.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fe.Field + ": " + fe.Msg
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))
}

type Validator struct {
	errors []FieldError
	failed map[string]bool
}

func New() *Validator {
	return &Validator{failed: make(map[string]bool)}
}

func (v *Validator) Valid() bool {
	return len(v.errors) == 0
}

func (v *Validator) Errors() []FieldError {
	return v.errors
}

// Err returns nil when every rule passed.
func (v *Validator) Err() error {
	if v.Valid() {
		return nil
	}
	return &ValidationError{Errors: v.errors}
}

func (v *Validator) AddError(field, msg string) {
	v.errors = append(v.errors, FieldError{Field: field, Msg: msg})
	v.failed[field] = true
}

// Check records msg against field when ok is false.
func (v *Validator) Check(ok bool, field, msg string) {
	if !ok {
		v.AddError(field, msg)
	}
}

func (v *Validator) UUIDv4(field, value string) {
	v.Check(validate.Var(value, "required,uuid4") == nil, field, field+" must be a UUIDv4")
}

// String accepts only values that are Go strings, which matters for decoded JSON bodies.
func (v *Validator) String(field string, value any) {
	_, ok := value.(string)
	v.Check(ok, field, field+" must be a string")
}

func (v *Validator) Integer(field, value string) {
	ok := validate.Var(value, "required,number") == nil
	if ok {
		_, err := strconv.ParseInt(value, 10, 64)
		ok = err == nil
	}
	v.Check(ok, field, field+" must be an integer")
}

// MatchesPrincipal requires an integer path value to equal the caller's own id. It is
// skipped when field already failed, so a malformed value reports one violation.
func (v *Validator) MatchesPrincipal(field, value string, principalID int64) {
	if v.failed[field] {
		return
	}
	id, err := strconv.ParseInt(value, 10, 64)
	v.Check(err == nil && id == principalID, field, field+" does not match the signed-in user")
}
