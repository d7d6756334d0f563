package controllers

import "errors"

// FieldErrors maps a form field to its message. It blocks submission before
// any gateway call is made and keeps the form open so the user can fix the
// named fields.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	return "validation failed"
}

// ErrMissingFields is the field-agnostic rejection for the comment form,
// where both inputs are required and neither gets its own message.
var ErrMissingFields = errors.New("please fill in all fields")

// AsFieldErrors extracts field-scoped messages from an error, if any.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}
