package listing

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is matched by every *MissingFieldError.
	ErrMissingField = errors.New("missing field")
	// ErrInvalidLocation is matched by every *InvalidLocationError.
	ErrInvalidLocation = errors.New("missing location data")
	// ErrUnsupportedLocation is returned when a distance target is neither a
	// listing nor a [latitude, longitude] pair.
	ErrUnsupportedLocation = errors.New("location should be a listing or a coordinate [latitude, longitude] pair")
)

// MissingFieldError reports a field the API always sends that was absent
// from the payload.
type MissingFieldError struct {
	Field string // Dotted payload path, e.g. "media.totalImages"
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("listing payload has no %q field", e.Field)
}

func (e *MissingFieldError) Is(target error) bool {
	return target == ErrMissingField
}

// InvalidLocationError reports that one side of a distance calculation has no coordinates.
type InvalidLocationError struct {
	Operand string // "self" or "argument"
}

func (e *InvalidLocationError) Error() string {
	return e.Operand + " " + ErrInvalidLocation.Error()
}

func (e *InvalidLocationError) Is(target error) bool {
	return target == ErrInvalidLocation
}

func missing(field string) error {
	return &MissingFieldError{Field: field}
}
