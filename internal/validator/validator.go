package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pauljones0/daftlistings/internal/models"
)

// Validator is a wrapper around the validator library.
type Validator struct {
	validate *validator.Validate
}

// New creates a new Validator instance.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateStruct validates a struct based on its tags.
func (v *Validator) ValidateStruct(s interface{}) error {
	err := v.validate.Struct(s)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

// ValidateCoordinates rejects points outside [-90,90] latitude and
// [-180,180] longitude.
func (v *Validator) ValidateCoordinates(c models.Coordinates) error {
	if err := v.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid coordinates %s: %w", c, err)
	}
	return nil
}
