// Package geostats provides areal-interpolation helpers for projecting and distributing statistics across geometries.
package geostats

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks that the weight is non-negative. NaN weights are rejected.
func (v WeightedValue) Validate() error {
	if err := validate.Struct(v); err != nil {
		return &Error{
			Message: fmt.Sprintf("weighted value (%v, %v): %v", v.Value, v.Weight, err),
			Cause:   ErrInvalidArgument,
		}
	}
	return nil
}

// ValidateValues checks input for Project ahead of time: the list must not be
// empty and every weight must be non-negative.
func ValidateValues(values []WeightedValue) error {
	if len(values) == 0 {
		return invalidArgument("values are empty")
	}

	for i, v := range values {
		if err := validate.Struct(v); err != nil {
			return &Error{
				Message: fmt.Sprintf("values[%d]: %v", i, err),
				Cause:   ErrInvalidArgument,
			}
		}
	}
	return nil
}

// ValidateWeights checks input for Distribute ahead of time: the list must not
// be empty, every weight must be non-negative and at least one must be positive.
func ValidateWeights(weights []float64) error {
	if err := validate.Var(weights, "min=1,dive,gte=0"); err != nil {
		return &Error{
			Message: fmt.Sprintf("weights: %v", err),
			Cause:   ErrInvalidArgument,
		}
	}
	_, err := weightSum(weights)
	return err
}
