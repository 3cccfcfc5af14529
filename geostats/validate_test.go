package geostats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightedValue_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   WeightedValue
		wantErr bool
	}{
		{name: "positive weight", value: WeightedValue{Value: 5, Weight: 1}},
		{name: "zero weight", value: WeightedValue{Value: 5, Weight: 0}},
		{name: "negative value", value: WeightedValue{Value: -5, Weight: 2}},
		{name: "negative weight", value: WeightedValue{Value: 5, Weight: -1}, wantErr: true},
		{name: "NaN weight", value: WeightedValue{Value: 5, Weight: math.NaN()}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.Contains(t, err.Error(), "gte")
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestValidateValues(t *testing.T) {
	err := ValidateValues([]WeightedValue{{Value: 5, Weight: 1}, {Value: 10, Weight: 0}})
	assert.NoError(t, err)

	err = ValidateValues(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "empty")

	err = ValidateValues([]WeightedValue{{Value: 5, Weight: 1}, {Value: 10, Weight: -2}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "values[1]")
}

func TestValidateWeights(t *testing.T) {
	tests := []struct {
		name    string
		weights []float64
		wantErr bool
	}{
		{name: "valid", weights: []float64{2, 1, 0}},
		{name: "nil", weights: nil, wantErr: true},
		{name: "empty", weights: []float64{}, wantErr: true},
		{name: "negative entry", weights: []float64{2, -1}, wantErr: true},
		{name: "all zero", weights: []float64{0, 0}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWeights(tt.weights)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			assert.NoError(t, err)
		})
	}
}
