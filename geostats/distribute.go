// Package geostats provides areal-interpolation helpers for projecting and distributing statistics across geometries.
package geostats

// Distribute splits total across target geometries in proportion to weights.
// The result has the same length and order as weights and sums to total up to
// floating-point rounding. The weights must sum to a positive number.
func Distribute(total float64, weights []float64) ([]float64, error) {
	normalized, err := Normalize(weights)
	if err != nil {
		return nil, err
	}

	// Scale after normalizing so large totals do not overflow
	shares := make([]float64, len(normalized))
	for i, w := range normalized {
		shares[i] = total * w
	}
	return shares, nil
}

// Normalize scales weights so that they sum to 1.
func Normalize(weights []float64) ([]float64, error) {
	sum, err := weightSum(weights)
	if err != nil {
		return nil, err
	}

	normalized := make([]float64, len(weights))
	for i, w := range weights {
		normalized[i] = w / sum
	}
	return normalized, nil
}

func weightSum(weights []float64) (float64, error) {
	if len(weights) == 0 {
		return 0, invalidArgument("weights are empty")
	}

	sum := 0.0
	for _, w := range weights {
		sum += w
	}

	// NaN fails this check too
	if !(sum > 0) {
		return 0, invalidArgument("weights must sum to a positive number, got %v", sum)
	}
	return sum, nil
}
