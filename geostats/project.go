// Package geostats provides areal-interpolation helpers for projecting and distributing statistics across geometries.
package geostats

// WeightedValue is the statistic of one source geometry together with the
// area it shares with the target geometry.
type WeightedValue struct {
	Value  float64 `json:"value"`
	Weight float64 `json:"weight" validate:"gte=0"`
}

// Project aggregates the statistics of overlapping source geometries onto a
// single target geometry, weighting each value by its intersection area.
//
// WeightedSum returns Σ value*weight. WeightedAvg returns that sum divided by
// Σ weight and fails when the weights do not sum to a positive number, which
// includes empty input. An empty method means DefaultMethod.
func Project(values []WeightedValue, method Method) (float64, error) {
	method, err := ParseMethod(string(method))
	if err != nil {
		return 0, err
	}

	// Accumulate left to right so results are reproducible
	weightedSum := 0.0
	totalWeight := 0.0
	for _, v := range values {
		weightedSum += v.Value * v.Weight
		totalWeight += v.Weight
	}

	if method == WeightedSum {
		return weightedSum, nil
	}

	if !(totalWeight > 0) {
		return 0, invalidArgument("weighted_avg requires a positive total weight, got %v over %d values", totalWeight, len(values))
	}
	return weightedSum / totalWeight, nil
}
