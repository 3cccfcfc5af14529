// Package geostats provides areal-interpolation helpers for projecting and distributing statistics across geometries.
package geostats

import (
	"sort"

	"github.com/shopspring/decimal"
)

// DecimalWeightedValue is the exact-arithmetic counterpart of WeightedValue.
type DecimalWeightedValue struct {
	Value  decimal.Decimal `json:"value"`
	Weight decimal.Decimal `json:"weight"`
}

// ProjectDecimal behaves like Project using decimal arithmetic.
// Weighted averages are divided with decimal.DivisionPrecision digits.
func ProjectDecimal(values []DecimalWeightedValue, method Method) (decimal.Decimal, error) {
	method, err := ParseMethod(string(method))
	if err != nil {
		return decimal.Zero, err
	}

	weightedSum := decimal.Zero
	totalWeight := decimal.Zero
	for _, v := range values {
		weightedSum = weightedSum.Add(v.Value.Mul(v.Weight))
		totalWeight = totalWeight.Add(v.Weight)
	}

	if method == WeightedSum {
		return weightedSum, nil
	}

	if !totalWeight.IsPositive() {
		return decimal.Zero, invalidArgument("weighted_avg requires a positive total weight, got %s over %d values", totalWeight, len(values))
	}
	return weightedSum.Div(totalWeight), nil
}

// DistributeDecimal splits total across weights, rounding every share to the
// given number of decimal places. Shares are floored exactly first and the leftover
// units go to the largest remainders (lowest index on ties), so the shares
// always add up to total.Round(places).
func DistributeDecimal(total decimal.Decimal, weights []decimal.Decimal, places int32) ([]decimal.Decimal, error) {
	if places < 0 {
		return nil, invalidArgument("places must be non-negative, got %d", places)
	}
	if len(weights) == 0 {
		return nil, invalidArgument("weights are empty")
	}

	sum := decimal.Zero
	for _, w := range weights {
		sum = sum.Add(w)
	}
	if !sum.IsPositive() {
		return nil, invalidArgument("weights must sum to a positive number, got %s", sum)
	}

	unit := decimal.New(1, -places)
	shares := make([]decimal.Decimal, len(weights))
	remainders := make([]decimal.Decimal, len(weights))
	allocated := decimal.Zero
	for i, w := range weights {
		// QuoRem truncates toward zero; step down once for an exact floor
		quo, rem := total.Mul(w).QuoRem(sum, places)
		if rem.IsNegative() {
			quo = quo.Sub(unit)
			rem = rem.Add(sum.Mul(unit))
		}
		shares[i] = quo
		remainders[i] = rem
		allocated = allocated.Add(quo)
	}

	leftover := total.Round(places).Sub(allocated).Div(unit).IntPart()
	if leftover < 0 {
		return nil, invalidArgument("shares of %s overshoot the total by %d units", total, -leftover)
	}
	if leftover == 0 {
		return shares, nil
	}

	order := make([]int, len(weights))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return remainders[order[a]].GreaterThan(remainders[order[b]])
	})

	for n := int64(0); n < leftover; n++ {
		i := order[n%int64(len(order))]
		shares[i] = shares[i].Add(unit)
	}
	return shares, nil
}
