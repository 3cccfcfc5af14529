// Package geostats provides areal-interpolation helpers for projecting and distributing statistics across geometries.
package geostats

// Method selects the reduction applied by Project.
type Method string

const (
	// WeightedSum returns Σ value*weight.
	WeightedSum Method = "weighted_sum"
	// WeightedAvg returns Σ value*weight / Σ weight.
	WeightedAvg Method = "weighted_avg"

	// DefaultMethod is used when the method is left empty.
	DefaultMethod = WeightedAvg
)

// ParseMethod converts a method name into a Method.
// An empty name resolves to DefaultMethod.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case "":
		return DefaultMethod, nil
	case WeightedSum, WeightedAvg:
		return Method(s), nil
	default:
		return "", invalidArgument("invalid method: %q", s)
	}
}

func (m Method) String() string {
	return string(m)
}

// MarshalText implements encoding.TextMarshaler.
func (m Method) MarshalText() ([]byte, error) {
	resolved, err := ParseMethod(string(m))
	if err != nil {
		return nil, err
	}
	return []byte(resolved), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Method) UnmarshalText(text []byte) error {
	parsed, err := ParseMethod(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
