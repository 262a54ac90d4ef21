package theme

import "fmt"

// Gradient returns n colours evenly spaced between from and to, both
// inclusive, interpolated in RGB. A single colour request yields from.
func Gradient(from, to string, n int) ([]string, error) {
	if n <= 0 {
		return nil, nil
	}
	a, err := Parse(from)
	if err != nil {
		return nil, fmt.Errorf("gradient start %q: %w", from, err)
	}
	b, err := Parse(to)
	if err != nil {
		return nil, fmt.Errorf("gradient end %q: %w", to, err)
	}

	out := make([]string, n)
	if n == 1 {
		out[0] = a.Hex()
		return out, nil
	}
	for i := range out {
		t := float64(i) / float64(n-1)
		out[i] = a.BlendRgb(b, t).Clamped().Hex()
	}
	return out, nil
}

// Cycle returns n colours taken from palette in order, wrapping around.
func Cycle(palette []string, n int) []string {
	if len(palette) == 0 || n <= 0 {
		return nil
	}
	out := make([]string, n)
	for i := range out {
		out[i] = palette[i%len(palette)]
	}
	return out
}
