package dataset

import (
	"cmp"
	"slices"
)

// Count is one labelled value of an ordered count mapping.
type Count struct {
	Label string  `json:"label" toml:"label"`
	Value float64 `json:"value" toml:"value"`
}

// Counts is an ordered label to value mapping. Order is significant and is
// the order bars are drawn in.
type Counts []Count

// CountValues counts occurrences of each item, ordered by descending count.
// Ties keep the order in which items were first seen.
func CountValues(items []string) Counts {
	index := make(map[string]int)
	var out Counts
	for _, it := range items {
		if i, ok := index[it]; ok {
			out[i].Value++
			continue
		}
		index[it] = len(out)
		out = append(out, Count{Label: it, Value: 1})
	}
	slices.SortStableFunc(out, func(a, b Count) int { return cmp.Compare(b.Value, a.Value) })
	return out
}

// Above returns the entries whose value is strictly greater than threshold.
func (c Counts) Above(threshold float64) Counts {
	var out Counts
	for _, e := range c {
		if e.Value > threshold {
			out = append(out, e)
		}
	}
	return out
}

// Labels returns the labels in order.
func (c Counts) Labels() []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.Label
	}
	return out
}

// Values returns the values in order.
func (c Counts) Values() []float64 {
	out := make([]float64, len(c))
	for i, e := range c {
		out[i] = e.Value
	}
	return out
}

// Max returns the largest value, or 0 for an empty mapping.
func (c Counts) Max() float64 {
	var m float64
	for _, e := range c {
		m = max(m, e.Value)
	}
	return m
}

// Total returns the sum of all values.
func (c Counts) Total() float64 {
	var s float64
	for _, e := range c {
		s += e.Value
	}
	return s
}

// Get returns the value for label.
func (c Counts) Get(label string) (float64, bool) {
	for _, e := range c {
		if e.Label == label {
			return e.Value, true
		}
	}
	return 0, false
}
