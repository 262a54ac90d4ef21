package dataset

import (
	_ "embed"
)

//go:embed sample/season.json
var sampleJSON []byte

// SampleJSON returns the bundled example season as JSON.
func SampleJSON() []byte { return sampleJSON }

// Sample decodes the bundled example season. Every chart renders from it.
func Sample() (*Season, error) {
	return Parse(sampleJSON, FormatJSON)
}
