package pipeline

import (
	"encoding/json"

	"github.com/matzehuels/seasonviz/pkg/cache"
	"github.com/matzehuels/seasonviz/pkg/dataset"
)

// Input is a validated season together with its content hash.
type Input struct {
	Season *dataset.Season

	// Hash is computed over the normalised JSON form, so the same season
	// read from JSON or TOML hashes identically.
	Hash string
}

// NewInput wraps an already validated season.
func NewInput(s *dataset.Season) *Input {
	data, _ := json.Marshal(s)
	return &Input{Season: s, Hash: cache.Hash(data)}
}

// LoadInput reads and validates the dataset file at path.
func LoadInput(path string) (*Input, error) {
	s, err := dataset.Load(path)
	if err != nil {
		return nil, err
	}
	return NewInput(s), nil
}

// ParseInput decodes and validates a dataset held in memory.
func ParseInput(data []byte, f dataset.Format) (*Input, error) {
	s, err := dataset.Parse(data, f)
	if err != nil {
		return nil, err
	}
	return NewInput(s), nil
}
