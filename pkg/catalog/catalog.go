package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"

	"github.com/petsisters/sitter-finder/pkg/types"
)

//go:embed sitters.json
var sittersJSON []byte

// Load decodes and validates the embedded catalog. The data is mock,
// everything lives in memory for the whole process lifetime.
func Load() ([]types.Sitter, error) {
	var sitters []types.Sitter
	if err := json.Unmarshal(sittersJSON, &sitters); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	if len(sitters) == 0 {
		return nil, fmt.Errorf("catalog: embedded dataset is empty")
	}
	seen := make(map[string]struct{}, len(sitters))
	for i := range sitters {
		s := &sitters[i]
		if err := Validate(s); err != nil {
			return nil, fmt.Errorf("catalog: sitter %q: %w", s.Id, err)
		}
		if _, dup := seen[s.Id]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %q", s.Id)
		}
		seen[s.Id] = struct{}{}
	}
	return sitters, nil
}

func MustLoad() []types.Sitter {
	sitters, err := Load()
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}
	return sitters
}

// Validate checks the per-record invariants.
func Validate(s *types.Sitter) error {
	if s.Id == "" {
		return fmt.Errorf("missing id")
	}
	if s.Name == "" || s.Location == "" {
		return fmt.Errorf("missing name or location")
	}
	if s.Rating < 0 || s.Rating > 5 {
		return fmt.Errorf("rating %g out of range", s.Rating)
	}
	if s.Reviews < 0 || s.Price < 0 || s.Experience < 0 || s.CompletedBookings < 0 {
		return fmt.Errorf("negative numeric field")
	}
	names := make(map[string]struct{}, len(s.Services))
	for _, sv := range s.Services {
		if sv.Name == "" {
			return fmt.Errorf("service with empty name")
		}
		if _, dup := names[sv.Name]; dup {
			return fmt.Errorf("duplicate service %q", sv.Name)
		}
		names[sv.Name] = struct{}{}
	}
	return nil
}
