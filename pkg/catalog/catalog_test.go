package catalog

import (
	"testing"

	"github.com/petsisters/sitter-finder/pkg/types"
)

func TestLoad(t *testing.T) {
	sitters, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(sitters) != 12 {
		t.Errorf("expected 12 sitters, got %d", len(sitters))
	}
	for i := range sitters {
		if sitters[i].Image == "" {
			t.Errorf("sitter %s has no profile image", sitters[i].Id)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		sitter types.Sitter
		ok     bool
	}{
		{"valid", types.Sitter{Id: "x", Name: "X", Location: "Madrid", Rating: 4.5}, true},
		{"missing id", types.Sitter{Name: "X", Location: "Madrid"}, false},
		{"rating too high", types.Sitter{Id: "x", Name: "X", Location: "Madrid", Rating: 5.5}, false},
		{"negative price", types.Sitter{Id: "x", Name: "X", Location: "Madrid", Price: -1}, false},
		{
			"duplicate service",
			types.Sitter{Id: "x", Name: "X", Location: "Madrid", Services: []types.Service{
				{Name: "Paseo", Price: 10, Unit: "hora"},
				{Name: "Paseo", Price: 12, Unit: "hora"},
			}},
			false,
		},
	}
	for _, tc := range tests {
		err := Validate(&tc.sitter)
		if tc.ok && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%s: expected an error", tc.name)
		}
	}
}
