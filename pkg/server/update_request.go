package server

import (
	"fmt"

	"github.com/petsisters/sitter-finder/pkg/types"
)

// UpdateRequest is the JSON envelope for one session mutation. The type
// field selects the command, the remaining fields carry its payload.
type UpdateRequest struct {
	Type   string  `json:"type"`
	Value  string  `json:"value,omitempty"`
	Number float64 `json:"number,omitempty"`
	Min    float64 `json:"min,omitempty"`
	Max    float64 `json:"max,omitempty"`
	Bool   bool    `json:"bool,omitempty"`
	Key    string  `json:"key,omitempty"`
}

func (u *UpdateRequest) ToUpdate() (types.Update, error) {
	switch u.Type {
	case "setQuery":
		return types.SetQuery{Query: u.Value}, nil
	case "toggleLocation":
		return types.ToggleLocation{Value: u.Value}, nil
	case "toggleSpecialty":
		return types.ToggleSpecialty{Value: u.Value}, nil
	case "toggleService":
		return types.ToggleService{Value: u.Value}, nil
	case "setPriceRange":
		return types.SetPriceRange{Min: u.Min, Max: u.Max}, nil
	case "setMinRating":
		return types.SetMinRating{Value: u.Number}, nil
	case "setMinExperience":
		return types.SetMinExperience{Value: int(u.Number)}, nil
	case "setVerifiedOnly":
		return types.SetVerifiedOnly{Value: u.Bool}, nil
	case "setSortBy":
		return types.SetSortBy{Value: types.SortBy(u.Value)}, nil
	case "removeFilter":
		return types.RemoveFilter{Key: types.FilterKey(u.Key), Value: u.Value}, nil
	case "clearAll":
		return types.ClearAll{}, nil
	}
	return nil, fmt.Errorf("unknown update type %q", u.Type)
}
