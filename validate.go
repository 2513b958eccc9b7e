package chirp

import "fmt"

// filterPredicates are the parameters of which a filter stream needs at
// least one.
var filterPredicates = []string{"track", "follow", "locations"}

// Validate checks universal constraints on Request.
// Streamer implementations may apply additional endpoint-specific validation.
func (r Request) Validate() error {
	if r.Kind.URL() == "" {
		return fmt.Errorf("unknown stream kind %d: %w", int(r.Kind), ErrValidation)
	}
	if r.Kind != StreamFilter {
		return nil
	}
	for _, p := range filterPredicates {
		if r.Params.Get(p) != "" {
			return nil
		}
	}
	return fmt.Errorf("filter stream requires one of track, follow or locations: %w", ErrValidation)
}
