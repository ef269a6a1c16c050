package tracking

import (
	"net/http"

	"github.com/petsisters/sitter-finder/pkg/types"
)

// Tracking receives usage events from the serving layer. Implementations
// must be safe for concurrent use; a nil Tracking disables everything.
type Tracking interface {
	TrackSession(sessionId string, r *http.Request) error
	TrackSearch(sessionId string, state types.FilterState, hits int) error
	TrackProfileView(sessionId string, sitterId string) error
}
