package chirp

import "net/url"

// Request selects a stream and carries its query or form parameters
// (track, follow, locations, with, replies, stringify_friend_ids, ...).
// Implementations must not modify Params.
type Request struct {
	Kind   StreamKind
	Params url.Values
}
