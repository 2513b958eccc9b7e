// Package json classifies and decodes the newline-delimited JSON messages of
// the streaming API into [chirp.Message] values.
//
// Top-level objects carry no type tag, so the variant is chosen by probing
// for distinguishing keys in a fixed order. When two shapes could match the
// same object, the earlier entry in the order wins.
package json

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/chirp"
)

// decoder decodes an object once its distinguishing key has been found.
// raw is the exact JSON text of the object.
type decoder func(obj map[string]json.RawMessage, raw string) (chirp.Message, error)

type shape struct {
	key    string
	decode decoder
}

// shapes lists the distinguishing keys in precedence order. It is filled in
// init because decodeEnvelope recurses into decode.
var shapes []shape

func init() {
	shapes = []shape{
		{"text", decodeStatus},
		{"direct_message", decodeDirectMessage},
		{"friends", decodeFriends},
		{"friends_str", decodeFriendsStr},
		{"event", decodeEvent},
		{"for_user", decodeEnvelope},
		{"control", decodeControl},
		{"disconnect", decodeDisconnect},
		{"warning", decodeWarning},
		{"delete", decodeDelete},
		{"scrub_geo", decodeScrubGeo},
		{"limit", decodeLimit},
		{"status_withheld", decodeStatusWithheld},
		{"user_withheld", decodeUserWithheld},
		{"user_delete", decodeUserLifecycle(chirp.UserDeleted, "user_delete")},
		{"user_undelete", decodeUserLifecycle(chirp.UserUndeleted, "user_undelete")},
		{"user_suspend", decodeUserLifecycle(chirp.UserSuspended, "user_suspend")},
	}
}

// Decode classifies one line of a stream and decodes it into the matching
// message variant. Failures are returned as a *chirp.ParseError wrapping
// chirp.ErrMalformedMessage or chirp.ErrUnsupportedMessage.
func Decode(line string) (chirp.Message, error) {
	msg, err := decode(line)
	if err != nil {
		return nil, &chirp.ParseError{Line: line, Err: err}
	}
	return msg, nil
}

// Parse is like Decode but never fails: a line that cannot be decoded is
// returned as a chirp.RawMessage carrying the error.
func Parse(line string) chirp.Message {
	msg, err := Decode(line)
	if err != nil {
		return chirp.RawMessage{RawJSON: line, Err: err}
	}
	return msg
}

func decode(raw string) (chirp.Message, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, fmt.Errorf("%w: %w", chirp.ErrMalformedMessage, err)
	}
	if obj == nil {
		return nil, fmt.Errorf("%w: not a JSON object", chirp.ErrMalformedMessage)
	}
	for _, s := range shapes {
		if _, ok := obj[s.key]; !ok {
			continue
		}
		msg, err := s.decode(obj, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", chirp.ErrMalformedMessage, s.key, err)
		}
		return msg, nil
	}
	return nil, chirp.ErrUnsupportedMessage
}

// unmarshalKey decodes the value stored under key into v.
func unmarshalKey(obj map[string]json.RawMessage, key string, v any) error {
	return json.Unmarshal(obj[key], v)
}
