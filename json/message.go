package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/fwojciec/chirp"
)

// Wire shapes of the control-plane messages. Only the fields the variants
// expose are decoded; *_str siblings are ignored in favor of flexInt.

type controlDTO struct {
	ControlURI string `json:"control_uri"`
}

type disconnectDTO struct {
	Code       int    `json:"code"`
	StreamName string `json:"stream_name"`
	Reason     string `json:"reason"`
}

type warningDTO struct {
	Code        string   `json:"code"`
	Message     string   `json:"message"`
	PercentFull *int     `json:"percent_full"`
	UserID      *flexInt `json:"user_id"`
}

type limitDTO struct {
	Track       flexInt  `json:"track"`
	TimestampMS *flexInt `json:"timestamp_ms"`
}

type scrubGeoDTO struct {
	UserID       flexInt  `json:"user_id"`
	UpToStatusID flexInt  `json:"up_to_status_id"`
	TimestampMS  *flexInt `json:"timestamp_ms"`
}

type withheldDTO struct {
	ID                  flexInt  `json:"id"`
	UserID              flexInt  `json:"user_id"`
	WithheldInCountries []string `json:"withheld_in_countries"`
	TimestampMS         *flexInt `json:"timestamp_ms"`
}

type userDTO struct {
	ID          flexInt  `json:"id"`
	TimestampMS *flexInt `json:"timestamp_ms"`
}

func decodeStatus(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var tweet twitter.Tweet
	if err := json.Unmarshal([]byte(raw), &tweet); err != nil {
		return nil, err
	}
	var ts struct {
		TimestampMS *flexInt `json:"timestamp_ms"`
	}
	if err := json.Unmarshal([]byte(raw), &ts); err != nil {
		return nil, err
	}
	return chirp.StatusCreate{
		Status:    &tweet,
		Timestamp: millis(ts.TimestampMS),
		RawJSON:   raw,
	}, nil
}

func decodeDirectMessage(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dm twitter.DirectMessage
	if err := unmarshalKey(obj, "direct_message", &dm); err != nil {
		return nil, err
	}
	return chirp.DirectMessage{DirectMessage: &dm, RawJSON: raw}, nil
}

func decodeFriends(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var ids []flexInt
	if err := unmarshalKey(obj, "friends", &ids); err != nil {
		return nil, err
	}
	m := chirp.Friends{IDs: make([]int64, len(ids)), RawJSON: raw}
	for i, id := range ids {
		m.IDs[i] = int64(id)
	}
	return m, nil
}

// decodeFriendsStr handles the preamble sent when stringify_friend_ids=true.
func decodeFriendsStr(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var ids []string
	if err := unmarshalKey(obj, "friends_str", &ids); err != nil {
		return nil, err
	}
	m := chirp.Friends{IDs: make([]int64, len(ids)), RawJSON: raw}
	for i, s := range ids {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("friend id %q: %w", s, err)
		}
		m.IDs[i] = id
	}
	return m, nil
}

// decodeEnvelope decodes the nested message directly from its subtree.
func decodeEnvelope(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var forUser flexInt
	if err := unmarshalKey(obj, "for_user", &forUser); err != nil {
		return nil, err
	}
	inner, ok := obj["message"]
	if !ok || !hasValue(inner) {
		return nil, errors.New("missing message")
	}
	msg, err := decode(string(inner))
	if err != nil {
		return nil, fmt.Errorf("message: %w", err)
	}
	return chirp.Envelope{ForUser: int64(forUser), Message: msg, RawJSON: raw}, nil
}

func decodeControl(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dto controlDTO
	if err := unmarshalKey(obj, "control", &dto); err != nil {
		return nil, err
	}
	return chirp.Control{URI: dto.ControlURI, RawJSON: raw}, nil
}

func decodeDisconnect(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dto disconnectDTO
	if err := unmarshalKey(obj, "disconnect", &dto); err != nil {
		return nil, err
	}
	return chirp.Disconnect{
		Code:       chirp.DisconnectCode(dto.Code),
		StreamName: dto.StreamName,
		Reason:     dto.Reason,
		RawJSON:    raw,
	}, nil
}

func decodeWarning(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dto warningDTO
	if err := unmarshalKey(obj, "warning", &dto); err != nil {
		return nil, err
	}
	return chirp.Warning{
		Code:        dto.Code,
		Message:     dto.Message,
		PercentFull: dto.PercentFull,
		UserID:      optInt64(dto.UserID),
		RawJSON:     raw,
	}, nil
}

func decodeLimit(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dto limitDTO
	if err := unmarshalKey(obj, "limit", &dto); err != nil {
		return nil, err
	}
	return chirp.Limit{
		Track:     int64(dto.Track),
		Timestamp: millis(dto.TimestampMS),
		RawJSON:   raw,
	}, nil
}

func decodeScrubGeo(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dto scrubGeoDTO
	if err := unmarshalKey(obj, "scrub_geo", &dto); err != nil {
		return nil, err
	}
	return chirp.ScrubGeo{
		UserID:       int64(dto.UserID),
		UpToStatusID: int64(dto.UpToStatusID),
		Timestamp:    millis(dto.TimestampMS),
		RawJSON:      raw,
	}, nil
}

func decodeStatusWithheld(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dto withheldDTO
	if err := unmarshalKey(obj, "status_withheld", &dto); err != nil {
		return nil, err
	}
	return chirp.StatusWithheld{
		ID:        int64(dto.ID),
		UserID:    int64(dto.UserID),
		Countries: dto.WithheldInCountries,
		Timestamp: millis(dto.TimestampMS),
		RawJSON:   raw,
	}, nil
}

func decodeUserWithheld(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dto withheldDTO
	if err := unmarshalKey(obj, "user_withheld", &dto); err != nil {
		return nil, err
	}
	return chirp.UserWithheld{
		ID:        int64(dto.ID),
		Countries: dto.WithheldInCountries,
		Timestamp: millis(dto.TimestampMS),
		RawJSON:   raw,
	}, nil
}

// decodeUserLifecycle returns a decoder for one of the user_* keys.
// Suspensions never carry a timestamp.
func decodeUserLifecycle(action chirp.UserAction, key string) decoder {
	return func(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
		var dto userDTO
		if err := unmarshalKey(obj, key, &dto); err != nil {
			return nil, err
		}
		m := chirp.UserLifecycle{Action: action, UserID: int64(dto.ID), RawJSON: raw}
		if action != chirp.UserSuspended {
			m.Timestamp = millis(dto.TimestampMS)
		}
		return m, nil
	}
}
