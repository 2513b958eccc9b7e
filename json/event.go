package json

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/fwojciec/chirp"
)

// eventTimeLayout is the fixed-width layout of created_at on events.
const eventTimeLayout = "Mon Jan 02 15:04:05 -0700 2006"

// eventNoise is stripped from event names before matching them against the
// known codes. Some servers leak an objectType token into the name.
var eventNoise = []string{"objectType", "_"}

type eventDTO struct {
	Event        string          `json:"event"`
	CreatedAt    string          `json:"created_at"`
	Source       *twitter.User   `json:"source"`
	Target       *twitter.User   `json:"target"`
	TargetObject json.RawMessage `json:"target_object"`
}

func decodeEvent(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dto eventDTO
	if err := json.Unmarshal([]byte(raw), &dto); err != nil {
		return nil, err
	}

	code, ok := eventCode(dto.Event)
	if !ok {
		return nil, fmt.Errorf("unknown event %q", dto.Event)
	}

	m := chirp.Event{
		Code:       code,
		Name:       dto.Event,
		TargetKind: eventTargetKind(dto.Event),
		Source:     dto.Source,
		Target:     dto.Target,
		RawJSON:    raw,
	}

	if dto.CreatedAt != "" {
		t, err := time.Parse(eventTimeLayout, dto.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("created_at: %w", err)
		}
		m.CreatedAt = t.UTC()
	}

	if !hasValue(dto.TargetObject) {
		return m, nil
	}
	switch m.TargetKind {
	case chirp.EventTargetStatus:
		var tweet twitter.Tweet
		if err := json.Unmarshal(dto.TargetObject, &tweet); err != nil {
			return nil, fmt.Errorf("target_object: %w", err)
		}
		m.TargetStatus = &tweet
	case chirp.EventTargetList:
		var list twitter.List
		if err := json.Unmarshal(dto.TargetObject, &list); err != nil {
			return nil, fmt.Errorf("target_object: %w", err)
		}
		m.TargetList = &list
	}
	return m, nil
}

// eventCode matches name case-insensitively against the known codes after
// removing the noise tokens from both sides.
func eventCode(name string) (chirp.EventCode, bool) {
	want := stripNoise(name)
	for _, code := range chirp.EventCodes() {
		if strings.EqualFold(want, stripNoise(string(code))) {
			return code, true
		}
	}
	return "", false
}

// eventTargetKind derives the target kind from the raw event name. Any name
// mentioning "list" targets a list, and "favorite" (which also covers
// favorited_retweet) targets a status.
func eventTargetKind(name string) chirp.EventTargetKind {
	switch {
	case strings.Contains(name, "list"):
		return chirp.EventTargetList
	case strings.Contains(name, "favorite"):
		return chirp.EventTargetStatus
	default:
		return chirp.EventTargetNone
	}
}

func stripNoise(s string) string {
	for _, n := range eventNoise {
		s = strings.ReplaceAll(s, n, "")
	}
	return s
}

func hasValue(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
