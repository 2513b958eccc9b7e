package json

import (
	"encoding/json"
	"errors"

	"github.com/fwojciec/chirp"
)

type deleteDTO struct {
	Status        *deletedDTO `json:"status"`
	DirectMessage *deletedDTO `json:"direct_message"`
	TimestampMS   *flexInt    `json:"timestamp_ms"`
}

type deletedDTO struct {
	ID     flexInt `json:"id"`
	UserID flexInt `json:"user_id"`
}

// decodeDelete picks the target from whichever child the wrapper holds.
// The timestamp sits beside the child, not inside it.
func decodeDelete(obj map[string]json.RawMessage, raw string) (chirp.Message, error) {
	var dto deleteDTO
	if err := unmarshalKey(obj, "delete", &dto); err != nil {
		return nil, err
	}

	var (
		target chirp.DeleteTarget
		child  *deletedDTO
	)
	switch {
	case dto.Status != nil && dto.DirectMessage != nil:
		return nil, errors.New("both status and direct_message present")
	case dto.Status != nil:
		target, child = chirp.DeleteStatus, dto.Status
	case dto.DirectMessage != nil:
		target, child = chirp.DeleteDirectMessage, dto.DirectMessage
	default:
		return nil, errors.New("neither status nor direct_message present")
	}

	return chirp.Delete{
		Target:    target,
		ID:        int64(child.ID),
		UserID:    int64(child.UserID),
		Timestamp: millis(dto.TimestampMS),
		RawJSON:   raw,
	}, nil
}
