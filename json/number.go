package json

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// flexInt decodes an integer sent either as a JSON number or as a numeric
// string. The API stringifies ids and timestamp_ms inconsistently.
type flexInt int64

func (n *flexInt) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s := string(data)
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*n = flexInt(v)
	return nil
}

// millis converts an optional timestamp_ms value. Absent values yield the
// zero time.
func millis(n *flexInt) time.Time {
	if n == nil {
		return time.Time{}
	}
	return time.UnixMilli(int64(*n)).UTC()
}

// optInt64 converts an optional flexInt.
func optInt64(n *flexInt) *int64 {
	if n == nil {
		return nil
	}
	v := int64(*n)
	return &v
}
