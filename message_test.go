package chirp_test

import (
	"testing"

	"github.com/fwojciec/chirp"
	"github.com/stretchr/testify/assert"
)

func TestMessage_Kind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		msg  chirp.Message
		want chirp.Kind
	}{
		{chirp.StatusCreate{}, chirp.KindStatus},
		{chirp.DirectMessage{}, chirp.KindDirectMessage},
		{chirp.Friends{}, chirp.KindFriends},
		{chirp.Event{}, chirp.KindEvent},
		{chirp.Envelope{}, chirp.KindEnvelope},
		{chirp.Control{}, chirp.KindControl},
		{chirp.Disconnect{}, chirp.KindDisconnect},
		{chirp.Warning{}, chirp.KindWarning},
		{chirp.Limit{}, chirp.KindLimit},
		{chirp.Delete{Target: chirp.DeleteStatus}, chirp.KindDeleteStatus},
		{chirp.Delete{Target: chirp.DeleteDirectMessage}, chirp.KindDeleteDirectMessage},
		{chirp.ScrubGeo{}, chirp.KindScrubGeo},
		{chirp.StatusWithheld{}, chirp.KindStatusWithheld},
		{chirp.UserWithheld{}, chirp.KindUserWithheld},
		{chirp.UserLifecycle{Action: chirp.UserDeleted}, chirp.KindUserDelete},
		{chirp.UserLifecycle{Action: chirp.UserUndeleted}, chirp.KindUserUndelete},
		{chirp.UserLifecycle{Action: chirp.UserSuspended}, chirp.KindUserSuspend},
		{chirp.RawMessage{}, chirp.KindRaw},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.msg.Kind())
		})
	}
}

func TestMessage_Raw(t *testing.T) {
	t.Parallel()

	const raw = `{"k":1}`
	msgs := []chirp.Message{
		chirp.StatusCreate{RawJSON: raw},
		chirp.DirectMessage{RawJSON: raw},
		chirp.Friends{RawJSON: raw},
		chirp.Event{RawJSON: raw},
		chirp.Envelope{RawJSON: raw, Message: chirp.Friends{RawJSON: `{"friends":[]}`}},
		chirp.Control{RawJSON: raw},
		chirp.Disconnect{RawJSON: raw},
		chirp.Warning{RawJSON: raw},
		chirp.Limit{RawJSON: raw},
		chirp.Delete{RawJSON: raw},
		chirp.ScrubGeo{RawJSON: raw},
		chirp.StatusWithheld{RawJSON: raw},
		chirp.UserWithheld{RawJSON: raw},
		chirp.UserLifecycle{RawJSON: raw},
		chirp.RawMessage{RawJSON: raw},
	}
	for _, m := range msgs {
		assert.Equal(t, raw, m.Raw(), "%T", m)
	}
}

func TestKind_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "raw", chirp.KindRaw.String())
	assert.Equal(t, "status", chirp.KindStatus.String())
	assert.Equal(t, "delete_direct_message", chirp.KindDeleteDirectMessage.String())
	assert.Equal(t, "user_suspend", chirp.KindUserSuspend.String())
	assert.Equal(t, "unknown", chirp.Kind(-1).String())
	assert.Equal(t, "unknown", chirp.Kind(1000).String())
}

func TestKinds(t *testing.T) {
	t.Parallel()

	kinds := chirp.Kinds()
	assert.Len(t, kinds, 18)
	assert.Equal(t, chirp.KindRaw, kinds[0])
	assert.Equal(t, chirp.KindUserSuspend, kinds[len(kinds)-1])

	seen := make(map[string]bool)
	for _, k := range kinds {
		name := k.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
	}
}

func TestParseError(t *testing.T) {
	t.Parallel()

	err := &chirp.ParseError{Line: "{", Err: chirp.ErrMalformedMessage}
	assert.ErrorIs(t, err, chirp.ErrMalformedMessage)
	assert.Contains(t, err.Error(), "parse message")
}
