package bubbletea_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/fwojciec/chirp"
	bt "github.com/fwojciec/chirp/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testStyles() bt.Styles {
	return bt.NewStyles(chirp.DefaultTheme())
}

func TestNewBlock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		msg  chirp.Message
		want any
	}{
		{chirp.StatusCreate{}, &bt.StatusBlock{}},
		{chirp.DirectMessage{}, &bt.DirectMessageBlock{}},
		{chirp.Event{}, &bt.EventBlock{}},
		{chirp.Envelope{}, &bt.EnvelopeBlock{}},
		{chirp.RawMessage{}, &bt.RawBlock{}},
		{chirp.Limit{}, &bt.NoticeBlock{}},
		{chirp.Delete{}, &bt.NoticeBlock{}},
		{chirp.Disconnect{}, &bt.NoticeBlock{}},
		{chirp.Friends{}, &bt.NoticeBlock{}},
	}
	for _, tt := range tests {
		assert.IsType(t, tt.want, bt.NewBlock(tt.msg, testStyles()), "%T", tt.msg)
	}
}

func TestStatusBlock_View(t *testing.T) {
	t.Parallel()

	block := bt.NewStatusBlock(chirp.StatusCreate{Status: &twitter.Tweet{
		Text: "hello stream",
		User: &twitter.User{ScreenName: "jack"},
	}}, testStyles())
	view := block.View(80)
	assert.Contains(t, view, "@jack:")
	assert.Contains(t, view, "hello stream")

	t.Run("nil status", func(t *testing.T) {
		t.Parallel()
		view := bt.NewStatusBlock(chirp.StatusCreate{}, testStyles()).View(80)
		assert.Contains(t, view, "@?:")
	})
}

func TestDirectMessageBlock_View(t *testing.T) {
	t.Parallel()

	block := bt.NewDirectMessageBlock(chirp.DirectMessage{DirectMessage: &twitter.DirectMessage{
		SenderScreenName:    "jack",
		RecipientScreenName: "biz",
		Text:                "psst",
	}}, testStyles())
	view := block.View(80)
	assert.Contains(t, view, "DM")
	assert.Contains(t, view, "@jack")
	assert.Contains(t, view, "@biz:")
	assert.Contains(t, view, "psst")
}

func TestEventBlock_View(t *testing.T) {
	t.Parallel()

	t.Run("status target", func(t *testing.T) {
		t.Parallel()
		block := bt.NewEventBlock(chirp.Event{
			Code:         chirp.EventFavorite,
			Source:       &twitter.User{ScreenName: "alice"},
			Target:       &twitter.User{ScreenName: "bob"},
			TargetStatus: &twitter.Tweet{Text: "nice post"},
		}, testStyles())
		view := block.View(80)
		assert.Contains(t, view, "@alice")
		assert.Contains(t, view, "favorite")
		assert.Contains(t, view, "@bob")
		assert.Contains(t, view, "nice post")
	})

	t.Run("list target", func(t *testing.T) {
		t.Parallel()
		block := bt.NewEventBlock(chirp.Event{
			Code:       chirp.EventListMemberAdded,
			TargetList: &twitter.List{Name: "gophers"},
		}, testStyles())
		assert.Contains(t, block.View(80), "gophers")
	})
}

func TestNoticeBlock_View(t *testing.T) {
	t.Parallel()

	view := bt.NewNoticeBlock(chirp.Limit{Track: 42}, testStyles()).View(80)
	assert.Contains(t, view, "limit: 42 undelivered")

	view = bt.NewNoticeBlock(chirp.Disconnect{Code: chirp.DisconnectStall, Reason: "slow"}, testStyles()).View(80)
	assert.Contains(t, view, "disconnect stall")
}

func TestEnvelopeBlock_View(t *testing.T) {
	t.Parallel()

	block := bt.NewEnvelopeBlock(chirp.Envelope{
		ForUser: 1888,
		Message: chirp.StatusCreate{Status: &twitter.Tweet{Text: "inner", User: &twitter.User{ScreenName: "x"}}},
	}, testStyles())
	view := block.View(80)
	assert.Contains(t, view, "for 1888")
	assert.Contains(t, view, "inner")
}

func TestRawBlock(t *testing.T) {
	t.Parallel()

	t.Run("starts collapsed with a preview", func(t *testing.T) {
		t.Parallel()
		block := bt.NewRawBlock(chirp.RawMessage{RawJSON: `{"mystery":true}`, Err: errors.New("unsupported")}, testStyles())
		assert.True(t, block.Collapsed())
		view := block.View(80)
		assert.Contains(t, view, "▶ raw")
		assert.Contains(t, view, "unsupported")
		assert.Contains(t, view, `{"mystery":true}`)
	})

	t.Run("toggle expands and shows full text", func(t *testing.T) {
		t.Parallel()
		raw := `{"long":"` + strings.Repeat("x", 200) + `"}`
		block := bt.NewRawBlock(chirp.RawMessage{RawJSON: raw}, testStyles())

		collapsed := block.View(80)
		assert.NotContains(t, collapsed, strings.Repeat("x", 100))

		updated, cmd := block.Update(bt.ToggleMsg{})
		assert.Nil(t, cmd)
		rb, ok := updated.(*bt.RawBlock)
		require.True(t, ok)
		assert.False(t, rb.Collapsed())
		expanded := rb.View(300)
		assert.Contains(t, expanded, "▼ raw")
		assert.Contains(t, expanded, strings.Repeat("x", 200))
	})
}
