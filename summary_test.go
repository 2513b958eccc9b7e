package chirp_test

import (
	"errors"
	"testing"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/fwojciec/chirp"
	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	t.Parallel()

	percent := 80
	tests := []struct {
		name string
		msg  chirp.Message
		want string
	}{
		{
			name: "status",
			msg: chirp.StatusCreate{Status: &twitter.Tweet{
				Text: "hello\nworld",
				User: &twitter.User{ScreenName: "jack"},
			}},
			want: "@jack: hello world",
		},
		{
			name: "status without user",
			msg:  chirp.StatusCreate{Status: &twitter.Tweet{Text: "anon"}},
			want: "@?: anon",
		},
		{
			name: "direct message",
			msg: chirp.DirectMessage{DirectMessage: &twitter.DirectMessage{
				SenderScreenName: "a", RecipientScreenName: "b", Text: "hi",
			}},
			want: "@a → @b: hi",
		},
		{
			name: "event with status",
			msg: chirp.Event{
				Code:         chirp.EventFavorite,
				Source:       &twitter.User{ScreenName: "alice"},
				Target:       &twitter.User{ScreenName: "bob"},
				TargetStatus: &twitter.Tweet{Text: "nice"},
			},
			want: "@alice favorite @bob: nice",
		},
		{
			name: "envelope",
			msg:  chirp.Envelope{ForUser: 7, Message: chirp.Friends{IDs: []int64{1, 2}}},
			want: "for 7: friends: 2 ids",
		},
		{
			name: "disconnect",
			msg:  chirp.Disconnect{Code: chirp.DisconnectStall, Reason: "slow"},
			want: "disconnect stall (4): slow",
		},
		{
			name: "warning",
			msg:  chirp.Warning{Code: "FALLING_BEHIND", PercentFull: &percent},
			want: "warning FALLING_BEHIND (80% full)",
		},
		{
			name: "limit",
			msg:  chirp.Limit{Track: 12},
			want: "limit: 12 undelivered",
		},
		{
			name: "delete",
			msg:  chirp.Delete{Target: chirp.DeleteDirectMessage, ID: 3, UserID: 4},
			want: "delete_direct_message: 3 by user 4",
		},
		{
			name: "withheld",
			msg:  chirp.StatusWithheld{ID: 1, Countries: []string{"DE", "AR"}},
			want: "status_withheld: 1 in DE, AR",
		},
		{
			name: "user suspend",
			msg:  chirp.UserLifecycle{Action: chirp.UserSuspended, UserID: 9},
			want: "user_suspend: user 9",
		},
		{
			name: "raw",
			msg:  chirp.RawMessage{Err: errors.New("bad")},
			want: "raw: bad",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, chirp.Summary(tt.msg))
		})
	}
}

func TestTweetText(t *testing.T) {
	t.Parallel()

	assert.Empty(t, chirp.TweetText(nil))
	assert.Equal(t, "short", chirp.TweetText(&twitter.Tweet{Text: "short"}))
	assert.Equal(t, "full", chirp.TweetText(&twitter.Tweet{Text: "short", FullText: "full"}))
	assert.Equal(t, "extended", chirp.TweetText(&twitter.Tweet{
		Text:          "short",
		ExtendedTweet: &twitter.ExtendedTweet{FullText: "extended"},
	}))
}
