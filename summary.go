package chirp

import (
	"fmt"
	"strings"

	"github.com/dghubble/go-twitter/twitter"
)

// Summary returns a single-line, human-readable description of m.
func Summary(m Message) string {
	switch m := m.(type) {
	case StatusCreate:
		return fmt.Sprintf("%s: %s", handle(tweetUser(m.Status)), oneLine(TweetText(m.Status)))
	case DirectMessage:
		if m.DirectMessage == nil {
			return "direct message"
		}
		dm := m.DirectMessage
		return fmt.Sprintf("%s → %s: %s", handle(dm.SenderScreenName), handle(dm.RecipientScreenName), oneLine(dm.Text))
	case Friends:
		return fmt.Sprintf("friends: %d ids", len(m.IDs))
	case Event:
		s := fmt.Sprintf("%s %s %s", handle(userName(m.Source)), m.Code, handle(userName(m.Target)))
		switch {
		case m.TargetStatus != nil:
			s += ": " + oneLine(TweetText(m.TargetStatus))
		case m.TargetList != nil:
			s += ": " + m.TargetList.FullName
		}
		return s
	case Envelope:
		if m.Message == nil {
			return fmt.Sprintf("for %d", m.ForUser)
		}
		return fmt.Sprintf("for %d: %s", m.ForUser, Summary(m.Message))
	case Control:
		return "control: " + m.URI
	case Disconnect:
		s := fmt.Sprintf("disconnect %s (%d)", m.Code, int(m.Code))
		if m.Reason != "" {
			s += ": " + m.Reason
		}
		return s
	case Warning:
		s := "warning " + m.Code
		if m.Message != "" {
			s += ": " + m.Message
		}
		if m.PercentFull != nil {
			s += fmt.Sprintf(" (%d%% full)", *m.PercentFull)
		}
		return s
	case Limit:
		return fmt.Sprintf("limit: %d undelivered", m.Track)
	case Delete:
		return fmt.Sprintf("%s: %d by user %d", m.Kind(), m.ID, m.UserID)
	case ScrubGeo:
		return fmt.Sprintf("scrub_geo: user %d up to status %d", m.UserID, m.UpToStatusID)
	case StatusWithheld:
		return fmt.Sprintf("status_withheld: %d in %s", m.ID, strings.Join(m.Countries, ", "))
	case UserWithheld:
		return fmt.Sprintf("user_withheld: %d in %s", m.ID, strings.Join(m.Countries, ", "))
	case UserLifecycle:
		return fmt.Sprintf("%s: user %d", m.Kind(), m.UserID)
	case RawMessage:
		if m.Err != nil {
			return "raw: " + m.Err.Error()
		}
		return "raw"
	default:
		return fmt.Sprintf("%T", m)
	}
}

// TweetText returns the longest text a status carries. Extended statuses keep
// the untruncated text in extended_tweet.full_text.
func TweetText(tw *twitter.Tweet) string {
	switch {
	case tw == nil:
		return ""
	case tw.ExtendedTweet != nil && tw.ExtendedTweet.FullText != "":
		return tw.ExtendedTweet.FullText
	case tw.FullText != "":
		return tw.FullText
	default:
		return tw.Text
	}
}

func tweetUser(tw *twitter.Tweet) string {
	if tw == nil {
		return ""
	}
	return userName(tw.User)
}

func userName(u *twitter.User) string {
	if u == nil {
		return ""
	}
	return u.ScreenName
}

func handle(name string) string {
	if name == "" {
		return "@?"
	}
	return "@" + name
}

func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
