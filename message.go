package chirp

import (
	"time"

	"github.com/dghubble/go-twitter/twitter"
)

// Message is a sealed interface representing one decoded line of a stream.
// The unexported marker method prevents external implementations.
// Kind() reports the variant without requiring a type switch; Raw() returns
// the JSON text the message was decoded from.
type Message interface {
	isMessage()
	Kind() Kind
	Raw() string
}

// StatusCreate is a newly created post.
type StatusCreate struct {
	Status    *twitter.Tweet
	Timestamp time.Time // zero when the line carried no timestamp_ms
	RawJSON   string
}

func (StatusCreate) isMessage()    {}
func (StatusCreate) Kind() Kind    { return KindStatus }
func (m StatusCreate) Raw() string { return m.RawJSON }

// DirectMessage is a direct message sent or received by the stream's user.
type DirectMessage struct {
	DirectMessage *twitter.DirectMessage
	RawJSON       string
}

func (DirectMessage) isMessage()    {}
func (DirectMessage) Kind() Kind    { return KindDirectMessage }
func (m DirectMessage) Raw() string { return m.RawJSON }

// Friends is the preamble listing the ids the user follows. User streams send
// it once at connection start.
type Friends struct {
	IDs     []int64
	RawJSON string
}

func (Friends) isMessage()    {}
func (Friends) Kind() Kind    { return KindFriends }
func (m Friends) Raw() string { return m.RawJSON }

// Event is a social action involving the stream's user.
// At most one of TargetStatus and TargetList is set, as given by TargetKind.
type Event struct {
	Code         EventCode
	Name         string // event name as sent by the server
	TargetKind   EventTargetKind
	Source       *twitter.User
	Target       *twitter.User
	TargetStatus *twitter.Tweet
	TargetList   *twitter.List
	CreatedAt    time.Time
	RawJSON      string
}

func (Event) isMessage()    {}
func (Event) Kind() Kind    { return KindEvent }
func (m Event) Raw() string { return m.RawJSON }

// Envelope wraps a message delivered on a site stream on behalf of ForUser.
type Envelope struct {
	ForUser int64
	Message Message
	RawJSON string
}

func (Envelope) isMessage()    {}
func (Envelope) Kind() Kind    { return KindEnvelope }
func (m Envelope) Raw() string { return m.RawJSON }

// Control announces the control URI of a site stream session.
type Control struct {
	URI     string
	RawJSON string
}

func (Control) isMessage()    {}
func (Control) Kind() Kind    { return KindControl }
func (m Control) Raw() string { return m.RawJSON }

// Disconnect signals that the server is closing the stream.
type Disconnect struct {
	Code       DisconnectCode
	StreamName string
	Reason     string
	RawJSON    string
}

func (Disconnect) isMessage()    {}
func (Disconnect) Kind() Kind    { return KindDisconnect }
func (m Disconnect) Raw() string { return m.RawJSON }

// Warning is a stall or backpressure notice.
// PercentFull is set for FALLING_BEHIND warnings, UserID for
// FOLLOWS_OVER_LIMIT warnings.
type Warning struct {
	Code        string
	Message     string
	PercentFull *int
	UserID      *int64
	RawJSON     string
}

func (Warning) isMessage()    {}
func (Warning) Kind() Kind    { return KindWarning }
func (m Warning) Raw() string { return m.RawJSON }

// Limit reports how many matching statuses were not delivered.
type Limit struct {
	Track     int64
	Timestamp time.Time
	RawJSON   string
}

func (Limit) isMessage()    {}
func (Limit) Kind() Kind    { return KindLimit }
func (m Limit) Raw() string { return m.RawJSON }

// DeleteTarget selects what a Delete removes.
type DeleteTarget int

const (
	DeleteStatus DeleteTarget = iota
	DeleteDirectMessage
)

// Delete asks clients to remove a status or direct message.
type Delete struct {
	Target    DeleteTarget
	ID        int64
	UserID    int64
	Timestamp time.Time
	RawJSON   string
}

func (Delete) isMessage() {}

// Kind returns KindDeleteStatus or KindDeleteDirectMessage according to Target.
func (m Delete) Kind() Kind {
	if m.Target == DeleteDirectMessage {
		return KindDeleteDirectMessage
	}
	return KindDeleteStatus
}

func (m Delete) Raw() string { return m.RawJSON }

// ScrubGeo asks clients to strip location data from a user's statuses up to
// and including UpToStatusID.
type ScrubGeo struct {
	UserID       int64
	UpToStatusID int64
	Timestamp    time.Time
	RawJSON      string
}

func (ScrubGeo) isMessage()    {}
func (ScrubGeo) Kind() Kind    { return KindScrubGeo }
func (m ScrubGeo) Raw() string { return m.RawJSON }

// StatusWithheld reports a status withheld in the listed countries.
type StatusWithheld struct {
	ID        int64
	UserID    int64
	Countries []string
	Timestamp time.Time
	RawJSON   string
}

func (StatusWithheld) isMessage()    {}
func (StatusWithheld) Kind() Kind    { return KindStatusWithheld }
func (m StatusWithheld) Raw() string { return m.RawJSON }

// UserWithheld reports a user withheld in the listed countries.
type UserWithheld struct {
	ID        int64
	Countries []string
	Timestamp time.Time
	RawJSON   string
}

func (UserWithheld) isMessage()    {}
func (UserWithheld) Kind() Kind    { return KindUserWithheld }
func (m UserWithheld) Raw() string { return m.RawJSON }

// UserAction is the account change reported by a UserLifecycle message.
type UserAction int

const (
	UserDeleted UserAction = iota
	UserUndeleted
	UserSuspended
)

// UserLifecycle reports an account being deleted, undeleted or suspended.
// Suspensions carry no timestamp.
type UserLifecycle struct {
	Action    UserAction
	UserID    int64
	Timestamp time.Time
	RawJSON   string
}

func (UserLifecycle) isMessage() {}

// Kind returns the Kind matching Action.
func (m UserLifecycle) Kind() Kind {
	switch m.Action {
	case UserUndeleted:
		return KindUserUndelete
	case UserSuspended:
		return KindUserSuspend
	default:
		return KindUserDelete
	}
}

func (m UserLifecycle) Raw() string { return m.RawJSON }

// RawMessage holds a line that could not be classified. Err explains why.
type RawMessage struct {
	RawJSON string
	Err     error
}

func (RawMessage) isMessage()    {}
func (RawMessage) Kind() Kind    { return KindRaw }
func (m RawMessage) Raw() string { return m.RawJSON }

// Interface compliance checks.
var (
	_ Message = StatusCreate{}
	_ Message = DirectMessage{}
	_ Message = Friends{}
	_ Message = Event{}
	_ Message = Envelope{}
	_ Message = Control{}
	_ Message = Disconnect{}
	_ Message = Warning{}
	_ Message = Limit{}
	_ Message = Delete{}
	_ Message = ScrubGeo{}
	_ Message = StatusWithheld{}
	_ Message = UserWithheld{}
	_ Message = UserLifecycle{}
	_ Message = RawMessage{}
)
