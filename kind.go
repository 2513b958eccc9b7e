package chirp

// Kind discriminates the concrete type of a Message.
type Kind int

const (
	KindRaw Kind = iota
	KindStatus
	KindDirectMessage
	KindFriends
	KindEvent
	KindEnvelope
	KindControl
	KindDisconnect
	KindWarning
	KindLimit
	KindDeleteStatus
	KindDeleteDirectMessage
	KindScrubGeo
	KindStatusWithheld
	KindUserWithheld
	KindUserDelete
	KindUserUndelete
	KindUserSuspend
)

var kindNames = [...]string{
	KindRaw:                 "raw",
	KindStatus:              "status",
	KindDirectMessage:       "direct_message",
	KindFriends:             "friends",
	KindEvent:               "event",
	KindEnvelope:            "envelope",
	KindControl:             "control",
	KindDisconnect:          "disconnect",
	KindWarning:             "warning",
	KindLimit:               "limit",
	KindDeleteStatus:        "delete_status",
	KindDeleteDirectMessage: "delete_direct_message",
	KindScrubGeo:            "scrub_geo",
	KindStatusWithheld:      "status_withheld",
	KindUserWithheld:        "user_withheld",
	KindUserDelete:          "user_delete",
	KindUserUndelete:        "user_undelete",
	KindUserSuspend:         "user_suspend",
}

// String returns the snake_case name of the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}
	return kinds
}
