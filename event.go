package chirp

// EventCode identifies the social action an Event reports.
type EventCode string

const (
	EventBlock                EventCode = "block"
	EventUnblock              EventCode = "unblock"
	EventFavorite             EventCode = "favorite"
	EventUnfavorite           EventCode = "unfavorite"
	EventFollow               EventCode = "follow"
	EventUnfollow             EventCode = "unfollow"
	EventListCreated          EventCode = "list_created"
	EventListDestroyed        EventCode = "list_destroyed"
	EventListUpdated          EventCode = "list_updated"
	EventListMemberAdded      EventCode = "list_member_added"
	EventListMemberRemoved    EventCode = "list_member_removed"
	EventListUserSubscribed   EventCode = "list_user_subscribed"
	EventListUserUnsubscribed EventCode = "list_user_unsubscribed"
	EventUserUpdate           EventCode = "user_update"
	EventMute                 EventCode = "mute"
	EventUnmute               EventCode = "unmute"
	EventFavoritedRetweet     EventCode = "favorited_retweet"
	EventRetweetedRetweet     EventCode = "retweeted_retweet"
	EventQuotedTweet          EventCode = "quoted_tweet"
)

// EventCodes returns every known EventCode.
func EventCodes() []EventCode {
	return []EventCode{
		EventBlock, EventUnblock,
		EventFavorite, EventUnfavorite,
		EventFollow, EventUnfollow,
		EventListCreated, EventListDestroyed, EventListUpdated,
		EventListMemberAdded, EventListMemberRemoved,
		EventListUserSubscribed, EventListUserUnsubscribed,
		EventUserUpdate,
		EventMute, EventUnmute,
		EventFavoritedRetweet, EventRetweetedRetweet, EventQuotedTweet,
	}
}

// EventTargetKind says what kind of object an Event's target_object holds.
type EventTargetKind int

const (
	EventTargetNone EventTargetKind = iota
	EventTargetStatus
	EventTargetList
)

func (k EventTargetKind) String() string {
	switch k {
	case EventTargetStatus:
		return "status"
	case EventTargetList:
		return "list"
	default:
		return "none"
	}
}
