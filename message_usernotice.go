package tmi

import "time"

// anonymousGifterID is the sentinel user-id Twitch sends in place of a real
// sender when a gift or mystery-gift event is anonymous.
const anonymousGifterID = "274598607"

// UserNoticeEvent is implemented by every concrete msg-id payload a
// [UserNotice] can carry.
type UserNoticeEvent interface {
	isUserNoticeEvent()
}

// SubOrResubEvent: a user subscribes or resubscribes, paying for their own
// subscription.
type SubOrResubEvent struct {
	IsResub          bool
	CumulativeMonths uint64
	StreakMonths     uint64
	HasStreakMonths  bool
	SubPlan          string
	SubPlanName      string
}

func (SubOrResubEvent) isUserNoticeEvent() {}

// RaidEvent: the channel was raided by another channel's viewers.
type RaidEvent struct {
	ViewerCount     uint64
	ProfileImageURL string
}

func (RaidEvent) isUserNoticeEvent() {}

// SubGiftEvent: a named (or, per [UserNotice.HasSender], anonymous) user
// gifts a subscription to a specific recipient.
type SubGiftEvent struct {
	CumulativeMonths uint64
	Recipient        User
	SubPlan          string
	SubPlanName      string
	NumGiftedMonths  uint64
}

func (SubGiftEvent) isUserNoticeEvent() {}

// SubMysteryGiftEvent: a named user gifts a batch of subscriptions to
// random users.
type SubMysteryGiftEvent struct {
	Count            uint64
	SenderTotalGifts uint64
	SubPlan          string
}

func (SubMysteryGiftEvent) isUserNoticeEvent() {}

// AnonSubMysteryGiftEvent: an anonymous user gifts a batch of subscriptions
// to random users.
type AnonSubMysteryGiftEvent struct {
	Count   uint64
	SubPlan string
}

func (AnonSubMysteryGiftEvent) isUserNoticeEvent() {}

// SubGiftPromo describes an active gift-sub promotion, attached to the
// gift-paid-upgrade events when one is running.
type SubGiftPromo struct {
	TotalGifts uint64
	PromoName  string
}

// GiftPaidUpgradeEvent: a user continues a subscription gifted by a named
// user.
type GiftPaidUpgradeEvent struct {
	GifterLogin  string
	GifterName   string
	Promotion    SubGiftPromo
	HasPromotion bool
}

func (GiftPaidUpgradeEvent) isUserNoticeEvent() {}

// AnonGiftPaidUpgradeEvent: a user continues a subscription gifted by an
// anonymous user.
type AnonGiftPaidUpgradeEvent struct {
	Promotion    SubGiftPromo
	HasPromotion bool
}

func (AnonGiftPaidUpgradeEvent) isUserNoticeEvent() {}

// RitualEvent: an automated action, such as every chatter being greeted on
// a new chatter's first message.
type RitualEvent struct {
	Name string
}

func (RitualEvent) isUserNoticeEvent() {}

// BitsBadgeTierEvent: a user earned a new bits badge tier.
type BitsBadgeTierEvent struct {
	Tier uint64
}

func (BitsBadgeTierEvent) isUserNoticeEvent() {}

// OtherEvent is carried when msg-id does not match any of the named events
// above. EventID on the enclosing [UserNotice] still holds the raw value;
// the sender is left unset, since an unknown event's sender tags cannot be
// required.
type OtherEvent struct{}

func (OtherEvent) isUserNoticeEvent() {}

// UserNotice is a composite event announcing subs, gifts, raids, rituals,
// and similar channel events, keyed on msg-id.
type UserNotice struct {
	Channel       string
	ChannelID     string
	Sender        User
	HasSender     bool
	Text          string
	HasText       bool
	SystemMessage string
	Event         UserNoticeEvent
	EventID       string
	Badges        []BadgeData
	Emotes        []EmoteRange
	Color         string
	HasColor      bool
	MessageID     string
	Timestamp     int64
}

// Kind implements [Message].
func (UserNotice) Kind() MessageKind { return KindUserNotice }

// SentAt returns the message's tmi-sent-ts tag as a UTC time.
func (u UserNotice) SentAt() time.Time { return timestampToTime(u.Timestamp) }

func decodeUserNotice(f *Frame) (UserNotice, error) {
	const cmd = CommandUserNotice

	channel, err := fieldChannel(f, cmd)
	if err != nil {
		return UserNotice{}, err
	}
	channelID, err := fieldString(f, cmd, TagRoomID, "room-id")
	if err != nil {
		return UserNotice{}, err
	}
	eventID, err := fieldString(f, cmd, TagMsgID, "msg-id")
	if err != nil {
		return UserNotice{}, err
	}
	systemMsg, err := fieldString(f, cmd, TagSystemMsg, "system-msg")
	if err != nil {
		return UserNotice{}, err
	}
	messageID, err := fieldString(f, cmd, TagID, "id")
	if err != nil {
		return UserNotice{}, err
	}
	timestamp, err := fieldTimestamp(f, cmd, TagTmiSentTS, "tmi-sent-ts")
	if err != nil {
		return UserNotice{}, err
	}
	badges := optBadges(f)

	senderID, _ := optString(f, TagUserID)
	event, isAnon, err := decodeUserNoticeEvent(f, eventID, senderID)
	if err != nil {
		return UserNotice{}, err
	}

	un := UserNotice{
		Channel:       channel,
		ChannelID:     channelID,
		SystemMessage: systemMsg,
		Event:         event,
		EventID:       eventID,
		Badges:        badges,
		Emotes:        optEmotes(f),
		MessageID:     messageID,
		Timestamp:     timestamp,
	}

	if !isAnon {
		userID, err := fieldString(f, cmd, TagUserID, "user-id")
		if err != nil {
			return UserNotice{}, err
		}
		login, err := fieldString(f, cmd, TagLogin, "login")
		if err != nil {
			return UserNotice{}, err
		}
		displayName, err := fieldString(f, cmd, TagDisplayName, "display-name")
		if err != nil {
			return UserNotice{}, err
		}
		un.Sender = User{ID: userID, Login: login, Name: displayName}
		un.HasSender = true
	}

	if text, ok := messageText(f); ok {
		un.Text, un.HasText = text, true
	}
	if color, ok := optString(f, TagColor); ok && color != "" {
		un.Color, un.HasColor = color, true
	}

	return un, nil
}

// decodeUserNoticeEvent dispatches on msg-id, returning the typed event
// payload and whether this event's sender is anonymous. Unrecognized
// msg-id values decode as [OtherEvent], carrying no payload of their own;
// EventID on the enclosing [UserNotice] still holds the raw msg-id so a
// caller can distinguish one unknown event from another.
func decodeUserNoticeEvent(f *Frame, eventID, senderID string) (UserNoticeEvent, bool, error) {
	const cmd = CommandUserNotice

	switch eventID {
	case "sub", "resub":
		cumulative, err := fieldUint(f, cmd, TagMsgParamCumulativeMonths, "msg-param-cumulative-months")
		if err != nil {
			return nil, false, err
		}
		subPlan, err := fieldString(f, cmd, TagMsgParamSubPlan, "msg-param-sub-plan")
		if err != nil {
			return nil, false, err
		}
		subPlanName, err := fieldString(f, cmd, TagMsgParamSubPlanName, "msg-param-sub-plan-name")
		if err != nil {
			return nil, false, err
		}
		ev := SubOrResubEvent{
			IsResub:          eventID == "resub",
			CumulativeMonths: cumulative,
			SubPlan:          subPlan,
			SubPlanName:      subPlanName,
		}
		if streak, ok := optUint(f, TagMsgParamStreakMonths); ok && streak > 0 {
			ev.StreakMonths, ev.HasStreakMonths = streak, true
		}
		return ev, false, nil

	case "raid":
		viewerCount, err := fieldUint(f, cmd, TagMsgParamViewerCount, "msg-param-viewerCount")
		if err != nil {
			return nil, false, err
		}
		profileURL, err := fieldString(f, cmd, TagMsgParamProfileImageURL, "msg-param-profileImageURL")
		if err != nil {
			return nil, false, err
		}
		return RaidEvent{ViewerCount: viewerCount, ProfileImageURL: profileURL}, false, nil

	case "subgift", "anonsubgift":
		months, err := fieldUint(f, cmd, TagMsgParamMonths, "msg-param-months")
		if err != nil {
			return nil, false, err
		}
		recipientID, err := fieldString(f, cmd, TagMsgParamRecipientID, "msg-param-recipient-id")
		if err != nil {
			return nil, false, err
		}
		recipientLogin, err := fieldString(f, cmd, TagMsgParamRecipientUserName, "msg-param-recipient-user-name")
		if err != nil {
			return nil, false, err
		}
		recipientName, err := fieldString(f, cmd, TagMsgParamRecipientDisplayName, "msg-param-recipient-display-name")
		if err != nil {
			return nil, false, err
		}
		subPlan, err := fieldString(f, cmd, TagMsgParamSubPlan, "msg-param-sub-plan")
		if err != nil {
			return nil, false, err
		}
		subPlanName, err := fieldString(f, cmd, TagMsgParamSubPlanName, "msg-param-sub-plan-name")
		if err != nil {
			return nil, false, err
		}
		giftedMonths, err := fieldUint(f, cmd, TagMsgParamGiftMonths, "msg-param-gift-months")
		if err != nil {
			return nil, false, err
		}
		ev := SubGiftEvent{
			CumulativeMonths: months,
			Recipient:        User{ID: recipientID, Login: recipientLogin, Name: recipientName},
			SubPlan:          subPlan,
			SubPlanName:      subPlanName,
			NumGiftedMonths:  giftedMonths,
		}
		isAnon := eventID == "anonsubgift" || senderID == anonymousGifterID
		return ev, isAnon, nil

	case "anonsubmysterygift":
		count, err := fieldUint(f, cmd, TagMsgParamMassGiftCount, "msg-param-mass-gift-count")
		if err != nil {
			return nil, false, err
		}
		subPlan, err := fieldString(f, cmd, TagMsgParamSubPlan, "msg-param-sub-plan")
		if err != nil {
			return nil, false, err
		}
		return AnonSubMysteryGiftEvent{Count: count, SubPlan: subPlan}, true, nil

	case "submysterygift":
		count, err := fieldUint(f, cmd, TagMsgParamMassGiftCount, "msg-param-mass-gift-count")
		if err != nil {
			return nil, false, err
		}
		subPlan, err := fieldString(f, cmd, TagMsgParamSubPlan, "msg-param-sub-plan")
		if err != nil {
			return nil, false, err
		}
		if senderID == anonymousGifterID {
			return AnonSubMysteryGiftEvent{Count: count, SubPlan: subPlan}, true, nil
		}
		senderTotal, err := fieldUint(f, cmd, TagMsgParamSenderCount, "msg-param-sender-count")
		if err != nil {
			return nil, false, err
		}
		return SubMysteryGiftEvent{Count: count, SenderTotalGifts: senderTotal, SubPlan: subPlan}, false, nil

	case "giftpaidupgrade":
		gifterLogin, err := fieldString(f, cmd, TagMsgParamSenderLogin, "msg-param-sender-login")
		if err != nil {
			return nil, false, err
		}
		gifterName, err := fieldString(f, cmd, TagMsgParamSenderName, "msg-param-sender-name")
		if err != nil {
			return nil, false, err
		}
		promo, hasPromo := decodeSubGiftPromo(f)
		return GiftPaidUpgradeEvent{GifterLogin: gifterLogin, GifterName: gifterName, Promotion: promo, HasPromotion: hasPromo}, false, nil

	case "anongiftpaidupgrade":
		promo, hasPromo := decodeSubGiftPromo(f)
		return AnonGiftPaidUpgradeEvent{Promotion: promo, HasPromotion: hasPromo}, true, nil

	case "ritual":
		name, err := fieldString(f, cmd, TagMsgParamRitualName, "msg-param-ritual-name")
		if err != nil {
			return nil, false, err
		}
		return RitualEvent{Name: name}, false, nil

	case "bitsbadgetier":
		tier, err := fieldUint(f, cmd, TagMsgParamThreshold, "msg-param-threshold")
		if err != nil {
			return nil, false, err
		}
		return BitsBadgeTierEvent{Tier: tier}, false, nil

	default:
		// An unrecognized msg-id carries no known payload and no sender
		// requirement: future event kinds must decode without demanding
		// user-id/login/display-name, so the sender is treated as anonymous.
		return OtherEvent{}, true, nil
	}
}

func decodeSubGiftPromo(f *Frame) (SubGiftPromo, bool) {
	total, ok1 := optUint(f, TagMsgParamPromoGiftTotal)
	name, ok2 := optString(f, TagMsgParamPromoName)
	if !ok1 || !ok2 {
		return SubGiftPromo{}, false
	}
	return SubGiftPromo{TotalGifts: total, PromoName: name}, true
}
