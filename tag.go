package tmi

// Tag is a closed enumeration of the IRCv3/Twitch tag names this package
// recognizes by name. Any tag key not in this set decodes as [TagUnknown],
// still reachable via [Frame.RawTag] using its literal wire name.
type Tag int

// The recognized tag names, matching Twitch's documented tag set plus the
// full msg-param-* family used by USERNOTICE sub-events.
const (
	TagUnknown Tag = iota

	TagBadgeInfo
	TagBadges
	TagBanDuration
	TagBits
	TagClientNonce
	TagColor
	TagDisplayName
	TagEmoteOnly
	TagEmoteSets
	TagEmotes
	TagFirstMsg
	TagFlags
	TagFollowersOnly
	TagID
	TagLogin
	TagMod
	TagMsgID
	TagMessage
	TagPinnedChatPaidAmount
	TagPinnedChatPaidCanonicalAmount
	TagPinnedChatPaidCurrency
	TagPinnedChatPaidExponent
	TagPinnedChatPaidIsSystemMessage
	TagPinnedChatPaidLevel
	TagR9K
	TagReplyParentDisplayName
	TagReplyParentMsgBody
	TagReplyParentMsgID
	TagReplyParentUserID
	TagReplyParentUserLogin
	TagReplyThreadParentMsgID
	TagReplyThreadParentUserLogin
	TagReturningChatter
	TagRoomID
	TagSlow
	TagSourceBadgeInfo
	TagSourceBadges
	TagSourceID
	TagSourceRoomID
	TagSubscriber
	TagSubsOnly
	TagSystemMsg
	TagTargetMsgID
	TagTargetUserID
	TagTmiSentTS
	TagTurbo
	TagUserID
	TagUserType
	TagVIP

	TagMsgParamCumulativeMonths
	TagMsgParamDisplayName
	TagMsgParamDomain
	TagMsgParamFunString
	TagMsgParamGiftMonths
	TagMsgParamGifterID
	TagMsgParamGifterLogin
	TagMsgParamGifterName
	TagMsgParamLogin
	TagMsgParamMassGiftCount
	TagMsgParamMonths
	TagMsgParamMultimonthDuration
	TagMsgParamMultimonthTenure
	TagMsgParamOriginID
	TagMsgParamPriorGifterAnonymous
	TagMsgParamPriorGifterDisplayName
	TagMsgParamPriorGifterID
	TagMsgParamPriorGifterUserName
	TagMsgParamProfileImageURL
	TagMsgParamPromoGiftTotal
	TagMsgParamPromoName
	TagMsgParamRecipientDisplayName
	TagMsgParamRecipientID
	TagMsgParamRecipientUserName
	TagMsgParamRitualName
	TagMsgParamSenderCount
	TagMsgParamSenderLogin
	TagMsgParamSenderName
	TagMsgParamShouldShareStreak
	TagMsgParamStreakMonths
	TagMsgParamSubPlan
	TagMsgParamSubPlanName
	TagMsgParamThreshold
	TagMsgParamTotalRewardCount
	TagMsgParamViewerCount
	TagMsgParamWasGifted
	TagMsgParamAnonGift
	TagMsgParamCommunityGiftID
	TagMsgParamBitsAmount

	numKnownTags
)

// tagNames maps each known [Tag] to its wire name. Index 0 (TagUnknown) is
// unused; unknown tags carry their own raw span instead of a static name.
var tagNames = [numKnownTags]string{
	TagBadgeInfo:                      "badge-info",
	TagBadges:                         "badges",
	TagBanDuration:                    "ban-duration",
	TagBits:                           "bits",
	TagClientNonce:                    "client-nonce",
	TagColor:                          "color",
	TagDisplayName:                    "display-name",
	TagEmoteOnly:                      "emote-only",
	TagEmoteSets:                      "emote-sets",
	TagEmotes:                         "emotes",
	TagFirstMsg:                       "first-msg",
	TagFlags:                          "flags",
	TagFollowersOnly:                  "followers-only",
	TagID:                             "id",
	TagLogin:                          "login",
	TagMod:                            "mod",
	TagMsgID:                          "msg-id",
	TagMessage:                        "message",
	TagPinnedChatPaidAmount:           "pinned-chat-paid-amount",
	TagPinnedChatPaidCanonicalAmount:  "pinned-chat-paid-canonical-amount",
	TagPinnedChatPaidCurrency:         "pinned-chat-paid-currency",
	TagPinnedChatPaidExponent:         "pinned-chat-paid-exponent",
	TagPinnedChatPaidIsSystemMessage:  "pinned-chat-paid-is-system-message",
	TagPinnedChatPaidLevel:            "pinned-chat-paid-level",
	TagR9K:                            "r9k",
	TagReplyParentDisplayName:         "reply-parent-display-name",
	TagReplyParentMsgBody:             "reply-parent-msg-body",
	TagReplyParentMsgID:               "reply-parent-msg-id",
	TagReplyParentUserID:              "reply-parent-user-id",
	TagReplyParentUserLogin:           "reply-parent-user-login",
	TagReplyThreadParentMsgID:         "reply-thread-parent-msg-id",
	TagReplyThreadParentUserLogin:     "reply-thread-parent-user-login",
	TagReturningChatter:               "returning-chatter",
	TagRoomID:                         "room-id",
	TagSlow:                           "slow",
	TagSourceBadgeInfo:                "source-badge-info",
	TagSourceBadges:                   "source-badges",
	TagSourceID:                       "source-id",
	TagSourceRoomID:                   "source-room-id",
	TagSubscriber:                     "subscriber",
	TagSubsOnly:                       "subs-only",
	TagSystemMsg:                      "system-msg",
	TagTargetMsgID:                    "target-msg-id",
	TagTargetUserID:                   "target-user-id",
	TagTmiSentTS:                      "tmi-sent-ts",
	TagTurbo:                          "turbo",
	TagUserID:                         "user-id",
	TagUserType:                       "user-type",
	TagVIP:                            "vip",

	TagMsgParamCumulativeMonths:       "msg-param-cumulative-months",
	TagMsgParamDisplayName:            "msg-param-displayName",
	TagMsgParamDomain:                 "msg-param-domain",
	TagMsgParamFunString:              "msg-param-fun-string",
	TagMsgParamGiftMonths:             "msg-param-gift-months",
	TagMsgParamGifterID:               "msg-param-gifter-id",
	TagMsgParamGifterLogin:            "msg-param-gifter-login",
	TagMsgParamGifterName:             "msg-param-gifter-name",
	TagMsgParamLogin:                  "msg-param-login",
	TagMsgParamMassGiftCount:          "msg-param-mass-gift-count",
	TagMsgParamMonths:                 "msg-param-months",
	TagMsgParamMultimonthDuration:     "msg-param-multimonth-duration",
	TagMsgParamMultimonthTenure:       "msg-param-multimonth-tenure",
	TagMsgParamOriginID:               "msg-param-origin-id",
	TagMsgParamPriorGifterAnonymous:   "msg-param-prior-gifter-anonymous",
	TagMsgParamPriorGifterDisplayName: "msg-param-prior-gifter-display-name",
	TagMsgParamPriorGifterID:          "msg-param-prior-gifter-id",
	TagMsgParamPriorGifterUserName:    "msg-param-prior-gifter-user-name",
	TagMsgParamProfileImageURL:        "msg-param-profileImageURL",
	TagMsgParamPromoGiftTotal:         "msg-param-promo-gift-total",
	TagMsgParamPromoName:              "msg-param-promo-name",
	TagMsgParamRecipientDisplayName:   "msg-param-recipient-display-name",
	TagMsgParamRecipientID:            "msg-param-recipient-id",
	TagMsgParamRecipientUserName:      "msg-param-recipient-user-name",
	TagMsgParamRitualName:             "msg-param-ritual-name",
	TagMsgParamSenderCount:            "msg-param-sender-count",
	TagMsgParamSenderLogin:            "msg-param-sender-login",
	TagMsgParamSenderName:             "msg-param-sender-name",
	TagMsgParamShouldShareStreak:      "msg-param-should-share-streak",
	TagMsgParamStreakMonths:           "msg-param-streak-months",
	TagMsgParamSubPlan:                "msg-param-sub-plan",
	TagMsgParamSubPlanName:            "msg-param-sub-plan-name",
	TagMsgParamThreshold:              "msg-param-threshold",
	TagMsgParamTotalRewardCount:       "msg-param-total-reward-count",
	TagMsgParamViewerCount:            "msg-param-viewerCount",
	TagMsgParamWasGifted:              "msg-param-was-gifted",
	TagMsgParamAnonGift:               "msg-param-anon-gift",
	TagMsgParamCommunityGiftID:        "msg-param-community-gift-id",
	TagMsgParamBitsAmount:             "msg-param-bits-amount",
}

// String implements [fmt.Stringer].
func (t Tag) String() string {
	if t <= TagUnknown || int(t) >= len(tagNames) {
		return "unknown"
	}
	return tagNames[t]
}
