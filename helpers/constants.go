package helpers

import "time"

const (
	LatestNewsLimit     = 3
	UpcomingEventsLimit = 5

	NewsExcerptLength   = 120
	HomeExcerptLength   = 100
	CalendarTitleLength = 10

	SuggestionMinSimilarity = 0.5
)

const (
	AnimationDelayStep   = 100 * time.Millisecond
	SocialAnimationDelay = 150 * time.Millisecond
	FrameInterval        = 16 * time.Millisecond
	PlayerHideDelay      = time.Second
	RefreshDebounce      = 2 * time.Second
)

// Scroll effect thresholds, in CSS pixels.
const (
	HeaderHideOffset     = 100
	HeaderScrolledOffset = 50
	RevealThreshold      = 0.1
	DefaultParallaxSpeed = 0.5
)

const (
	ContentResource = "content.json"
	EventsResource  = "events.json"
	MembersResource = "members.json"
	SocialResource  = "social.json"
)

var ContentResources = []string{ContentResource, EventsResource, MembersResource, SocialResource}

const (
	DefaultTimezone = "Asia/Tokyo"
	DefaultLang     = "ja"
)
