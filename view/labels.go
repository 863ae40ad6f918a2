package view

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/joeyave/airia-site/entity"
	"github.com/joeyave/airia-site/txt"
)

var eventTypeLabelKeys = map[string]string{
	entity.EventTypeLive:      "label.event.live",
	entity.EventTypeStreet:    "label.event.street",
	entity.EventTypeStreaming: "label.event.streaming",
}

var newsCategoryLabelKeys = map[string]string{
	entity.NewsCategoryAll:     "label.news.all",
	entity.NewsCategoryRelease: "label.news.release",
	entity.NewsCategoryLive:    "label.news.live",
	entity.NewsCategoryInfo:    "label.news.info",
}

var platformLabels = map[string]string{
	"instagram": "Instagram",
	"tiktok":    "TikTok",
	"line":      "LINE",
	"twitter":   "Twitter",
	"x":         "X",
	"youtube":   "YouTube",
}

var platformIcons = map[string]string{
	"instagram": "📷",
	"tiktok":    "🎵",
	"line":      "💬",
	"twitter":   "🐦",
	"x":         "🐦",
	"youtube":   "📺",
}

const linkIcon = "🔗"

var memberSocialIcons = map[string]string{
	"twitter":   "X",
	"x":         "X",
	"instagram": "IG",
	"youtube":   "YT",
	"tiktok":    "TT",
}

// EventTypeLabel returns the localized label of an event type; unknown types
// are returned unchanged.
func EventTypeLabel(eventType, lang string) string {
	if key, ok := eventTypeLabelKeys[eventType]; ok {
		return txt.Get(key, lang)
	}
	return eventType
}

func NewsCategoryLabel(category, lang string) string {
	if key, ok := newsCategoryLabelKeys[category]; ok {
		return txt.Get(key, lang)
	}
	return category
}

func PlatformLabel(platform string) string {
	if label, ok := platformLabels[strings.ToLower(platform)]; ok {
		return label
	}
	return platform
}

func PlatformIcon(platform string) string {
	if icon, ok := platformIcons[strings.ToLower(platform)]; ok {
		return icon
	}
	return linkIcon
}

// MemberSocialIcon is the short badge of a member's social link. Unknown
// platforms use their first letter.
func MemberSocialIcon(platform string) string {
	if icon, ok := memberSocialIcons[strings.ToLower(platform)]; ok {
		return icon
	}
	r, _ := utf8.DecodeRuneInString(platform)
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}
