package entity

import (
	"strings"
	"unicode/utf8"
)

// Member covers both member shapes: members.json (displayName, socialLinks
// object) and content.json (nameEn, profileImage, socialLinks list).
type Member struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	NameEn       string      `json:"nameEn,omitempty"`
	DisplayName  string      `json:"displayName,omitempty"`
	Bio          string      `json:"bio"`
	ProfileImage string      `json:"profileImage,omitempty"`
	SocialLinks  SocialLinks `json:"socialLinks,omitempty"`
}

func (m *Member) LatinName() string {
	if m.NameEn != "" {
		return m.NameEn
	}
	return m.DisplayName
}

// Initial is shown in place of a profile image.
func (m *Member) Initial() string {
	name := m.LatinName()
	if name == "" {
		name = m.Name
	}
	r, _ := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return ""
	}
	return strings.ToUpper(string(r))
}
