package entity

import (
	"time"
)

type Song struct {
	ID             string       `json:"id"`
	Title          string       `json:"title"`
	ReleaseDate    string       `json:"releaseDate"`
	CoverArt       string       `json:"coverArt,omitempty"`
	PreviewURL     string       `json:"previewUrl,omitempty"`
	StreamingLinks []SocialLink `json:"streamingLinks,omitempty"`
}

func (s *Song) ReleasedAt(loc *time.Location) (time.Time, error) {
	return ParseDateTime(s.ReleaseDate, loc)
}
