package entity

import (
	"strings"
	"time"
)

const (
	NewsCategoryAll     = "all"
	NewsCategoryRelease = "release"
	NewsCategoryLive    = "live"
	NewsCategoryInfo    = "info"
)

type News struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Category      string `json:"category"`
	PublishDate   string `json:"publishDate"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt,omitempty"`
	FeaturedImage string `json:"featuredImage,omitempty"`
}

func (n *News) PublishedAt(loc *time.Location) (time.Time, error) {
	return ParseDateTime(n.PublishDate, loc)
}

// Paragraphs splits the body on line breaks, dropping blank lines.
func (n *News) Paragraphs() []string {
	var paragraphs []string
	for _, line := range strings.Split(strings.ReplaceAll(n.Content, "\r\n", "\n"), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}
