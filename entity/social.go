package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// SocialLinks keeps the order links appear in the content file.
type SocialLinks []SocialLink

// UnmarshalJSON accepts both the list form [{"platform": "...", "url": "..."}]
// and the object form {"instagram": "https://..."} used by social.json.
func (l *SocialLinks) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = nil
		return nil
	}

	if b[0] == '[' {
		var links []SocialLink
		if err := json.Unmarshal(b, &links); err != nil {
			return err
		}
		*l = links
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	if _, err := dec.Token(); err != nil {
		return err
	}

	var links SocialLinks
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		platform, ok := tok.(string)
		if !ok {
			return fmt.Errorf("social links: unexpected key %v", tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("social links: %s: %w", platform, err)
		}

		var url string
		if err := json.Unmarshal(raw, &url); err != nil || url == "" {
			// Nested settings objects are not links.
			continue
		}
		links = append(links, SocialLink{Platform: platform, URL: url})
	}

	if _, err := dec.Token(); err != nil {
		return err
	}

	*l = links
	return nil
}

func (l SocialLinks) Get(platform string) (string, bool) {
	for _, link := range l {
		if strings.EqualFold(link.Platform, platform) {
			return link.URL, true
		}
	}
	return "", false
}
