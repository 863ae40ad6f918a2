package view

import (
	"bytes"
	"html"
	"html/template"
	"net/url"
	"strings"

	"github.com/joeyave/airia-site/txt"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var markdown = goldmark.New(
	goldmark.WithRendererOptions(goldmarkhtml.WithHardWraps()),
)

// RenderParagraphs turns every line of a news body into a paragraph. Inline
// markdown is rendered; raw HTML is escaped.
func RenderParagraphs(paragraphs []string) template.HTML {
	var buf bytes.Buffer
	for _, p := range paragraphs {
		if err := markdown.Convert([]byte(html.EscapeString(p)), &buf); err != nil {
			log.Error().Err(err).Msg("Failed to render paragraph")
			buf.WriteString("<p>" + html.EscapeString(p) + "</p>\n")
		}
	}
	return template.HTML(buf.String())
}

const shareSuffix = " - AiRia Official Website"

type ShareLink struct {
	Name      string
	URL       string
	AriaLabel string
}

// ShareLinks are the X, Facebook and LINE share intents of a news deep link.
func ShareLinks(title, link, lang string) []ShareLink {
	return []ShareLink{
		{
			Name:      "X",
			URL:       "https://twitter.com/intent/tweet?text=" + encodeURIComponent(title+shareSuffix) + "&url=" + encodeURIComponent(link),
			AriaLabel: txt.Get("share.twitter", lang),
		},
		{
			Name:      "FB",
			URL:       "https://www.facebook.com/sharer/sharer.php?u=" + encodeURIComponent(link),
			AriaLabel: txt.Get("share.facebook", lang),
		},
		{
			Name:      "LINE",
			URL:       "https://line.me/R/msg/text/?" + encodeURIComponent(title+shareSuffix+"\n"+link),
			AriaLabel: txt.Get("share.line", lang),
		},
	}
}

func encodeURIComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
