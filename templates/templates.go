package templates

import (
	"embed"
	"html/template"

	"github.com/joeyave/airia-site/txt"
)

//go:embed *.go.html
var files embed.FS

var FuncMap = template.FuncMap{
	"t": func(lang, key string, args ...any) string {
		return txt.Get(key, lang, args...)
	},
	// withLang passes the page language along with a partial's data.
	"withLang": func(lang string, v any) map[string]any {
		return map[string]any{"Lang": lang, "V": v}
	},
}

// Parse parses every page template together with the shared layout.
func Parse() (*template.Template, error) {
	return template.New("_root").Funcs(FuncMap).ParseFS(files, "*.go.html")
}
