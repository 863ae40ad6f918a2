package txt

import (
	"github.com/go-playground/locales"
	localeEn "github.com/go-playground/locales/en"
	localeJa "github.com/go-playground/locales/ja"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.Japanese, language.English}

var (
	matcher  = language.NewMatcher(supported)
	messages = catalog.NewBuilder(catalog.Fallback(language.Japanese))

	translators = map[language.Tag]locales.Translator{
		language.Japanese: localeJa.New(),
		language.English:  localeEn.New(),
	}
)

func init() {
	for key, byLang := range dictionary {
		for tag, msg := range byLang {
			if err := messages.SetString(tag, key, msg); err != nil {
				panic(err)
			}
		}
	}
}

// Lang returns the supported language closest to the given tag; Japanese when
// nothing matches.
func Lang(lang string) language.Tag {
	if lang == "" {
		return language.Japanese
	}
	_, i, confidence := matcher.Match(language.Make(lang))
	if confidence == language.No {
		return language.Japanese
	}
	return supported[i]
}

// Get formats the message key in lang. Unknown keys are returned as is.
func Get(key, lang string, args ...any) string {
	p := message.NewPrinter(Lang(lang), message.Catalog(messages))
	return p.Sprintf(key, args...)
}

// GetTranslator returns the CLDR translator of lang.
func GetTranslator(lang string) locales.Translator {
	return translators[Lang(lang)]
}
