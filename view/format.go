package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joeyave/airia-site/txt"
	"github.com/joeyave/airia-site/util"
	"github.com/klauspost/lctime"
	"golang.org/x/text/language"
)

// FormatDate renders t as YYYY.MM.DD.
func FormatDate(t time.Time) string {
	return t.Format("2006.01.02")
}

// FormatLongDate renders t with the full localized date, weekday included.
func FormatLongDate(t time.Time, lang string) string {
	return txt.GetTranslator(lang).FmtDateFull(t)
}

// FormatLiveDate renders the date and start time of a live, e.g.
// 2024年06月15日(土) 18:30.
func FormatLiveDate(t time.Time, lang string) string {
	weekday := txt.GetTranslator(lang).WeekdayAbbreviated(t.Weekday())
	if txt.Lang(lang) == language.Japanese {
		return fmt.Sprintf("%04d年%02d月%02d日(%s) %02d:%02d", t.Year(), t.Month(), t.Day(), weekday, t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%s %04d.%02d.%02d %02d:%02d", weekday, t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute())
}

func FormatTime(t time.Time) string {
	return t.Format("15:04")
}

// MonthAbbrev is the upper-case English month, JAN..DEC.
func MonthAbbrev(m time.Month) string {
	return strings.ToUpper(txt.GetTranslator("en").MonthAbbreviated(m))
}

// MonthShort is the localized short month name used on event cards.
func MonthShort(m time.Month, lang string) string {
	return txt.GetTranslator(lang).MonthAbbreviated(m)
}

func CalendarTitle(year int, month time.Month, lang string) string {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	name, err := lctime.StrftimeLoc(util.IetfToIsoLangCode(lang), "%B", t)
	if err != nil {
		name = month.String()
	}
	// Years are passed as text: the printer would group their digits.
	return txt.Get("calendar.title", lang, strconv.Itoa(year), name)
}

// WeekdayHeaders are the abbreviated weekday names, Sunday first.
func WeekdayHeaders(lang string) []string {
	// 2024-09-01 is a Sunday.
	sunday := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)

	headers := make([]string, 7)
	for i := range headers {
		day := sunday.AddDate(0, 0, i)
		name, err := lctime.StrftimeLoc(util.IetfToIsoLangCode(lang), "%a", day)
		if err != nil {
			name = day.Weekday().String()[:3]
		}
		headers[i] = name
	}
	return headers
}

// AnimationDelay is the CSS delay of the i-th staggered item.
func AnimationDelay(i int, step time.Duration) string {
	return strconv.FormatFloat((time.Duration(i) * step).Seconds(), 'f', -1, 64) + "s"
}

func Excerpt(s string, n int) string {
	return util.Truncate(s, n, "...")
}
