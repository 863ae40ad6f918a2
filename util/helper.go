package util

import (
	"strings"
	"unicode/utf8"
)

// IetfToIsoLangCode maps a site language tag to the locale name strftime
// tables use.
func IetfToIsoLangCode(languageCode string) string {
	switch strings.ToLower(languageCode) {
	case "en", "en-us":
		return "en_US"
	case "en-gb":
		return "en_GB"
	default:
		return "ja_JP"
	}
}

// Truncate cuts s to n runes and appends suffix when anything was cut.
func Truncate(s string, n int, suffix string) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + suffix
}

func SplitToColumns[T any](items []T, colNum int) [][]T {
	if colNum <= 0 {
		return nil
	}

	var rows [][]T
	for i, item := range items {
		if i%colNum == 0 {
			rows = append(rows, make([]T, 0, colNum))
		}
		rows[len(rows)-1] = append(rows[len(rows)-1], item)
	}

	return rows
}
