package config

import (
	"strings"

	"golang.org/x/text/language"
)

// SupportedLanguages lists the label catalogs, preferred first.
var SupportedLanguages = []language.Tag{
	language.English,
	language.TraditionalChinese,
}

var languageMatcher = language.NewMatcher(SupportedLanguages)

// MatchLanguage maps a locale string such as "zh_TW.UTF-8" or "en-US" to
// the closest supported language. Unknown input yields English.
func MatchLanguage(locale string) language.Tag {
	locale = normalizeLocale(locale)
	if locale == "" {
		return language.English
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.English
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return language.English
	}
	return SupportedLanguages[idx]
}

// normalizeLocale strips POSIX encoding and modifier suffixes and converts
// underscores to BCP 47 separators.
func normalizeLocale(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".@"); i >= 0 {
		s = s[:i]
	}
	if s == "C" || s == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(s, "_", "-")
}
