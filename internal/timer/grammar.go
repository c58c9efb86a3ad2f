package timer

import (
	"os"
	"strings"

	"golang.org/x/text/language"
)

// Pluralize appends "have" or "has" to a preset label so it reads as the
// subject of a sentence ("6 Hours have", "1 Hour has").
//
// This is a fixed English rule keyed on a trailing "s", not a grammar
// engine. Labels in any other language come back unchanged.
func Pluralize(label string, locale language.Tag) string {
	if !isEnglish(locale) {
		return label
	}
	if strings.HasSuffix(strings.ToLower(label), "s") {
		return label + " have"
	}
	return label + " has"
}

func isEnglish(tag language.Tag) bool {
	base, _ := tag.Base()
	return base.String() == "en"
}

// DetectLocale returns override when set, otherwise the locale from the
// usual POSIX environment variables. Anything unparseable is English.
func DetectLocale(override string) language.Tag {
	candidates := []string{override, os.Getenv("LC_ALL"), os.Getenv("LC_MESSAGES"), os.Getenv("LANG")}
	for _, raw := range candidates {
		if raw == "" {
			continue
		}
		return ParseLocale(raw)
	}
	return language.English
}

// ParseLocale parses POSIX ("he_IL.UTF-8") or BCP 47 ("he-IL") locale names.
func ParseLocale(raw string) language.Tag {
	raw = strings.TrimSpace(raw)
	if i := strings.IndexAny(raw, ".@"); i >= 0 {
		raw = raw[:i]
	}
	if raw == "" || raw == "C" || raw == "POSIX" {
		return language.English
	}
	tag, err := language.Parse(strings.ReplaceAll(raw, "_", "-"))
	if err != nil {
		return language.English
	}
	return tag
}
