package plans

import "strings"

// SupportedLocales are the site languages, DefaultLocale first.
var SupportedLocales = []string{"en", "es", "pt", "fr", "de", "it", "ru", "tr", "ar", "hi", "id", "ja", "zh"}

const DefaultLocale = "en"

// ResolveLocale maps a requested tag ("pt-BR", "ES", "zh_Hans") to a
// supported locale, falling back to DefaultLocale.
func ResolveLocale(raw string) string {
	tag := strings.ToLower(strings.TrimSpace(raw))
	if tag == "" {
		return DefaultLocale
	}
	tag = strings.ReplaceAll(tag, "_", "-")

	if isSupported(tag) {
		return tag
	}
	if base, _, found := strings.Cut(tag, "-"); found && isSupported(base) {
		return base
	}
	return DefaultLocale
}

func isSupported(tag string) bool {
	for _, l := range SupportedLocales {
		if l == tag {
			return true
		}
	}
	return false
}
