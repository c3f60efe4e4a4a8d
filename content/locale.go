package content

// Locale selects which language variant of the content to serve.
type Locale string

const (
	LocaleEN Locale = "en"
	LocaleJA Locale = "ja"
	LocaleES Locale = "es"
	LocaleFR Locale = "fr"
)

// DefaultLocale is the fallback used when a post is absent in the
// requested locale.
const DefaultLocale = LocaleEN

// Locales lists every supported locale, default first.
var Locales = []Locale{LocaleEN, LocaleJA, LocaleES, LocaleFR}

// ParseLocale returns the Locale for code and whether it is supported.
func ParseLocale(code string) (Locale, bool) {
	for _, l := range Locales {
		if string(l) == code {
			return l, true
		}
	}
	return "", false
}
