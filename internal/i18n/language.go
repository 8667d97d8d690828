package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the locales the server has string tables for.
type Language int

const (
	En Language = iota
	De
)

var languageTags = map[Language]language.Tag{
	En: language.English,
	De: language.German,
}

// order matters: the first entry is what the matcher falls back to
var supported = []Language{En, De}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.German,
})

// returns every supported language in declaration order
func Languages() []Language {
	out := make([]Language, len(supported))
	copy(out, supported)

	return out
}

func (l Language) String() string {
	switch l {
	case En:
		return "en"
	case De:
		return "de"
	default:
		return fmt.Sprintf("Language(%d)", int(l))
	}
}

// reports whether l is a member of the supported set
func (l Language) Valid() bool {
	_, ok := languageTags[l]
	return ok
}

// parses a language tag such as "de", "DE" or "de-AT"
func ParseLanguage(tag string) (Language, bool) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return En, false
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return En, false
	}

	base, _ := parsed.Base()

	for _, l := range supported {
		want, _ := languageTags[l].Base()
		if base == want {
			return l, true
		}
	}

	return En, false
}

// negotiates an Accept-Language header against the supported set
func MatchAcceptLanguage(header string, fallback Language) Language {
	if strings.TrimSpace(header) == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}

	return supported[idx]
}

func (l Language) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("unsupported language: %d", int(l))
	}

	return []byte(l.String()), nil
}

func (l *Language) UnmarshalText(text []byte) error {
	parsed, ok := ParseLanguage(string(text))
	if !ok {
		return fmt.Errorf("unsupported language: %q", string(text))
	}

	*l = parsed

	return nil
}
