package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var allClasses = []StatusClass{ClassBadRequest, ClassAccessDenied, ClassInternal, ClassNotFound}

// every language must provide a message for every status class
func TestCatalog_Complete(t *testing.T) {
	assert.Len(t, catalogs, len(Languages()))

	for _, lang := range Languages() {
		cat, ok := catalogs[lang]
		if !assert.True(t, ok, "missing catalog for %s", lang) {
			continue
		}

		assert.Equal(t, lang, cat.Language)
		assert.NotEmpty(t, cat.DetailsLabel, "lang=%s", lang)

		seen := map[string]bool{}
		for _, class := range allClasses {
			msg := cat.Message(class)
			assert.NotEmpty(t, msg, "lang=%s class=%s", lang, class)
			assert.False(t, seen[msg], "lang=%s reuses message for class %s", lang, class)
			seen[msg] = true
		}
	}
}

func TestCatalog_UnsupportedFallsBackToEnglish(t *testing.T) {
	assert.Equal(t, catalogs[En], Catalog(Language(42)))
}

func TestCatalog_LabelsDifferPerLanguage(t *testing.T) {
	assert.Equal(t, "Show Details", Catalog(En).DetailsLabel)
	assert.Equal(t, "Details Anzeigen", Catalog(De).DetailsLabel)
}
