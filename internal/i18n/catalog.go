package i18n

// MessageCatalog holds the strings of one language.
type MessageCatalog struct {
	Language     Language `json:"language"`
	BadRequest   string   `json:"badRequest"`
	AccessDenied string   `json:"accessDenied"`
	Internal     string   `json:"internal"`
	NotFound     string   `json:"notFound"`
	DetailsLabel string   `json:"details"`
}

// every supported language must fill all fields (see catalog_test.go)
var catalogs = map[Language]MessageCatalog{
	En: {
		Language:     En,
		BadRequest:   "Your request is malformed or incorrect, please see details.",
		AccessDenied: "Access denied - you are not allowed to use or access this resource.",
		Internal:     "Internal Server Error",
		NotFound:     "The requested data could not be found",
		DetailsLabel: "Show Details",
	},
	De: {
		Language:     De,
		BadRequest:   "Der Request ist falsch formuliert. Weitere Informationen in den Details.",
		AccessDenied: "Zugriff verweigert - das Nutzen oder der Zugriff auf diese Ressource ist nicht erlaubt.",
		Internal:     "Interner Server Fehler",
		NotFound:     "Die angeforderte Seite konnte nicht gefunden werden.",
		DetailsLabel: "Details Anzeigen",
	},
}

// returns the string table for lang, English for anything unsupported
func Catalog(lang Language) MessageCatalog {
	if cat, ok := catalogs[lang]; ok {
		return cat
	}

	return catalogs[En]
}

// returns the summary for a status class
func (c MessageCatalog) Message(class StatusClass) string {
	switch class {
	case ClassBadRequest:
		return c.BadRequest
	case ClassAccessDenied:
		return c.AccessDenied
	case ClassInternal:
		return c.Internal
	default:
		return c.NotFound
	}
}
