package errorpages

import "codeberg.org/algorave/errorpages/internal/i18n"

type statusURI struct {
	Status int `uri:"status"`
}

type LanguagesResponse struct {
	Languages []i18n.Language `json:"languages"`
	Current   i18n.Language   `json:"current"`
}
