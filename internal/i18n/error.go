package i18n

import (
	"net/http"
	"strconv"

	json "github.com/goccy/go-json"
)

// ErrorResponse is the localized body of an error page or API error.
// Values are built fresh per error and never mutated after construction.
type ErrorResponse struct {
	Error       string  `json:"error"`                 // status line, e.g. "400 Bad Request"
	ErrorText   string  `json:"errorText"`             // localized summary of the status class
	Details     string  `json:"details"`               // localized label for the details toggle
	DetailsText *string `json:"detailsText,omitempty"` // caller supplied, passed through verbatim
}

// StatusClass is the bucket a status code falls into for messaging.
type StatusClass int

const (
	ClassNotFound StatusClass = iota
	ClassBadRequest
	ClassAccessDenied
	ClassInternal
)

func (c StatusClass) String() string {
	switch c {
	case ClassBadRequest:
		return "bad_request"
	case ClassAccessDenied:
		return "access_denied"
	case ClassInternal:
		return "internal"
	default:
		return "not_found"
	}
}

// maps a status code to its message bucket. Anything not listed here
// intentionally falls through to ClassNotFound.
func ClassifyStatus(status int) StatusClass {
	switch status {
	case http.StatusBadRequest:
		return ClassBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return ClassAccessDenied
	case http.StatusInternalServerError:
		return ClassInternal
	default:
		return ClassNotFound
	}
}

// renders the canonical "<code> <reason>" form of a status code
func StatusText(status int) string {
	reason := http.StatusText(status)
	if reason == "" {
		reason = "<unknown status code>"
	}

	return strconv.Itoa(status) + " " + reason
}

// builds the generic not-found response for lang
func BuildError(lang Language) ErrorResponse {
	return BuildErrorWith(lang, http.StatusNotFound, nil)
}

// builds the response for status in lang. detailsText is copied as is.
func BuildErrorWith(lang Language, status int, detailsText *string) ErrorResponse {
	cat := Catalog(lang)

	resp := ErrorResponse{
		Error:     StatusText(status),
		ErrorText: cat.Message(ClassifyStatus(status)),
		Details:   cat.DetailsLabel,
	}

	if detailsText != nil {
		text := *detailsText
		resp.DetailsText = &text
	}

	return resp
}

// AsJSON returns the serialized form embedded into server side rendered pages.
func (e ErrorResponse) AsJSON() string {
	b, err := json.Marshal(e)
	if err != nil {
		// only strings are involved, encoding cannot fail
		panic(err)
	}

	return string(b)
}

// decodes a serialized ErrorResponse
func DecodeErrorResponse(data []byte) (ErrorResponse, error) {
	var resp ErrorResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return ErrorResponse{}, err
	}

	return resp, nil
}

// returns a pointer to s, for passing literal details text
func Text(s string) *string {
	return &s
}
