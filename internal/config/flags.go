package config

import (
	"flag"
	"net/http"
)

// parses CLI flags for the preview command
func ParsePreviewFlags(args []string) (PreviewFlags, error) {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	lang := fs.String("lang", "en", "language tag (en, de)")
	status := fs.Int("status", http.StatusNotFound, "HTTP status code")
	details := fs.String("details", "", "optional details text")
	asJSON := fs.Bool("json", false, "print raw JSON instead of styled output")

	if err := fs.Parse(args); err != nil {
		return PreviewFlags{}, err
	}

	return PreviewFlags{
		Language: *lang,
		Status:   *status,
		Details:  *details,
		JSON:     *asJSON,
	}, nil
}
