package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"codeberg.org/algorave/errorpages/internal/config"
	"codeberg.org/algorave/errorpages/internal/i18n"
)

var (
	colorWhite     = lipgloss.Color("#FFFFFF")
	colorLightGray = lipgloss.Color("#CCCCCC")
	colorGray      = lipgloss.Color("#888888")
	colorRed       = lipgloss.Color("#FF0000")
)

var (
	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorRed)

	textStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorGray).
			Underline(true)

	detailsStyle = lipgloss.NewStyle().
			Foreground(colorLightGray).
			PaddingLeft(2)

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorGray).
			Padding(1, 2)
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	flags, err := config.ParsePreviewFlags(args)
	if err != nil {
		return err
	}

	lang, ok := i18n.ParseLanguage(flags.Language)
	if !ok {
		return fmt.Errorf("unsupported language %q", flags.Language)
	}

	var details *string
	if flags.Details != "" {
		details = &flags.Details
	}

	resp := i18n.BuildErrorWith(lang, flags.Status, details)

	if flags.JSON {
		_, err = fmt.Fprintln(out, resp.AsJSON())
		return err
	}

	_, err = fmt.Fprintln(out, render(resp))

	return err
}

// renders the payload the way an error page would lay it out
func render(resp i18n.ErrorResponse) string {
	lines := []string{
		statusStyle.Render(resp.Error),
		"",
		textStyle.Render(resp.ErrorText),
	}

	if resp.DetailsText != nil {
		lines = append(lines,
			"",
			labelStyle.Render(resp.Details),
			detailsStyle.Render(*resp.DetailsText),
		)
	}

	return boxStyle.Render(strings.Join(lines, "\n"))
}
