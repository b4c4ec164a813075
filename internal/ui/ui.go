// Package ui renders the outdated report and user facing messages. It is
// internal to the CLI and opinionated about colors and layout.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/safedep/outdated/outdated"
	"golang.org/x/term"
)

const (
	nothingToCheckMessage = "Nothing to check in this package.json."
	upToDateMessage       = "All packages are up to date."

	defaultTermWidth = 80
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// ShowReport prints the outcome of a build. Only outdated records are
// rendered as a table.
func ShowReport(report *outdated.Report) {
	switch report.Outcome {
	case outdated.OutcomeNothingToCheck:
		fmt.Fprintln(stdout, Colors.Yellow(nothingToCheckMessage))
	case outdated.OutcomeUpToDate:
		fmt.Fprintln(stdout, Colors.Green(upToDateMessage))
	default:
		RenderOutdatedTable(stdout, report.Records)
	}
}

// ShowLookupFailure prints a registry lookup diagnostic on stderr
func ShowLookupFailure(message string) {
	fmt.Fprintln(stderr, Colors.Red("%s", message))
}

func Fatalf(format string, args ...any) {
	ClearStatus()

	fmt.Fprintln(stderr, Colors.Red(format, args...))
	os.Exit(1)
}

func ClearStatus() {
	StopProgressWriter()
}

func termWidth() int {
	if width, _, err := term.GetSize(int(os.Stderr.Fd())); err == nil && width > 0 {
		return width
	}

	return defaultTermWidth
}

// termWidthFormatText reflows text into lines no wider than maxWidth. Words
// longer than maxWidth are kept whole on their own line.
func termWidthFormatText(text string, maxWidth int) string {
	var sb strings.Builder

	lineLength := 0
	for i, word := range strings.Fields(text) {
		if i > 0 {
			if lineLength+1+len(word) > maxWidth {
				sb.WriteString("\n")
				lineLength = 0
			} else {
				sb.WriteString(" ")
				lineLength++
			}
		}

		sb.WriteString(word)
		lineLength += len(word)
	}

	return sb.String()
}
