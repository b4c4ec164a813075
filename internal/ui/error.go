package ui

import (
	"fmt"
	"os"

	"github.com/safedep/outdated/usefulerror"
)

const bugReportURL = "https://github.com/safedep/outdated/issues/new?labels=bug"

// ErrorExit prints the error message and exits the program with a non-zero status code.
func ErrorExit(err error) {
	usefulErr := convertToUsefulError(err)
	if usefulErr == nil {
		Fatalf("Error: unknown failure")
	}

	ClearStatus()

	width := termWidth()

	fmt.Fprintln(stderr, Colors.ErrorCode(" %s ", usefulErr.Code()),
		Colors.Red("%s", usefulErr.HumanError()))
	fmt.Fprintln(stderr, Colors.Yellow("%s", termWidthFormatText(usefulErr.Help(), width)))

	additionalHelp := usefulErr.AdditionalHelp()
	if usefulErr.Code() == usefulerror.ErrCodeUnknown {
		additionalHelp = fmt.Sprintf("If you believe this is a bug, please report it at: %s", bugReportURL)
	}

	fmt.Fprintln(stderr, Colors.Dim("%s", termWidthFormatText(additionalHelp, width)))

	os.Exit(1)
}
