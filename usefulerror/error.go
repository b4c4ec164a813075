package usefulerror

import (
	"errors"
	"strings"
)

// UsefulError is implemented by errors that carry enough context to be shown
// to the user as is. Internal error chains rarely help someone whose
// package.json failed to parse, so the CLI renders these instead.
type UsefulError interface {
	// Error keeps compatibility with the standard error interface.
	Error() string

	// HumanError is a short, readable description of what went wrong.
	HumanError() string

	// Help tells the user how to fix the problem.
	Help() string

	// AdditionalHelp points at tooling specific fixes such as flags.
	AdditionalHelp() string

	// Code identifies the error type for logging and tests.
	Code() string
}

type usefulErrorBuilder struct {
	originalError  error
	humanError     string
	help           string
	additionalHelp string
	code           string
	msg            string
}

var _ UsefulError = (*usefulErrorBuilder)(nil)

func Useful() *usefulErrorBuilder {
	return &usefulErrorBuilder{}
}

func (b *usefulErrorBuilder) Wrap(originalError error) *usefulErrorBuilder {
	b.originalError = originalError
	return b
}

func (b *usefulErrorBuilder) WithHumanError(humanError string) *usefulErrorBuilder {
	b.humanError = humanError
	return b
}

func (b *usefulErrorBuilder) WithHelp(help string) *usefulErrorBuilder {
	b.help = help
	return b
}

func (b *usefulErrorBuilder) WithAdditionalHelp(additionalHelp string) *usefulErrorBuilder {
	b.additionalHelp = additionalHelp
	return b
}

func (b *usefulErrorBuilder) WithCode(code string) *usefulErrorBuilder {
	b.code = code
	return b
}

// Msg sets the machine oriented message used by Error() when nothing is wrapped.
func (b *usefulErrorBuilder) Msg(msg string) *usefulErrorBuilder {
	b.msg = msg
	return b
}

func (b *usefulErrorBuilder) Error() string {
	if b.originalError != nil {
		return b.originalError.Error()
	}

	if b.msg == "" {
		return "unknown error"
	}

	parts := []string{}
	if b.code != "" {
		parts = append(parts, b.code)
	}

	parts = append(parts, b.msg)
	return strings.Join(parts, ": ")
}

// Unwrap exposes the wrapped error to errors.Is and errors.As.
func (b *usefulErrorBuilder) Unwrap() error {
	return b.originalError
}

func (b *usefulErrorBuilder) HumanError() string {
	if b.humanError == "" {
		return "An error occurred, but no human-readable message is available."
	}

	return b.humanError
}

func (b *usefulErrorBuilder) Help() string {
	if b.help == "" {
		return "No additional help is available for this error."
	}

	return b.help
}

func (b *usefulErrorBuilder) AdditionalHelp() string {
	if b.additionalHelp == "" {
		return "No additional help is available for this error."
	}

	return b.additionalHelp
}

func (b *usefulErrorBuilder) Code() string {
	if b.code == "" {
		return "unknown"
	}

	return b.code
}

// AsUsefulError finds a UsefulError in the chain of err.
func AsUsefulError(err error) (UsefulError, bool) {
	if err == nil {
		return nil, false
	}

	var usefulErr UsefulError
	if errors.As(err, &usefulErr) {
		return usefulErr, true
	}

	return nil, false
}
