package ui

import "github.com/fatih/color"

type ColorFn func(format string, a ...interface{}) string

type TerminalColors struct {
	Normal    ColorFn
	Red       ColorFn
	Yellow    ColorFn
	Cyan      ColorFn
	Green     ColorFn
	Blue      ColorFn
	Gray      ColorFn
	Bold      ColorFn
	Dim       ColorFn
	ErrorCode ColorFn
}

// Colors used by the report. Package names are blue, the declared range is
// green, wanted is yellow and latest is red.
var Colors = TerminalColors{
	Normal:    color.New().SprintfFunc(),
	Red:       color.New(color.FgRed).SprintfFunc(),
	Yellow:    color.New(color.FgYellow).SprintfFunc(),
	Cyan:      color.New(color.FgCyan).SprintfFunc(),
	Green:     color.New(color.FgGreen).SprintfFunc(),
	Blue:      color.New(color.FgBlue).SprintfFunc(),
	Gray:      color.New(color.FgHiBlack).SprintfFunc(),
	Bold:      color.New(color.Bold).SprintfFunc(),
	Dim:       color.New(color.Faint).SprintfFunc(),
	ErrorCode: color.New(color.BgRed, color.FgBlack, color.Bold).SprintfFunc(),
}
