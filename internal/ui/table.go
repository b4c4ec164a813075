package ui

import (
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/safedep/outdated/outdated"
)

const notAvailable = "N/A"

var outdatedTableHeader = []string{"Package", "Current", "Wanted", "Latest", "Location"}

// RenderOutdatedTable writes records as a box drawn table in the given order
func RenderOutdatedTable(w io.Writer, records []outdated.Record) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)

	tbl.Style().Format.Header = text.FormatDefault
	tbl.Style().Options.SeparateRows = true

	if !color.NoColor {
		tbl.Style().Color.Border = text.Colors{text.FgHiBlack}
		tbl.Style().Color.Separator = text.Colors{text.FgHiBlack}
	}

	header := table.Row{}
	for _, title := range outdatedTableHeader {
		header = append(header, Colors.Bold("%s", title))
	}

	tbl.AppendHeader(header)

	for _, record := range records {
		wanted := record.Wanted
		if wanted == "" {
			wanted = notAvailable
		}

		tbl.AppendRow(table.Row{
			Colors.Blue("%s", record.Package),
			Colors.Green("%s", record.Current),
			Colors.Yellow("%s", wanted),
			Colors.Red("%s", record.Latest),
			Colors.Gray("%s", record.Location),
		})
	}

	tbl.Render()
}
