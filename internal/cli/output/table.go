package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer is a value shown as a borderless two-column listing.
// FileView implements it with one row per header field.
type TableRenderer interface {
	// Headers returns the column titles.
	Headers() []string
	// Rows returns the cells, one slice per line.
	Rows() [][]string
}

// PrintTable lists the rows of data under left-aligned column titles.
// Cells are never wrapped, so an 80-byte patient field stays on one line.
func PrintTable(w io.Writer, data TableRenderer) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(data.Headers())
	tw.SetAutoFormatHeaders(true)
	tw.SetAutoWrapText(false)

	tw.SetBorder(false)
	tw.SetHeaderLine(false)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetTablePadding("  ")
	tw.SetNoWhiteSpace(true)

	tw.AppendBulk(data.Rows())
	tw.Render()
	return nil
}
