package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// colGap is the padding between table columns.
const colGap = 2

// RenderTable renders a simple aligned table with a header separator line.
// Headers are rendered with the Header style. Columns are padded to the
// maximum visible width found in each column across headers and rows, so
// wide (CJK) characters and pre-styled cells align correctly.
func RenderTable(headers []string, rows [][]string) string {
	return RenderStyledTable(headers, rows, nil)
}

// RenderStyledTable is RenderTable with an optional per-row style. rowStyle
// may be nil; otherwise rowStyle(i) styles every cell of data row i.
func RenderStyledTable(headers []string, rows [][]string, rowStyle func(i int) lipgloss.Style) string {
	if len(headers) == 0 {
		return ""
	}

	cols := len(headers)
	widths := columnWidths(headers, rows)

	var b strings.Builder

	for i, h := range headers {
		b.WriteString(StyleHeader.Render(h))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", max(widths[i]-lipgloss.Width(h), 0)+colGap))
		}
	}
	b.WriteString("\n")

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < cols-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for r, row := range rows {
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			pad := max(widths[i]-lipgloss.Width(cell), 0)
			if rowStyle != nil {
				cell = rowStyle(r).Render(cell)
			}
			b.WriteString(cell)
			if i < cols-1 {
				b.WriteString(strings.Repeat(" ", pad+colGap))
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}

func columnWidths(headers []string, rows [][]string) []int {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range rows {
		for i := 0; i < len(headers) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}
	return widths
}
