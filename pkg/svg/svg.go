// Package svg serializes a heat-map grid into a standalone SVG document.
package svg

import (
	"fmt"
	"html"
	"strings"

	"tableflip.dev/contribgraph/pkg/heatmap"
)

// Fixed geometry. The document is sized from the grid's week count:
// width = paddingLeft + weeks*(cellSize+cellGap) + paddingRight,
// height = paddingTop + 7*(cellSize+cellGap).
const (
	cellSize     = 11
	cellGap      = 2
	paddingTop   = 20 // room for month labels
	paddingLeft  = 30 // room for weekday labels
	paddingRight = 30 // mirrored weekday labels

	fontFamily = "Helvetica, Arial, sans-serif"
	fontSize   = 9
	textColor  = "#767676"
)

// Render serializes the grid into a complete SVG document. The label
// becomes the document's accessible name and should describe which
// accounts were aggregated. An empty grid yields a minimal valid document
// with no cells or labels. The background is transparent.
func Render(grid heatmap.Grid, label string) []byte {
	step := cellSize + cellGap
	width := paddingLeft + grid.Weeks*step + paddingRight
	height := paddingTop + 7*step

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" role="img" aria-label="%s">`+"\n",
		width, height, width, height, html.EscapeString(label))
	fmt.Fprintf(&b, "<style>text { font-family: %s; font-size: %dpx; fill: %s; }</style>\n",
		fontFamily, fontSize, textColor)

	if grid.Empty() {
		b.WriteString("</svg>\n")
		return []byte(b.String())
	}

	for _, m := range grid.Months {
		x := paddingLeft + m.Week*step
		fmt.Fprintf(&b, `<text x="%d" y="%d">%s</text>`+"\n", x, paddingTop-6, m.Text)
	}

	for _, wd := range heatmap.WeekdayLabels {
		y := paddingTop + wd.Row*step + cellSize - 2
		fmt.Fprintf(&b, `<text x="%d" y="%d">%s</text>`+"\n", 2, y, wd.Text)
		fmt.Fprintf(&b, `<text x="%d" y="%d">%s</text>`+"\n", width-paddingRight+4, y, wd.Text)
	}

	for _, c := range grid.Cells {
		x := paddingLeft + c.Week*step
		y := paddingTop + c.Weekday*step
		fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" rx="2" fill="%s"><title>%d contributions on %s</title></rect>`+"\n",
			x, y, cellSize, cellSize, heatmap.Color(c.Bucket), c.Count, c.Date)
	}

	b.WriteString("</svg>\n")
	return []byte(b.String())
}
