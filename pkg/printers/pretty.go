// Package printers renders contribution data for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/contribgraph/pkg/contributions"
	"tableflip.dev/contribgraph/pkg/heatmap"
)

type PrettyPrint struct{}

// shades mirror the SVG palette, lightest to darkest.
var shades = [5]*color.Color{
	color.New(color.Faint),
	color.New(color.FgGreen, color.Faint),
	color.New(color.FgGreen),
	color.New(color.FgHiGreen),
	color.New(color.FgHiGreen, color.Bold),
}

const gutter = len("Mon ")

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(color.Output, "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(color.Output, title)
}

// Summary prints the aggregate totals line under a heat-map.
func (pp *PrettyPrint) Summary(p contributions.Payload) {
	f := color.New(color.Faint)
	if p.Start == "" {
		_, _ = f.Fprintln(color.Output, "no contributions")
		return
	}
	_, _ = f.Fprintf(color.Output, "%d contributions from %s to %s\n", p.Total, p.Start, p.End)
}

// Heatmap prints the grid as colored blocks, one row per weekday with
// Mon/Wed/Fri gutter labels, topped by a month label row.
func (pp *PrettyPrint) Heatmap(g heatmap.Grid) {
	if g.Empty() {
		return
	}

	mf := color.New(color.FgWhite, color.Italic)
	_, _ = mf.Fprintf(color.Output, "%s%s\n", strings.Repeat(" ", gutter), monthRow(g))

	labels := map[int]string{}
	for _, wd := range heatmap.WeekdayLabels {
		labels[wd.Row] = wd.Text
	}

	for row := 0; row < 7; row++ {
		_, _ = fmt.Fprintf(color.Output, "%-*s", gutter, labels[row])
		for week := 0; week < g.Weeks; week++ {
			i := week*7 + row
			if i >= len(g.Cells) {
				_, _ = fmt.Fprint(color.Output, "  ")
				continue
			}
			_, _ = shades[g.Cells[i].Bucket].Fprint(color.Output, "■ ")
		}
		_, _ = fmt.Fprintln(color.Output, "")
	}
}

// Legend prints the bucket shade key.
func (pp *PrettyPrint) Legend() {
	f := color.New(color.Faint)
	_, _ = fmt.Fprint(color.Output, strings.Repeat(" ", gutter))
	_, _ = f.Fprint(color.Output, "Less ")
	for _, s := range shades {
		_, _ = s.Fprint(color.Output, "■ ")
	}
	_, _ = f.Fprintln(color.Output, "More")
}

// MonthTable prints per-month totals for the merged calendar.
func (pp *PrettyPrint) MonthTable(c contributions.Calendar) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Month"), bold.Sprint("Contributions"))
	for _, mt := range contributions.MonthlyTotals(c) {
		tbl.AddRow(mt.Month, fmt.Sprintf("%d", mt.Total))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// monthRow lays the 3-letter month labels over their first-occurrence
// columns, two characters per week.
func monthRow(g heatmap.Grid) string {
	row := []byte(strings.Repeat(" ", g.Weeks*2))
	for _, m := range g.Months {
		at := m.Week * 2
		for i := 0; i < len(m.Text) && at+i < len(row); i++ {
			row[at+i] = m.Text[i]
		}
	}
	return strings.TrimRight(string(row), " ")
}
