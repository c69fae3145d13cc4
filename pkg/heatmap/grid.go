// Package heatmap converts an aggregate contribution payload into a
// Sunday-aligned week-by-weekday grid with color buckets and label
// placements, ready for rendering.
package heatmap

import (
	"tableflip.dev/contribgraph/pkg/contributions"
	"tableflip.dev/contribgraph/pkg/timeutil"
)

// Cell is one day of the grid. Week is the zero-based column counted from
// the grid's first Sunday; Weekday is the row with Sunday == 0.
type Cell struct {
	Date    timeutil.Date
	Count   int
	Week    int
	Weekday int
	Bucket  int
}

// MonthLabel marks the column where a month first appears in the grid.
type MonthLabel struct {
	Week int
	Text string
}

// WeekdayLabel names a row of the grid that carries an edge label.
type WeekdayLabel struct {
	Row  int
	Text string
}

// WeekdayLabels are the rows labeled on both edges of the grid.
var WeekdayLabels = []WeekdayLabel{
	{Row: 1, Text: "Mon"},
	{Row: 3, Text: "Wed"},
	{Row: 5, Text: "Fri"},
}

// Grid is the derived layout of a payload. It is rebuilt fresh for every
// render and never mutated afterwards. A Grid with zero Weeks is empty.
type Grid struct {
	Weeks  int
	Cells  []Cell
	Months []MonthLabel
}

// Empty reports whether the grid has no cells to draw.
func (g Grid) Empty() bool {
	return g.Weeks == 0
}

// Layout assigns every day from the Sunday on or before the payload's start
// through its end to a grid cell, computes each cell's color bucket, and
// records month label columns. An empty payload lays out as an empty grid.
func Layout(p contributions.Payload) (Grid, error) {
	if p.Start == "" || p.End == "" {
		return Grid{}, nil
	}

	start, err := timeutil.ParseDate(p.Start)
	if err != nil {
		return Grid{}, err
	}
	end, err := timeutil.ParseDate(p.End)
	if err != nil {
		return Grid{}, err
	}

	calendarStart := start.AddDays(-start.Weekday())
	totalDays := calendarStart.DaysUntil(end) + 1

	g := Grid{
		Weeks: (totalDays + 6) / 7,
		Cells: make([]Cell, 0, totalDays),
	}

	breaks := breakpoints(maxCount(p.Counts))
	seen := map[string]bool{}

	for i := 0; i < totalDays; i++ {
		d := calendarStart.AddDays(i)
		count := p.Counts[d.String()]

		g.Cells = append(g.Cells, Cell{
			Date:    d,
			Count:   count,
			Week:    i / 7,
			Weekday: i % 7,
			Bucket:  bucket(count, breaks),
		})

		if ym := d.YearMonth(); !seen[ym] {
			seen[ym] = true
			g.Months = append(g.Months, MonthLabel{Week: i / 7, Text: d.MonthAbbrev()})
		}
	}

	return g, nil
}

// maxCount returns the largest count in the mapping, never less than 1 so
// an all-zero calendar still yields usable breakpoints.
func maxCount(counts contributions.Calendar) int {
	max := 1
	for _, count := range counts {
		if count > max {
			max = count
		}
	}
	return max
}

// breakpoints are the four inclusive upper bounds of buckets 0..3, at 0 and
// the quarter, half and three-quarter marks of the observed maximum. The
// intensity scale is relative per render, not absolute.
func breakpoints(max int) [4]int {
	quarter := func(f int) int {
		b := max * f / 4
		if b < 1 {
			b = 1
		}
		return b
	}
	return [4]int{0, quarter(1), quarter(2), quarter(3)}
}

// bucket returns the smallest bucket whose bound holds the count, or the
// overflow bucket 4.
func bucket(count int, breaks [4]int) int {
	for k, bound := range breaks {
		if count <= bound {
			return k
		}
	}
	return 4
}
