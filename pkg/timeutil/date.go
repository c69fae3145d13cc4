// Package timeutil provides calendar-date helpers that avoid wall-clock and
// timezone ambiguity. A Date is a plain year/month/day value; weekday and
// day-difference are pure integer operations.
package timeutil

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// Date is a civil calendar date with no time component.
type Date struct {
	Year  int
	Month int
	Day   int
}

// ParseDate parses a YYYY-MM-DD string into a Date. The day components are
// taken literally; no timezone shifting is applied.
func ParseDate(v string) (Date, error) {
	t, err := time.Parse(layoutISO, v)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", v, err)
	}
	return Date{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// IsZero reports whether d is the unset date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Before reports whether d falls before then.
func (d Date) Before(then Date) bool {
	return d.epochDays() < then.epochDays()
}

// Weekday returns the day of week with Sunday == 0 and Saturday == 6.
func (d Date) Weekday() int {
	// 1970-01-01 was a Thursday.
	w := (d.epochDays() + 4) % 7
	if w < 0 {
		w += 7
	}
	return w
}

// AddDays returns the date n days after d; n may be negative.
func (d Date) AddDays(n int) Date {
	return fromEpochDays(d.epochDays() + n)
}

// DaysUntil returns the number of days from d to then. The result is
// negative when then falls before d.
func (d Date) DaysUntil(then Date) int {
	return then.epochDays() - d.epochDays()
}

// YearMonth returns the YYYY-MM prefix of the date.
func (d Date) YearMonth() string {
	return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
}

// MonthAbbrev returns the three letter month abbreviation, e.g. "Jan".
func (d Date) MonthAbbrev() string {
	return time.Month(d.Month).String()[:3]
}

// epochDays converts d to days since 1970-01-01 using the civil calendar
// algorithm, so the arithmetic never touches time.Time.
func (d Date) epochDays() int {
	y := d.Year
	if d.Month <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	m := d.Month
	if m > 2 {
		m -= 3
	} else {
		m += 9
	}
	doy := (153*m+2)/5 + d.Day - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func fromEpochDays(days int) Date {
	z := days + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	m := mp + 3
	if mp >= 10 {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return Date{Year: y, Month: m, Day: day}
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
