/*
Package calendar classifies calendar days for leave calculations.

PURPOSE:
  Answers two questions for the leave engine:
  - Is day D a non-working day (weekend or public holiday)?
  - How many non-working days lie between two days?

  Everything here is a pure function of its arguments. There is no clock:
  "today" never enters a calculation, only the dates passed in.

KEY TYPES:
  Date:            A calendar day (no time of day, always UTC)
  Period:          An inclusive [Start, End] range of days
  HolidayCalendar: Pluggable public-holiday lookup
  Policy:          Weekend rule + holiday calendar, the CalendarPolicy

EXAMPLE:
  d := calendar.MustParseDate("2024-08-15")
  calendar.IsNonWorkingDay(d) // true, Independence Day

  from := calendar.MustParseDate("2024-08-14")
  to := calendar.MustParseDate("2024-08-17")
  calendar.CountNonWorkingDaysBetween(from, to, false) // 1 (Aug 15)
  calendar.CountNonWorkingDaysBetween(from, to, true)  // 2 (Aug 15, Aug 17)

SEE ALSO:
  - holidays.go: Fixed public-holiday set
  - policy.go: Non-working day counting
  - leave/engine.go: Main consumer
*/
package calendar

import (
	"fmt"
	"time"
)

// =============================================================================
// DATE - A calendar day
// =============================================================================

// Layout is the wire format for dates everywhere in this module.
const Layout = "2006-01-02"

// Date is a calendar day. The zero value means "no date selected".
type Date struct {
	t time.Time
}

// NewDate returns the given day. Out-of-range values normalize like time.Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// FromTime drops the time of day, keeping the calendar day as seen in t's location.
func FromTime(t time.Time) Date {
	if t.IsZero() {
		return Date{}
	}
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return NewDate(t.Year(), t.Month(), t.Day()), nil
}

// MustParseDate is ParseDate for literals in tests and fixtures.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Comparison
func (d Date) Before(other Date) bool        { return d.t.Before(other.t) }
func (d Date) After(other Date) bool         { return d.t.After(other.t) }
func (d Date) Equal(other Date) bool         { return d.t.Equal(other.t) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// DaysUntil returns the signed number of days from d to other. It counts
// in Unix seconds: time.Duration saturates after about 292 years.
func (d Date) DaysUntil(other Date) int {
	return int((other.t.Unix() - d.t.Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60

// Properties
func (d Date) Year() int               { return d.t.Year() }
func (d Date) Month() time.Month       { return d.t.Month() }
func (d Date) Day() int                { return d.t.Day() }
func (d Date) Weekday() time.Weekday   { return d.t.Weekday() }
func (d Date) IsZero() bool            { return d.t.IsZero() }
func (d Date) Time() time.Time         { return d.t }
func (d Date) SameMonth(o Date) bool   { return d.Year() == o.Year() && d.Month() == o.Month() }
func (d Date) IsWeekend() bool         { wd := d.Weekday(); return wd == time.Saturday || wd == time.Sunday }

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(Layout)
}

// MarshalText encodes the date as "YYYY-MM-DD"; the zero date encodes as "".
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText accepts "YYYY-MM-DD" or "" (zero date).
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Earliest returns the earlier of two dates.
func Earliest(a, b Date) Date {
	if b.Before(a) {
		return b
	}
	return a
}

// Latest returns the later of two dates.
func Latest(a, b Date) Date {
	if b.After(a) {
		return b
	}
	return a
}
