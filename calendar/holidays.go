package calendar

import "time"

// =============================================================================
// HOLIDAY CALENDAR
// =============================================================================

// HolidayCalendar provides public-holiday lookup.
type HolidayCalendar interface {
	// IsHoliday reports whether the day is a public holiday.
	IsHoliday(d Date) bool
}

// Holiday is a holiday that recurs on the same month and day every year.
type Holiday struct {
	Month time.Month
	Day   int
	Name  string
}

// FixedHolidays is a recurring, year-independent holiday set.
// There is no per-year override table and no lunar/variable holidays.
type FixedHolidays []Holiday

// DefaultHolidays is the company holiday set used when none is configured.
var DefaultHolidays = FixedHolidays{
	{Month: time.January, Day: 1, Name: "New Year's Day"},
	{Month: time.January, Day: 26, Name: "Republic Day"},
	{Month: time.May, Day: 1, Name: "Labour Day"},
	{Month: time.August, Day: 15, Name: "Independence Day"},
	{Month: time.October, Day: 2, Name: "Gandhi Jayanti"},
	{Month: time.December, Day: 25, Name: "Christmas Day"},
}

func (f FixedHolidays) IsHoliday(d Date) bool {
	_, ok := f.Lookup(d)
	return ok
}

// Lookup returns the holiday falling on d, if any.
func (f FixedHolidays) Lookup(d Date) (Holiday, bool) {
	if d.IsZero() {
		return Holiday{}, false
	}
	for _, h := range f {
		if h.Month == d.Month() && h.Day == d.Day() {
			return h, true
		}
	}
	return Holiday{}, false
}

// InYear returns the concrete holiday dates for a year, in calendar order.
func (f FixedHolidays) InYear(year int) []Date {
	var out []Date
	for _, d := range (Period{Start: NewDate(year, time.January, 1), End: NewDate(year, time.December, 31)}).Days() {
		if f.IsHoliday(d) {
			out = append(out, d)
		}
	}
	return out
}

// NoHolidays is a calendar with no public holidays (weekends only).
type NoHolidays struct{}

func (NoHolidays) IsHoliday(Date) bool { return false }
