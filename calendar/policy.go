package calendar

// =============================================================================
// CALENDAR POLICY - Non-working day classification
// =============================================================================

// Policy decides which days are non-working: Saturdays, Sundays and the
// holidays of its calendar. The zero value uses DefaultHolidays.
type Policy struct {
	Holidays HolidayCalendar
}

// Default is the policy used by the package-level helpers.
var Default = Policy{Holidays: DefaultHolidays}

func (p Policy) holidays() HolidayCalendar {
	if p.Holidays == nil {
		return DefaultHolidays
	}
	return p.Holidays
}

// IsPublicHoliday reports whether d is in the policy's holiday calendar.
func (p Policy) IsPublicHoliday(d Date) bool {
	return p.holidays().IsHoliday(d)
}

// IsNonWorkingDay reports whether d is a weekend day or a public holiday.
// The zero date is never a non-working day.
func (p Policy) IsNonWorkingDay(d Date) bool {
	if d.IsZero() {
		return false
	}
	return d.IsWeekend() || p.IsPublicHoliday(d)
}

// CountNonWorkingDaysBetween counts non-working days from a to b, day by day.
// With inclusive=false both endpoints are excluded, with inclusive=true both
// are included. Returns 0 when the range is empty.
func (p Policy) CountNonWorkingDaysBetween(a, b Date, inclusive bool) int {
	period := Period{Start: a, End: b}
	if !inclusive {
		period = period.Interior()
	}
	return p.CountIn(period)
}

// CountBetween counts non-working days strictly between a and b.
func (p Policy) CountBetween(a, b Date) int { return p.CountNonWorkingDaysBetween(a, b, false) }

// CountInRange counts non-working days in [a, b].
func (p Policy) CountInRange(a, b Date) int { return p.CountNonWorkingDaysBetween(a, b, true) }

// CountIn counts non-working days in the period.
func (p Policy) CountIn(period Period) int {
	n := 0
	for _, d := range period.Days() {
		if p.IsNonWorkingDay(d) {
			n++
		}
	}
	return n
}

// NonWorkingDays lists the non-working days in the period.
func (p Policy) NonWorkingDays(period Period) []Date {
	var out []Date
	for _, d := range period.Days() {
		if p.IsNonWorkingDay(d) {
			out = append(out, d)
		}
	}
	return out
}

// AllNonWorking reports whether the period is non-empty and every day in it
// is a non-working day.
func (p Policy) AllNonWorking(period Period) bool {
	if !period.IsValid() {
		return false
	}
	for d := period.Start; !d.After(period.End); d = d.AddDays(1) {
		if !p.IsNonWorkingDay(d) {
			return false
		}
	}
	return true
}

// =============================================================================
// PACKAGE-LEVEL HELPERS (default policy)
// =============================================================================

func IsPublicHoliday(d Date) bool { return Default.IsPublicHoliday(d) }
func IsNonWorkingDay(d Date) bool { return Default.IsNonWorkingDay(d) }

func CountNonWorkingDaysBetween(a, b Date, inclusive bool) int {
	return Default.CountNonWorkingDaysBetween(a, b, inclusive)
}

func CountBetween(a, b Date) int { return Default.CountBetween(a, b) }
func CountInRange(a, b Date) int { return Default.CountInRange(a, b) }
