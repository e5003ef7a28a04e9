package calendar

// =============================================================================
// PERIOD - Inclusive range of days
// =============================================================================

// Period is the inclusive range [Start, End].
// A period whose End is before its Start is empty.
type Period struct {
	Start Date
	End   Date
}

// NewPeriod builds a period from two dates.
func NewPeriod(start, end Date) Period {
	return Period{Start: start, End: end}
}

// IsValid reports whether both ends are set and Start <= End.
func (p Period) IsValid() bool {
	return !p.Start.IsZero() && !p.End.IsZero() && p.Start.BeforeOrEqual(p.End)
}

// Len returns the inclusive number of days, or 0 for an invalid period.
func (p Period) Len() int {
	if !p.IsValid() {
		return 0
	}
	return p.Start.DaysUntil(p.End) + 1
}

// Contains returns true if the day is within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Days returns all days in the period.
func (p Period) Days() []Date {
	if !p.IsValid() {
		return nil
	}
	days := make([]Date, 0, p.Len())
	for current := p.Start; current.BeforeOrEqual(p.End); current = current.AddDays(1) {
		days = append(days, current)
	}
	return days
}

// Interior returns the days strictly between Start and End.
func (p Period) Interior() Period {
	return Period{Start: p.Start.AddDays(1), End: p.End.AddDays(-1)}
}

// Gap returns the days strictly between two periods' facing ends:
// the day after `before` ends through the day before `after` starts.
// The result is empty (invalid) when the periods touch or overlap.
func Gap(beforeEnd, afterStart Date) Period {
	return Period{Start: beforeEnd.AddDays(1), End: afterStart.AddDays(-1)}
}

// String returns a string representation of the period.
func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}
