package leave

import "github.com/warp/leave-engine/calendar"

// =============================================================================
// SANDWICH POLICY
// =============================================================================
//
// Non-working days enclosed by leave are not free days off: they are swept
// into Unpaid. Two shapes are recognised.
//
// Separate sandwich: a single-day candidate follows an approved leave and
// every day between them is a weekend or holiday.
//
//   Paid Fri (approved) | Sat Sun | candidate Mon  -> Sat, Sun become Unpaid
//
// Range sandwich: a multi-day candidate encloses at least one non-working
// day. All non-working days of the range become Unpaid.
//
//   candidate Fri..Mon  -> Sat, Sun become Unpaid

// separateSandwich returns the gap swept into Unpaid between the previous
// leave and a single-day candidate. The previous leave is the latest entry of
// the history ending before the candidate; if it is not approved nothing is
// swept.
func (e *Engine) separateSandwich(c Candidate, history []Request) (calendar.Period, bool) {
	if !c.Start.Equal(c.End) {
		return calendar.Period{}, false
	}
	prev, ok := latestEndingBefore(history, c.Start, anyRequest)
	if !ok || !prev.IsApproved() {
		return calendar.Period{}, false
	}
	gap := calendar.Gap(prev.End, c.Start)
	if !e.Calendar.AllNonWorking(gap) {
		return calendar.Period{}, false
	}
	return gap, true
}

// rangeSandwich reports whether a multi-day candidate encloses a
// non-working day strictly between its endpoints.
func (e *Engine) rangeSandwich(c Candidate) bool {
	if c.Start.Equal(c.End) {
		return false
	}
	return e.Calendar.CountBetween(c.Start, c.End) > 0
}
