package leave

import "github.com/warp/leave-engine/calendar"

// =============================================================================
// BALANCE DERIVATION
// =============================================================================
//
// The balance provider normally sends a ready Balance. DeriveBalance computes
// the same figures from the history alone, for callers that only have the
// history feed.
//
//   paid entitlement   PaidPerYear, pro-rated by join month in the join year
//   paid used          approved Paid requests started this year (1 each)
//   sick used          approved Sick days of requests started this year
//   available          entitlement - used, floored at 0
//   last leave end     latest end of any approved request ending before asOf

// Entitlements are the yearly leave allowances.
type Entitlements struct {
	PaidPerYear int
	SickPerYear int
}

// DefaultEntitlements returns 9 paid and 2 sick days per year.
func DefaultEntitlements() Entitlements {
	return Entitlements{PaidPerYear: 9, SickPerYear: 2}
}

// ProratedPaid returns the paid entitlement of an employee who joined on
// joined, as of year. Months are counted inclusive of the join month and
// the result is truncated.
func (e Entitlements) ProratedPaid(year int, joined calendar.Date) int {
	switch {
	case joined.IsZero() || joined.Year() < year:
		return e.PaidPerYear
	case joined.Year() > year:
		return 0
	}
	monthsRemaining := 13 - int(joined.Month())
	return e.PaidPerYear * monthsRemaining / 12
}

// DeriveBalance computes the balance as of asOf from the approved entries of
// the history. A zero joined date means the employee joined before this year.
func DeriveBalance(history []Request, asOf, joined calendar.Date, ent Entitlements) Balance {
	var (
		usedPaid, usedSick int
		b                  Balance
		lastEnd            calendar.Date
	)
	for _, r := range history {
		if !r.IsApproved() || !r.Period().IsValid() {
			continue
		}
		if r.End.Before(asOf) {
			lastEnd = calendar.Latest(lastEnd, r.End)
		}
		if r.Start.Year() != asOf.Year() {
			continue
		}
		thisMonth := r.Start.SameMonth(asOf)
		switch r.Type {
		case TypePaid:
			usedPaid++
			if thisMonth {
				b.PaidLeaveThisMonth = true
			}
		case TypeHalfPaid:
			if thisMonth {
				b.HalfPaidCountThisMonth++
			}
		case TypeSick:
			usedSick += r.Days()
		}
	}

	b.AvailablePaid = max(ent.ProratedPaid(asOf.Year(), joined)-usedPaid, 0)
	b.AvailableSick = max(ent.SickPerYear-usedSick, 0)
	if !lastEnd.IsZero() {
		b.LastLeaveEndDate = &lastEnd
	}
	return b
}
