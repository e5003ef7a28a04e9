package leave

import "github.com/warp/leave-engine/calendar"

// =============================================================================
// HISTORY QUERIES
// =============================================================================
// All helpers read history without reordering or modifying it. Entries with a
// malformed range never match.

// latestEndingBefore returns the entry with the latest end date strictly
// before day among those accepted by match. Ties keep the first entry.
func latestEndingBefore(history []Request, day calendar.Date, match func(Request) bool) (Request, bool) {
	var (
		best  Request
		found bool
	)
	for _, r := range history {
		if !r.Period().IsValid() || !r.End.Before(day) || !match(r) {
			continue
		}
		if !found || r.End.After(best.End) {
			best, found = r, true
		}
	}
	return best, found
}

// earliestStartingAfter returns the entry with the earliest start date
// strictly after day among those accepted by match.
func earliestStartingAfter(history []Request, day calendar.Date, match func(Request) bool) (Request, bool) {
	var (
		best  Request
		found bool
	)
	for _, r := range history {
		if !r.Period().IsValid() || !r.Start.After(day) || !match(r) {
			continue
		}
		if !found || r.Start.Before(best.Start) {
			best, found = r, true
		}
	}
	return best, found
}

// coveredByApproved reports whether an approved request of type t covers day.
func coveredByApproved(history []Request, t Type, day calendar.Date) bool {
	for _, r := range history {
		if r.IsApproved() && r.Type == t && r.Period().IsValid() && r.Period().Contains(day) {
			return true
		}
	}
	return false
}

// hasSameDates reports whether any entry, whatever its status, was submitted
// for exactly these dates.
func hasSameDates(history []Request, p calendar.Period) bool {
	for _, r := range history {
		if r.Start.Equal(p.Start) && r.End.Equal(p.End) {
			return true
		}
	}
	return false
}

func approvedOf(t Type) func(Request) bool {
	return func(r Request) bool { return r.IsApproved() && r.Type == t }
}

func anyRequest(Request) bool { return true }
