package leave

import "github.com/warp/leave-engine/calendar"

// =============================================================================
// PAID <-> SICK CLUBBING
// =============================================================================
//
// Paid and sick leave may not be taken back to back. Two leaves count as
// back to back when they are adjacent, or when the days between them are
// all approved unpaid leave, or all non-working days:
//
//   Paid Mon | Sick Tue                           -> adjacent
//   Paid Mon | Unpaid Tue-Wed | Sick Thu          -> bridged by unpaid leave
//   Paid Fri | Sat Sun | Sick Mon                 -> bridged by the weekend
//   Paid Thu | Unpaid Fri | Sat Sun | Sick Mon    -> not clubbed
//
// The two bridges do not combine.
//
// A Sick candidate is checked against the latest approved Paid leave before
// it. A Paid candidate is checked against the latest approved Sick leave
// before it and the earliest approved Sick leave after it.

// ClubbingWarning is the blocking message for a paid/sick clubbing attempt.
const ClubbingWarning = "Paid leave cannot be clubbed with sick leave."

// clubbed reports whether the candidate would be clubbed with an approved
// leave of the opposite type.
func (e *Engine) clubbed(c Candidate, history []Request) bool {
	opposite, ok := c.Type.opposite()
	if !ok {
		return false
	}
	match := approvedOf(opposite)

	if prev, ok := latestEndingBefore(history, c.Start, match); ok {
		if e.bridged(history, calendar.Gap(prev.End, c.Start)) {
			return true
		}
	}

	if c.Type == TypePaid {
		if next, ok := earliestStartingAfter(history, c.End, match); ok {
			if e.bridged(history, calendar.Gap(c.End, next.Start)) {
				return true
			}
		}
	}
	return false
}

// bridged reports whether the gap is empty (adjacent leaves), fully covered by
// approved unpaid leave, or made only of non-working days.
func (e *Engine) bridged(history []Request, gap calendar.Period) bool {
	if !gap.IsValid() {
		return true
	}
	return coveredByApprovedUnpaid(history, gap) || e.Calendar.AllNonWorking(gap)
}

func coveredByApprovedUnpaid(history []Request, gap calendar.Period) bool {
	for day := gap.Start; !day.After(gap.End); day = day.AddDays(1) {
		if !coveredByApproved(history, TypeUnpaid, day) {
			return false
		}
	}
	return true
}
