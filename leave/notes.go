package leave

import "fmt"

// =============================================================================
// MESSAGES
// =============================================================================

const (
	// DuplicateWarning blocks a request for dates already requested.
	DuplicateWarning = "You have already submitted a leave request for these exact dates."

	// NonWorkingDayNote explains a single-day request on a weekend or holiday.
	NonWorkingDayNote = "Your selected day is a non-working day and will be treated as Unpaid."
)

func dayCount(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}

func nonWorkingCount(n int) string {
	if n == 1 {
		return "1 non-working day"
	}
	return fmt.Sprintf("%d non-working days", n)
}

func workingCount(n int) string {
	if n == 1 {
		return "1 working day"
	}
	return fmt.Sprintf("%d working days", n)
}

// appliedClause names what the allowance of the type pays out, without
// trailing punctuation. Unpaid has no allowance and returns "".
func appliedClause(t Type, b Breakdown) string {
	switch t {
	case TypePaid:
		return fmt.Sprintf("Only %s of Paid leave will be applied", dayCount(b.PaidDays))
	case TypeSick:
		return fmt.Sprintf("%s of Sick leave will be applied", dayCount(b.SickDays))
	case TypeHalfPaid:
		return "1 half-paid leave will be applied"
	case TypeHalfUnpaid:
		return "1 half-unpaid leave will be applied"
	}
	return ""
}

// quotaNote is the note when no sandwich rule applies.
func quotaNote(t Type, requested int, b Breakdown) string {
	if t == TypeUnpaid {
		if requested == 1 {
			return "1 day will be treated as Unpaid."
		}
		return fmt.Sprintf("All %d days will be treated as Unpaid.", requested)
	}

	if t == TypePaid && b.UnpaidDays > 0 {
		return fmt.Sprintf("Only %s of Paid leave is available this month; remaining %s will be treated as Unpaid.",
			dayCount(b.PaidDays), dayCount(b.UnpaidDays))
	}

	clause := appliedClause(t, b)
	if t == TypePaid {
		clause = fmt.Sprintf("%s of Paid leave will be applied", dayCount(b.PaidDays))
	}
	if b.UnpaidDays == 0 {
		return clause + "."
	}
	return fmt.Sprintf("%s; remaining %s will be treated as Unpaid.", clause, dayCount(b.UnpaidDays))
}

// separateSandwichNote explains a gap swept into Unpaid before a single-day
// candidate.
func separateSandwichNote(t Type, gap int, b Breakdown) string {
	lead := fmt.Sprintf("Due to the Sandwich Policy, %s between your previous leave and this request", nonWorkingCount(gap))
	if t == TypeUnpaid {
		return lead + ", and 1 requested day, will be treated as Unpaid."
	}
	return fmt.Sprintf("%s will be treated as Unpaid. %s.", lead, appliedClause(t, b))
}

// rangeSandwichNote explains non-working days of a multi-day candidate swept
// into Unpaid.
func rangeSandwichNote(t Type, requested int, b Breakdown) string {
	if t == TypeUnpaid {
		return fmt.Sprintf("Due to the Sandwich Policy, all %s including %d non-working will be treated as Unpaid.",
			dayCount(requested), b.SweptDays)
	}
	lead := fmt.Sprintf("Due to the Sandwich Policy, %s in this range will be treated as Unpaid.", nonWorkingCount(b.SweptDays))
	remaining := b.UnpaidDays - b.SweptDays
	if remaining == 0 {
		return fmt.Sprintf("%s %s.", lead, appliedClause(t, b))
	}
	return fmt.Sprintf("%s %s; remaining %s will be treated as Unpaid.", lead, appliedClause(t, b), workingCount(remaining))
}
