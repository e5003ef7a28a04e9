package leave

import "github.com/warp/leave-engine/calendar"

// =============================================================================
// ENGINE
// =============================================================================

// Engine evaluates leave candidates against a calendar and a set of policy
// options. An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	Calendar calendar.Policy
	Options  Options
}

// New returns an engine for the given calendar. Zero option fields take
// their DefaultOptions values.
func New(cal calendar.Policy, opts Options) *Engine {
	return &Engine{Calendar: cal, Options: opts.withDefaults()}
}

var defaultEngine = New(calendar.Default, DefaultOptions())

// Evaluate runs the default engine: fixed holiday set, strict coupling.
func Evaluate(c Candidate, history []Request, balance *Balance) Decision {
	return defaultEngine.Evaluate(c, history, balance)
}

// Evaluate decides how the candidate would be paid and which leave types
// remain available.
//
// The warning and the disable flags are computed independently of the note.
// The note comes from the first rule that applies, in order:
//
//  1. the single requested day is a non-working day
//  2. separate sandwich (single day after an approved leave, gap all non-working)
//  3. range sandwich (non-working day strictly inside the range)
//  4. per-type quota
//
// Malformed candidates (missing dates, end before start, unknown type) yield
// a decision with every quota-gated option disabled and no note.
func (e *Engine) Evaluate(c Candidate, history []Request, balance *Balance) Decision {
	if c.Type == "" {
		c.Type = TypeUnpaid
	}
	if c.Start.IsZero() || c.End.IsZero() || c.End.Before(c.Start) || !c.Type.IsValid() {
		return noDecision()
	}
	opts := e.Options.withDefaults()
	period := c.Period()

	d := Decision{RequestedDays: period.Len()}

	g := opts.quotaGates(balance.orZero())
	d.DisablePaid = g.paid
	d.DisableHalfPaid = g.halfPaid
	d.DisableSick = g.sick

	// Warnings
	if hasSameDates(history, period) {
		d.Warning = DuplicateWarning
	}
	if e.clubbed(c, history) {
		if d.Warning == "" {
			d.Warning = ClubbingWarning
		}
		switch c.Type {
		case TypePaid:
			d.DisablePaid = true
		case TypeSick:
			d.DisableSick = true
		}
	}

	e.explain(&d, c, history, opts)
	return d
}

// NoteFor returns the decision a submitted request gets in status views,
// evaluated against the rest of the history. The request's own entry is left
// out, matched by ID, or by value when the request has no ID, so it never
// reads as its own duplicate or sandwich partner. No balance applies to a
// submitted request: the quota-gated flags read as disabled and only the
// note, breakdown and warning are meaningful.
func (e *Engine) NoteFor(req Request, history []Request) Decision {
	others := make([]Request, 0, len(history))
	for _, r := range history {
		if req.ID != "" && r.ID == req.ID {
			continue
		}
		if req.ID == "" && r == req {
			continue
		}
		others = append(others, r)
	}
	return e.Evaluate(req.Candidate(), others, nil)
}

// NoteFor runs the default engine's status-view evaluation.
func NoteFor(req Request, history []Request) Decision {
	return defaultEngine.NoteFor(req, history)
}

// explain fills the breakdown and note.
func (e *Engine) explain(d *Decision, c Candidate, history []Request, opts Options) {
	requested := d.RequestedDays

	if requested == 1 && e.Calendar.IsNonWorkingDay(c.Start) {
		sweep := c.Period()
		d.Breakdown = Breakdown{UnpaidDays: 1, SweptDays: 1}
		d.NonWorkingCount = 1
		d.Note = NonWorkingDayNote
		d.Rule = RuleNonWorkingDay
		d.Sweep = &sweep
		return
	}

	d.Breakdown = opts.split(c.Type, requested)

	if gap, ok := e.separateSandwich(c, history); ok {
		n := gap.Len()
		d.Breakdown.GapDays = n
		d.NonWorkingCount = n
		d.Note = separateSandwichNote(c.Type, n, d.Breakdown)
		d.Rule = RuleSeparateSandwich
		d.Sweep = &gap
		return
	}

	inRange := e.Calendar.CountInRange(c.Start, c.End)
	d.NonWorkingCount = inRange

	if e.rangeSandwich(c) {
		swept := min(inRange, d.Breakdown.UnpaidDays)
		if swept > 0 {
			sweep := c.Period()
			d.Breakdown.SweptDays = swept
			d.Note = rangeSandwichNote(c.Type, requested, d.Breakdown)
			d.Rule = RuleRangeSandwich
			d.Sweep = &sweep
			return
		}
	}

	d.Note = quotaNote(c.Type, requested, d.Breakdown)
	d.Rule = RuleQuota
}
