// Package leave implements the leave-policy preview engine.
// It decides how a requested leave splits into paid, sick and unpaid days,
// which non-working days get swept into Unpaid, and which leave types the
// employee may still pick. The engine is read-only: the backend that
// receives the request remains the source of truth.
package leave

import "github.com/warp/leave-engine/calendar"

// =============================================================================
// LEAVE TYPES
// =============================================================================

// Type is a leave type, using the wire values of the leave-request API.
type Type string

const (
	TypePaid       Type = "paid"
	TypeHalfPaid   Type = "Half Paid Leave"
	TypeSick       Type = "sick"
	TypeUnpaid     Type = "unpaid"
	TypeHalfUnpaid Type = "Half UnPaid Leave"
)

// Types lists every leave type in picker order.
var Types = []Type{TypePaid, TypeHalfPaid, TypeSick, TypeUnpaid, TypeHalfUnpaid}

func (t Type) IsValid() bool {
	switch t {
	case TypePaid, TypeHalfPaid, TypeSick, TypeUnpaid, TypeHalfUnpaid:
		return true
	}
	return false
}

// IsHalfDay reports whether the type covers half a day.
func (t Type) IsHalfDay() bool { return t == TypeHalfPaid || t == TypeHalfUnpaid }

// opposite returns the type that may not be clubbed with t.
func (t Type) opposite() (Type, bool) {
	switch t {
	case TypePaid:
		return TypeSick, true
	case TypeSick:
		return TypePaid, true
	}
	return "", false
}

// Status is the approval state of a submitted request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// HalfDayPeriod says which half of the day a half-day leave covers.
type HalfDayPeriod string

const (
	HalfDayNone      HalfDayPeriod = ""
	HalfDayMorning   HalfDayPeriod = "morning"
	HalfDayAfternoon HalfDayPeriod = "afternoon"
)

func (p HalfDayPeriod) IsValid() bool {
	return p == HalfDayNone || p == HalfDayMorning || p == HalfDayAfternoon
}

// =============================================================================
// REQUEST HISTORY
// =============================================================================

// Request is a previously submitted leave request from the history feed.
// Only approved requests take part in adjacency and quota rules.
type Request struct {
	ID            string
	Start         calendar.Date
	End           calendar.Date
	Type          Type
	Status        Status
	HalfDayPeriod HalfDayPeriod
	Description   string
}

// Period returns the inclusive date range of the request.
func (r Request) Period() calendar.Period { return calendar.NewPeriod(r.Start, r.End) }

// Days returns the inclusive day count, 0 for a malformed range.
func (r Request) Days() int { return r.Period().Len() }

func (r Request) IsApproved() bool { return r.Status == StatusApproved }

// Candidate returns the request as the candidate it was submitted as.
func (r Request) Candidate() Candidate {
	return Candidate{
		Start:         r.Start,
		End:           r.End,
		Type:          r.Type,
		HalfDayPeriod: r.HalfDayPeriod,
		Description:   r.Description,
	}
}

// =============================================================================
// BALANCE
// =============================================================================

// Balance is the employee's quota state for the month of the candidate.
// A nil *Balance means the provider has not answered yet; it reads as the
// zero balance so that quota-gated options stay disabled.
type Balance struct {
	AvailablePaid          int
	AvailableSick          int
	PaidLeaveThisMonth     bool
	HalfPaidCountThisMonth int
	LastLeaveEndDate       *calendar.Date
}

func (b *Balance) orZero() Balance {
	if b == nil {
		return Balance{}
	}
	return *b
}

// =============================================================================
// CANDIDATE & DECISION
// =============================================================================

// Candidate is the request being edited in a leave form.
type Candidate struct {
	Start         calendar.Date
	End           calendar.Date
	Type          Type
	HalfDayPeriod HalfDayPeriod
	Description   string
}

// Period returns the inclusive date range of the candidate.
func (c Candidate) Period() calendar.Period { return calendar.NewPeriod(c.Start, c.End) }

// Rule names the rule that produced a decision's note.
type Rule string

const (
	RuleNone             Rule = ""
	RuleNonWorkingDay    Rule = "non_working_day"
	RuleSeparateSandwich Rule = "separate_sandwich"
	RuleRangeSandwich    Rule = "range_sandwich"
	RuleQuota            Rule = "quota"
)

// Breakdown splits the requested days by how they will be paid.
// PaidDays+HalfPaidDays+HalfUnpaidDays+SickDays+UnpaidDays == RequestedDays.
// SweptDays is the part of UnpaidDays made of non-working days inside the
// range; GapDays are non-working days outside the range, before the
// candidate, that the sandwich policy also turns Unpaid.
type Breakdown struct {
	PaidDays       int `json:"paid_days"`
	HalfPaidDays   int `json:"half_paid_days"`
	HalfUnpaidDays int `json:"half_unpaid_days"`
	SickDays       int `json:"sick_days"`
	UnpaidDays     int `json:"unpaid_days"`
	SweptDays      int `json:"swept_days"`
	GapDays        int `json:"gap_days"`
}

// Total returns the number of requested days the breakdown accounts for.
func (b Breakdown) Total() int {
	return b.PaidDays + b.HalfPaidDays + b.HalfUnpaidDays + b.SickDays + b.UnpaidDays
}

// Decision is the engine's answer for one candidate.
type Decision struct {
	RequestedDays   int
	NonWorkingCount int
	Breakdown       Breakdown

	DisablePaid     bool
	DisableHalfPaid bool
	DisableSick     bool

	// Warning blocks submission when non-empty.
	Warning string
	// Note explains the split; never blocks.
	Note string
	Rule Rule

	// Sweep is the window of non-working days the sandwich policy swept
	// into Unpaid, when one applied.
	Sweep *calendar.Period
}

// Blocked reports whether the UI must refuse to submit the candidate.
func (d Decision) Blocked() bool { return d.Warning != "" }

// Allows reports whether the leave type may be offered for the candidate.
func (d Decision) Allows(t Type) bool {
	switch t {
	case TypePaid:
		return !d.DisablePaid
	case TypeHalfPaid:
		return !d.DisableHalfPaid
	case TypeSick:
		return !d.DisableSick
	case TypeUnpaid, TypeHalfUnpaid:
		return d.RequestedDays > 0
	}
	return false
}

// noDecision is returned for input the engine cannot evaluate:
// every quota-gated option off, nothing to say.
func noDecision() Decision {
	return Decision{DisablePaid: true, DisableHalfPaid: true, DisableSick: true}
}
